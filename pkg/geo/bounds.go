package geo

// BoundingBox is a latitude/longitude-aligned rectangle. When
// Southwest.Longitude > Northeast.Longitude the box crosses the
// antimeridian and its longitude span wraps across +/-180.
type BoundingBox struct {
	Southwest Coordinate `json:"southwest"`
	Northeast Coordinate `json:"northeast"`
}

// NewBoundingBox builds a box from two corners, swapping latitudes if
// needed so Southwest.Latitude <= Northeast.Latitude. Longitudes are
// kept as given because order carries the wraparound information.
func NewBoundingBox(southwest, northeast Coordinate) BoundingBox {
	if southwest.Latitude > northeast.Latitude {
		southwest.Latitude, northeast.Latitude = northeast.Latitude, southwest.Latitude
	}
	return BoundingBox{Southwest: southwest, Northeast: northeast}
}

// Contains reports whether c lies inside the box, edges included.
func (b BoundingBox) Contains(c Coordinate) bool {
	if c.Latitude < b.Southwest.Latitude || c.Latitude > b.Northeast.Latitude {
		return false
	}
	if b.Southwest.Longitude <= b.Northeast.Longitude {
		return c.Longitude >= b.Southwest.Longitude && c.Longitude <= b.Northeast.Longitude
	}
	return c.Longitude >= b.Southwest.Longitude || c.Longitude <= b.Northeast.Longitude
}
