package directions

import "github.com/routemark/directions/pkg/geo"

// RouteRequest describes one origin/destination routing query.
type RouteRequest struct {
	Origin        geo.Coordinate
	Destination   geo.Coordinate
	Mode          TravelMode
	Alternatives  bool
	AvoidTolls    bool
	AvoidHighways bool
}

// Wire shapes for the computeRoutes request body.

type routeBody struct {
	Origin                   waypointBody   `json:"origin"`
	Destination              waypointBody   `json:"destination"`
	TravelMode               string         `json:"travelMode"`
	ComputeAlternativeRoutes bool           `json:"computeAlternativeRoutes"`
	RouteModifiers           *modifiersBody `json:"routeModifiers,omitempty"`
}

type waypointBody struct {
	Location locationBody `json:"location"`
}

type locationBody struct {
	LatLng latLngBody `json:"latLng"`
}

type latLngBody struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type modifiersBody struct {
	AvoidTolls    bool `json:"avoidTolls,omitempty"`
	AvoidHighways bool `json:"avoidHighways,omitempty"`
}

// body builds the exact JSON payload the routes endpoint expects.
func (r *RouteRequest) body() routeBody {
	mode := r.Mode
	if mode == "" {
		mode = TravelModeDriving
	}

	b := routeBody{
		Origin:                   wireWaypoint(r.Origin),
		Destination:              wireWaypoint(r.Destination),
		TravelMode:               mode.wireToken(),
		ComputeAlternativeRoutes: r.Alternatives,
	}

	if r.AvoidTolls || r.AvoidHighways {
		b.RouteModifiers = &modifiersBody{
			AvoidTolls:    r.AvoidTolls,
			AvoidHighways: r.AvoidHighways,
		}
	}

	return b
}

func wireWaypoint(c geo.Coordinate) waypointBody {
	return waypointBody{
		Location: locationBody{
			LatLng: latLngBody{Latitude: c.Latitude, Longitude: c.Longitude},
		},
	}
}
