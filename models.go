package directions

import (
	"sync"
	"time"

	"github.com/routemark/directions/pkg/geo"
	"github.com/routemark/directions/pkg/polyline"
)

// Result is the typed route graph mapped from one response snapshot.
// Everything below it is read-only once built; optional fields are nil
// pointers, never zero-filled stand-ins.
type Result struct {
	GeocodedWaypoints []GeocodedWaypoint
	Routes            []Route
	Status            Status
	ErrorMessage      string
}

// GeocodedWaypoint describes how the service resolved one requested
// waypoint.
type GeocodedWaypoint struct {
	GeocoderStatus Status
	PlaceID        string
	Types          []string
	PartialMatch   bool
}

// Route is a single routing option between the requested endpoints.
type Route struct {
	Summary          string
	Legs             []Leg
	WaypointOrder    []int
	OverviewPolyline *Polyline
	Bounds           *geo.BoundingBox
	Copyrights       string
	Warnings         []string
	Fare             *Fare
}

// Leg is the portion of a route between two consecutive waypoints.
type Leg struct {
	Steps             []Step
	Distance          *Distance
	Duration          *Duration
	DurationInTraffic *Duration
	ArrivalTime       *Time
	DepartureTime     *Time
	StartLocation     *geo.Coordinate
	EndLocation       *geo.Coordinate
	StartAddress      string
	EndAddress        string
	ViaWaypoints      []ViaWaypoint
}

// Step is the smallest navigable unit within a leg: one instruction.
type Step struct {
	Instruction    string
	Maneuver       string
	TravelMode     TravelMode
	StartLocation  *geo.Coordinate
	EndLocation    *geo.Coordinate
	Polyline       *Polyline
	Distance       *Distance
	Duration       *Duration
	TransitDetails *TransitDetails
}

// Distance is a human-readable text plus a value in metres.
type Distance struct {
	Text   string
	Meters float64
}

// Duration is a human-readable text plus a value in seconds.
type Duration struct {
	Text    string
	Seconds float64
}

// Time is the service's three-field time record: display text, the
// absolute instant decoded from Unix epoch seconds, and the IANA time
// zone name, preserved as sent.
type Time struct {
	Text     string
	Value    time.Time
	TimeZone string
}

// Fare is the total transit fare for a route.
type Fare struct {
	Currency string
	Value    float64
	Text     string
}

// TransitDetails carries transit-specific metadata for a step.
type TransitDetails struct {
	ArrivalStop    *TransitStop
	DepartureStop  *TransitStop
	ArrivalTime    *Time
	DepartureTime  *Time
	Headsign       string
	HeadwaySeconds *float64
	NumStops       *int
	TripShortName  string
	Line           *TransitLine
}

// TransitStop is a named transit stop or station.
type TransitStop struct {
	Name     string
	Location *geo.Coordinate
}

// TransitLine describes the transit line a step travels on.
type TransitLine struct {
	Name      string
	ShortName string
	Color     string
	TextColor string
	URL       string
	Icon      string
	Agencies  []TransitAgency
	Vehicle   *Vehicle
}

// TransitAgency operates a transit line.
type TransitAgency struct {
	Name  string
	URL   string
	Phone string
}

// Vehicle describes the vehicle running a transit line.
type Vehicle struct {
	Name      string
	Type      VehicleType
	Icon      string
	LocalIcon string
}

// ViaWaypoint marks where a route passes through a via point.
type ViaWaypoint struct {
	Location          *geo.Coordinate
	StepIndex         *int
	StepInterpolation *float64
}

// Polyline wraps an encoded polyline string. The coordinate path is
// decoded on first Path call and memoized; construction never decodes,
// so unread polylines cost nothing.
type Polyline struct {
	Points string

	once sync.Once
	path []geo.Coordinate
	err  error
}

// NewPolyline wraps an encoded points string without decoding it.
func NewPolyline(points string) *Polyline {
	return &Polyline{Points: points}
}

// Path decodes the encoded points, caching the result. A malformed
// encoding returns a *polyline.DecodeError on every call.
func (p *Polyline) Path() ([]geo.Coordinate, error) {
	p.once.Do(func() {
		p.path, p.err = polyline.Decode(p.Points)
	})
	return p.path, p.err
}
