package directions

import (
	"encoding/json"
	"time"

	"github.com/routemark/directions/pkg/geo"
)

// MapResult builds the typed route graph from a decoded JSON document.
// Only the top-level routes list is required; every nested field is
// optional and maps to a nil pointer or empty slice when absent. On
// error no partial graph is returned.
func MapResult(doc map[string]any) (*Result, error) {
	rawRoutes, ok := doc["routes"]
	if !ok {
		return nil, &ShapeError{Field: "routes", Reason: "key is missing"}
	}
	list, ok := rawRoutes.([]any)
	if !ok {
		return nil, &ShapeError{Field: "routes", Reason: "value is not a list"}
	}

	result := &Result{
		Status:       Status(optString(doc, "status")),
		ErrorMessage: optString(doc, "error_message"),
		Routes:       make([]Route, 0, len(list)),
	}

	for _, raw := range list {
		if obj, ok := raw.(map[string]any); ok {
			result.Routes = append(result.Routes, mapRoute(obj))
		}
	}

	for _, raw := range optList(doc, "geocoded_waypoints") {
		if obj, ok := raw.(map[string]any); ok {
			result.GeocodedWaypoints = append(result.GeocodedWaypoints, mapGeocodedWaypoint(obj))
		}
	}

	return result, nil
}

func mapGeocodedWaypoint(obj map[string]any) GeocodedWaypoint {
	wp := GeocodedWaypoint{
		GeocoderStatus: Status(optString(obj, "geocoder_status")),
		PlaceID:        optString(obj, "place_id"),
		Types:          optStrings(obj, "types"),
	}
	// The service sends partial_match as a string token, not a JSON
	// bool; anything other than the literal "true" means false.
	wp.PartialMatch = optString(obj, "partial_match") == "true"
	return wp
}

func mapRoute(obj map[string]any) Route {
	route := Route{
		Summary:    optString(obj, "summary"),
		Copyrights: optString(obj, "copyrights"),
		Warnings:   optStrings(obj, "warnings"),
	}

	for _, raw := range optList(obj, "waypoint_order") {
		if n, ok := toFloat(raw); ok {
			route.WaypointOrder = append(route.WaypointOrder, int(n))
		}
	}

	if overview := optObject(obj, "overview_polyline"); overview != nil {
		if points := optString(overview, "points"); points != "" {
			route.OverviewPolyline = NewPolyline(points)
		}
	}

	route.Bounds = mapBounds(optObject(obj, "bounds"))
	route.Fare = mapFare(optObject(obj, "fare"))

	for _, raw := range optList(obj, "legs") {
		if leg, ok := raw.(map[string]any); ok {
			route.Legs = append(route.Legs, mapLeg(leg))
		}
	}

	return route
}

func mapLeg(obj map[string]any) Leg {
	leg := Leg{
		Distance:          mapDistance(optObject(obj, "distance")),
		Duration:          mapDuration(optObject(obj, "duration")),
		DurationInTraffic: mapDuration(optObject(obj, "duration_in_traffic")),
		ArrivalTime:       mapTime(optObject(obj, "arrival_time")),
		DepartureTime:     mapTime(optObject(obj, "departure_time")),
		StartLocation:     mapCoordinate(optObject(obj, "start_location")),
		EndLocation:       mapCoordinate(optObject(obj, "end_location")),
		StartAddress:      optString(obj, "start_address"),
		EndAddress:        optString(obj, "end_address"),
	}

	for _, raw := range optList(obj, "steps") {
		if step, ok := raw.(map[string]any); ok {
			leg.Steps = append(leg.Steps, mapStep(step))
		}
	}

	for _, raw := range optList(obj, "via_waypoint") {
		if via, ok := raw.(map[string]any); ok {
			leg.ViaWaypoints = append(leg.ViaWaypoints, mapViaWaypoint(via))
		}
	}

	return leg
}

func mapStep(obj map[string]any) Step {
	step := Step{
		Instruction:    optString(obj, "html_instructions"),
		Maneuver:       optString(obj, "maneuver"),
		TravelMode:     TravelMode(optString(obj, "travel_mode")),
		StartLocation:  mapCoordinate(optObject(obj, "start_location")),
		EndLocation:    mapCoordinate(optObject(obj, "end_location")),
		Distance:       mapDistance(optObject(obj, "distance")),
		Duration:       mapDuration(optObject(obj, "duration")),
		TransitDetails: mapTransitDetails(optObject(obj, "transit_details")),
	}

	if poly := optObject(obj, "polyline"); poly != nil {
		if points := optString(poly, "points"); points != "" {
			step.Polyline = NewPolyline(points)
		}
	}

	return step
}

func mapTransitDetails(obj map[string]any) *TransitDetails {
	if obj == nil {
		return nil
	}

	details := &TransitDetails{
		ArrivalStop:   mapTransitStop(optObject(obj, "arrival_stop")),
		DepartureStop: mapTransitStop(optObject(obj, "departure_stop")),
		ArrivalTime:   mapTime(optObject(obj, "arrival_time")),
		DepartureTime: mapTime(optObject(obj, "departure_time")),
		Headsign:      optString(obj, "headsign"),
		TripShortName: optString(obj, "trip_short_name"),
		Line:          mapTransitLine(optObject(obj, "line")),
	}

	if headway, ok := toFloat(obj["headway"]); ok {
		details.HeadwaySeconds = &headway
	}
	if numStops, ok := toFloat(obj["num_stops"]); ok {
		n := int(numStops)
		details.NumStops = &n
	}

	return details
}

func mapTransitStop(obj map[string]any) *TransitStop {
	if obj == nil {
		return nil
	}
	return &TransitStop{
		Name:     optString(obj, "name"),
		Location: mapCoordinate(optObject(obj, "location")),
	}
}

func mapTransitLine(obj map[string]any) *TransitLine {
	if obj == nil {
		return nil
	}

	line := &TransitLine{
		Name:      optString(obj, "name"),
		ShortName: optString(obj, "short_name"),
		Color:     optString(obj, "color"),
		TextColor: optString(obj, "text_color"),
		URL:       optString(obj, "url"),
		Icon:      optString(obj, "icon"),
		Vehicle:   mapVehicle(optObject(obj, "vehicle")),
	}

	for _, raw := range optList(obj, "agencies") {
		if agency, ok := raw.(map[string]any); ok {
			line.Agencies = append(line.Agencies, TransitAgency{
				Name:  optString(agency, "name"),
				URL:   optString(agency, "url"),
				Phone: optString(agency, "phone"),
			})
		}
	}

	return line
}

func mapVehicle(obj map[string]any) *Vehicle {
	if obj == nil {
		return nil
	}
	return &Vehicle{
		Name:      optString(obj, "name"),
		Type:      VehicleType(optString(obj, "type")),
		Icon:      optString(obj, "icon"),
		LocalIcon: optString(obj, "local_icon"),
	}
}

func mapViaWaypoint(obj map[string]any) ViaWaypoint {
	via := ViaWaypoint{
		Location: mapCoordinate(optObject(obj, "location")),
	}
	if idx, ok := toFloat(obj["step_index"]); ok {
		n := int(idx)
		via.StepIndex = &n
	}
	if interp, ok := toFloat(obj["step_interpolation"]); ok {
		via.StepInterpolation = &interp
	}
	return via
}

func mapFare(obj map[string]any) *Fare {
	if obj == nil {
		return nil
	}
	fare := &Fare{
		Currency: optString(obj, "currency"),
		Text:     optString(obj, "text"),
	}
	if value, ok := toFloat(obj["value"]); ok {
		fare.Value = value
	}
	return fare
}

func mapBounds(obj map[string]any) *geo.BoundingBox {
	if obj == nil {
		return nil
	}
	southwest := mapCoordinate(optObject(obj, "southwest"))
	northeast := mapCoordinate(optObject(obj, "northeast"))
	if southwest == nil || northeast == nil {
		return nil
	}
	bounds := geo.NewBoundingBox(*southwest, *northeast)
	return &bounds
}

// mapCoordinate returns nil unless both components are present; an
// unknown position is never substituted with zeroes.
func mapCoordinate(obj map[string]any) *geo.Coordinate {
	if obj == nil {
		return nil
	}
	lat, latOK := toFloat(obj["lat"])
	lng, lngOK := toFloat(obj["lng"])
	if !latOK || !lngOK {
		return nil
	}
	c := geo.NewCoordinate(lat, lng)
	return &c
}

func mapDistance(obj map[string]any) *Distance {
	if obj == nil {
		return nil
	}
	d := &Distance{Text: optString(obj, "text")}
	if value, ok := toFloat(obj["value"]); ok {
		d.Meters = value
	}
	return d
}

func mapDuration(obj map[string]any) *Duration {
	if obj == nil {
		return nil
	}
	d := &Duration{Text: optString(obj, "text")}
	if value, ok := toFloat(obj["value"]); ok {
		d.Seconds = value
	}
	return d
}

func mapTime(obj map[string]any) *Time {
	if obj == nil {
		return nil
	}
	t := &Time{
		Text:     optString(obj, "text"),
		TimeZone: optString(obj, "time_zone"),
	}
	if value, ok := toFloat(obj["value"]); ok {
		t.Value = time.Unix(int64(value), 0).UTC()
	}
	return t
}

// Shape helpers. Each returns the zero value when the key is absent or
// holds an unexpected type.

func optObject(obj map[string]any, key string) map[string]any {
	if nested, ok := obj[key].(map[string]any); ok {
		return nested
	}
	return nil
}

func optList(obj map[string]any, key string) []any {
	if list, ok := obj[key].([]any); ok {
		return list
	}
	return nil
}

func optString(obj map[string]any, key string) string {
	if s, ok := obj[key].(string); ok {
		return s
	}
	return ""
}

func optStrings(obj map[string]any, key string) []string {
	var out []string
	for _, raw := range optList(obj, key) {
		if s, ok := raw.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// toFloat normalizes the numeric representations a JSON parser may
// produce (json.Number, float64, or integer types) to float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
