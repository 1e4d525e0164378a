package directions

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/routemark/directions/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustDoc decodes a JSON document the way the client does, with
// UseNumber, so the mapper sees the same numeric representations.
func mustDoc(t *testing.T, raw string) map[string]any {
	t.Helper()

	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.UseNumber()

	var doc map[string]any
	require.NoError(t, dec.Decode(&doc))
	return doc
}

const transitResponse = `{
	"status": "OK",
	"geocoded_waypoints": [
		{"geocoder_status": "OK", "place_id": "ChIJOwg_06VPwokRYv534QaPC8g", "types": ["locality"], "partial_match": "true"},
		{"geocoder_status": "OK", "place_id": "ChIJGzE9DS1l44kRoOhiASS_fHg", "types": ["locality"], "partial_match": "false"}
	],
	"routes": [
		{
			"summary": "I-95 N",
			"copyrights": "Map data 2026",
			"warnings": ["Walking directions are in beta."],
			"waypoint_order": [0, 1],
			"bounds": {
				"southwest": {"lat": 40.7127, "lng": -74.0059},
				"northeast": {"lat": 42.3601, "lng": -71.0589}
			},
			"overview_polyline": {"points": "_p~iF~ps|U_ulLnnqC_mqNvxq` + "`" + `@"},
			"fare": {"currency": "USD", "value": 2.75, "text": "$2.75"},
			"legs": [
				{
					"distance": {"text": "306 km", "value": 306270},
					"duration": {"text": "3 hours 32 mins", "value": 12720},
					"duration_in_traffic": {"text": "3 hours 40 mins", "value": 13200.5},
					"departure_time": {"text": "10:00am", "value": 1609491600, "time_zone": "America/New_York"},
					"arrival_time": {"text": "1:32pm", "value": 1609504320, "time_zone": "America/New_York"},
					"start_address": "New York, NY, USA",
					"end_address": "Boston, MA, USA",
					"start_location": {"lat": 40.7127, "lng": -74.0059},
					"end_location": {"lat": 42.3601, "lng": -71.0589},
					"via_waypoint": [
						{"location": {"lat": 41.0, "lng": -73.0}, "step_index": 1, "step_interpolation": 0.5}
					],
					"steps": [
						{
							"html_instructions": "Head <b>north</b> on Broadway",
							"travel_mode": "WALKING",
							"maneuver": "turn-right",
							"distance": {"text": "0.2 km", "value": 200},
							"duration": {"text": "3 mins", "value": 180},
							"start_location": {"lat": 40.7127, "lng": -74.0059},
							"end_location": {"lat": 40.7145, "lng": -74.0071},
							"polyline": {"points": "_p~iF~ps|U"}
						},
						{
							"html_instructions": "Take the bus toward Boston",
							"travel_mode": "TRANSIT",
							"start_location": {"lat": 40.7145, "lng": -74.0071},
							"transit_details": {
								"arrival_stop": {"name": "South Station", "location": {"lat": 42.3519, "lng": -71.0552}},
								"departure_stop": {"name": "Port Authority", "location": {"lat": 40.7570, "lng": -73.9903}},
								"departure_time": {"text": "10:15am", "value": 1609492500, "time_zone": "America/New_York"},
								"arrival_time": {"text": "1:30pm", "value": 1609504200, "time_zone": "America/New_York"},
								"headsign": "Boston Express",
								"headway": 1800,
								"num_stops": 2,
								"line": {
									"name": "Northeast Corridor",
									"short_name": "NE",
									"color": "#ff0000",
									"text_color": "#ffffff",
									"url": "https://transit.example/ne",
									"agencies": [
										{"name": "Example Transit", "url": "https://transit.example", "phone": "+1 555 0100"}
									],
									"vehicle": {"name": "Bus", "type": "BUS", "icon": "//maps.example/bus.png"}
								}
							}
						}
					]
				}
			]
		}
	]
}`

func TestMapResultFullGraph(t *testing.T) {
	result, err := MapResult(mustDoc(t, transitResponse))
	require.NoError(t, err)

	assert.Equal(t, StatusOK, result.Status)
	require.Len(t, result.Routes, 1)
	require.Len(t, result.GeocodedWaypoints, 2)

	route := result.Routes[0]
	assert.Equal(t, "I-95 N", route.Summary)
	assert.Equal(t, "Map data 2026", route.Copyrights)
	assert.Equal(t, []string{"Walking directions are in beta."}, route.Warnings)
	assert.Equal(t, []int{0, 1}, route.WaypointOrder)

	require.NotNil(t, route.Bounds)
	assert.True(t, route.Bounds.Contains(geo.NewCoordinate(41.0, -73.0)))
	assert.False(t, route.Bounds.Contains(geo.NewCoordinate(0, 0)))
	require.NotNil(t, route.Fare)
	assert.Equal(t, "USD", route.Fare.Currency)
	assert.Equal(t, 2.75, route.Fare.Value)

	require.Len(t, route.Legs, 1)
	leg := route.Legs[0]
	require.NotNil(t, leg.Distance)
	assert.Equal(t, 306270.0, leg.Distance.Meters)
	require.NotNil(t, leg.Duration)
	assert.Equal(t, 12720.0, leg.Duration.Seconds)
	require.NotNil(t, leg.DurationInTraffic)
	assert.Equal(t, 13200.5, leg.DurationInTraffic.Seconds, "float wire value normalizes like an integer one")

	require.NotNil(t, leg.DepartureTime)
	assert.Equal(t, time.Unix(1609491600, 0).UTC(), leg.DepartureTime.Value)
	assert.Equal(t, "America/New_York", leg.DepartureTime.TimeZone)

	require.NotNil(t, leg.StartLocation)
	assert.InDelta(t, 40.7127, leg.StartLocation.Latitude, 1e-9)
	assert.Equal(t, "New York, NY, USA", leg.StartAddress)

	require.Len(t, leg.ViaWaypoints, 1)
	via := leg.ViaWaypoints[0]
	require.NotNil(t, via.StepIndex)
	assert.Equal(t, 1, *via.StepIndex)
	require.NotNil(t, via.StepInterpolation)
	assert.Equal(t, 0.5, *via.StepInterpolation)

	require.Len(t, leg.Steps, 2)
	walk := leg.Steps[0]
	assert.Equal(t, "Head <b>north</b> on Broadway", walk.Instruction)
	assert.Equal(t, TravelModeWalking, walk.TravelMode)
	assert.Equal(t, "turn-right", walk.Maneuver)
	require.NotNil(t, walk.Polyline)
	assert.Equal(t, "_p~iF~ps|U", walk.Polyline.Points)

	transit := leg.Steps[1]
	assert.Equal(t, TravelModeTransit, transit.TravelMode)
	assert.Nil(t, transit.Distance, "absent distance stays absent")
	assert.Nil(t, transit.EndLocation, "absent end location stays absent")

	details := transit.TransitDetails
	require.NotNil(t, details)
	assert.Equal(t, "Boston Express", details.Headsign)
	require.NotNil(t, details.HeadwaySeconds)
	assert.Equal(t, 1800.0, *details.HeadwaySeconds)
	require.NotNil(t, details.NumStops)
	assert.Equal(t, 2, *details.NumStops)

	require.NotNil(t, details.DepartureStop)
	assert.Equal(t, "Port Authority", details.DepartureStop.Name)
	require.NotNil(t, details.DepartureStop.Location)
	assert.InDelta(t, -73.9903, details.DepartureStop.Location.Longitude, 1e-9)

	line := details.Line
	require.NotNil(t, line)
	assert.Equal(t, "Northeast Corridor", line.Name)
	require.Len(t, line.Agencies, 1)
	assert.Equal(t, "Example Transit", line.Agencies[0].Name)
	require.NotNil(t, line.Vehicle)
	assert.Equal(t, VehicleTypeBus, line.Vehicle.Type)
	assert.True(t, line.Vehicle.Type.Known())
}

func TestMapResultEmptyRoutes(t *testing.T) {
	result, err := MapResult(mustDoc(t, `{"status": "ZERO_RESULTS", "routes": []}`))
	require.NoError(t, err)

	assert.Empty(t, result.Routes)
	assert.Equal(t, StatusZeroResults, result.Status)
}

func TestMapResultMissingRoutes(t *testing.T) {
	result, err := MapResult(mustDoc(t, `{"status": "OK"}`))
	require.Error(t, err)
	assert.Nil(t, result, "no partial graph on shape failure")

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, "routes", shapeErr.Field)
}

func TestMapResultRoutesNotAList(t *testing.T) {
	_, err := MapResult(mustDoc(t, `{"routes": {"summary": "oops"}}`))

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
}

func TestMapResultUnknownEnumValuesPreserved(t *testing.T) {
	doc := mustDoc(t, `{
		"status": "TEAPOT",
		"routes": [{
			"legs": [{
				"steps": [{
					"travel_mode": "HOVERBOARD",
					"transit_details": {"line": {"vehicle": {"type": "HYPERLOOP"}}}
				}]
			}]
		}]
	}`)

	result, err := MapResult(doc)
	require.NoError(t, err, "unknown enum values never fail the mapping")

	assert.Equal(t, Status("TEAPOT"), result.Status)
	assert.False(t, result.Status.Known())

	step := result.Routes[0].Legs[0].Steps[0]
	assert.Equal(t, TravelMode("HOVERBOARD"), step.TravelMode)
	assert.False(t, step.TravelMode.Known())

	vehicle := step.TransitDetails.Line.Vehicle
	require.NotNil(t, vehicle)
	assert.Equal(t, VehicleType("HYPERLOOP"), vehicle.Type)
	assert.False(t, vehicle.Type.Known())
}

func TestMapGeocodedWaypointPartialMatch(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want bool
	}{
		{"string true", `{"routes": [], "geocoded_waypoints": [{"partial_match": "true"}]}`, true},
		{"string false", `{"routes": [], "geocoded_waypoints": [{"partial_match": "false"}]}`, false},
		{"absent", `{"routes": [], "geocoded_waypoints": [{"geocoder_status": "OK"}]}`, false},
		{"malformed token", `{"routes": [], "geocoded_waypoints": [{"partial_match": "yes"}]}`, false},
		{"native bool is not the string token", `{"routes": [], "geocoded_waypoints": [{"partial_match": true}]}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := MapResult(mustDoc(t, tt.doc))
			require.NoError(t, err)
			require.Len(t, result.GeocodedWaypoints, 1)
			assert.Equal(t, tt.want, result.GeocodedWaypoints[0].PartialMatch)
		})
	}
}

func TestMapResultNoSyntheticDefaults(t *testing.T) {
	doc := mustDoc(t, `{
		"routes": [{
			"legs": [{
				"steps": [{"html_instructions": "Go"}],
				"start_location": {"lat": 40.0}
			}]
		}]
	}`)

	result, err := MapResult(doc)
	require.NoError(t, err)

	leg := result.Routes[0].Legs[0]
	assert.Nil(t, leg.StartLocation, "half a coordinate is not zero-filled")
	assert.Nil(t, leg.Distance)
	assert.Nil(t, leg.ArrivalTime)
	assert.Nil(t, leg.Steps[0].TransitDetails)

	route := result.Routes[0]
	assert.Nil(t, route.Bounds)
	assert.Nil(t, route.Fare)
	assert.Nil(t, route.OverviewPolyline)
}

func TestOverviewPolylineDecodesLazily(t *testing.T) {
	doc := mustDoc(t, `{
		"routes": [{"overview_polyline": {"points": "_p~iF~ps|U_ulLnnqC"}}]
	}`)

	result, err := MapResult(doc)
	require.NoError(t, err)

	poly := result.Routes[0].OverviewPolyline
	require.NotNil(t, poly)
	assert.Equal(t, "_p~iF~ps|U_ulLnnqC", poly.Points)

	path, err := poly.Path()
	require.NoError(t, err)
	require.Len(t, path, 2)
	assert.InDelta(t, 38.5, path[0].Latitude, 1e-5)
	assert.InDelta(t, -120.95, path[1].Longitude, 1e-5)

	again, err := poly.Path()
	require.NoError(t, err)
	assert.Same(t, &path[0], &again[0], "decoded path is memoized")
}

func TestOverviewPolylineMalformedSurfacesDecodeError(t *testing.T) {
	doc := mustDoc(t, `{
		"routes": [{"overview_polyline": {"points": "_p~iF~ps|U_"}}]
	}`)

	result, err := MapResult(doc)
	require.NoError(t, err, "decode cost and decode errors are deferred to access")

	_, err = result.Routes[0].OverviewPolyline.Path()
	require.Error(t, err)
}
