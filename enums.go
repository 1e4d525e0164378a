package directions

// TravelMode selects how a route is traversed. Values outside the known
// set are preserved verbatim so new service modes never break mapping;
// equality is plain string equality.
type TravelMode string

const (
	TravelModeDriving    TravelMode = "DRIVING"
	TravelModeWalking    TravelMode = "WALKING"
	TravelModeBicycling  TravelMode = "BICYCLING"
	TravelModeTransit    TravelMode = "TRANSIT"
	TravelModeTwoWheeler TravelMode = "TWO_WHEELER"
)

// Known reports whether the mode is one of the published constants.
func (m TravelMode) Known() bool {
	switch m {
	case TravelModeDriving, TravelModeWalking, TravelModeBicycling,
		TravelModeTransit, TravelModeTwoWheeler:
		return true
	}
	return false
}

// wireToken returns the request token the routes endpoint expects.
func (m TravelMode) wireToken() string {
	switch m {
	case TravelModeDriving:
		return "DRIVE"
	case TravelModeWalking:
		return "WALK"
	case TravelModeBicycling:
		return "BICYCLE"
	case TravelModeTransit:
		return "TRANSIT"
	case TravelModeTwoWheeler:
		return "TWO_WHEELER"
	default:
		return string(m)
	}
}

// Status is the service-level status token carried on responses and
// geocoded waypoints. Unknown tokens are preserved verbatim.
type Status string

const (
	StatusOK                     Status = "OK"
	StatusZeroResults            Status = "ZERO_RESULTS"
	StatusNotFound               Status = "NOT_FOUND"
	StatusMaxWaypointsExceeded   Status = "MAX_WAYPOINTS_EXCEEDED"
	StatusMaxRouteLengthExceeded Status = "MAX_ROUTE_LENGTH_EXCEEDED"
	StatusInvalidRequest         Status = "INVALID_REQUEST"
	StatusOverDailyLimit         Status = "OVER_DAILY_LIMIT"
	StatusOverQueryLimit         Status = "OVER_QUERY_LIMIT"
	StatusRequestDenied          Status = "REQUEST_DENIED"
	StatusUnknownError           Status = "UNKNOWN_ERROR"
)

// Known reports whether the status is one of the published constants.
func (s Status) Known() bool {
	switch s {
	case StatusOK, StatusZeroResults, StatusNotFound,
		StatusMaxWaypointsExceeded, StatusMaxRouteLengthExceeded,
		StatusInvalidRequest, StatusOverDailyLimit, StatusOverQueryLimit,
		StatusRequestDenied, StatusUnknownError:
		return true
	}
	return false
}

// VehicleType classifies the vehicle running a transit line. Unknown
// tokens are preserved verbatim.
type VehicleType string

const (
	VehicleTypeRail              VehicleType = "RAIL"
	VehicleTypeMetroRail         VehicleType = "METRO_RAIL"
	VehicleTypeSubway            VehicleType = "SUBWAY"
	VehicleTypeTram              VehicleType = "TRAM"
	VehicleTypeMonorail          VehicleType = "MONORAIL"
	VehicleTypeHeavyRail         VehicleType = "HEAVY_RAIL"
	VehicleTypeCommuterTrain     VehicleType = "COMMUTER_TRAIN"
	VehicleTypeHighSpeedTrain    VehicleType = "HIGH_SPEED_TRAIN"
	VehicleTypeLongDistanceTrain VehicleType = "LONG_DISTANCE_TRAIN"
	VehicleTypeBus               VehicleType = "BUS"
	VehicleTypeIntercityBus      VehicleType = "INTERCITY_BUS"
	VehicleTypeTrolleybus        VehicleType = "TROLLEYBUS"
	VehicleTypeShareTaxi         VehicleType = "SHARE_TAXI"
	VehicleTypeFerry             VehicleType = "FERRY"
	VehicleTypeCableCar          VehicleType = "CABLE_CAR"
	VehicleTypeGondolaLift       VehicleType = "GONDOLA_LIFT"
	VehicleTypeFunicular         VehicleType = "FUNICULAR"
	VehicleTypeOther             VehicleType = "OTHER"
)

// Known reports whether the vehicle type is one of the published constants.
func (v VehicleType) Known() bool {
	switch v {
	case VehicleTypeRail, VehicleTypeMetroRail, VehicleTypeSubway,
		VehicleTypeTram, VehicleTypeMonorail, VehicleTypeHeavyRail,
		VehicleTypeCommuterTrain, VehicleTypeHighSpeedTrain,
		VehicleTypeLongDistanceTrain, VehicleTypeBus,
		VehicleTypeIntercityBus, VehicleTypeTrolleybus,
		VehicleTypeShareTaxi, VehicleTypeFerry, VehicleTypeCableCar,
		VehicleTypeGondolaLift, VehicleTypeFunicular, VehicleTypeOther:
		return true
	}
	return false
}
