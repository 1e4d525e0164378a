package directions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTravelModeKnown(t *testing.T) {
	assert.True(t, TravelModeDriving.Known())
	assert.True(t, TravelModeTransit.Known())
	assert.False(t, TravelMode("HOVERBOARD").Known())
	assert.False(t, TravelMode("").Known())
}

func TestStatusKnown(t *testing.T) {
	assert.True(t, StatusOK.Known())
	assert.True(t, StatusZeroResults.Known())
	assert.False(t, Status("TEAPOT").Known())
}

func TestVehicleTypeKnown(t *testing.T) {
	assert.True(t, VehicleTypeBus.Known())
	assert.True(t, VehicleTypeGondolaLift.Known())
	assert.False(t, VehicleType("HYPERLOOP").Known())
}

func TestEnumEqualityIsByIdentifier(t *testing.T) {
	// A raw wire string and the constant compare equal when they share
	// the identifier.
	assert.Equal(t, VehicleTypeBus, VehicleType("BUS"))
	assert.NotEqual(t, VehicleTypeBus, VehicleType("bus"))
}
