package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceTierOrdinal(t *testing.T) {
	assert.Equal(t, 1, PriceTierLow.Ordinal())
	assert.Equal(t, 2, PriceTierMid.Ordinal())
	assert.Equal(t, 3, PriceTierHigh.Ordinal())
	assert.Equal(t, 0, PriceTier("$$$$").Ordinal())
	assert.Equal(t, 0, PriceTier("cheap").Ordinal())
	assert.Equal(t, 0, PriceTier("").Ordinal())
}

func TestPriceTierIsValid(t *testing.T) {
	assert.True(t, PriceTierMid.IsValid())
	assert.False(t, PriceTier("££").IsValid())
}

func TestPlaceTypeIsValid(t *testing.T) {
	assert.True(t, PlaceTypeHotel.IsValid())
	assert.True(t, PlaceTypeMotel.IsValid())
	assert.True(t, PlaceTypeRestStop.IsValid())
	assert.False(t, PlaceType("campsite").IsValid())
	assert.False(t, PlaceType("").IsValid())
}

func TestBookingStatusCanCancel(t *testing.T) {
	assert.True(t, BookingStatusPending.CanCancel())
	assert.True(t, BookingStatusConfirmed.CanCancel())
	assert.False(t, BookingStatusCancelled.CanCancel())
	assert.False(t, BookingStatusCompleted.CanCancel())
	assert.False(t, BookingStatus("unknown").CanCancel())
}
