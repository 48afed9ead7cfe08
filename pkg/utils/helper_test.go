package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInt(t *testing.T) {
	assert.Equal(t, 5, ParseInt("5", 1))
	assert.Equal(t, 1, ParseInt("", 1))
	assert.Equal(t, 1, ParseInt("abc", 1))
	assert.Equal(t, 1, ParseInt("0", 1))
	assert.Equal(t, 1, ParseInt("-3", 1))
}

func TestParseFloat(t *testing.T) {
	value, ok := ParseFloat("40.7128")
	assert.True(t, ok)
	assert.Equal(t, 40.7128, value)

	value, ok = ParseFloat("-74.006")
	assert.True(t, ok)
	assert.Equal(t, -74.006, value)

	_, ok = ParseFloat("")
	assert.False(t, ok)

	_, ok = ParseFloat("not-a-number")
	assert.False(t, ok)
}

func TestParseBoolPtr(t *testing.T) {
	assert.Nil(t, ParseBoolPtr(""))
	assert.Nil(t, ParseBoolPtr("yes"))

	value := ParseBoolPtr("true")
	if assert.NotNil(t, value) {
		assert.True(t, *value)
	}

	value = ParseBoolPtr("false")
	if assert.NotNil(t, value) {
		assert.False(t, *value)
	}
}

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 0, CalculateTotalPages(0, 10))
	assert.Equal(t, 1, CalculateTotalPages(1, 10))
	assert.Equal(t, 1, CalculateTotalPages(10, 10))
	assert.Equal(t, 2, CalculateTotalPages(11, 10))
	assert.Equal(t, 0, CalculateTotalPages(5, 0))
}

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, CalculateOffset(0, 10))
	assert.Equal(t, 0, CalculateOffset(1, 10))
	assert.Equal(t, 10, CalculateOffset(2, 10))
	assert.Equal(t, 45, CalculateOffset(4, 15))
}
