package fare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalFare(t *testing.T) {
	assert.Equal(t, 200.0, TotalFare(50, 4))
	assert.Equal(t, 50.0, TotalFare(50, 1))
	assert.Equal(t, 0.0, TotalFare(0, 3))
}

func TestCreditRedemption(t *testing.T) {
	tests := []struct {
		name      string
		balance   float64
		totalFare float64
		want      float64
	}{
		{"balance below cap", 10, 200, 10},
		{"balance above cap", 100, 200, 40},
		{"balance equals cap", 40, 200, 40},
		{"zero balance", 0, 200, 0},
		{"zero fare", 50, 0, 0},
		{"negative balance clamps to zero", -5, 200, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CreditRedemption(tt.balance, tt.totalFare))
		})
	}
}

func TestCreditRedemptionNeverExceedsShare(t *testing.T) {
	for _, fare := range []float64{1, 15, 99.5, 1000} {
		got := CreditRedemption(1e9, fare)
		assert.InDelta(t, fare*MaxCreditShare, got, 1e-9)
	}
}
