// Package fare holds the pure fare and credit arithmetic. The booking
// ledger applies the resulting debits; nothing here has side effects.
package fare

// MaxCreditShare caps credit redemption at 20% of any single fare.
const MaxCreditShare = 0.20

// TotalFare is the route base fare multiplied by the passenger count.
func TotalFare(baseFare float64, numPassengers int) float64 {
	return baseFare * float64(numPassengers)
}

// CreditRedemption returns min(balance, MaxCreditShare * totalFare):
// at most 20% of the fare may be covered by credits and never more than
// the user currently holds. The result is never negative.
func CreditRedemption(balance, totalFare float64) float64 {
	redeemable := totalFare * MaxCreditShare
	if balance < redeemable {
		redeemable = balance
	}
	if redeemable < 0 {
		return 0
	}
	return redeemable
}
