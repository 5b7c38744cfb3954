package greeks

// CallAtExpiry returns the payoff of a call at expiry, max(sT - x, 0).
func CallAtExpiry(sT, x float64) float64 {
	if res := sT - x; res > 0 {
		return res
	}
	return 0
}

// PutAtExpiry returns the payoff of a put at expiry, max(x - sT, 0).
func PutAtExpiry(sT, x float64) float64 {
	if res := x - sT; res > 0 {
		return res
	}
	return 0
}
