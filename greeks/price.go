package greeks

import (
	"math"

	"github.com/contactkeval/greeks/stats"
)

// EuroCall returns the Black-Scholes present value of a European call.
//
//	call = s0·N(d1) - x·e^(-rt)·N(d2)
//
// The spot term is not discounted by the dividend yield, so q enters the
// price only through d1 and d2. As a consequence
// EuroCall - EuroPut == s0 - x·e^(-rt).
func EuroCall(s0, x, t, r, q, sigma float64) float64 {
	d1 := D1(s0, x, t, r, q, sigma)
	return callFromD1(s0, x, t, r, sigma, d1)
}

// EuroPut returns the Black-Scholes present value of a European put.
//
//	put = -s0·N(-d1) + x·e^(-rt)·N(-d2)
func EuroPut(s0, x, t, r, q, sigma float64) float64 {
	d1 := D1(s0, x, t, r, q, sigma)
	return putFromD1(s0, x, t, r, sigma, d1)
}

func callFromD1(s0, x, t, r, sigma, d1 float64) float64 {
	d2 := D2FromD1(t, sigma, d1)

	arg1 := s0 * stats.Cnd(d1)
	arg2 := x * math.Exp(-r*t) * stats.Cnd(d2)
	return arg1 - arg2
}

func putFromD1(s0, x, t, r, sigma, d1 float64) float64 {
	d2 := D2FromD1(t, sigma, d1)

	arg1 := s0 * stats.Cnd(-d1)
	arg2 := x * math.Exp(-r*t) * stats.Cnd(-d2)
	return -arg1 + arg2
}
