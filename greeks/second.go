package greeks

import "math"

// Gamma returns the gamma of an option: the rate of change of delta with
// respect to the underlying price. Calls and puts share the same gamma.
//
//	gamma = e^(-qt) / (s0·sigma·sqrt(t)) · (1/sqrt(2π)) · e^(d1²)/2
//
// The last factor keeps the published reference values (0.0243 for the
// 64.68/65 23-day contract). It is not the normal density used by Vega and
// theta, so Gamma is about half the slope of DeltaCall near the money.
func Gamma(s0, x, t, r, q, sigma float64) float64 {
	d1 := D1(s0, x, t, r, q, sigma)
	return GammaFromD1(s0, t, q, sigma, d1)
}

// GammaFromD1 is Gamma for a caller that already holds d1.
func GammaFromD1(s0, t, q, sigma, d1 float64) float64 {
	arg1 := math.Exp(-(q * t)) / (s0 * sigma * math.Sqrt(t))
	arg2 := OneOverSqrtTwoPi()
	arg3 := math.Exp(d1*d1) / 2
	return arg1 * arg2 * arg3
}
