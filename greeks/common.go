// Package greeks prices European options under Black-Scholes with a
// continuous dividend yield and computes their closed-form Greeks.
//
// Every function is a pure computation over its arguments. Parameters share
// one naming scheme across the package:
//
//   - s0: spot price of the underlying
//   - x: strike price
//   - t: time to expiry as a fraction of a year
//   - r: continuously compounded risk-free rate
//   - q: continuously compounded dividend yield
//   - sigma: annualized volatility
//
// Inputs are not validated. An expired contract (t == 0) or zero volatility
// divides by zero and the result is NaN or ±Inf; callers that need a guard can
// use Contract.Validate before pricing.
package greeks

import "math"

// D1 returns the standardized log-moneyness term
//
//	d1 = (ln(s0/x) + t(r - q + sigma²/2)) / (sigma·sqrt(t))
func D1(s0, x, t, r, q, sigma float64) float64 {
	ln := math.Log(s0 / x)
	tNum := t * (r - q + (sigma*sigma)/2)
	return (ln + tNum) / (sigma * math.Sqrt(t))
}

// D2 returns d1 - sigma·sqrt(t).
func D2(s0, x, t, r, q, sigma float64) float64 {
	return D2FromD1(t, sigma, D1(s0, x, t, r, q, sigma))
}

// D2FromD1 derives d2 from an already computed d1, so a caller holding d1
// gets exactly the same d2 as D2 would produce.
func D2FromD1(t, sigma, d1 float64) float64 {
	return d1 - math.Sqrt(t)*sigma
}

// OneOverSqrtTwoPi returns 1/sqrt(2π), the normalizing constant of the
// standard normal density.
func OneOverSqrtTwoPi() float64 {
	return 1.0 / math.Sqrt(2.0*math.Pi)
}

// density is the standard normal density at d without the normalizing constant.
func density(d float64) float64 {
	return math.Exp(-(d * d) / 2)
}
