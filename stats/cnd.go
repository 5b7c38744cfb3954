// Package stats holds the normal-distribution primitives shared by the
// option formulas.
package stats

import "math"

// Polynomial coefficients of the Zelen–Severo rational approximation
// (Abramowitz & Stegun 26.2.17).
const (
	A1 = 0.31938153
	A2 = -0.356563782
	A3 = 1.781477937
	A4 = -1.821255978
	A5 = 1.330274429

	// P scales |x| inside k = 1 / (1 + P|x|).
	P = 0.2316419

	// RSqrt2Pi is 1/sqrt(2π).
	RSqrt2Pi = 0.39894228040143267793994605993438
)

// Cnd approximates the cumulative distribution function of the standard
// normal distribution at x.
//
// The absolute error of the approximation is below 1e-7 for every finite x.
// The tail term vanishes with exp(-x²/2), so the result saturates to 0 and 1
// as x goes to -Inf and +Inf.
func Cnd(x float64) float64 {
	k := 1.0 / (1.0 + P*math.Abs(x))
	cnd := RSqrt2Pi * math.Exp(-0.5*x*x) *
		(k * (A1 + k*(A2+k*(A3+k*(A4+k*A5)))))

	if x > 0 {
		cnd = 1.0 - cnd
	}
	return cnd
}
