package greeks

import (
	"math"

	"github.com/contactkeval/greeks/stats"
)

// DeltaCall returns the delta of a call, e^(-qt)·N(d1): the rate of change of
// the option value with respect to the underlying price.
func DeltaCall(s0, x, t, r, q, sigma float64) float64 {
	d1 := D1(s0, x, t, r, q, sigma)
	return deltaCallFromD1(t, q, d1)
}

// DeltaPut returns the delta of a put, e^(-qt)·(N(d1) - 1).
func DeltaPut(s0, x, t, r, q, sigma float64) float64 {
	d1 := D1(s0, x, t, r, q, sigma)
	return deltaPutFromD1(t, q, d1)
}

func deltaCallFromD1(t, q, d1 float64) float64 {
	return math.Exp(-(q * t)) * stats.Cnd(d1)
}

func deltaPutFromD1(t, q, d1 float64) float64 {
	return math.Exp(-(q * t)) * (stats.Cnd(d1) - 1.0)
}

// LambdaCall returns the lambda (omega) of a call: the percentage change of
// the option value per percentage change of the underlying.
//
// Parameters:
//   - v: current value of the option
//
// A zero v yields ±Inf or NaN.
func LambdaCall(s0, x, t, r, q, sigma, v float64) float64 {
	return lambda(s0, v, DeltaCall(s0, x, t, r, q, sigma))
}

// LambdaPut returns the lambda (omega) of a put. See LambdaCall.
func LambdaPut(s0, x, t, r, q, sigma, v float64) float64 {
	return lambda(s0, v, DeltaPut(s0, x, t, r, q, sigma))
}

func lambda(s0, v, delta float64) float64 {
	return delta * s0 / v
}

// RhoCall returns the rho of a call, scaled to a one percentage point move
// in the risk-free rate.
func RhoCall(s0, x, t, r, q, sigma float64) float64 {
	return rhoCallFromD2(x, t, r, D2(s0, x, t, r, q, sigma))
}

// RhoPut returns the rho of a put, scaled to a one percentage point move in
// the risk-free rate.
func RhoPut(s0, x, t, r, q, sigma float64) float64 {
	return rhoPutFromD2(x, t, r, D2(s0, x, t, r, q, sigma))
}

func rhoCallFromD2(x, t, r, d2 float64) float64 {
	return (1.0 / 100.0) * x * t * math.Exp(-r*t) * stats.Cnd(d2)
}

func rhoPutFromD2(x, t, r, d2 float64) float64 {
	return -(1.0 / 100.0) * x * t * math.Exp(-r*t) * stats.Cnd(-d2)
}

// ThetaCall returns the theta of a call per calendar day.
//
// Parameters:
//   - daysPerYear: number of days the annual theta is spread over (e.g. 365)
func ThetaCall(s0, x, t, r, q, sigma, daysPerYear float64) float64 {
	d1 := D1(s0, x, t, r, q, sigma)
	return thetaCallFromD1(s0, x, t, r, q, sigma, daysPerYear, d1)
}

// ThetaPut returns the theta of a put per calendar day.
//
// The put reuses the call's rate and dividend terms with d2 and d1 negated,
// then flips their signs: (arg1 + arg2(-d2) - arg3(-d1)) / daysPerYear.
func ThetaPut(s0, x, t, r, q, sigma, daysPerYear float64) float64 {
	d1 := D1(s0, x, t, r, q, sigma)
	return thetaPutFromD1(s0, x, t, r, q, sigma, daysPerYear, d1)
}

func thetaCallFromD1(s0, x, t, r, q, sigma, daysPerYear, d1 float64) float64 {
	arg1 := thetaArg1(s0, t, q, sigma, d1)
	d2 := D2FromD1(t, sigma, d1)
	arg2 := thetaArg2(x, t, r, d2)
	arg3 := thetaArg3(s0, t, q, d1)
	return (1.0 / daysPerYear) * (arg1 - arg2 + arg3)
}

func thetaPutFromD1(s0, x, t, r, q, sigma, daysPerYear, d1 float64) float64 {
	arg1 := thetaArg1(s0, t, q, sigma, d1)
	d2 := D2FromD1(t, sigma, d1)
	arg2 := thetaArg2(x, t, r, -d2)
	arg3 := thetaArg3(s0, t, q, -d1)
	return (1.0 / daysPerYear) * (arg1 + arg2 - arg3)
}

// thetaArg1 is the volatility decay term shared by calls and puts.
func thetaArg1(s0, t, q, sigma, d1 float64) float64 {
	return -(((s0 * sigma * math.Exp(-q*t)) / (2.0 * math.Sqrt(t))) *
		OneOverSqrtTwoPi() *
		density(d1))
}

func thetaArg2(x, t, r, d2 float64) float64 {
	return r * x * math.Exp(-r*t) * stats.Cnd(d2)
}

func thetaArg3(s0, t, q, d1 float64) float64 {
	return q * s0 * math.Exp(-q*t) * stats.Cnd(d1)
}

// Vega returns the vega of an option, scaled to a one volatility point move.
// Calls and puts share the same vega.
func Vega(s0, x, t, r, q, sigma float64) float64 {
	d1 := D1(s0, x, t, r, q, sigma)
	return VegaFromD1(s0, t, q, d1)
}

// VegaFromD1 is Vega for a caller that already holds d1.
func VegaFromD1(s0, t, q, d1 float64) float64 {
	mult1 := (1.0 / 100.0) * s0 * math.Exp(-(q * t)) * math.Sqrt(t)
	mult2 := OneOverSqrtTwoPi()
	mult3 := density(d1)
	return mult1 * mult2 * mult3
}
