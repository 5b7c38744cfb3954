package greeks

import (
	"fmt"
	"math"
)

// Contract bundles the market parameters of a European option. It is a plain
// value; methods delegate to the package functions and return bit-identical
// results.
type Contract struct {
	Spot     float64 // s0
	Strike   float64 // x
	Expiry   float64 // t, year fraction
	Rate     float64 // r
	Dividend float64 // q
	Vol      float64 // sigma
}

// Sheet holds the price and every Greek of one contract, all derived from a
// single d1.
type Sheet struct {
	D1        float64
	D2        float64
	Call      float64
	Put       float64
	DeltaCall float64
	DeltaPut  float64
	RhoCall   float64
	RhoPut    float64
	ThetaCall float64
	ThetaPut  float64
	Vega      float64
	Gamma     float64
}

// Validate reports inputs outside the Black-Scholes domain. The pricing
// functions never call it.
func (c Contract) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"spot", c.Spot},
		{"strike", c.Strike},
		{"expiry", c.Expiry},
		{"rate", c.Rate},
		{"dividend", c.Dividend},
		{"vol", c.Vol},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%s is not finite: %v", f.name, f.v)
		}
	}

	switch {
	case c.Spot <= 0:
		return fmt.Errorf("spot must be positive, got %v", c.Spot)
	case c.Strike <= 0:
		return fmt.Errorf("strike must be positive, got %v", c.Strike)
	case c.Expiry <= 0:
		return fmt.Errorf("expiry must be positive, got %v", c.Expiry)
	case c.Vol <= 0:
		return fmt.Errorf("vol must be positive, got %v", c.Vol)
	}
	return nil
}

// D1 returns the d1 term of the contract.
func (c Contract) D1() float64 {
	return D1(c.Spot, c.Strike, c.Expiry, c.Rate, c.Dividend, c.Vol)
}

// D2 returns the d2 term of the contract.
func (c Contract) D2() float64 {
	return D2(c.Spot, c.Strike, c.Expiry, c.Rate, c.Dividend, c.Vol)
}

// Call returns the EuroCall price of the contract.
func (c Contract) Call() float64 {
	return EuroCall(c.Spot, c.Strike, c.Expiry, c.Rate, c.Dividend, c.Vol)
}

// Put returns the EuroPut price of the contract.
func (c Contract) Put() float64 {
	return EuroPut(c.Spot, c.Strike, c.Expiry, c.Rate, c.Dividend, c.Vol)
}

// DeltaCall returns the delta of the call.
func (c Contract) DeltaCall() float64 {
	return DeltaCall(c.Spot, c.Strike, c.Expiry, c.Rate, c.Dividend, c.Vol)
}

// DeltaPut returns the delta of the put.
func (c Contract) DeltaPut() float64 {
	return DeltaPut(c.Spot, c.Strike, c.Expiry, c.Rate, c.Dividend, c.Vol)
}

// LambdaCall takes v, the current value of the call.
func (c Contract) LambdaCall(v float64) float64 {
	return LambdaCall(c.Spot, c.Strike, c.Expiry, c.Rate, c.Dividend, c.Vol, v)
}

// LambdaPut takes v, the current value of the put.
func (c Contract) LambdaPut(v float64) float64 {
	return LambdaPut(c.Spot, c.Strike, c.Expiry, c.Rate, c.Dividend, c.Vol, v)
}

// RhoCall returns the rho of the call per percentage point.
func (c Contract) RhoCall() float64 {
	return RhoCall(c.Spot, c.Strike, c.Expiry, c.Rate, c.Dividend, c.Vol)
}

// RhoPut returns the rho of the put per percentage point.
func (c Contract) RhoPut() float64 {
	return RhoPut(c.Spot, c.Strike, c.Expiry, c.Rate, c.Dividend, c.Vol)
}

// ThetaCall returns the daily theta of the call.
func (c Contract) ThetaCall(daysPerYear float64) float64 {
	return ThetaCall(c.Spot, c.Strike, c.Expiry, c.Rate, c.Dividend, c.Vol, daysPerYear)
}

// ThetaPut returns the daily theta of the put.
func (c Contract) ThetaPut(daysPerYear float64) float64 {
	return ThetaPut(c.Spot, c.Strike, c.Expiry, c.Rate, c.Dividend, c.Vol, daysPerYear)
}

// Vega returns the vega of the contract per volatility point.
func (c Contract) Vega() float64 {
	return Vega(c.Spot, c.Strike, c.Expiry, c.Rate, c.Dividend, c.Vol)
}

// Gamma returns the gamma of the contract.
func (c Contract) Gamma() float64 {
	return Gamma(c.Spot, c.Strike, c.Expiry, c.Rate, c.Dividend, c.Vol)
}

// Sheet evaluates the full set of prices and Greeks from one d1. Each field
// equals the corresponding package function for the same contract.
func (c Contract) Sheet(daysPerYear float64) Sheet {
	s0, x, t, r, q, sigma := c.Spot, c.Strike, c.Expiry, c.Rate, c.Dividend, c.Vol

	d1 := D1(s0, x, t, r, q, sigma)
	d2 := D2FromD1(t, sigma, d1)

	return Sheet{
		D1:        d1,
		D2:        d2,
		Call:      callFromD1(s0, x, t, r, sigma, d1),
		Put:       putFromD1(s0, x, t, r, sigma, d1),
		DeltaCall: deltaCallFromD1(t, q, d1),
		DeltaPut:  deltaPutFromD1(t, q, d1),
		RhoCall:   rhoCallFromD2(x, t, r, d2),
		RhoPut:    rhoPutFromD2(x, t, r, d2),
		ThetaCall: thetaCallFromD1(s0, x, t, r, q, sigma, daysPerYear, d1),
		ThetaPut:  thetaPutFromD1(s0, x, t, r, q, sigma, daysPerYear, d1),
		Vega:      VegaFromD1(s0, t, q, d1),
		Gamma:     GammaFromD1(s0, t, q, sigma, d1),
	}
}
