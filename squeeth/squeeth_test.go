package squeeth

import (
	"math"
	"testing"
)

const (
	ethPrice   = 3500.0
	normFactor = 0.8
	iv         = 0.9

	tolerance = 0.001
)

func TestReferenceValues(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"to_usd", ToUSD(ethPrice, normFactor, iv), 1018.807585},
		{"delta", Delta(ethPrice, normFactor, iv), 0.5821757629},
		{"gamma", Gamma(normFactor, iv), 0.0001663359322},
		{"theta", Theta(ethPrice, normFactor, iv), 825.2341438},
		{"vega", Vega(ethPrice, normFactor, iv), 87.92449021},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got-tt.want) > tolerance {
				t.Fatalf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

// Delta and gamma are the first and second derivatives of the price in ETH.
func TestDerivativesMatchPriceSlope(t *testing.T) {
	const h = 0.5
	up := ToUSD(ethPrice+h, normFactor, iv)
	down := ToUSD(ethPrice-h, normFactor, iv)
	mid := ToUSD(ethPrice, normFactor, iv)

	if slope := (up - down) / (2 * h); math.Abs(slope-Delta(ethPrice, normFactor, iv)) > 1e-9 {
		t.Errorf("delta = %v, price slope = %v", Delta(ethPrice, normFactor, iv), slope)
	}
	if curve := (up - 2*mid + down) / (h * h); math.Abs(curve-Gamma(normFactor, iv)) > 1e-6 {
		t.Errorf("gamma = %v, price curvature = %v", Gamma(normFactor, iv), curve)
	}

	const dv = 1e-5
	volSlope := (ToUSD(ethPrice, normFactor, iv+dv) - ToUSD(ethPrice, normFactor, iv-dv)) / (2 * dv)
	if math.Abs(volSlope-Vega(ethPrice, normFactor, iv)) > 1e-4 {
		t.Errorf("vega = %v, price slope = %v", Vega(ethPrice, normFactor, iv), volSlope)
	}
}

func TestZeroVolatility(t *testing.T) {
	want := normFactor * ethPrice * ethPrice / ScalingFactor
	if got := ToUSD(ethPrice, normFactor, 0); math.Abs(got-want) > 1e-9 {
		t.Errorf("ToUSD with zero iv = %v, want %v", got, want)
	}
	if got := Theta(ethPrice, normFactor, 0); got != 0 {
		t.Errorf("Theta with zero iv = %v, want 0", got)
	}
	if got := Vega(ethPrice, normFactor, 0); got != 0 {
		t.Errorf("Vega with zero iv = %v, want 0", got)
	}
}
