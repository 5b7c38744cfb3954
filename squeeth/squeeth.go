// Package squeeth computes the price and Greeks of squeeth, a power
// perpetual whose value tracks the square of the ETH price. Funding paid over
// time is captured by the normalization factor.
package squeeth

import "math"

const (
	// FundingPeriod is the funding period as a year fraction.
	FundingPeriod = 17.5 / 365.0

	// ScalingFactor converts ETH² into the squeeth price unit.
	ScalingFactor = 10000.0

	// EulersNumber is kept as this literal rather than math.E so results stay
	// identical to published reference values.
	EulersNumber = 2.718281828459
)

// fundingMultiplier returns e^(iv²·FundingPeriod).
func fundingMultiplier(iv float64) float64 {
	return math.Pow(EulersNumber, math.Pow(iv, 2)*FundingPeriod)
}

// ToUSD returns the USD price of one squeeth.
//
// Parameters:
//   - ethPrice: ETH price in USD
//   - normFactor: current normalization factor
//   - iv: implied volatility
func ToUSD(ethPrice, normFactor, iv float64) float64 {
	return (normFactor * math.Pow(ethPrice, 2)) * fundingMultiplier(iv) / ScalingFactor
}

// Delta returns the USD change of one squeeth per 1 USD move in ETH.
func Delta(ethPrice, normFactor, iv float64) float64 {
	return 2.0 * normFactor * ethPrice * fundingMultiplier(iv) / ScalingFactor
}

// Gamma returns the change of Delta per 1 USD move in ETH. It does not
// depend on the ETH price.
func Gamma(normFactor, iv float64) float64 {
	return 2.0 * normFactor * fundingMultiplier(iv) / ScalingFactor
}

// Theta returns the annual funding cost of one squeeth in USD.
func Theta(ethPrice, normFactor, iv float64) float64 {
	return math.Pow(iv, 2) * ToUSD(ethPrice, normFactor, iv)
}

// Vega returns the USD change of one squeeth per unit change in iv.
func Vega(ethPrice, normFactor, iv float64) float64 {
	return 2.0 * iv * FundingPeriod * ToUSD(ethPrice, normFactor, iv)
}
