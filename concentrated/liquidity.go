// Package concentrated computes the Greeks of a bounded (Uniswap v3 style)
// liquidity position.
//
// All values are float32 to follow the single-precision conventions used
// when comparing against on-chain pool math.
//
// A position only carries delta and gamma while the price is inside
// [Lower, Upper]. The formulas do not check the range; use Position.InRange.
package concentrated

import "math"

func sqrt32(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}

// VirtualLiquidity solves the bounded liquidity reserve equation
//
//	(rA + L/sqrt(pB)) · (rB + L·sqrt(pA)) = L²
//
// for L, written as a·L² + b·L + c = 0.
//
// Parameters:
//   - pA: lower price of the range
//   - pB: upper price of the range
//   - rA: reserves of the base token (ETH in an ETH/USDC pool)
//   - rB: reserves of the quote token
//
// The root (-b - sqrt(d)) / 2a is returned when positive, otherwise
// (-b + sqrt(d)) / 2a. A negative discriminant has no real root and yields
// NaN; inputs that match no valid position may also return a non-positive
// root.
func VirtualLiquidity(pA, pB, rA, rB float32) float32 {
	a := (sqrt32(pA) / sqrt32(pB)) - 1
	b := (rB / sqrt32(pB)) + (rA * sqrt32(pA))
	c := rA * rB

	d := b*b - (4 * a * c)

	solution1 := (-b - sqrt32(d)) / (2 * a)
	solution2 := (-b + sqrt32(d)) / (2 * a)

	if solution1 > 0 {
		return solution1
	}
	return solution2
}

// Delta returns the delta of a position with virtual liquidity l at price p
// and upper range price pB: l·(1/sqrt(p) - 1/sqrt(pB)).
func Delta(l, p, pB float32) float32 {
	return l * (1/sqrt32(p) - 1/sqrt32(pB))
}

// Gamma returns the gamma of a position with virtual liquidity l at price p:
// 0.5·l·p^(-1.5).
func Gamma(l, p float32) float32 {
	return 0.5 * l * float32(math.Pow(float64(p), -1.5))
}
