package concentrated

// Position is a liquidity position over the price range [Lower, Upper].
type Position struct {
	Lower    float32
	Upper    float32
	ReserveA float32 // base token
	ReserveB float32 // quote token
}

// Liquidity returns the virtual liquidity of the position.
func (p Position) Liquidity() float32 {
	return VirtualLiquidity(p.Lower, p.Upper, p.ReserveA, p.ReserveB)
}

// InRange reports whether price lies inside the position's range. Outside the
// range the position holds a single token and has no gamma; Delta and Gamma
// do not apply this check themselves.
func (p Position) InRange(price float32) bool {
	return p.Lower <= price && price <= p.Upper
}

// Delta returns the position delta at price.
func (p Position) Delta(price float32) float32 {
	return Delta(p.Liquidity(), price, p.Upper)
}

// Gamma returns the position gamma at price.
func (p Position) Gamma(price float32) float32 {
	return Gamma(p.Liquidity(), price)
}
