package report

import (
	"math"
	"path/filepath"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/contactkeval/greeks/concentrated"
	"github.com/contactkeval/greeks/internal/logger"
	"github.com/contactkeval/greeks/squeeth"
)

// SqueethRow is one evaluated squeeth position.
type SqueethRow struct {
	Name       string  `json:"name"`
	EthPrice   float64 `json:"eth_price"`
	NormFactor float64 `json:"norm_factor"`
	IV         float64 `json:"iv"`

	USD   decimal.NullDecimal `json:"usd"`
	Delta decimal.NullDecimal `json:"delta"`
	Gamma decimal.NullDecimal `json:"gamma"`
	Theta decimal.NullDecimal `json:"theta"`
	Vega  decimal.NullDecimal `json:"vega"`

	Degenerate bool `json:"degenerate,omitempty"`
}

var squeethHeaders = []string{
	"name", "eth_price", "norm_factor", "iv", "usd", "delta", "gamma", "theta", "vega", "degenerate",
}

// BuildSqueeth evaluates one squeeth position.
func BuildSqueeth(name string, ethPrice, normFactor, iv float64, places int32) SqueethRow {
	row := SqueethRow{
		Name:       name,
		EthPrice:   ethPrice,
		NormFactor: normFactor,
		IV:         iv,
	}

	row.USD = toDecimal(squeeth.ToUSD(ethPrice, normFactor, iv), places, &row.Degenerate)
	row.Delta = toDecimal(squeeth.Delta(ethPrice, normFactor, iv), places, &row.Degenerate)
	row.Gamma = toDecimal(squeeth.Gamma(normFactor, iv), places, &row.Degenerate)
	row.Theta = toDecimal(squeeth.Theta(ethPrice, normFactor, iv), places, &row.Degenerate)
	row.Vega = toDecimal(squeeth.Vega(ethPrice, normFactor, iv), places, &row.Degenerate)

	if row.Degenerate {
		logger.Debugf("squeeth %s produced non-finite values", name)
	}
	return row
}

func (r SqueethRow) record() []string {
	num := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

	return []string{
		r.Name, num(r.EthPrice), num(r.NormFactor), num(r.IV),
		decString(r.USD), decString(r.Delta), decString(r.Gamma), decString(r.Theta), decString(r.Vega),
		strconv.FormatBool(r.Degenerate),
	}
}

// WriteSqueeth writes rows to outdir/squeeth.json and outdir/squeeth.csv.
func WriteSqueeth(rows []SqueethRow, outdir string) error {
	if err := writeJSON(rows, len(rows), filepath.Join(outdir, SqueethJSONFile)); err != nil {
		return err
	}

	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, r.record())
	}
	return writeCSV(squeethHeaders, records, filepath.Join(outdir, SqueethCSVFile))
}

// PositionRow is one evaluated concentrated-liquidity position at a price.
// Inputs stay in single precision.
type PositionRow struct {
	Name     string  `json:"name"`
	Lower    float32 `json:"lower"`
	Upper    float32 `json:"upper"`
	ReserveA float32 `json:"reserve_a"`
	ReserveB float32 `json:"reserve_b"`
	Price    float32 `json:"price"`
	InRange  bool    `json:"in_range"`

	Liquidity decimal.NullDecimal `json:"liquidity"`
	Delta     decimal.NullDecimal `json:"delta"`
	Gamma     decimal.NullDecimal `json:"gamma"`

	Degenerate bool `json:"degenerate,omitempty"`
}

var positionHeaders = []string{
	"name", "lower", "upper", "reserve_a", "reserve_b", "price", "in_range",
	"liquidity", "delta", "gamma", "degenerate",
}

// BuildPosition evaluates pos at price. The Greeks are reported even when
// price lies outside the range; InRange tells the reader whether they apply.
func BuildPosition(name string, pos concentrated.Position, price float32, places int32) PositionRow {
	row := PositionRow{
		Name:     name,
		Lower:    pos.Lower,
		Upper:    pos.Upper,
		ReserveA: pos.ReserveA,
		ReserveB: pos.ReserveB,
		Price:    price,
		InRange:  pos.InRange(price),
	}

	row.Liquidity = toDecimal32(pos.Liquidity(), places, &row.Degenerate)
	row.Delta = toDecimal32(pos.Delta(price), places, &row.Degenerate)
	row.Gamma = toDecimal32(pos.Gamma(price), places, &row.Degenerate)

	if !row.InRange {
		logger.Debugf("position %s: price %v outside [%v, %v]", name, price, pos.Lower, pos.Upper)
	}
	return row
}

// toDecimal32 keeps the shortest single-precision representation of v.
func toDecimal32(v float32, places int32, degenerate *bool) decimal.NullDecimal {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		*degenerate = true
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: decimal.NewFromFloat32(v).Round(places), Valid: true}
}

func (r PositionRow) record() []string {
	num := func(v float32) string { return strconv.FormatFloat(float64(v), 'f', -1, 32) }

	return []string{
		r.Name, num(r.Lower), num(r.Upper), num(r.ReserveA), num(r.ReserveB), num(r.Price),
		strconv.FormatBool(r.InRange),
		decString(r.Liquidity), decString(r.Delta), decString(r.Gamma),
		strconv.FormatBool(r.Degenerate),
	}
}

// WritePositions writes rows to outdir/positions.json and outdir/positions.csv.
func WritePositions(rows []PositionRow, outdir string) error {
	if err := writeJSON(rows, len(rows), filepath.Join(outdir, PositionsJSONFile)); err != nil {
		return err
	}

	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, r.record())
	}
	return writeCSV(positionHeaders, records, filepath.Join(outdir, PositionsCSVFile))
}
