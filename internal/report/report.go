// Package report renders Greek sheets, squeeth positions and concentrated
// liquidity positions as JSON and CSV files.
//
// Values are held as decimals rounded to a fixed number of places so the
// files are stable across platforms. NaN and ±Inf cannot be represented as
// decimals; they are written as null (JSON) or an empty cell (CSV) and the
// row is marked degenerate.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/contactkeval/greeks/greeks"
	"github.com/contactkeval/greeks/internal/logger"
)

const (
	JSONFile = "greeks.json"
	CSVFile  = "greeks.csv"

	SqueethJSONFile = "squeeth.json"
	SqueethCSVFile  = "squeeth.csv"

	PositionsJSONFile = "positions.json"
	PositionsCSVFile  = "positions.csv"
)

// Row is one evaluated contract.
type Row struct {
	Name     string  `json:"name"`
	Spot     float64 `json:"spot"`
	Strike   float64 `json:"strike"`
	Expiry   float64 `json:"expiry"`
	Rate     float64 `json:"rate"`
	Dividend float64 `json:"dividend"`
	Vol      float64 `json:"vol"`

	D1         decimal.NullDecimal `json:"d1"`
	D2         decimal.NullDecimal `json:"d2"`
	Call       decimal.NullDecimal `json:"call"`
	Put        decimal.NullDecimal `json:"put"`
	DeltaCall  decimal.NullDecimal `json:"delta_call"`
	DeltaPut   decimal.NullDecimal `json:"delta_put"`
	LambdaCall decimal.NullDecimal `json:"lambda_call"`
	LambdaPut  decimal.NullDecimal `json:"lambda_put"`
	RhoCall    decimal.NullDecimal `json:"rho_call"`
	RhoPut     decimal.NullDecimal `json:"rho_put"`
	ThetaCall  decimal.NullDecimal `json:"theta_call"`
	ThetaPut   decimal.NullDecimal `json:"theta_put"`
	Vega       decimal.NullDecimal `json:"vega"`
	Gamma      decimal.NullDecimal `json:"gamma"`

	// Degenerate is set when at least one value is NaN or ±Inf.
	Degenerate bool `json:"degenerate,omitempty"`
}

var csvHeaders = []string{
	"name", "spot", "strike", "expiry", "rate", "dividend", "vol",
	"d1", "d2", "call", "put", "delta_call", "delta_put", "lambda_call", "lambda_put",
	"rho_call", "rho_put", "theta_call", "theta_put", "vega", "gamma", "degenerate",
}

// Build evaluates c and rounds every value to places decimal places.
// Lambdas use the contract's own theoretical call and put values.
func Build(name string, c greeks.Contract, daysPerYear float64, places int32) Row {
	s := c.Sheet(daysPerYear)

	row := Row{
		Name:     name,
		Spot:     c.Spot,
		Strike:   c.Strike,
		Expiry:   c.Expiry,
		Rate:     c.Rate,
		Dividend: c.Dividend,
		Vol:      c.Vol,
	}

	conv := func(v float64) decimal.NullDecimal {
		return toDecimal(v, places, &row.Degenerate)
	}

	row.D1 = conv(s.D1)
	row.D2 = conv(s.D2)
	row.Call = conv(s.Call)
	row.Put = conv(s.Put)
	row.DeltaCall = conv(s.DeltaCall)
	row.DeltaPut = conv(s.DeltaPut)
	row.LambdaCall = conv(c.LambdaCall(s.Call))
	row.LambdaPut = conv(c.LambdaPut(s.Put))
	row.RhoCall = conv(s.RhoCall)
	row.RhoPut = conv(s.RhoPut)
	row.ThetaCall = conv(s.ThetaCall)
	row.ThetaPut = conv(s.ThetaPut)
	row.Vega = conv(s.Vega)
	row.Gamma = conv(s.Gamma)

	if row.Degenerate {
		logger.Debugf("contract %s produced non-finite values (d1=%v)", name, s.D1)
	}
	logger.Tracef("contract %s sheet: %+v", name, s)

	return row
}

// WriteJSON writes rows to outdir/greeks.json.
func WriteJSON(rows []Row, outdir string) error {
	return writeJSON(rows, len(rows), filepath.Join(outdir, JSONFile))
}

// WriteCSV writes rows to outdir/greeks.csv with a fixed header.
func WriteCSV(rows []Row, outdir string) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, r.record())
	}
	return writeCSV(csvHeaders, records, filepath.Join(outdir, CSVFile))
}

// toDecimal rounds v to places. NaN and ±Inf give an invalid value and set
// *degenerate.
func toDecimal(v float64, places int32, degenerate *bool) decimal.NullDecimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		*degenerate = true
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: decimal.NewFromFloat(v).Round(places), Valid: true}
}

func writeJSON(v any, n int, path string) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal rows: %w", err)
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	logger.Infof("wrote %d rows to %s", n, path)
	return nil
}

func writeCSV(header []string, records [][]string, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("write row %s: %w", rec[0], err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}

	logger.Infof("wrote %d rows to %s", len(records), path)
	return nil
}

func decString(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}

func (r Row) record() []string {
	num := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	dec := decString

	return []string{
		r.Name, num(r.Spot), num(r.Strike), num(r.Expiry), num(r.Rate), num(r.Dividend), num(r.Vol),
		dec(r.D1), dec(r.D2), dec(r.Call), dec(r.Put),
		dec(r.DeltaCall), dec(r.DeltaPut), dec(r.LambdaCall), dec(r.LambdaPut),
		dec(r.RhoCall), dec(r.RhoPut), dec(r.ThetaCall), dec(r.ThetaPut),
		dec(r.Vega), dec(r.Gamma), strconv.FormatBool(r.Degenerate),
	}
}
