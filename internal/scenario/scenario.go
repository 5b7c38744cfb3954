// Package scenario loads YAML scenario files describing option contracts,
// squeeth positions and concentrated-liquidity positions, and evaluates them
// into report rows.
//
// Settings are resolved in order: built-in defaults, the YAML file, then
// environment overrides (GREEKS_DAYS_PER_YEAR, GREEKS_DECIMAL_PLACES,
// GREEKS_LOG_LEVEL).
package scenario

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"

	"github.com/contactkeval/greeks/concentrated"
	"github.com/contactkeval/greeks/greeks"
	"github.com/contactkeval/greeks/internal/logger"
	"github.com/contactkeval/greeks/internal/report"
)

const (
	DefaultDaysPerYear   = 365.0
	DefaultDecimalPlaces = 4
	DefaultLogLevel      = "info"

	// MaxDecimalPlaces bounds decimal_places; float64 inputs carry no more
	// significant digits.
	MaxDecimalPlaces = 16
)

// ErrNoContracts is returned when a scenario lists no contracts, squeeth
// positions or liquidity positions.
var ErrNoContracts = errors.New("scenario has no contracts")

// Contract is one entry of the contracts list. Exactly one of Days and
// Expiry must be set; Days is converted with the scenario's days per year.
type Contract struct {
	Name     string   `yaml:"name"`
	Spot     float64  `yaml:"spot"`
	Strike   float64  `yaml:"strike"`
	Days     *float64 `yaml:"days"`
	Expiry   *float64 `yaml:"expiry"`
	Rate     float64  `yaml:"rate"`
	Dividend float64  `yaml:"dividend"`
	Vol      float64  `yaml:"vol"`
}

// Squeeth is one entry of the squeeth list.
type Squeeth struct {
	Name       string  `yaml:"name"`
	EthPrice   float64 `yaml:"eth_price"`
	NormFactor float64 `yaml:"norm_factor"`
	IV         float64 `yaml:"iv"`
}

// Position is one entry of the positions list: a liquidity range, its
// reserves and the price to evaluate at.
type Position struct {
	Name     string  `yaml:"name"`
	Lower    float32 `yaml:"lower"`
	Upper    float32 `yaml:"upper"`
	ReserveA float32 `yaml:"reserve_a"`
	ReserveB float32 `yaml:"reserve_b"`
	Price    float32 `yaml:"price"`
}

type Scenario struct {
	DaysPerYear   float64    `yaml:"days_per_year"`
	DecimalPlaces int        `yaml:"decimal_places"`
	LogLevel      string     `yaml:"log_level"`
	Contracts     []Contract `yaml:"contracts"`
	Squeeth       []Squeeth  `yaml:"squeeth"`
	Positions     []Position `yaml:"positions"`
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	s, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a scenario document, applies environment overrides and
// validates the result. Unknown keys are rejected.
func Parse(b []byte) (*Scenario, error) {
	s := &Scenario{
		DaysPerYear:   DefaultDaysPerYear,
		DecimalPlaces: DefaultDecimalPlaces,
		LogLevel:      DefaultLogLevel,
	}
	if err := yaml.UnmarshalStrict(b, s); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	days, err := getEnvFloat("GREEKS_DAYS_PER_YEAR", s.DaysPerYear)
	if err != nil {
		return nil, err
	}
	places, err := getEnvInt("GREEKS_DECIMAL_PLACES", s.DecimalPlaces)
	if err != nil {
		return nil, err
	}
	s.DaysPerYear = days
	s.DecimalPlaces = places
	s.LogLevel = getEnv("GREEKS_LOG_LEVEL", s.LogLevel)

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the settings and every contract. Errors name the
// offending contract.
func (s *Scenario) Validate() error {
	if s.DaysPerYear <= 0 {
		return fmt.Errorf("days_per_year must be positive, got %v", s.DaysPerYear)
	}
	if s.DecimalPlaces < 0 || s.DecimalPlaces > MaxDecimalPlaces {
		return fmt.Errorf("decimal_places must be between 0 and %d, got %d", MaxDecimalPlaces, s.DecimalPlaces)
	}
	if _, err := logger.ParseLevel(s.LogLevel); err != nil {
		return err
	}
	if len(s.Contracts)+len(s.Squeeth)+len(s.Positions) == 0 {
		return ErrNoContracts
	}

	seen := make(map[string]bool, len(s.Contracts))
	for i, c := range s.Contracts {
		label := c.label(i)
		if seen[label] {
			return fmt.Errorf("contract %s: duplicate name", label)
		}
		seen[label] = true

		switch {
		case c.Days != nil && c.Expiry != nil:
			return fmt.Errorf("contract %s: set either days or expiry, not both", label)
		case c.Days == nil && c.Expiry == nil:
			return fmt.Errorf("contract %s: days or expiry is required", label)
		}
		if err := c.Greeks(s.DaysPerYear).Validate(); err != nil {
			return fmt.Errorf("contract %s: %w", label, err)
		}
	}

	for i, sq := range s.Squeeth {
		label := entryLabel(sq.Name, i)
		if seen[label] {
			return fmt.Errorf("squeeth %s: duplicate name", label)
		}
		seen[label] = true

		switch {
		case sq.EthPrice <= 0:
			return fmt.Errorf("squeeth %s: eth_price must be positive, got %v", label, sq.EthPrice)
		case sq.NormFactor <= 0:
			return fmt.Errorf("squeeth %s: norm_factor must be positive, got %v", label, sq.NormFactor)
		case sq.IV < 0:
			return fmt.Errorf("squeeth %s: iv must not be negative, got %v", label, sq.IV)
		}
	}

	for i, p := range s.Positions {
		label := entryLabel(p.Name, i)
		if seen[label] {
			return fmt.Errorf("position %s: duplicate name", label)
		}
		seen[label] = true

		switch {
		case p.Lower <= 0 || p.Upper <= p.Lower:
			return fmt.Errorf("position %s: need 0 < lower < upper, got [%v, %v]", label, p.Lower, p.Upper)
		case p.ReserveA < 0 || p.ReserveB < 0:
			return fmt.Errorf("position %s: reserves must not be negative", label)
		case p.Price <= 0:
			return fmt.Errorf("position %s: price must be positive, got %v", label, p.Price)
		}
	}
	return nil
}

// Greeks converts the entry into the pricing parameter bundle.
func (c Contract) Greeks(daysPerYear float64) greeks.Contract {
	var t float64
	switch {
	case c.Expiry != nil:
		t = *c.Expiry
	case c.Days != nil:
		t = *c.Days / daysPerYear
	}

	return greeks.Contract{
		Spot:     c.Spot,
		Strike:   c.Strike,
		Expiry:   t,
		Rate:     c.Rate,
		Dividend: c.Dividend,
		Vol:      c.Vol,
	}
}

// Position converts the entry into a liquidity position.
func (p Position) Position() concentrated.Position {
	return concentrated.Position{
		Lower:    p.Lower,
		Upper:    p.Upper,
		ReserveA: p.ReserveA,
		ReserveB: p.ReserveB,
	}
}

func (c Contract) label(i int) string {
	return entryLabel(c.Name, i)
}

func entryLabel(name string, i int) string {
	if name != "" {
		return name
	}
	return fmt.Sprintf("#%d", i+1)
}

// Evaluate prices every contract, in file order.
func (s *Scenario) Evaluate() []report.Row {
	rows := make([]report.Row, 0, len(s.Contracts))
	degenerate := 0

	for i, c := range s.Contracts {
		gc := c.Greeks(s.DaysPerYear)
		logger.Debugf("evaluating %s: s0=%v x=%v t=%v r=%v q=%v sigma=%v",
			c.label(i), gc.Spot, gc.Strike, gc.Expiry, gc.Rate, gc.Dividend, gc.Vol)

		row := report.Build(c.label(i), gc, s.DaysPerYear, int32(s.DecimalPlaces))
		if row.Degenerate {
			degenerate++
		}
		rows = append(rows, row)
	}

	if degenerate > 0 {
		logger.Infof("%d of %d contracts have non-finite values", degenerate, len(rows))
	}
	return rows
}

// EvaluateSqueeth prices every squeeth entry, in file order.
func (s *Scenario) EvaluateSqueeth() []report.SqueethRow {
	rows := make([]report.SqueethRow, 0, len(s.Squeeth))
	for i, sq := range s.Squeeth {
		name := entryLabel(sq.Name, i)
		logger.Debugf("evaluating squeeth %s: eth=%v norm=%v iv=%v", name, sq.EthPrice, sq.NormFactor, sq.IV)
		rows = append(rows, report.BuildSqueeth(name, sq.EthPrice, sq.NormFactor, sq.IV, int32(s.DecimalPlaces)))
	}
	return rows
}

// EvaluatePositions computes every liquidity position at its price, in
// file order.
func (s *Scenario) EvaluatePositions() []report.PositionRow {
	rows := make([]report.PositionRow, 0, len(s.Positions))
	for i, p := range s.Positions {
		name := entryLabel(p.Name, i)
		logger.Debugf("evaluating position %s: [%v, %v] at %v", name, p.Lower, p.Upper, p.Price)
		rows = append(rows, report.BuildPosition(name, p.Position(), p.Price, int32(s.DecimalPlaces)))
	}
	return rows
}

// Run loads the scenario at path, evaluates it and writes the reports into
// outdir, creating it if needed. greeks.json and greeks.csv are always
// written; the squeeth and positions files only when the scenario has such
// entries.
func Run(path, outdir string) error {
	s, err := Load(path)
	if err != nil {
		return err
	}

	level, _ := logger.ParseLevel(s.LogLevel) // checked by Validate
	logger.SetVerbosity(level)
	logger.Infof("loaded %d contracts, %d squeeth and %d positions from %s",
		len(s.Contracts), len(s.Squeeth), len(s.Positions), path)

	rows := s.Evaluate()

	if err := os.MkdirAll(outdir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := report.WriteJSON(rows, outdir); err != nil {
		return err
	}
	if err := report.WriteCSV(rows, outdir); err != nil {
		return err
	}

	if len(s.Squeeth) > 0 {
		if err := report.WriteSqueeth(s.EvaluateSqueeth(), outdir); err != nil {
			return err
		}
	}
	if len(s.Positions) > 0 {
		if err := report.WritePositions(s.EvaluatePositions(), outdir); err != nil {
			return err
		}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
