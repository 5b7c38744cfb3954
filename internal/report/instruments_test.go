package report

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/contactkeval/greeks/concentrated"
)

func TestBuildSqueeth(t *testing.T) {
	row := BuildSqueeth("eth-3500", 3500, 0.8, 0.9, 4)

	if row.Degenerate {
		t.Fatalf("reference position flagged degenerate")
	}
	checks := []struct {
		name string
		got  string
		want string
	}{
		{"usd", row.USD.Decimal.String(), "1018.8076"},
		{"delta", row.Delta.Decimal.String(), "0.5822"},
		{"theta", row.Theta.Decimal.String(), "825.2341"},
		{"vega", row.Vega.Decimal.String(), "87.9245"},
	}
	for _, ck := range checks {
		if ck.got != ck.want {
			t.Errorf("%s = %s, want %s", ck.name, ck.got, ck.want)
		}
	}

	// gamma needs more places than the rest
	fine := BuildSqueeth("eth-3500", 3500, 0.8, 0.9, 8)
	if got := fine.Gamma.Decimal.String(); got != "0.00016634" {
		t.Errorf("gamma = %s, want 0.00016634", got)
	}
}

func TestBuildSqueethDegenerate(t *testing.T) {
	row := BuildSqueeth("inf", math.Inf(1), 0.8, 0.9, 4)
	if !row.Degenerate || row.USD.Valid {
		t.Fatalf("expected degenerate row with null usd, got %+v", row)
	}
	// gamma does not depend on the ETH price
	if !row.Gamma.Valid {
		t.Fatalf("gamma should stay finite")
	}
}

func referencePosition() concentrated.Position {
	return concentrated.Position{
		Lower:    3747,
		Upper:    5024,
		ReserveA: 1.448,
		ReserveB: 6779,
	}
}

func TestBuildPosition(t *testing.T) {
	row := BuildPosition("eth-usdc", referencePosition(), 4360.61, 7)

	if !row.InRange || row.Degenerate {
		t.Fatalf("unexpected flags: %+v", row)
	}
	checks := []struct {
		name string
		got  float64
		want float64
		tol  float64
	}{
		{"liquidity", row.Liquidity.Decimal.InexactFloat64(), 1402.40, 0.1},
		{"delta", row.Delta.Decimal.InexactFloat64(), 1.4518, 1e-3},
		{"gamma", row.Gamma.Decimal.InexactFloat64(), 0.0024351, 1e-5},
	}
	for _, ck := range checks {
		if math.Abs(ck.got-ck.want) > ck.tol {
			t.Errorf("%s = %v, want %v", ck.name, ck.got, ck.want)
		}
	}
}

func TestBuildPositionOutOfRange(t *testing.T) {
	row := BuildPosition("above", referencePosition(), 6000, 4)
	if row.InRange {
		t.Fatalf("price 6000 reported in range")
	}
	// the formula is still evaluated; above the range it goes negative
	if !row.Delta.Valid || !row.Delta.Decimal.IsNegative() {
		t.Fatalf("delta above range = %v, want negative", row.Delta)
	}
}

func TestBuildPositionDegenerate(t *testing.T) {
	pos := concentrated.Position{Lower: 1, Upper: 4, ReserveA: -1, ReserveB: 2}
	row := BuildPosition("no-root", pos, 2, 4)
	if !row.Degenerate || row.Liquidity.Valid {
		t.Fatalf("expected degenerate row with null liquidity, got %+v", row)
	}
}

func TestWriteSqueethAndPositions(t *testing.T) {
	dir := t.TempDir()

	if err := WriteSqueeth([]SqueethRow{BuildSqueeth("eth-3500", 3500, 0.8, 0.9, 4)}, dir); err != nil {
		t.Fatalf("WriteSqueeth: %v", err)
	}
	if err := WritePositions([]PositionRow{BuildPosition("eth-usdc", referencePosition(), 4360.61, 4)}, dir); err != nil {
		t.Fatalf("WritePositions: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(dir, SqueethJSONFile))
	if err != nil {
		t.Fatalf("read squeeth json: %v", err)
	}
	var sq []SqueethRow
	if err := json.Unmarshal(b, &sq); err != nil {
		t.Fatalf("decode squeeth json: %v", err)
	}
	if len(sq) != 1 || sq[0].USD.Decimal.String() != "1018.8076" {
		t.Fatalf("unexpected squeeth rows: %+v", sq)
	}

	csv, err := os.ReadFile(filepath.Join(dir, PositionsCSVFile))
	if err != nil {
		t.Fatalf("read positions csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(csv)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got:\n%s", csv)
	}
	if !strings.HasPrefix(lines[1], "eth-usdc,3747,5024,1.448,6779,4360.61,true,") {
		t.Fatalf("unexpected position record: %s", lines[1])
	}
}
