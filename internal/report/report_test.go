package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/contactkeval/greeks/greeks"
	"github.com/contactkeval/greeks/internal/testutil"
)

const daysPerYear = 365.0

func referenceContract() greeks.Contract {
	return greeks.Contract{
		Spot:     64.68,
		Strike:   65.00,
		Expiry:   23.0 / daysPerYear,
		Rate:     0.0150,
		Dividend: 0.0210,
		Vol:      0.5051,
	}
}

func sampleRows() []Row {
	expired := referenceContract()
	expired.Expiry = 0

	return []Row{
		Build("atm-23d", referenceContract(), daysPerYear, 4),
		Build("expired", expired, daysPerYear, 4),
	}
}

func TestBuild(t *testing.T) {
	row := Build("atm-23d", referenceContract(), daysPerYear, 4)

	if row.Degenerate {
		t.Fatalf("reference contract flagged degenerate")
	}

	checks := []struct {
		name string
		got  string
		want string
	}{
		{"call", row.Call.Decimal.String(), "3.1482"},
		{"put", row.Put.Decimal.String(), "3.4068"},
		{"delta_put", row.DeltaPut.Decimal.String(), "-0.4908"},
		{"theta_call", row.ThetaCall.Decimal.String(), "-0.0703"},
		{"gamma", row.Gamma.Decimal.String(), "0.0243"},
	}
	for _, ck := range checks {
		if ck.got != ck.want {
			t.Errorf("%s = %s, want %s", ck.name, ck.got, ck.want)
		}
	}
}

func TestBuildDegenerate(t *testing.T) {
	c := referenceContract()
	c.Expiry = 0
	row := Build("expired", c, daysPerYear, 4)

	if !row.Degenerate {
		t.Fatalf("expired contract not flagged degenerate")
	}
	if row.Gamma.Valid || row.D1.Valid {
		t.Fatalf("expected null gamma and d1, got %v / %v", row.Gamma, row.D1)
	}
	// an expired put is worth its intrinsic value
	if got := row.Put.Decimal.String(); got != "0.32" {
		t.Fatalf("expired put = %s, want 0.32", got)
	}
}

func TestWriteJSON(t *testing.T) {
	dir := t.TempDir()
	if err := WriteJSON(sampleRows(), dir); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(dir, JSONFile))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	testutil.CompareBytesWithGolden(t, "greeks_json", b)
}

// Rows marshal to the same document WriteJSON puts on disk.
func TestRowsJSON(t *testing.T) {
	testutil.CompareWithGolden(t, "greeks_json", sampleRows())
}

func TestWriteCSV(t *testing.T) {
	dir := t.TempDir()
	if err := WriteCSV(sampleRows(), dir); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(dir, CSVFile))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	testutil.CompareBytesWithGolden(t, "greeks_csv", b)
}

func TestWriteToMissingDir(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does", "not", "exist")

	if err := WriteJSON(sampleRows(), missing); err == nil {
		t.Errorf("WriteJSON into missing dir: expected error")
	}
	if err := WriteCSV(sampleRows(), missing); err == nil {
		t.Errorf("WriteCSV into missing dir: expected error")
	}
}
