package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/haskel/carprice/internal/regression"
)

func TestLoad(t *testing.T) {
	input := "km,price\n240000,3650\n139800,3800\n22899.5,7990\n"

	samples, err := Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []regression.Sample{
		{Mileage: 240000, Price: 3650},
		{Mileage: 139800, Price: 3800},
		{Mileage: 22899.5, Price: 7990},
	}
	if len(samples) != len(want) {
		t.Fatalf("expected %d samples, got %d", len(want), len(samples))
	}
	for i := range want {
		if samples[i] != want[i] {
			t.Errorf("sample %d: expected %+v, got %+v", i, want[i], samples[i])
		}
	}
}

func TestLoad_HeaderOnly(t *testing.T) {
	_, err := Load(strings.NewReader("km,price\n"))
	if !errors.Is(err, regression.ErrEmptyDataset) {
		t.Errorf("expected ErrEmptyDataset, got %v", err)
	}

	_, err = Load(strings.NewReader("km,price"))
	if !errors.Is(err, regression.ErrEmptyDataset) {
		t.Errorf("expected ErrEmptyDataset without trailing newline, got %v", err)
	}
}

func TestLoad_EmptyInput(t *testing.T) {
	_, err := Load(strings.NewReader(""))
	if !errors.Is(err, regression.ErrEmptyDataset) {
		t.Errorf("expected ErrEmptyDataset, got %v", err)
	}
}

func TestLoad_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
	}{
		{"wrong header", "mileage,price\n1,2\n", 1},
		{"swapped header", "price,km\n1,2\n", 1},
		{"single column header", "km\n1\n", 1},
		{"missing field", "km,price\n1,2\n3\n", 3},
		{"extra field", "km,price\n1,2,3\n", 2},
		{"blank line between rows", "km,price\n1,2\n\n3,4\n", 3},
		{"blank line after header", "km,price\n\n1,2\n", 2},
		{"blank line before header", "\nkm,price\n1,2\n", 1},
		{"bad mileage", "km,price\nabc,2\n", 2},
		{"bad price", "km,price\n1,2.5\n", 2},
		{"negative mileage", "km,price\n-1,2\n", 2},
		{"negative price", "km,price\n1,-2\n", 2},
		{"infinite mileage", "km,price\nInf,2\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			samples, err := Load(strings.NewReader(tt.input))
			if samples != nil {
				t.Errorf("expected no samples, got %v", samples)
			}
			if !errors.Is(err, regression.ErrMalformedInput) {
				t.Fatalf("expected ErrMalformedInput, got %v", err)
			}

			var malformed *regression.MalformedInputError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected *MalformedInputError, got %T", err)
			}
			if malformed.Line != tt.line {
				t.Errorf("expected line %d, got %d", tt.line, malformed.Line)
			}
		})
	}
}

func TestLoad_TrailingBlankLines(t *testing.T) {
	samples, err := Load(strings.NewReader("km,price\r\n1,2\r\n3,4\r\n\r\n\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(samples) != 2 {
		t.Errorf("expected 2 samples, got %+v", samples)
	}
}

func TestLoad_ByteOrderMarkAndSpaces(t *testing.T) {
	input := "\ufeffkm, price\n 100, 200\n"

	samples, err := Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(samples) != 1 || samples[0] != (regression.Sample{Mileage: 100, Price: 200}) {
		t.Errorf("unexpected samples %+v", samples)
	}
}

func TestReadRows_ReportsEachRow(t *testing.T) {
	rows, err := ReadRows(strings.NewReader("km,price\n1,2\nx,3\n4,5\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if !rows[0].OK() || rows[1].OK() || !rows[2].OK() {
		t.Errorf("unexpected row status: %v %v %v", rows[0].Err, rows[1].Err, rows[2].Err)
	}
	if rows[1].Line != 3 {
		t.Errorf("expected bad row on line 3, got %d", rows[1].Line)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte("km,price\n0,10000\n100000,5000\n"), 0644); err != nil {
		t.Fatalf("failed to write dataset: %v", err)
	}

	samples, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(samples) != 2 {
		t.Errorf("expected 2 samples, got %d", len(samples))
	}
}

func TestLoadFile_NotFound(t *testing.T) {
	_, err := LoadFile("/nonexistent/path/data.csv")
	if err == nil {
		t.Error("expected error for missing file")
	}
}
