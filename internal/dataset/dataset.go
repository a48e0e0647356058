// Package dataset loads car samples from km,price CSV input.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/haskel/carprice/internal/regression"
)

const (
	headerMileage = "km"
	headerPrice   = "price"
)

// Row is the outcome of parsing one data line.
type Row struct {
	Line   int
	Sample regression.Sample
	Err    error
}

// OK reports whether the row parsed cleanly.
func (r Row) OK() bool {
	return r.Err == nil
}

// Load reads a header line followed by data rows. Any malformed line rejects
// the whole input; input without data rows yields ErrEmptyDataset.
func Load(r io.Reader) ([]regression.Sample, error) {
	rows, err := ReadRows(r)
	if err != nil {
		return nil, err
	}

	samples := make([]regression.Sample, 0, len(rows))
	for _, row := range rows {
		if !row.OK() {
			return nil, row.Err
		}
		samples = append(samples, row.Sample)
	}

	if len(samples) == 0 {
		return nil, regression.ErrEmptyDataset
	}
	return samples, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) ([]regression.Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	samples, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return samples, nil
}

// ReadRows validates the header and returns one Row per data line. Only
// header and read failures are returned as an error; row failures are
// reported in the Row itself.
func ReadRows(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, regression.ErrEmptyDataset
	}
	if err != nil {
		return nil, malformed(err)
	}
	// csv.Reader drops blank lines, so they show up as gaps in line numbers.
	prev, _ := reader.FieldPos(0)
	if prev != 1 {
		return nil, blankLine(1)
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, malformed(err)
		}

		line, _ := reader.FieldPos(0)
		if line > prev+1 {
			return nil, blankLine(prev + 1)
		}
		prev, _ = reader.FieldPos(len(record) - 1)
		sample, err := parseRow(line, record)
		rows = append(rows, Row{Line: line, Sample: sample, Err: err})
	}

	return rows, nil
}

// blankLine rejects an empty line before the header or between rows.
// Trailing blank lines never reach it.
func blankLine(line int) error {
	return &regression.MalformedInputError{Line: line, Reason: "unexpected blank line"}
}

func checkHeader(fields []string) error {
	if len(fields) != 2 {
		return &regression.MalformedInputError{
			Line:   1,
			Reason: fmt.Sprintf("header must have 2 columns, got %d", len(fields)),
		}
	}

	km := strings.TrimPrefix(strings.TrimSpace(fields[0]), "\ufeff")
	price := strings.TrimSpace(fields[1])
	if km != headerMileage || price != headerPrice {
		return &regression.MalformedInputError{
			Line:   1,
			Reason: fmt.Sprintf("header must be %q, got %q", headerMileage+","+headerPrice, strings.Join(fields, ",")),
		}
	}
	return nil
}

func parseRow(line int, fields []string) (regression.Sample, error) {
	if len(fields) != 2 {
		return regression.Sample{}, &regression.MalformedInputError{
			Line:   line,
			Reason: fmt.Sprintf("expected 2 fields, got %d", len(fields)),
		}
	}

	mileage, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil || math.IsNaN(mileage) || math.IsInf(mileage, 0) {
		return regression.Sample{}, &regression.MalformedInputError{
			Line:   line,
			Reason: fmt.Sprintf("invalid mileage %q", fields[0]),
		}
	}
	if mileage < 0 {
		return regression.Sample{}, &regression.MalformedInputError{
			Line:   line,
			Reason: fmt.Sprintf("mileage can't be negative, got %s", fields[0]),
		}
	}

	price, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return regression.Sample{}, &regression.MalformedInputError{
			Line:   line,
			Reason: fmt.Sprintf("invalid price %q", fields[1]),
		}
	}
	if price < 0 {
		return regression.Sample{}, &regression.MalformedInputError{
			Line:   line,
			Reason: fmt.Sprintf("price can't be negative, got %d", price),
		}
	}

	return regression.Sample{Mileage: mileage, Price: price}, nil
}

func malformed(err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return &regression.MalformedInputError{Line: parseErr.Line, Reason: parseErr.Err.Error()}
	}
	return &regression.MalformedInputError{Reason: err.Error()}
}
