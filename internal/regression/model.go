package regression

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	keyTheta0 = "theta0"
	keyTheta1 = "theta1"
)

// Model is the affine price model: price = Slope * mileage + Bias.
// Slope is expressed in raw mileage units.
type Model struct {
	Bias  float64 `json:"theta0" yaml:"theta0"`
	Slope float64 `json:"theta1" yaml:"theta1"`
}

// Estimate evaluates the model without validating the mileage.
func (m Model) Estimate(mileage float64) float64 {
	return m.Slope*mileage + m.Bias
}

// Text renders the model as theta0=<bias> and theta1=<slope> lines. The
// shortest exact float form is used so ParseModel returns the same values.
func (m Model) Text() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s=%s\n", keyTheta0, strconv.FormatFloat(m.Bias, 'g', -1, 64))
	fmt.Fprintf(&buf, "%s=%s\n", keyTheta1, strconv.FormatFloat(m.Slope, 'g', -1, 64))
	return buf.Bytes()
}

// Save writes the text form to w.
func (m Model) Save(w io.Writer) error {
	_, err := w.Write(m.Text())
	return err
}

// Load replaces m with the model read from r.
func (m *Model) Load(r io.Reader) error {
	parsed, err := ParseModel(r)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseModel reads key=value lines. Keys are case-insensitive, blank lines
// and lines starting with '#' are skipped, and both coefficients are required.
func ParseModel(r io.Reader) (Model, error) {
	var (
		m                  Model
		haveBias, haveSlope bool
	)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		key, value, ok := strings.Cut(text, "=")
		if !ok {
			return Model{}, &MalformedInputError{Line: line, Reason: "expected key=value"}
		}

		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || !isFinite(v) {
			return Model{}, &MalformedInputError{Line: line, Reason: fmt.Sprintf("invalid number %q", value)}
		}

		switch strings.ToLower(strings.TrimSpace(key)) {
		case keyTheta0:
			m.Bias = v
			haveBias = true
		case keyTheta1:
			m.Slope = v
			haveSlope = true
		default:
			return Model{}, &MalformedInputError{Line: line, Reason: fmt.Sprintf("unknown key %q", key)}
		}
	}
	if err := scanner.Err(); err != nil {
		return Model{}, fmt.Errorf("failed to read model: %w", err)
	}

	if !haveBias || !haveSlope {
		return Model{}, &MalformedInputError{Reason: "both theta0 and theta1 are required"}
	}

	return m, nil
}
