// Package chart draws the raw samples and the fitted line in the terminal.
package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/haskel/carprice/internal/regression"
)

const (
	MinWidth  = 20
	MinHeight = 8

	gutter = 10
)

// Plot is everything needed to draw one chart.
type Plot struct {
	Title   string
	Samples []regression.Sample
	Model   regression.Model
	Width   int
	Height  int
}

type bounds struct {
	xMin, xMax float64
	yMin, yMax float64
}

func computeBounds(p Plot) bounds {
	b := bounds{
		xMin: math.Inf(1), xMax: math.Inf(-1),
		yMin: math.Inf(1), yMax: math.Inf(-1),
	}

	for _, s := range p.Samples {
		b.xMin = math.Min(b.xMin, s.Mileage)
		b.xMax = math.Max(b.xMax, s.Mileage)
		b.yMin = math.Min(b.yMin, float64(s.Price))
		b.yMax = math.Max(b.yMax, float64(s.Price))
	}
	if len(p.Samples) == 0 {
		b.xMin, b.xMax = 0, 1
		b.yMin, b.yMax = p.Model.Bias, p.Model.Bias
	}
	if b.xMax == b.xMin {
		b.xMax = b.xMin + 1
	}

	for _, x := range []float64{b.xMin, b.xMax} {
		y := p.Model.Estimate(x)
		b.yMin = math.Min(b.yMin, y)
		b.yMax = math.Max(b.yMax, y)
	}
	if b.yMax == b.yMin {
		b.yMax = b.yMin + 1
	}

	return b
}

// Render draws the scatter of samples with the model line over it.
func Render(p Plot) string {
	w := max(p.Width, MinWidth)
	h := max(p.Height, MinHeight)
	b := computeBounds(p)

	col := func(x float64) int {
		return int(math.Round((x - b.xMin) / (b.xMax - b.xMin) * float64(w-1)))
	}
	row := func(y float64) int {
		return h - 1 - int(math.Round((y-b.yMin)/(b.yMax-b.yMin)*float64(h-1)))
	}

	grid := make([][]rune, h)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", w))
	}

	for c := 0; c < w; c++ {
		x := b.xMin + float64(c)/float64(w-1)*(b.xMax-b.xMin)
		r := row(p.Model.Estimate(x))
		if r >= 0 && r < h {
			grid[r][c] = lineGlyph
		}
	}

	for _, s := range p.Samples {
		grid[row(float64(s.Price))][col(s.Mileage)] = pointGlyph
	}

	var sb strings.Builder
	for r, cells := range grid {
		label := ""
		switch r {
		case 0:
			label = fmt.Sprintf("%.0f", b.yMax)
		case h - 1:
			label = fmt.Sprintf("%.0f", b.yMin)
		}
		sb.WriteString(labelStyle.Render(fmt.Sprintf("%*s ", gutter-1, label)))
		sb.WriteString(axisStyle.Render("│"))
		for _, ch := range cells {
			switch ch {
			case pointGlyph:
				sb.WriteString(pointStyle.Render(string(ch)))
			case lineGlyph:
				sb.WriteString(lineStyle.Render(string(ch)))
			default:
				sb.WriteRune(ch)
			}
		}
		sb.WriteByte('\n')
	}

	sb.WriteString(strings.Repeat(" ", gutter))
	sb.WriteString(axisStyle.Render("└" + strings.Repeat("─", w)))
	sb.WriteByte('\n')

	left := fmt.Sprintf("%.0f", b.xMin)
	right := fmt.Sprintf("%.0f", b.xMax)
	pad := max(w+1-len(left)-len(right), 1)
	sb.WriteString(strings.Repeat(" ", gutter))
	sb.WriteString(labelStyle.Render(left + strings.Repeat(" ", pad) + right))

	title := p.Title
	if title == "" {
		title = "Training Result"
	}

	legend := labelStyle.Render(fmt.Sprintf("%s car   %s price = %g * km + %g   (x: mileage, y: price)",
		pointStyle.Render(string(pointGlyph)),
		lineStyle.Render(string(lineGlyph)),
		p.Model.Slope, p.Model.Bias,
	))

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		sb.String(),
		legend,
	)
}
