// Package plot regenerates the entropy-by-step chart from a summary table:
// one error-bar series per model, lower bars clipped so they never imply
// negative entropy.
package plot

import (
	"fmt"
	"image/color"
	"sort"

	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"oqa/internal/results"
	"oqa/internal/spec"
)

// Default legend order and colors, matching the released dataset bundles.
var defaultOrder = []string{
	"GPT 5",
	"Gemini 2.5 Pro",
	"Claude Sonnet 4.5",
	"Grok 4",
	"Oracle (Optimal)",
}

var defaultColors = map[string]color.RGBA{
	"GPT 5":             {R: 0x00, G: 0x31, B: 0x53, A: 0xff}, // Prussian blue
	"Gemini 2.5 Pro":    {R: 0xff, G: 0xa5, B: 0x00, A: 0xff},
	"Claude Sonnet 4.5": {R: 0x00, G: 0x80, B: 0x00, A: 0xff},
	"Grok 4":            {R: 0xff, G: 0x00, B: 0x00, A: 0xff},
	"Oracle (Optimal)":  {R: 0xee, G: 0x82, B: 0xee, A: 0xff}, // violet
}

// fallbackPalette colors models missing from both config and defaults.
var fallbackPalette = []color.RGBA{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
	{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
}

// RenderFile renders the summary rows into a PNG chart at path.
func RenderFile(rows []results.SummaryRow, cfg spec.PlotConfig, path string) error {
	if len(rows) == 0 {
		return fmt.Errorf("render plot: no summary rows")
	}

	p := gplot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = "Step"
	p.Y.Label.Text = "Entropy = log2(# of Remaining Options)"
	p.Add(plotter.NewGrid())

	byModel := groupByModel(rows)
	for i, model := range legendOrder(byModel, cfg.Order) {
		series := byModel[model]
		data := seriesPoints(series)
		line, scatter, err := plotter.NewLinePoints(data.XYs)
		if err != nil {
			return fmt.Errorf("build series %s: %w", model, err)
		}
		bars, err := plotter.NewYErrorBars(data)
		if err != nil {
			return fmt.Errorf("build error bars %s: %w", model, err)
		}
		c := seriesColor(model, i, cfg.Colors)
		line.Color = c
		scatter.GlyphStyle.Color = c
		bars.Color = c
		p.Add(line, scatter, bars)
		p.Legend.Add(model, line, scatter)
	}
	p.Legend.Top = true

	if err := p.Save(9*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}

// errorPoints carries per-point asymmetric error magnitudes.
type errorPoints struct {
	plotter.XYs
	low  []float64
	high []float64
}

// YError returns the downward and upward error magnitudes for point i.
func (e errorPoints) YError(i int) (float64, float64) {
	return e.low[i], e.high[i]
}

func seriesPoints(series []results.SummaryRow) errorPoints {
	sort.Slice(series, func(i, j int) bool { return series[i].Step < series[j].Step })
	points := errorPoints{
		XYs:  make(plotter.XYs, len(series)),
		low:  make([]float64, len(series)),
		high: make([]float64, len(series)),
	}
	for i, row := range series {
		points.XYs[i].X = float64(row.Step)
		points.XYs[i].Y = row.Mean
		points.low[i] = row.Mean - row.Lo
		points.high[i] = row.Hi - row.Mean
	}
	return points
}

func groupByModel(rows []results.SummaryRow) map[string][]results.SummaryRow {
	byModel := map[string][]results.SummaryRow{}
	for _, row := range rows {
		byModel[row.Model] = append(byModel[row.Model], row)
	}
	return byModel
}

// legendOrder lists present models in the configured order, then any
// remaining models sorted by name.
func legendOrder(byModel map[string][]results.SummaryRow, order []string) []string {
	if len(order) == 0 {
		order = defaultOrder
	}
	ordered := make([]string, 0, len(byModel))
	listed := map[string]bool{}
	for _, model := range order {
		if _, ok := byModel[model]; ok {
			ordered = append(ordered, model)
			listed[model] = true
		}
	}
	rest := make([]string, 0, len(byModel))
	for model := range byModel {
		if !listed[model] {
			rest = append(rest, model)
		}
	}
	sort.Strings(rest)
	return append(ordered, rest...)
}

func seriesColor(model string, index int, colors map[string]string) color.RGBA {
	if hex, ok := colors[model]; ok {
		if c, err := parseHexColor(hex); err == nil {
			return c
		}
	}
	if c, ok := defaultColors[model]; ok {
		return c
	}
	return fallbackPalette[index%len(fallbackPalette)]
}

func parseHexColor(value string) (color.RGBA, error) {
	var c color.RGBA
	if len(value) != 7 || value[0] != '#' {
		return c, fmt.Errorf("invalid hex color %q", value)
	}
	if _, err := fmt.Sscanf(value[1:], "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("invalid hex color %q: %w", value, err)
	}
	c.A = 0xff
	return c, nil
}
