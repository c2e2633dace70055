package report

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/godilite/fredbasket/internal/service"
)

// LevelsChartPath names the price-levels PNG for a year pair.
func LevelsChartPath(yearA, yearB int) string {
	return fmt.Sprintf("levels_%d_vs_%d.png", yearA, yearB)
}

// PctChangesChartPath names the percentage-change PNG for a year pair.
func PctChangesChartPath(yearA, yearB int) string {
	return fmt.Sprintf("pct_changes_%d_vs_%d.png", yearA, yearB)
}

// SaveLevelsChart renders a grouped bar chart of the yearly mean prices per
// usable item, one bar group per item, and saves it as a PNG.
func SaveLevelsChart(rows []service.ComparisonRow, yearA, yearB int, path string) error {
	usable := usableRows(rows)
	if len(usable) == 0 {
		return fmt.Errorf("levels chart: %w", service.ErrNoUsableRows)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Price levels by item: %d vs %d", yearA, yearB)
	p.Y.Label.Text = "Price (unit varies)"

	baseValues := make(plotter.Values, len(usable))
	compareValues := make(plotter.Values, len(usable))
	labels := make([]string, len(usable))
	for i, r := range usable {
		baseValues[i] = r.Base.Value
		compareValues[i] = r.Compare.Value
		labels[i] = r.Item
	}

	barWidth := vg.Points(10)

	baseBars, err := plotter.NewBarChart(baseValues, barWidth)
	if err != nil {
		return fmt.Errorf("levels chart: %w", err)
	}
	baseBars.Color = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	baseBars.LineStyle.Width = vg.Length(0)
	baseBars.Offset = -barWidth / 2

	compareBars, err := plotter.NewBarChart(compareValues, barWidth)
	if err != nil {
		return fmt.Errorf("levels chart: %w", err)
	}
	compareBars.Color = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	compareBars.LineStyle.Width = vg.Length(0)
	compareBars.Offset = barWidth / 2

	p.Add(baseBars, compareBars)
	p.Legend.Add(strconv.Itoa(yearA), baseBars)
	p.Legend.Add(strconv.Itoa(yearB), compareBars)
	p.Legend.Top = true

	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 3
	p.X.Tick.Label.YAlign = draw.YCenter
	p.X.Tick.Label.XAlign = draw.XRight

	if err := p.Save(14*vg.Inch, 7*vg.Inch, path); err != nil {
		return fmt.Errorf("save levels chart: %w", err)
	}
	return nil
}

// SavePctChangesChart renders per-item percentage changes as a bar chart
// sorted descending by change, and saves it as a PNG.
func SavePctChangesChart(rows []service.ComparisonRow, path string) error {
	usable := usableRows(rows)
	if len(usable) == 0 {
		return fmt.Errorf("pct changes chart: %w", service.ErrNoUsableRows)
	}

	type mover struct {
		item string
		pct  float64
	}
	movers := make([]mover, len(usable))
	for i, r := range usable {
		movers[i] = mover{item: r.Item, pct: (r.Relative() - 1.0) * 100.0}
	}
	sort.SliceStable(movers, func(i, j int) bool {
		return movers[i].pct > movers[j].pct
	})

	values := make(plotter.Values, len(movers))
	labels := make([]string, len(movers))
	for i, m := range movers {
		values[i] = m.pct
		labels[i] = m.item
	}

	p := plot.New()
	p.Title.Text = "Percent change by item"
	p.Y.Label.Text = "% change"

	bars, err := plotter.NewBarChart(values, vg.Points(18))
	if err != nil {
		return fmt.Errorf("pct changes chart: %w", err)
	}
	bars.Color = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	bars.LineStyle.Width = vg.Length(0)

	p.Add(bars)
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 3
	p.X.Tick.Label.YAlign = draw.YCenter
	p.X.Tick.Label.XAlign = draw.XRight

	if err := p.Save(14*vg.Inch, 7*vg.Inch, path); err != nil {
		return fmt.Errorf("save pct changes chart: %w", err)
	}
	return nil
}

func usableRows(rows []service.ComparisonRow) []service.ComparisonRow {
	usable := make([]service.ComparisonRow, 0, len(rows))
	for _, r := range rows {
		if r.Usable() {
			usable = append(usable, r)
		}
	}
	return usable
}
