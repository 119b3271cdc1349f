package lattice

import (
	"fmt"
	"os"

	"github.com/wcharczuk/go-chart/v2"
)

// One style per whitelist position. go-chart draws dots rather than
// marker shapes, so the series are told apart by color and dot size.
var seriesStyles = []chart.Style{
	{StrokeColor: chart.ColorBlue, StrokeWidth: 1, DotColor: chart.ColorBlue, DotWidth: 5},
	{StrokeColor: chart.ColorGreen, StrokeWidth: 1, DotColor: chart.ColorGreen, DotWidth: 4},
	{StrokeColor: chart.ColorRed, StrokeWidth: 1, DotColor: chart.ColorRed, DotWidth: 3},
	{StrokeColor: chart.ColorCyan, StrokeWidth: 1, DotColor: chart.ColorCyan, DotWidth: 5},
}

// MagnetizationChart plots mean magnetization against reduced
// temperature, one line-with-dots series per group.
func (gs Groups) MagnetizationChart() chart.Chart {
	return gs.lineChart("⟨m⟩", func(rec Record) float64 { return rec.M })
}

// SusceptibilityChart plots susceptibility against reduced
// temperature for every group but the last: the largest lattice size
// is left out of the susceptibility figure.
func (gs Groups) SusceptibilityChart() chart.Chart {
	if len(gs) > 0 {
		gs = gs[:len(gs)-1]
	}
	return gs.lineChart("χ", func(rec Record) float64 { return rec.S })
}

func (gs Groups) lineChart(yLabel string, y func(Record) float64) chart.Chart {
	var series []chart.Series
	for i, g := range gs {
		// go-chart rejects zero-length series; an empty group
		// has nothing to draw anyway.
		if len(g.Records) == 0 {
			continue
		}
		xs := make([]float64, len(g.Records))
		ys := make([]float64, len(g.Records))
		for j, rec := range g.Records {
			xs[j] = rec.T
			ys[j] = y(rec)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    fmt.Sprintf("L=%d", g.Size),
			Style:   seriesStyles[i%len(seriesStyles)],
			XValues: xs,
			YValues: ys,
		})
	}

	graph := chart.Chart{
		Width:  1280,
		Height: 720,
		Background: chart.Style{
			Padding: chart.Box{
				Top:  40,
				Left: 20,
			},
		},
		XAxis:  chart.XAxis{Name: "T*"},
		YAxis:  chart.YAxis{Name: yLabel},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph
}

// SaveMagnetizationChart renders the magnetization chart to a png
// file at path.
func (gs Groups) SaveMagnetizationChart(path string) error {
	return save(gs.MagnetizationChart(), path)
}

// SaveSusceptibilityChart renders the susceptibility chart to a png
// file at path.
func (gs Groups) SaveSusceptibilityChart(path string) error {
	return save(gs.SusceptibilityChart(), path)
}

func save(graph chart.Chart, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return err
	}
	return f.Close()
}
