package charting

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"tradekit/pkg/types"
)

var log = logrus.WithField("component", "charting")

var (
	strokeHighLow = drawing.Color{R: 119, G: 119, B: 119, A: 255}
	strokeClose   = drawing.Color{R: 0, G: 116, B: 217, A: 255}
	fillBand      = drawing.Color{R: 119, G: 178, B: 255, A: 64}
)

// RenderPositionChart composes the candle band, the close line, the
// position average-cost series and the annotation overlay into a single
// PNG. At least two candles are required.
func RenderPositionChart(symbol string, klines types.KLineWindow, pos *types.PositionSnapshot, annotations []Annotation) ([]byte, error) {
	if klines.Len() < 2 {
		return nil, errors.Errorf("cannot render %s: need at least 2 candles, got %d", symbol, klines.Len())
	}

	xs := make([]time.Time, 0, klines.Len())
	for _, k := range klines {
		xs = append(xs, k.StartTime.Time())
	}
	start, end := xs[0], xs[len(xs)-1]

	canvas := NewCanvas(symbol)
	canvas.Series = append(canvas.Series,
		chart.TimeSeries{
			Name:    "High",
			XValues: xs,
			YValues: klines.Highs(),
			Style: chart.Style{
				StrokeColor: strokeHighLow,
				FillColor:   fillBand,
			},
		},
		chart.TimeSeries{
			Name:    "Low",
			XValues: xs,
			YValues: klines.Lows(),
			Style: chart.Style{
				StrokeColor: strokeHighLow,
				FillColor:   drawing.ColorWhite,
			},
		},
		chart.TimeSeries{
			Name:    "Close",
			XValues: xs,
			YValues: klines.Closes(),
			Style: chart.Style{
				StrokeColor: strokeClose,
				StrokeWidth: 2.0,
			},
		},
	)

	if pos != nil {
		avg := pos.AverageCost.InexactFloat64()
		canvas.Series = append(canvas.Series, chart.TimeSeries{
			Name:    "Position Avg Price",
			XValues: []time.Time{start, end},
			YValues: []float64{avg, avg},
			Style: chart.Style{
				StrokeColor: averageCostColor(pos.Side),
				StrokeWidth: 2.0,
			},
		})
	}

	for _, a := range annotations {
		canvas.Series = append(canvas.Series, annotationSeries(a, start, end)...)
	}

	return canvas.Render(FormatPNG)
}

func annotationSeries(a Annotation, start, end time.Time) []chart.Series {
	price := a.Price.InexactFloat64()

	line := chart.TimeSeries{
		Name:    string(a.Role),
		XValues: []time.Time{start, end},
		YValues: []float64{price, price},
		Style: chart.Style{
			StrokeColor:     a.Color,
			StrokeWidth:     1.0,
			StrokeDashArray: a.DashArray,
		},
	}

	x := timeToFloat(start)
	if a.Anchor == AnchorEnd {
		x = timeToFloat(end)
	}

	label := chart.AnnotationSeries{
		Annotations: []chart.Value2{
			{XValue: x, YValue: price, Label: a.Label},
		},
		Style: chart.Style{
			StrokeColor: a.Color,
			FontColor:   a.Color,
		},
	}

	return []chart.Series{line, label}
}

// ChartFilePath derives the persistence path for a rendered chart from the
// symbol and the end of the candle window.
func ChartFilePath(symbol string, end time.Time) string {
	return fmt.Sprintf("%s_chart_%s_1m.png", symbol, end.Format("2006-01-02"))
}

// SavePositionChart writes an already rendered image next to the working
// directory. The path is returned even on failure so the caller can report
// it; the image buffer itself stays valid either way.
func SavePositionChart(img []byte, symbol string, end time.Time) (string, error) {
	p := ChartFilePath(symbol, end)
	if err := os.WriteFile(p, img, 0644); err != nil {
		return p, errors.Wrapf(err, "cannot write chart to %s", p)
	}

	log.Infof("chart saved to %s", p)
	return p, nil
}

// RenderPnLChart draws the running total PnL as a single line. The line is
// green while the latest sample is non-negative and red otherwise. X ticks
// are thinned to roughly ten evenly spaced points plus the final one, so
// label density stays bounded for arbitrarily long histories.
func RenderPnLChart(records []types.PnLRecord) ([]byte, error) {
	if len(records) < 2 {
		return nil, errors.Errorf("cannot render pnl chart: need at least 2 records, got %d", len(records))
	}

	xs := make([]time.Time, 0, len(records))
	ys := make([]float64, 0, len(records))
	for _, r := range records {
		xs = append(xs, r.Time.Time())
		ys = append(ys, r.Value.InexactFloat64())
	}

	last := records[len(records)-1].Value
	lineColor := colorFavorable
	if last.Sign() < 0 {
		lineColor = colorAdverse
	}

	canvas := NewCanvas("Total PnL")
	canvas.XAxis = chart.XAxis{
		Ticks: pnlTicks(records),
	}
	canvas.YAxis = chart.YAxis{
		ValueFormatter: func(v interface{}) string {
			if vf, isFloat := v.(float64); isFloat {
				return fmt.Sprintf("%.2f", vf)
			}
			return ""
		},
	}
	canvas.Series = append(canvas.Series,
		chart.TimeSeries{
			Name:    "Total PnL",
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: lineColor,
				StrokeWidth: 2.0,
			},
		},
		chart.AnnotationSeries{
			Annotations: []chart.Value2{
				{
					XValue: timeToFloat(xs[len(xs)-1]),
					YValue: ys[len(ys)-1],
					Label:  last.StringFixed(4),
				},
			},
			Style: chart.Style{
				StrokeColor: lineColor,
				FontColor:   lineColor,
			},
		},
	)

	return canvas.Render(FormatPNG)
}

func pnlTicks(records []types.PnLRecord) []chart.Tick {
	step := len(records) / 10
	if step < 1 {
		step = 1
	}

	var ticks []chart.Tick
	for i := 0; i < len(records)-1; i += step {
		ticks = append(ticks, pnlTick(records[i]))
	}

	return append(ticks, pnlTick(records[len(records)-1]))
}

func pnlTick(r types.PnLRecord) chart.Tick {
	return chart.Tick{
		Value: timeToFloat(r.Time.Time()),
		Label: r.Time.Time().Format("01-02 15:04"),
	}
}
