package charting

import (
	"bytes"
	"time"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"
)

const canvasSize = 1000

// Canvas wraps a go-chart Chart with the fixed square geometry and legend
// placement every chart variant shares. One Canvas serves exactly one
// render call; nothing is reused between calls.
type Canvas struct {
	chart.Chart
}

func NewCanvas(title string) *Canvas {
	out := &Canvas{
		Chart: chart.Chart{
			Title:  title,
			Width:  canvasSize,
			Height: canvasSize,
			XAxis: chart.XAxis{
				ValueFormatter: chart.TimeMinuteValueFormatter,
			},
		},
	}
	out.Chart.Elements = []chart.Renderable{
		chart.LegendLeft(&out.Chart),
	}
	return out
}

// Render encodes the composed chart with the registered provider for the
// given format.
func (c *Canvas) Render(format RenderFormat) ([]byte, error) {
	provider, err := rendererFor(format)
	if err != nil {
		return nil, err
	}

	var buffer bytes.Buffer
	if err := c.Chart.Render(provider, &buffer); err != nil {
		return nil, errors.Wrap(err, "cannot render chart")
	}

	return buffer.Bytes(), nil
}

func timeToFloat(t time.Time) float64 {
	return float64(t.UnixNano())
}
