package charting

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"
)

// RenderFormat names an output encoding the renderer registry knows about.
type RenderFormat string

const (
	FormatPNG = RenderFormat("png")
	FormatSVG = RenderFormat("svg")
)

var rendererMu sync.RWMutex
var renderers = map[RenderFormat]chart.RendererProvider{}

// RegisterRenderers installs the built-in raster providers. It must run
// once before the first render call; running it again is a no-op. After it
// returns the registry is read-only and safe for concurrent render calls.
func RegisterRenderers() {
	rendererMu.Lock()
	defer rendererMu.Unlock()

	if _, ok := renderers[FormatPNG]; ok {
		return
	}

	renderers[FormatPNG] = chart.PNG
	renderers[FormatSVG] = chart.SVG
}

func rendererFor(format RenderFormat) (chart.RendererProvider, error) {
	rendererMu.RLock()
	defer rendererMu.RUnlock()

	provider, ok := renderers[format]
	if !ok {
		return nil, errors.Errorf("no renderer registered for format %q, call RegisterRenderers first", format)
	}

	return provider, nil
}
