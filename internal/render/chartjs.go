package render

import (
	"encoding/json"
	"fmt"
	"html/template"
	"sync"

	"ledger-explorer/internal/core/ports"

	"github.com/rs/zerolog"
)

// BufferSurface is a chart surface that accumulates markup in memory.
// The chart partial handler registers one per request and flushes its
// contents into the HTTP response after rendering.
type BufferSurface struct {
	id string

	mu   sync.Mutex
	html string
}

// NewBufferSurface creates a surface addressed by the given element id.
func NewBufferSurface(id string) *BufferSurface {
	return &BufferSurface{id: id}
}

// ID returns the surface's element identifier.
func (s *BufferSurface) ID() string { return s.id }

// ShowMessage replaces the surface contents with an inline message.
func (s *BufferSurface) ShowMessage(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.html = `<p class="chart-message">` + template.HTMLEscapeString(msg) + `</p>`
}

// HTML returns the accumulated markup.
func (s *BufferSurface) HTML() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.html
}

func (s *BufferSurface) setHTML(html string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.html = html
}

func (s *BufferSurface) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.html = ""
}

// SurfaceMap is a mutable, concurrency-safe ports.SurfaceRegistry.
type SurfaceMap struct {
	mu       sync.RWMutex
	surfaces map[string]ports.ChartSurface
}

// NewSurfaceMap creates an empty surface registry.
func NewSurfaceMap() *SurfaceMap {
	return &SurfaceMap{surfaces: make(map[string]ports.ChartSurface)}
}

// Register adds a surface under its id, replacing any previous entry.
func (m *SurfaceMap) Register(s ports.ChartSurface) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.surfaces[s.ID()] = s
}

// Unregister removes the surface with the given id.
func (m *SurfaceMap) Unregister(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.surfaces, id)
}

// Lookup resolves a surface by id.
func (m *SurfaceMap) Lookup(id string) (ports.ChartSurface, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.surfaces[id]
	return s, ok
}

// ChartJSRenderer implements ports.ChartRenderer by emitting a canvas
// element, the declarative config as embedded JSON, and a small bootstrap
// that hands the config to Chart.js in the browser. The plotting library
// itself stays an opaque collaborator.
type ChartJSRenderer struct {
	log zerolog.Logger
}

// NewChartJSRenderer creates the production chart renderer.
func NewChartJSRenderer(log zerolog.Logger) *ChartJSRenderer {
	return &ChartJSRenderer{log: log}
}

// Render writes chart markup onto the surface and returns the live handle.
func (r *ChartJSRenderer) Render(surface ports.ChartSurface, cfg ports.ChartConfig) (ports.ChartHandle, error) {
	bs, ok := surface.(*BufferSurface)
	if !ok {
		return nil, fmt.Errorf("unsupported chart surface type %T", surface)
	}

	cfgJSON, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshaling chart config: %w", err)
	}

	bs.setHTML(fmt.Sprintf(chartMarkup, bs.id, bs.id, cfgJSON, bs.id, bs.id))
	r.log.Debug().Str("surface", bs.id).Int("points", len(cfg.Labels)).Msg("chart rendered")
	return &chartJSHandle{surface: bs}, nil
}

// chartJSHandle clears the surface on destroy. Destroy is idempotent.
type chartJSHandle struct {
	surface *BufferSurface
	once    sync.Once
}

func (h *chartJSHandle) Destroy() {
	h.once.Do(h.surface.clear)
}

const chartMarkup = `<canvas id="%s" height="300"></canvas>
<script type="application/json" id="%s-config">%s</script>
<script>
(function () {
  var cfg = JSON.parse(document.getElementById("%s-config").textContent);
  var canvas = document.getElementById("%s");
  var prev = Chart.getChart(canvas);
  if (prev) { prev.destroy(); }
  new Chart(canvas, {
    type: cfg.type,
    data: { labels: cfg.labels, datasets: cfg.datasets },
    options: {
      responsive: cfg.options.responsive,
      interaction: { mode: cfg.options.tooltipMode, intersect: false },
      plugins: { tooltip: { mode: cfg.options.tooltipMode, intersect: false } },
      scales: {
        x: { ticks: { color: cfg.options.axisColor }, grid: { color: cfg.options.gridColor } },
        y: { ticks: { color: cfg.options.axisColor }, grid: { color: cfg.options.gridColor } }
      }
    }
  });
})();
</script>`
