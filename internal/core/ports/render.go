package ports

import (
	"context"
	"io"

	"ledger-explorer/internal/core/domain"
)

// TableRenderer builds HTML markup for ledger collections and detail views.
type TableRenderer interface {
	RenderAccountsTable(page *domain.AccountsPage) (string, error)
	RenderTransfersTable(page *domain.TransfersPage) (string, error)
	RenderAccountDetail(account *domain.Account) (string, error)
	RenderTransferDetail(transfer *domain.Transfer) (string, error)
	RenderAccountsStat(count int) string
	RenderTransfersStat(count int) string
}

// ChartDataset is one named series of a chart.
type ChartDataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BorderColor     string    `json:"borderColor"`
	BackgroundColor string    `json:"backgroundColor,omitempty"`
	Fill            bool      `json:"fill"`
	Tension         float64   `json:"tension"`
}

// ChartConfig is a declarative chart description handed to an opaque
// plotting renderer. Series data is float64: the conversion from exact
// amounts is lossy for extreme magnitudes and is display-only.
type ChartConfig struct {
	Type     string         `json:"type"`
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
	Options  ChartOptions   `json:"options"`
}

// ChartOptions carries tooltip and axis styling.
type ChartOptions struct {
	Responsive  bool   `json:"responsive"`
	TooltipMode string `json:"tooltipMode"` // "index" groups all series per point
	AxisColor   string `json:"axisColor"`
	GridColor   string `json:"gridColor"`
}

// ChartSurface is a named drawing region. ShowMessage replaces the chart
// region with an inline message (errors, empty history).
type ChartSurface interface {
	ID() string
	ShowMessage(msg string)
}

// SurfaceRegistry resolves chart surfaces by element identifier.
type SurfaceRegistry interface {
	Lookup(id string) (ChartSurface, bool)
}

// ChartHandle is a live chart instance owned by the chart controller.
type ChartHandle interface {
	Destroy()
}

// ChartRenderer is the opaque plotting library boundary: it accepts a
// declarative config and returns a live instance.
type ChartRenderer interface {
	Render(surface ChartSurface, cfg ChartConfig) (ChartHandle, error)
}

// ChartController owns the single live chart instance.
type ChartController interface {
	// RenderBalanceChart draws the balance-history chart for an account
	// onto the named surface. All failures are handled internally: they
	// surface as inline messages or logs, never as returned errors.
	RenderBalanceChart(ctx context.Context, accountID, surfaceID string)
	// DestroyChart tears down the live instance if any. Idempotent.
	DestroyChart()
}

// SwapEvent is a pre-swap lifecycle event from the DOM-patching engine:
// an upstream response about to replace a target's content.
type SwapEvent struct {
	ContentType string
	Body        []byte
}

// RenderTarget is the container the event's content is destined for.
// Rescan asks the patching engine to re-scan injected markup for its
// declarative attributes; skipping it silently breaks pagination.
type RenderTarget interface {
	io.Writer
	Rescan()
}

// Decision is the outcome of intercepting a swap event. Exactly one of
// default substitution or dispatcher-driven render happens per event.
type Decision int

const (
	// DecisionPassthrough lets the engine's default substitution proceed.
	DecisionPassthrough Decision = iota
	// DecisionHandled means the interceptor wrote the rendered markup and
	// default substitution must be suppressed.
	DecisionHandled
)

// Interceptor classifies upstream payloads and routes known ledger
// collections to the table renderer.
type Interceptor interface {
	Intercept(event SwapEvent, target RenderTarget) Decision
}
