package render

import (
	"context"
	"sync"

	"ledger-explorer/internal/core/domain"
	"ledger-explorer/internal/core/ports"
	"ledger-explorer/internal/format"

	"github.com/rs/zerolog"
)

// chartController implements ports.ChartController. It owns the single
// live chart instance; replace semantics guarantee destroy-before-create,
// so instances never leak or coexist on one surface.
type chartController struct {
	ledger   ports.LedgerSource
	renderer ports.ChartRenderer
	surfaces ports.SurfaceRegistry
	limit    uint32
	log      zerolog.Logger

	mu   sync.Mutex
	live ports.ChartHandle
	gen  uint64
}

// NewChartController creates a chart controller. limit bounds the
// balance-history page size fetched per render.
func NewChartController(
	ledger ports.LedgerSource,
	renderer ports.ChartRenderer,
	surfaces ports.SurfaceRegistry,
	limit uint32,
	log zerolog.Logger,
) ports.ChartController {
	return &chartController{
		ledger:   ledger,
		renderer: renderer,
		surfaces: surfaces,
		limit:    limit,
		log:      log,
	}
}

// RenderBalanceChart fetches, sorts, and plots the balance history of one
// account. Concurrent renders follow cancel-and-supersede semantics: each
// render takes a generation ticket, and a render whose fetch resolves
// after a newer render began discards its result instead of racing for
// the instance slot.
func (c *chartController) RenderBalanceChart(ctx context.Context, accountID, surfaceID string) {
	surface, ok := c.surfaces.Lookup(surfaceID)
	if !ok {
		c.log.Warn().Str("surface", surfaceID).Msg("chart surface not found, skipping render")
		return
	}

	gen := c.nextGeneration()

	history, err := c.ledger.AccountBalances(ctx, accountID, c.limit)
	if err != nil {
		c.log.Error().Err(err).Str("account", accountID).Msg("balance history fetch failed")
		if !c.isCurrent(gen) {
			surface.ShowMessage(msgSuperseded)
			return
		}
		surface.ShowMessage("Failed to load balance history")
		return
	}

	if len(history) == 0 {
		if !c.isCurrent(gen) {
			surface.ShowMessage(msgSuperseded)
			return
		}
		surface.ShowMessage(c.emptyHistoryMessage(ctx, accountID))
		return
	}

	// Server order is not guaranteed; chronological plotting needs it.
	domain.SortBalancesByTimestamp(history)
	cfg := BuildBalanceChartConfig(history)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		// Superseded while fetching. The stale surface still gets a
		// message, so its region never swaps in empty.
		surface.ShowMessage(msgSuperseded)
		return
	}
	if c.live != nil {
		c.live.Destroy()
		c.live = nil
	}
	handle, err := c.renderer.Render(surface, cfg)
	if err != nil {
		c.log.Error().Err(err).Str("account", accountID).Msg("chart render failed")
		surface.ShowMessage("Failed to render chart")
		return
	}
	c.live = handle
}

// DestroyChart destroys the live instance if any and clears the reference.
func (c *chartController) DestroyChart() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.live != nil {
		c.live.Destroy()
		c.live = nil
	}
}

const msgSuperseded = "Superseded by a newer chart"

// emptyHistoryMessage distinguishes an account that never records history
// from one that has simply not accrued any snapshots yet.
func (c *chartController) emptyHistoryMessage(ctx context.Context, accountID string) string {
	account, err := c.ledger.GetAccount(ctx, accountID)
	if err == nil && !account.HasHistory() {
		return "History is not enabled for this account"
	}
	return "No balance history recorded for this account"
}

func (c *chartController) nextGeneration() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	return c.gen
}

func (c *chartController) isCurrent(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return gen == c.gen
}

// BuildBalanceChartConfig builds the three-series line chart over a
// chronologically sorted history: net balance, credits posted, debits
// posted. Net balance is computed exactly and converted to float64 only
// here, for plotting; the lossy value never feeds back into exact
// arithmetic.
func BuildBalanceChartConfig(history []domain.BalanceSnapshot) ports.ChartConfig {
	labels := make([]string, 0, len(history))
	net := make([]float64, 0, len(history))
	credits := make([]float64, 0, len(history))
	debits := make([]float64, 0, len(history))

	for _, b := range history {
		labels = append(labels, format.FormatTimestamp(b.Timestamp))
		net = append(net, format.NetBalance(b.CreditsPosted, b.DebitsPosted).InexactFloat64())
		credits = append(credits, format.ParseAmount(b.CreditsPosted).InexactFloat64())
		debits = append(debits, format.ParseAmount(b.DebitsPosted).InexactFloat64())
	}

	return ports.ChartConfig{
		Type:   "line",
		Labels: labels,
		Datasets: []ports.ChartDataset{
			{Label: "Net Balance", Data: net, BorderColor: "#4ade80", Tension: 0.3},
			{Label: "Credits Posted", Data: credits, BorderColor: "#60a5fa", Tension: 0.3},
			{Label: "Debits Posted", Data: debits, BorderColor: "#f87171", Tension: 0.3},
		},
		Options: ports.ChartOptions{
			Responsive:  true,
			TooltipMode: "index",
			AxisColor:   "#9ca3af",
			GridColor:   "#2d3748",
		},
	}
}
