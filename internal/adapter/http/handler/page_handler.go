package handler

import (
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"ledger-explorer/internal/core/ports"
	"ledger-explorer/pkg/apperror"
	"ledger-explorer/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// PageHandler serves full HTML pages. Each page is a shell whose dynamic
// regions declare hx-get loaders; the browser engine fills them in from the
// proxy and partial endpoints after the initial load.
type PageHandler struct {
	ledger    ports.LedgerSource
	tables    ports.TableRenderer
	pageLimit uint32
	log       zerolog.Logger
}

// NewPageHandler creates the page handler.
func NewPageHandler(ledger ports.LedgerSource, tables ports.TableRenderer, pageLimit uint32, log zerolog.Logger) *PageHandler {
	return &PageHandler{ledger: ledger, tables: tables, pageLimit: pageLimit, log: log}
}

type pageData struct {
	Title   string
	Active  string // nav highlight: dashboard, accounts, transfers
	Content template.HTML
}

// Dashboard handles GET /.
func (h *PageHandler) Dashboard(c *gin.Context) {
	const content = `<div class="stats">
<div class="stat-card" hx-get="/partials/stats/accounts" hx-trigger="load">
<div class="label">Accounts</div><div class="value">...</div>
</div>
<div class="stat-card" hx-get="/partials/stats/transfers" hx-trigger="load">
<div class="label">Recent Transfers</div><div class="value">...</div>
</div>
</div>
<div class="recent-section">
<h2>Recent Accounts</h2>
<div hx-get="/api/v1/accounts?limit=10" hx-trigger="load"><p class="loading">Loading accounts...</p></div>
</div>
<div class="recent-section">
<h2>Recent Transfers</h2>
<div hx-get="/api/v1/transfers?limit=10&reversed=true" hx-trigger="load"><p class="loading">Loading transfers...</p></div>
</div>`

	h.renderPage(c, pageData{Title: "Dashboard", Active: "dashboard", Content: template.HTML(content)})
}

// Accounts handles GET /accounts. Optional ledger and code query filters
// are validated and forwarded to the listing loader.
func (h *PageHandler) Accounts(c *gin.Context) {
	loader := fmt.Sprintf("/api/v1/accounts?limit=%d", h.pageLimit)
	for _, name := range []string{"ledger", "code"} {
		raw := c.Query(name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			response.ErrorHTML(c, apperror.Validation(name+" filter must be a number"))
			return
		}
		loader += "&" + name + "=" + strconv.FormatUint(v, 10)
	}

	content := fmt.Sprintf(`<div class="recent-section">
<h2>Accounts</h2>
<div hx-get="%s" hx-trigger="load"><p class="loading">Loading accounts...</p></div>
</div>`, loader)

	h.renderPage(c, pageData{Title: "Accounts", Active: "accounts", Content: template.HTML(content)})
}

// Transfers handles GET /transfers.
func (h *PageHandler) Transfers(c *gin.Context) {
	content := fmt.Sprintf(`<div class="recent-section">
<h2>Transfers</h2>
<div hx-get="/api/v1/transfers?limit=%d&reversed=true" hx-trigger="load"><p class="loading">Loading transfers...</p></div>
</div>`, h.pageLimit)

	h.renderPage(c, pageData{Title: "Transfers", Active: "transfers", Content: template.HTML(content)})
}

// AccountDetail handles GET /account/:id. The record itself is fetched and
// rendered server-side; the chart region and recent transfers load lazily.
func (h *PageHandler) AccountDetail(c *gin.Context) {
	id := c.Param("id")
	if !validID(id) {
		response.ErrorHTML(c, apperror.ErrInvalidID(id))
		return
	}

	account, err := h.ledger.GetAccount(c.Request.Context(), id)
	if err != nil {
		response.ErrorHTML(c, err)
		return
	}

	content, err := h.tables.RenderAccountDetail(account)
	if err != nil {
		response.ErrorHTML(c, apperror.InternalError(err))
		return
	}
	h.renderPage(c, pageData{Title: "Account", Active: "accounts", Content: template.HTML(content)})
}

// TransferDetail handles GET /transfer/:id.
func (h *PageHandler) TransferDetail(c *gin.Context) {
	id := c.Param("id")
	if !validID(id) {
		response.ErrorHTML(c, apperror.ErrInvalidID(id))
		return
	}

	transfer, err := h.ledger.GetTransfer(c.Request.Context(), id)
	if err != nil {
		response.ErrorHTML(c, err)
		return
	}

	content, err := h.tables.RenderTransferDetail(transfer)
	if err != nil {
		response.ErrorHTML(c, apperror.InternalError(err))
		return
	}
	h.renderPage(c, pageData{Title: "Transfer", Active: "transfers", Content: template.HTML(content)})
}

// AccountsStat handles GET /partials/stats/accounts.
func (h *PageHandler) AccountsStat(c *gin.Context) {
	page, err := h.ledger.ListAccounts(c.Request.Context(), ports.ListQuery{Limit: h.pageLimit})
	if err != nil {
		response.ErrorHTML(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(h.tables.RenderAccountsStat(len(page.Accounts))))
}

// TransfersStat handles GET /partials/stats/transfers.
func (h *PageHandler) TransfersStat(c *gin.Context) {
	page, err := h.ledger.ListTransfers(c.Request.Context(), ports.ListQuery{Limit: h.pageLimit, Reversed: true})
	if err != nil {
		response.ErrorHTML(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(h.tables.RenderTransfersStat(len(page.Transfers))))
}

func (h *PageHandler) renderPage(c *gin.Context, data pageData) {
	var sb strings.Builder
	if err := pageTemplate.Execute(&sb, data); err != nil {
		h.log.Error().Err(err).Str("page", data.Title).Msg("page render failed")
		response.ErrorHTML(c, apperror.InternalError(err))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(sb.String()))
}

// validID accepts hex ids up to 128 bits. The upstream API uses the same
// representation, so anything else is rejected before the round trip.
func validID(id string) bool {
	if id == "" || len(id) > 32 {
		return false
	}
	for _, r := range id {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

var pageTemplate = template.Must(template.New("page").Parse(pageShell))

const pageShell = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}} - Ledger Explorer</title>
<script src="https://unpkg.com/htmx.org@1.9.10"></script>
<script src="https://cdn.jsdelivr.net/npm/chart.js@4.4.1/dist/chart.umd.min.js"></script>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif; background: #1a202c; color: #e2e8f0; }
header { background: #2d3748; padding: 1rem 2rem; display: flex; align-items: center; gap: 2rem; }
header h1 { font-size: 1.25rem; color: #4ade80; }
nav a { color: #9ca3af; text-decoration: none; margin-right: 1.5rem; }
nav a.active, nav a:hover { color: #e2e8f0; }
main { padding: 2rem; max-width: 1200px; margin: 0 auto; }
.stats { display: flex; gap: 1rem; margin-bottom: 2rem; }
.stat-card { background: #2d3748; border-radius: 8px; padding: 1.25rem 1.5rem; flex: 1; }
.stat-card .label { color: #9ca3af; font-size: 0.85rem; text-transform: uppercase; }
.stat-card .value { font-size: 1.75rem; font-weight: 600; margin-top: 0.25rem; }
.recent-section { background: #2d3748; border-radius: 8px; padding: 1.5rem; margin-bottom: 2rem; }
.recent-section h2, .recent-section h3 { margin-bottom: 1rem; font-size: 1.1rem; }
table { width: 100%; border-collapse: collapse; }
th, td { text-align: left; padding: 0.5rem 0.75rem; border-bottom: 1px solid #4a5568; }
th { color: #9ca3af; font-size: 0.8rem; text-transform: uppercase; }
th.amount, td.amount { text-align: right; font-variant-numeric: tabular-nums; }
.positive { color: #4ade80; }
.negative { color: #f87171; }
a.id { color: #60a5fa; text-decoration: none; font-family: ui-monospace, monospace; }
a.id:hover { text-decoration: underline; }
.loading { color: #9ca3af; padding: 1rem 0; }
.error { color: #f87171; padding: 1rem 0; }
.chart-message { color: #9ca3af; padding: 2rem 0; text-align: center; }
.pagination { margin-top: 1rem; text-align: center; }
.btn { background: #4a5568; color: #e2e8f0; border: none; border-radius: 6px; padding: 0.5rem 1.25rem; cursor: pointer; }
.btn:hover { background: #718096; }
.btn:disabled { opacity: 0.5; cursor: wait; }
.account-detail { display: grid; grid-template-columns: 1fr 1fr; gap: 1rem; margin-bottom: 2rem; }
.account-info { background: #2d3748; border-radius: 8px; padding: 1.5rem; }
.info-row { display: flex; justify-content: space-between; padding: 0.4rem 0; border-bottom: 1px solid #4a5568; }
.info-label { color: #9ca3af; }
.info-value { font-family: ui-monospace, monospace; }
.chart-container { background: #2d3748; border-radius: 8px; padding: 1.5rem; margin-bottom: 2rem; }
h2 { margin-bottom: 1rem; }
</style>
</head>
<body>
<header>
<h1>Ledger Explorer</h1>
<nav>
<a href="/"{{if eq .Active "dashboard"}} class="active"{{end}}>Dashboard</a>
<a href="/accounts"{{if eq .Active "accounts"}} class="active"{{end}}>Accounts</a>
<a href="/transfers"{{if eq .Active "transfers"}} class="active"{{end}}>Transfers</a>
</nav>
</header>
<main>
{{.Content}}
</main>
</body>
</html>`
