// Package render builds HTML markup for ledger collections, detail views,
// and the balance-history chart.
package render

import (
	"fmt"
	"html/template"
	"strings"

	"ledger-explorer/internal/core/domain"
	"ledger-explorer/internal/core/ports"
	"ledger-explorer/internal/format"

	"github.com/rs/zerolog"
)

// balanceView pairs a formatted net balance with its semantic class.
// The class distinguishes positive from negative without altering the text.
type balanceView struct {
	Text  string
	Class string
}

func netBalanceView(creditsPosted, debitsPosted string) balanceView {
	net := format.NetBalance(creditsPosted, debitsPosted)
	class := "positive"
	if net.Sign() < 0 {
		class = "negative"
	}
	return balanceView{Text: format.FormatBalance(net), Class: class}
}

var tableFuncs = template.FuncMap{
	"formatID":            format.FormatID,
	"formatIDFull":        format.FormatIDFull,
	"formatAmount":        format.FormatAmount,
	"formatTimestamp":     format.FormatTimestamp,
	"formatTimestampISO":  format.FormatTimestampISO,
	"formatAccountFlags":  format.FormatAccountFlags,
	"formatTransferFlags": format.FormatTransferFlags,
	"netBalance":          netBalanceView,
}

var tableTemplates = template.Must(template.New("tables").Funcs(tableFuncs).Parse(tableTemplateText))

// tableRenderer implements ports.TableRenderer.
type tableRenderer struct {
	pageLimit uint32
	log       zerolog.Logger
}

// NewTableRenderer creates a table renderer. pageLimit parameterizes the
// follow-up fetch triggered by the "Load More" control.
func NewTableRenderer(pageLimit uint32, log zerolog.Logger) ports.TableRenderer {
	return &tableRenderer{pageLimit: pageLimit, log: log}
}

type accountsTableData struct {
	Accounts    []domain.Account
	LoadMoreURL string
}

type transfersTableData struct {
	Transfers   []domain.Transfer
	LoadMoreURL string
}

// RenderAccountsTable renders one row per account. When the page carries a
// cursor, exactly one "Load More" control is appended, parameterized by the
// cursor value and targeting the same container; without a cursor no
// control is rendered, which terminates pagination.
func (r *tableRenderer) RenderAccountsTable(page *domain.AccountsPage) (string, error) {
	if len(page.Accounts) == 0 {
		return `<p class="loading">No accounts found</p>`, nil
	}

	data := accountsTableData{Accounts: page.Accounts}
	if page.NextTimestamp != nil {
		data.LoadMoreURL = fmt.Sprintf("/api/v1/accounts?limit=%d&after_timestamp=%d", r.pageLimit, *page.NextTimestamp)
	}
	return r.execute("accountsTable", data)
}

// RenderTransfersTable renders one row per transfer, with the same cursor
// contract as RenderAccountsTable.
func (r *tableRenderer) RenderTransfersTable(page *domain.TransfersPage) (string, error) {
	if len(page.Transfers) == 0 {
		return `<p class="loading">No transfers found</p>`, nil
	}

	data := transfersTableData{Transfers: page.Transfers}
	if page.NextTimestamp != nil {
		data.LoadMoreURL = fmt.Sprintf("/api/v1/transfers?limit=%d&reversed=true&after_timestamp=%d", r.pageLimit, *page.NextTimestamp)
	}
	return r.execute("transfersTable", data)
}

// RenderAccountDetail renders the account information, balances, chart
// region, and recent-transfers section.
func (r *tableRenderer) RenderAccountDetail(account *domain.Account) (string, error) {
	return r.execute("accountDetail", account)
}

// RenderTransferDetail renders the transfer information and linked accounts.
func (r *tableRenderer) RenderTransferDetail(transfer *domain.Transfer) (string, error) {
	return r.execute("transferDetail", transfer)
}

// RenderAccountsStat renders the dashboard account-count card.
func (r *tableRenderer) RenderAccountsStat(count int) string {
	return fmt.Sprintf(`<div class="label">Accounts</div>
<div class="value">%d</div>`, count)
}

// RenderTransfersStat renders the dashboard transfer-count card.
func (r *tableRenderer) RenderTransfersStat(count int) string {
	return fmt.Sprintf(`<div class="label">Recent Transfers</div>
<div class="value">%d</div>`, count)
}

func (r *tableRenderer) execute(name string, data any) (string, error) {
	var sb strings.Builder
	if err := tableTemplates.ExecuteTemplate(&sb, name, data); err != nil {
		r.log.Error().Err(err).Str("template", name).Msg("table render failed")
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return sb.String(), nil
}

const tableTemplateText = `
{{define "accountsTable"}}<table>
<thead>
<tr>
<th>ID</th>
<th>Ledger</th>
<th>Code</th>
<th class="amount">Net Balance</th>
<th class="amount">Credits</th>
<th class="amount">Debits</th>
<th>Created</th>
</tr>
</thead>
<tbody>
{{range .Accounts}}{{$net := netBalance .CreditsPosted .DebitsPosted}}<tr>
<td><a href="/account/{{.ID}}" class="id" title="{{.ID}}">{{formatID .ID}}</a></td>
<td>{{.Ledger}}</td>
<td>{{.Code}}</td>
<td class="amount {{$net.Class}}">{{$net.Text}}</td>
<td class="amount">{{formatAmount .CreditsPosted}}</td>
<td class="amount">{{formatAmount .DebitsPosted}}</td>
<td>{{formatTimestamp .Timestamp}}</td>
</tr>
{{end}}</tbody>
</table>
{{if .LoadMoreURL}}<div class="pagination">
<button class="btn btn-secondary" hx-get="{{.LoadMoreURL}}" hx-target="closest .recent-section div" hx-swap="innerHTML" hx-disabled-elt="this">Load More</button>
</div>
{{end}}{{end}}

{{define "transfersTable"}}<table>
<thead>
<tr>
<th>ID</th>
<th>From</th>
<th>To</th>
<th class="amount">Amount</th>
<th>Ledger</th>
<th>Code</th>
<th>Created</th>
</tr>
</thead>
<tbody>
{{range .Transfers}}<tr>
<td><a href="/transfer/{{.ID}}" class="id" title="{{.ID}}">{{formatID .ID}}</a></td>
<td><a href="/account/{{.DebitAccountID}}" class="id" title="{{.DebitAccountID}}">{{formatID .DebitAccountID}}</a></td>
<td><a href="/account/{{.CreditAccountID}}" class="id" title="{{.CreditAccountID}}">{{formatID .CreditAccountID}}</a></td>
<td class="amount">{{formatAmount .Amount}}</td>
<td>{{.Ledger}}</td>
<td>{{.Code}}</td>
<td>{{formatTimestamp .Timestamp}}</td>
</tr>
{{end}}</tbody>
</table>
{{if .LoadMoreURL}}<div class="pagination">
<button class="btn btn-secondary" hx-get="{{.LoadMoreURL}}" hx-target="closest .recent-section div" hx-swap="innerHTML" hx-disabled-elt="this">Load More</button>
</div>
{{end}}{{end}}

{{define "accountDetail"}}{{$net := netBalance .CreditsPosted .DebitsPosted}}<section class="account-detail-page">
<h2>Account Details</h2>
<div class="account-detail">
<div class="account-info">
<h3>Information</h3>
<div class="info-row"><span class="info-label">ID</span><span class="info-value">{{formatIDFull .ID}}</span></div>
<div class="info-row"><span class="info-label">Ledger</span><span class="info-value">{{.Ledger}}</span></div>
<div class="info-row"><span class="info-label">Code</span><span class="info-value">{{.Code}}</span></div>
<div class="info-row"><span class="info-label">Flags</span><span class="info-value">{{formatAccountFlags .Flags}}</span></div>
<div class="info-row"><span class="info-label">Created</span><span class="info-value" title="{{formatTimestampISO .Timestamp}}">{{formatTimestamp .Timestamp}}</span></div>
</div>
<div class="account-info">
<h3>Balances</h3>
<div class="info-row"><span class="info-label">Net Balance</span><span class="info-value {{$net.Class}}">{{$net.Text}}</span></div>
<div class="info-row"><span class="info-label">Credits Posted</span><span class="info-value">{{formatAmount .CreditsPosted}}</span></div>
<div class="info-row"><span class="info-label">Debits Posted</span><span class="info-value">{{formatAmount .DebitsPosted}}</span></div>
<div class="info-row"><span class="info-label">Credits Pending</span><span class="info-value">{{formatAmount .CreditsPending}}</span></div>
<div class="info-row"><span class="info-label">Debits Pending</span><span class="info-value">{{formatAmount .DebitsPending}}</span></div>
</div>
</div>
<div class="chart-container">
<h3>Balance History</h3>
<div id="balanceChart-region" hx-get="/partials/accounts/{{.ID}}/chart" hx-trigger="load">Loading chart...</div>
</div>
<div class="recent-section">
<h3>Recent Transfers</h3>
<div id="account-transfers" hx-get="/api/v1/accounts/{{.ID}}/transfers?limit=20&reversed=true" hx-trigger="load">Loading transfers...</div>
</div>
</section>{{end}}

{{define "transferDetail"}}<section class="transfer-detail-page">
<h2>Transfer Details</h2>
<div class="account-detail">
<div class="account-info">
<h3>Transfer</h3>
<div class="info-row"><span class="info-label">ID</span><span class="info-value">{{formatIDFull .ID}}</span></div>
<div class="info-row"><span class="info-label">Amount</span><span class="info-value">{{formatAmount .Amount}}</span></div>
<div class="info-row"><span class="info-label">Ledger</span><span class="info-value">{{.Ledger}}</span></div>
<div class="info-row"><span class="info-label">Code</span><span class="info-value">{{.Code}}</span></div>
<div class="info-row"><span class="info-label">Flags</span><span class="info-value">{{formatTransferFlags .Flags}}</span></div>
<div class="info-row"><span class="info-label">Created</span><span class="info-value" title="{{formatTimestampISO .Timestamp}}">{{formatTimestamp .Timestamp}}</span></div>
</div>
<div class="account-info">
<h3>Accounts</h3>
<div class="info-row"><span class="info-label">From (Debit)</span><span class="info-value"><a href="/account/{{.DebitAccountID}}" class="id">{{formatID .DebitAccountID}}</a></span></div>
<div class="info-row"><span class="info-label">To (Credit)</span><span class="info-value"><a href="/account/{{.CreditAccountID}}" class="id">{{formatID .CreditAccountID}}</a></span></div>
<div class="info-row"><span class="info-label">Pending ID</span><span class="info-value">{{formatID .PendingID}}</span></div>
</div>
</div>
</section>{{end}}
`
