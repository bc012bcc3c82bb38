package render

import (
	"strings"
	"testing"

	"ledger-explorer/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAccount() domain.Account {
	return domain.Account{
		ID:             "a1b2c3d4e5f60718293a4b5c6d7e8f90",
		DebitsPosted:   "150000",
		CreditsPosted:  "100000",
		DebitsPending:  "0",
		CreditsPending: "500",
		Ledger:         700,
		Code:           10,
		Flags:          domain.AccountFlagHistory,
		Timestamp:      1_000_000_000,
	}
}

func testTransfer() domain.Transfer {
	return domain.Transfer{
		ID:              "11112222333344445555666677778888",
		DebitAccountID:  "aaaa0000aaaa0000aaaa0000aaaa0000",
		CreditAccountID: "bbbb0000bbbb0000bbbb0000bbbb0000",
		Amount:          "1234567",
		PendingID:       domain.ZeroID,
		Ledger:          700,
		Code:            10,
		Flags:           domain.TransferFlagPending,
		Timestamp:       2_000_000_000,
	}
}

func TestRenderAccountsTable_Empty(t *testing.T) {
	r := NewTableRenderer(100, zerolog.Nop())

	html, err := r.RenderAccountsTable(&domain.AccountsPage{})
	require.NoError(t, err)
	assert.Equal(t, `<p class="loading">No accounts found</p>`, html)
}

func TestRenderAccountsTable_Rows(t *testing.T) {
	r := NewTableRenderer(100, zerolog.Nop())

	html, err := r.RenderAccountsTable(&domain.AccountsPage{Accounts: []domain.Account{testAccount()}})
	require.NoError(t, err)

	// Shortened id display, full id in link target and title.
	assert.Contains(t, html, "a1b2c3d4…6d7e8f90")
	assert.Contains(t, html, `href="/account/a1b2c3d4e5f60718293a4b5c6d7e8f90"`)

	// Net balance is negative here: debits 150,000 vs credits 100,000.
	assert.Contains(t, html, `class="amount negative"`)
	assert.Contains(t, html, "-50,000")
	assert.Contains(t, html, "100,000")
	assert.Contains(t, html, "150,000")
	assert.Contains(t, html, "1970-01-01 00:00:01")
}

func TestRenderAccountsTable_PositiveBalanceClass(t *testing.T) {
	r := NewTableRenderer(100, zerolog.Nop())

	a := testAccount()
	a.CreditsPosted = "200000"

	html, err := r.RenderAccountsTable(&domain.AccountsPage{Accounts: []domain.Account{a}})
	require.NoError(t, err)
	assert.Contains(t, html, `class="amount positive"`)
	assert.Contains(t, html, "50,000")
}

func TestRenderAccountsTable_CursorControl(t *testing.T) {
	r := NewTableRenderer(100, zerolog.Nop())
	cursor := uint64(123456789)

	html, err := r.RenderAccountsTable(&domain.AccountsPage{
		Accounts:      []domain.Account{testAccount()},
		NextTimestamp: &cursor,
	})
	require.NoError(t, err)

	// Exactly one follow-up fetch control, parameterized with the cursor.
	assert.Equal(t, 1, strings.Count(html, "Load More"))
	assert.Contains(t, html, "after_timestamp=123456789")
	assert.Contains(t, html, "limit=100")
	// Control is disabled while its fetch is in flight.
	assert.Contains(t, html, `hx-disabled-elt="this"`)
}

func TestRenderAccountsTable_NoCursorNoControl(t *testing.T) {
	r := NewTableRenderer(100, zerolog.Nop())

	html, err := r.RenderAccountsTable(&domain.AccountsPage{Accounts: []domain.Account{testAccount()}})
	require.NoError(t, err)
	assert.NotContains(t, html, "Load More")
	assert.NotContains(t, html, "after_timestamp")
}

func TestRenderTransfersTable_Empty(t *testing.T) {
	r := NewTableRenderer(100, zerolog.Nop())

	html, err := r.RenderTransfersTable(&domain.TransfersPage{})
	require.NoError(t, err)
	assert.Equal(t, `<p class="loading">No transfers found</p>`, html)
}

func TestRenderTransfersTable_RowsAndCursor(t *testing.T) {
	r := NewTableRenderer(50, zerolog.Nop())
	cursor := uint64(42)

	html, err := r.RenderTransfersTable(&domain.TransfersPage{
		Transfers:     []domain.Transfer{testTransfer()},
		NextTimestamp: &cursor,
	})
	require.NoError(t, err)

	assert.Contains(t, html, "1,234,567")
	assert.Contains(t, html, `href="/account/aaaa0000aaaa0000aaaa0000aaaa0000"`)
	assert.Contains(t, html, `href="/account/bbbb0000bbbb0000bbbb0000bbbb0000"`)
	assert.Contains(t, html, `href="/transfer/11112222333344445555666677778888"`)

	assert.Equal(t, 1, strings.Count(html, "Load More"))
	assert.Contains(t, html, "after_timestamp=42")
	assert.Contains(t, html, "reversed=true")
	assert.Contains(t, html, "limit=50")
}

func TestRenderAccountDetail(t *testing.T) {
	r := NewTableRenderer(100, zerolog.Nop())

	a := testAccount()
	html, err := r.RenderAccountDetail(&a)
	require.NoError(t, err)

	assert.Contains(t, html, a.ID)
	assert.Contains(t, html, "HISTORY")
	assert.Contains(t, html, `hx-get="/partials/accounts/a1b2c3d4e5f60718293a4b5c6d7e8f90/chart"`)
	assert.Contains(t, html, "Recent Transfers")
	assert.Contains(t, html, "Credits Pending")
	assert.Contains(t, html, "500")
}

func TestRenderTransferDetail(t *testing.T) {
	r := NewTableRenderer(100, zerolog.Nop())

	tr := testTransfer()
	html, err := r.RenderTransferDetail(&tr)
	require.NoError(t, err)

	assert.Contains(t, html, tr.ID)
	assert.Contains(t, html, "PENDING")
	// Zero pending id renders as the missing sentinel.
	assert.Contains(t, html, `<span class="info-value">-</span>`)
	assert.Contains(t, html, "From (Debit)")
	assert.Contains(t, html, "To (Credit)")
}

func TestRenderStats(t *testing.T) {
	r := NewTableRenderer(100, zerolog.Nop())
	assert.Contains(t, r.RenderAccountsStat(7), ">7<")
	assert.Contains(t, r.RenderAccountsStat(7), "Accounts")
	assert.Contains(t, r.RenderTransfersStat(12), ">12<")
}
