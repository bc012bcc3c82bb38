package dispatch

import (
	"bytes"
	"testing"

	"ledger-explorer/internal/core/ports"
	"ledger-explorer/internal/render"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bufferTarget records writes and re-scan requests.
type bufferTarget struct {
	bytes.Buffer
	rescans int
}

func (t *bufferTarget) Rescan() { t.rescans++ }

func newDispatcher() *Dispatcher {
	return NewDispatcher(render.NewTableRenderer(100, zerolog.Nop()), zerolog.Nop())
}

const accountsBody = `{
	"accounts": [{
		"id": "a1b2c3d4e5f60718293a4b5c6d7e8f90",
		"debits_posted": "100",
		"credits_posted": "250",
		"debits_pending": "0",
		"credits_pending": "0",
		"ledger": 700,
		"code": 10,
		"flags": 0,
		"timestamp": 1000000000
	}],
	"next_timestamp": 1000000000
}`

const transfersBody = `{
	"transfers": [{
		"id": "11112222333344445555666677778888",
		"debit_account_id": "aaaa0000aaaa0000aaaa0000aaaa0000",
		"credit_account_id": "bbbb0000bbbb0000bbbb0000bbbb0000",
		"amount": "5000",
		"pending_id": "00000000000000000000000000000000",
		"ledger": 700,
		"code": 10,
		"flags": 2,
		"timestamp": 2000000000
	}]
}`

func TestClassify(t *testing.T) {
	p, err := Classify([]byte(accountsBody))
	require.NoError(t, err)
	assert.Equal(t, KindAccounts, p.Kind)
	require.NotNil(t, p.Accounts)
	assert.Len(t, p.Accounts.Accounts, 1)
	require.NotNil(t, p.Accounts.NextTimestamp)
	assert.Equal(t, uint64(1000000000), *p.Accounts.NextTimestamp)

	p, err = Classify([]byte(transfersBody))
	require.NoError(t, err)
	assert.Equal(t, KindTransfers, p.Kind)
	require.NotNil(t, p.Transfers)
	assert.Nil(t, p.Transfers.NextTimestamp)

	p, err = Classify([]byte(`{"balances": []}`))
	require.NoError(t, err)
	assert.Equal(t, KindUnrecognized, p.Kind)

	// Empty collections still classify: the key presence is the tag.
	p, err = Classify([]byte(`{"accounts": []}`))
	require.NoError(t, err)
	assert.Equal(t, KindAccounts, p.Kind)

	_, err = Classify([]byte(`{not json`))
	assert.Error(t, err)
}

func TestIntercept_NonJSONPassesThrough(t *testing.T) {
	d := newDispatcher()
	target := &bufferTarget{}

	decision := d.Intercept(ports.SwapEvent{ContentType: "text/html", Body: []byte("<p>hi</p>")}, target)

	assert.Equal(t, ports.DecisionPassthrough, decision)
	assert.Zero(t, target.Len())
	assert.Zero(t, target.rescans)
}

func TestIntercept_MalformedJSONFailsOpen(t *testing.T) {
	d := newDispatcher()
	target := &bufferTarget{}

	decision := d.Intercept(ports.SwapEvent{ContentType: "application/json", Body: []byte("{oops")}, target)

	assert.Equal(t, ports.DecisionPassthrough, decision)
	assert.Zero(t, target.Len())
}

func TestIntercept_UnrecognizedPayloadPassesThrough(t *testing.T) {
	d := newDispatcher()
	target := &bufferTarget{}

	decision := d.Intercept(ports.SwapEvent{
		ContentType: "application/json",
		Body:        []byte(`{"balances": [], "status": "ok"}`),
	}, target)

	assert.Equal(t, ports.DecisionPassthrough, decision)
	assert.Zero(t, target.Len())
	assert.Zero(t, target.rescans)
}

func TestIntercept_AccountsRouteRendersAndRescans(t *testing.T) {
	d := newDispatcher()
	target := &bufferTarget{}

	decision := d.Intercept(ports.SwapEvent{ContentType: "application/json; charset=utf-8", Body: []byte(accountsBody)}, target)

	assert.Equal(t, ports.DecisionHandled, decision)
	html := target.String()
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "a1b2c3d4…6d7e8f90")
	assert.Contains(t, html, "after_timestamp=1000000000")
	assert.Equal(t, 1, target.rescans)
}

func TestIntercept_TransfersRouteRendersAndRescans(t *testing.T) {
	d := newDispatcher()
	target := &bufferTarget{}

	decision := d.Intercept(ports.SwapEvent{ContentType: "application/json", Body: []byte(transfersBody)}, target)

	assert.Equal(t, ports.DecisionHandled, decision)
	html := target.String()
	assert.Contains(t, html, "5,000")
	// No cursor in the payload, so no follow-up control.
	assert.NotContains(t, html, "Load More")
	assert.Equal(t, 1, target.rescans)
}
