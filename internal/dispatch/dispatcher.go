// Package dispatch intercepts pre-swap payloads from the DOM-patching
// engine and routes recognized ledger collections to the table renderer,
// suppressing the engine's default substitution for exactly those events.
package dispatch

import (
	"encoding/json"
	"fmt"
	"mime"
	"strings"

	"ledger-explorer/internal/core/domain"
	"ledger-explorer/internal/core/ports"

	"github.com/rs/zerolog"
)

// PayloadKind discriminates classified upstream payloads.
type PayloadKind int

const (
	KindUnrecognized PayloadKind = iota
	KindAccounts
	KindTransfers
)

// Payload is the tagged result of classifying an upstream JSON body.
type Payload struct {
	Kind      PayloadKind
	Accounts  *domain.AccountsPage
	Transfers *domain.TransfersPage
}

// Classify decodes an upstream JSON body into a tagged payload. The
// discriminator is the collection key: a present "accounts" key wins over
// "transfers"; neither yields KindUnrecognized. Key presence is decided
// by the decoded schema, an empty collection still classifies.
func Classify(body []byte) (*Payload, error) {
	var env struct {
		Accounts      json.RawMessage `json:"accounts"`
		Transfers     json.RawMessage `json:"transfers"`
		NextTimestamp *uint64         `json:"next_timestamp"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decoding payload envelope: %w", err)
	}

	switch {
	case env.Accounts != nil:
		var accounts []domain.Account
		if err := json.Unmarshal(env.Accounts, &accounts); err != nil {
			return nil, fmt.Errorf("decoding accounts collection: %w", err)
		}
		return &Payload{
			Kind:     KindAccounts,
			Accounts: &domain.AccountsPage{Accounts: accounts, NextTimestamp: env.NextTimestamp},
		}, nil
	case env.Transfers != nil:
		var transfers []domain.Transfer
		if err := json.Unmarshal(env.Transfers, &transfers); err != nil {
			return nil, fmt.Errorf("decoding transfers collection: %w", err)
		}
		return &Payload{
			Kind:      KindTransfers,
			Transfers: &domain.TransfersPage{Transfers: transfers, NextTimestamp: env.NextTimestamp},
		}, nil
	default:
		return &Payload{Kind: KindUnrecognized}, nil
	}
}

// Dispatcher implements ports.Interceptor.
type Dispatcher struct {
	tables ports.TableRenderer
	log    zerolog.Logger
}

// NewDispatcher creates the response dispatcher.
func NewDispatcher(tables ports.TableRenderer, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{tables: tables, log: log}
}

// Intercept classifies the event's payload and, for known ledger
// collections, writes the rendered table into the target and requests a
// re-scan. Everything else passes through so default substitution
// proceeds; parse failures are logged and pass through (fail-open).
func (d *Dispatcher) Intercept(event ports.SwapEvent, target ports.RenderTarget) ports.Decision {
	if !isJSON(event.ContentType) {
		return ports.DecisionPassthrough
	}

	payload, err := Classify(event.Body)
	if err != nil {
		d.log.Warn().Err(err).Msg("unparseable swap payload, passing through")
		return ports.DecisionPassthrough
	}

	var html string
	switch payload.Kind {
	case KindAccounts:
		html, err = d.tables.RenderAccountsTable(payload.Accounts)
	case KindTransfers:
		html, err = d.tables.RenderTransfersTable(payload.Transfers)
	default:
		return ports.DecisionPassthrough
	}
	if err != nil {
		d.log.Error().Err(err).Msg("table render failed, passing through")
		return ports.DecisionPassthrough
	}

	if _, err := target.Write([]byte(html)); err != nil {
		d.log.Error().Err(err).Msg("writing rendered table failed")
		return ports.DecisionPassthrough
	}
	// The engine must re-scan the injected markup for its declarative
	// attributes, or the pagination control goes dead.
	target.Rescan()
	return ports.DecisionHandled
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
