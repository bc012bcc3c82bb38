package ports

import (
	"context"
	"net/url"
	"time"

	"ledger-explorer/internal/core/domain"
)

// ListQuery holds filter + cursor parameters for paginated listings.
type ListQuery struct {
	Ledger         uint32
	Code           uint16
	Limit          uint32
	Reversed       bool
	AfterTimestamp *uint64 // pagination cursor, passed through opaquely
}

// LedgerSource reads ledger records from the remote ledger API.
type LedgerSource interface {
	ListAccounts(ctx context.Context, q ListQuery) (*domain.AccountsPage, error)
	GetAccount(ctx context.Context, id string) (*domain.Account, error)
	ListTransfers(ctx context.Context, q ListQuery) (*domain.TransfersPage, error)
	GetTransfer(ctx context.Context, id string) (*domain.Transfer, error)
	AccountTransfers(ctx context.Context, id string, q ListQuery) (*domain.TransfersPage, error)
	AccountBalances(ctx context.Context, id string, limit uint32) ([]domain.BalanceSnapshot, error)
}

// RawResult is an undecoded upstream response.
type RawResult struct {
	Status      int
	ContentType string
	Body        []byte
}

// RawFetcher fetches upstream responses without decoding them. The proxy
// layer uses it to hand raw payloads to the response dispatcher.
type RawFetcher interface {
	Fetch(ctx context.Context, path string, query url.Values) (*RawResult, error)
}

// PageCache caches raw upstream pages by request key.
type PageCache interface {
	// Get returns the cached payload, or nil, nil on a miss.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
