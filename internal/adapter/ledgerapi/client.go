// Package ledgerapi implements the outbound client for the ledger query API.
package ledgerapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"ledger-explorer/internal/core/domain"
	"ledger-explorer/internal/core/ports"
	"ledger-explorer/pkg/apperror"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
)

// Client talks to the upstream ledger API over HTTP. It retries transient
// failures with exponential backoff; 4xx responses are never retried.
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries uint64
	log        zerolog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithMaxRetries sets the number of retry attempts for transient failures.
func WithMaxRetries(n uint64) Option {
	return func(c *Client) { c.maxRetries = n }
}

// NewClient creates a ledger API client.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		maxRetries: 3,
		log:        log.With().Str("component", "ledgerapi").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch implements ports.RawFetcher. The body is returned undecoded so the
// caller can classify or pass it through verbatim.
func (c *Client) Fetch(ctx context.Context, path string, query url.Values) (*ports.RawResult, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var result *ports.RawResult
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err // transient, retry
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("upstream status %d", resp.StatusCode)
		}

		result = &ports.RawResult{
			Status:      resp.StatusCode,
			ContentType: resp.Header.Get("Content-Type"),
			Body:        body,
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(newBackOff(), c.maxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		c.log.Error().Err(err).Str("path", path).Msg("ledger API request failed")
		return nil, apperror.ErrUpstreamUnavailable(err)
	}
	return result, nil
}

func newBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.MaxInterval = 2 * time.Second
	b.MaxElapsedTime = 15 * time.Second
	return b
}

// getJSON fetches path and decodes a 2xx body into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	res, err := c.Fetch(ctx, path, query)
	if err != nil {
		return err
	}
	if res.Status == http.StatusNotFound {
		return apperror.ErrNotFound(entityForPath(path))
	}
	if res.Status < http.StatusOK || res.Status >= http.StatusMultipleChoices {
		return apperror.ErrUpstreamStatus(res.Status)
	}
	if err := json.Unmarshal(res.Body, out); err != nil {
		return apperror.ErrUpstreamDecode(err)
	}
	return nil
}

func entityForPath(path string) string {
	if strings.Contains(path, "/transfers") {
		return "Transfer"
	}
	return "Account"
}

func listQueryValues(q ports.ListQuery) url.Values {
	v := url.Values{}
	if q.Limit > 0 {
		v.Set("limit", strconv.FormatUint(uint64(q.Limit), 10))
	}
	if q.Ledger > 0 {
		v.Set("ledger", strconv.FormatUint(uint64(q.Ledger), 10))
	}
	if q.Code > 0 {
		v.Set("code", strconv.FormatUint(uint64(q.Code), 10))
	}
	if q.Reversed {
		v.Set("reversed", "true")
	}
	if q.AfterTimestamp != nil {
		v.Set("after_timestamp", strconv.FormatUint(*q.AfterTimestamp, 10))
	}
	return v
}

// ListAccounts implements ports.LedgerSource.
func (c *Client) ListAccounts(ctx context.Context, q ports.ListQuery) (*domain.AccountsPage, error) {
	var page domain.AccountsPage
	if err := c.getJSON(ctx, "/api/v1/accounts", listQueryValues(q), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetAccount implements ports.LedgerSource.
func (c *Client) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	var account domain.Account
	if err := c.getJSON(ctx, "/api/v1/accounts/"+url.PathEscape(id), nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// ListTransfers implements ports.LedgerSource.
func (c *Client) ListTransfers(ctx context.Context, q ports.ListQuery) (*domain.TransfersPage, error) {
	var page domain.TransfersPage
	if err := c.getJSON(ctx, "/api/v1/transfers", listQueryValues(q), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetTransfer implements ports.LedgerSource.
func (c *Client) GetTransfer(ctx context.Context, id string) (*domain.Transfer, error) {
	var transfer domain.Transfer
	if err := c.getJSON(ctx, "/api/v1/transfers/"+url.PathEscape(id), nil, &transfer); err != nil {
		return nil, err
	}
	return &transfer, nil
}

// AccountTransfers implements ports.LedgerSource.
func (c *Client) AccountTransfers(ctx context.Context, id string, q ports.ListQuery) (*domain.TransfersPage, error) {
	var page domain.TransfersPage
	path := "/api/v1/accounts/" + url.PathEscape(id) + "/transfers"
	if err := c.getJSON(ctx, path, listQueryValues(q), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// AccountBalances implements ports.LedgerSource.
func (c *Client) AccountBalances(ctx context.Context, id string, limit uint32) ([]domain.BalanceSnapshot, error) {
	v := url.Values{}
	if limit > 0 {
		v.Set("limit", strconv.FormatUint(uint64(limit), 10))
	}
	var history domain.BalanceHistory
	path := "/api/v1/accounts/" + url.PathEscape(id) + "/balances"
	if err := c.getJSON(ctx, path, v, &history); err != nil {
		return nil, err
	}
	return history.Balances, nil
}

// Ping implements ports.HealthChecker against the upstream listing endpoint.
func (c *Client) Ping(ctx context.Context) error {
	v := url.Values{}
	v.Set("limit", "1")
	res, err := c.Fetch(ctx, "/api/v1/accounts", v)
	if err != nil {
		return err
	}
	if res.Status < http.StatusOK || res.Status >= http.StatusMultipleChoices {
		return apperror.ErrUpstreamStatus(res.Status)
	}
	return nil
}

// Name implements ports.HealthChecker.
func (c *Client) Name() string {
	return "ledger-api"
}
