package handler

import (
	"bytes"
	"net/http"
	"net/url"
	"time"

	"ledger-explorer/internal/core/ports"
	"ledger-explorer/pkg/apperror"
	"ledger-explorer/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// allowedQueryParams are the only query parameters forwarded upstream.
var allowedQueryParams = []string{"limit", "ledger", "code", "reversed", "after_timestamp"}

// ProxyHandler forwards explorer API requests to the upstream ledger API.
// Responses to requests made by the DOM-patching engine run through the
// interceptor first; when it claims the payload, the client receives the
// rendered table instead of JSON. Everything else is passed through raw.
type ProxyHandler struct {
	fetcher     ports.RawFetcher
	cache       ports.PageCache // nil = caching disabled
	cacheTTL    time.Duration
	interceptor ports.Interceptor
	log         zerolog.Logger
}

// NewProxyHandler creates the proxy handler.
func NewProxyHandler(fetcher ports.RawFetcher, cache ports.PageCache, cacheTTL time.Duration, interceptor ports.Interceptor, log zerolog.Logger) *ProxyHandler {
	return &ProxyHandler{
		fetcher:     fetcher,
		cache:       cache,
		cacheTTL:    cacheTTL,
		interceptor: interceptor,
		log:         log,
	}
}

// ListAccounts handles GET /api/v1/accounts.
func (h *ProxyHandler) ListAccounts(c *gin.Context) {
	h.proxy(c, "/api/v1/accounts")
}

// GetAccount handles GET /api/v1/accounts/:id.
func (h *ProxyHandler) GetAccount(c *gin.Context) {
	id := c.Param("id")
	if !validID(id) {
		h.respondError(c, apperror.ErrInvalidID(id))
		return
	}
	h.proxy(c, "/api/v1/accounts/"+url.PathEscape(id))
}

// AccountTransfers handles GET /api/v1/accounts/:id/transfers.
func (h *ProxyHandler) AccountTransfers(c *gin.Context) {
	id := c.Param("id")
	if !validID(id) {
		h.respondError(c, apperror.ErrInvalidID(id))
		return
	}
	h.proxy(c, "/api/v1/accounts/"+url.PathEscape(id)+"/transfers")
}

// AccountBalances handles GET /api/v1/accounts/:id/balances.
func (h *ProxyHandler) AccountBalances(c *gin.Context) {
	id := c.Param("id")
	if !validID(id) {
		h.respondError(c, apperror.ErrInvalidID(id))
		return
	}
	h.proxy(c, "/api/v1/accounts/"+url.PathEscape(id)+"/balances")
}

// ListTransfers handles GET /api/v1/transfers.
func (h *ProxyHandler) ListTransfers(c *gin.Context) {
	h.proxy(c, "/api/v1/transfers")
}

// GetTransfer handles GET /api/v1/transfers/:id.
func (h *ProxyHandler) GetTransfer(c *gin.Context) {
	id := c.Param("id")
	if !validID(id) {
		h.respondError(c, apperror.ErrInvalidID(id))
		return
	}
	h.proxy(c, "/api/v1/transfers/"+url.PathEscape(id))
}

func (h *ProxyHandler) proxy(c *gin.Context, path string) {
	ctx := c.Request.Context()
	query := filterQuery(c.Request.URL.Query())

	cacheKey := path
	if enc := query.Encode(); enc != "" {
		cacheKey += "?" + enc
	}

	res := h.cachedResult(c, cacheKey)
	if res == nil {
		fetched, err := h.fetcher.Fetch(ctx, path, query)
		if err != nil {
			h.respondError(c, err)
			return
		}
		res = fetched

		if h.cache != nil && h.cacheTTL > 0 && res.Status == http.StatusOK {
			if err := h.cache.Set(ctx, cacheKey, res.Body, h.cacheTTL); err != nil {
				h.log.Warn().Err(err).Str("key", cacheKey).Msg("page cache set failed")
			}
		}
	}

	if isEngineRequest(c) {
		target := &responseTarget{}
		if h.interceptor.Intercept(ports.SwapEvent{ContentType: res.ContentType, Body: res.Body}, target) == ports.DecisionHandled {
			c.Data(http.StatusOK, "text/html; charset=utf-8", target.Bytes())
			return
		}
	}

	contentType := res.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	c.Data(res.Status, contentType, res.Body)
}

// cachedResult returns a synthetic 200 result on a cache hit, nil otherwise.
func (h *ProxyHandler) cachedResult(c *gin.Context, key string) *ports.RawResult {
	if h.cache == nil || h.cacheTTL <= 0 {
		return nil
	}
	body, err := h.cache.Get(c.Request.Context(), key)
	if err != nil {
		h.log.Warn().Err(err).Str("key", key).Msg("page cache get failed")
		return nil
	}
	if body == nil {
		return nil
	}
	return &ports.RawResult{Status: http.StatusOK, ContentType: "application/json", Body: body}
}

func (h *ProxyHandler) respondError(c *gin.Context, err error) {
	if isEngineRequest(c) {
		response.ErrorHTML(c, err)
		return
	}
	response.Error(c, err)
}

func filterQuery(in url.Values) url.Values {
	out := url.Values{}
	for _, key := range allowedQueryParams {
		if v := in.Get(key); v != "" {
			out.Set(key, v)
		}
	}
	return out
}

// isEngineRequest reports whether the request was issued by the browser's
// DOM-patching engine rather than a plain API client.
func isEngineRequest(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}

// responseTarget implements ports.RenderTarget over an in-memory buffer.
// Rescan is a no-op here: the engine re-scans swapped markup on the client
// side, so the server only needs to deliver it.
type responseTarget struct {
	bytes.Buffer
}

func (t *responseTarget) Rescan() {}
