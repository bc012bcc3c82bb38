package handler

import (
	"time"

	"ledger-explorer/internal/adapter/http/middleware"
	redisStore "ledger-explorer/internal/adapter/storage/redis"
	"ledger-explorer/internal/core/ports"
	"ledger-explorer/internal/render"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Ledger         ports.LedgerSource
	Fetcher        ports.RawFetcher
	Tables         ports.TableRenderer
	Chart          ports.ChartController
	Surfaces       *render.SurfaceMap
	Interceptor    ports.Interceptor
	PageCache      ports.PageCache // nil = page caching disabled
	CacheTTL       time.Duration
	PageLimit      uint32
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))

	// Health check (deep — verifies ledger API + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// --- Pages (full HTML shells) ---
	pageHandler := NewPageHandler(deps.Ledger, deps.Tables, deps.PageLimit, deps.Logger)
	r.GET("/", rl("pages"), pageHandler.Dashboard)
	r.GET("/accounts", rl("pages"), pageHandler.Accounts)
	r.GET("/transfers", rl("pages"), pageHandler.Transfers)
	r.GET("/account/:id", rl("pages"), pageHandler.AccountDetail)
	r.GET("/transfer/:id", rl("pages"), pageHandler.TransferDetail)

	// --- Partials ---
	chartHandler := NewChartHandler(deps.Chart, deps.Surfaces)
	partials := r.Group("/partials")
	{
		partials.GET("/accounts/:id/chart", rl("chart"), chartHandler.BalanceChart)
		partials.GET("/stats/accounts", rl("pages"), pageHandler.AccountsStat)
		partials.GET("/stats/transfers", rl("pages"), pageHandler.TransfersStat)
	}

	// --- Proxy (upstream ledger API, dispatched through the interceptor) ---
	proxyHandler := NewProxyHandler(deps.Fetcher, deps.PageCache, deps.CacheTTL, deps.Interceptor, deps.Logger)
	v1 := r.Group("/api/v1", rl("proxy"))
	{
		v1.GET("/accounts", proxyHandler.ListAccounts)
		v1.GET("/accounts/:id", proxyHandler.GetAccount)
		v1.GET("/accounts/:id/transfers", proxyHandler.AccountTransfers)
		v1.GET("/accounts/:id/balances", proxyHandler.AccountBalances)
		v1.GET("/transfers", proxyHandler.ListTransfers)
		v1.GET("/transfers/:id", proxyHandler.GetTransfer)
	}

	return r
}
