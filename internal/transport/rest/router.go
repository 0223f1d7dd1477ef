package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/morse-resistance/internal/transport/middleware"
)

// RouterDeps are the handlers and settings the router mounts.
// WordLists may be nil when no database is configured.
type RouterDeps struct {
	Logger          *slog.Logger
	Health          *HealthHandler
	Decode          *DecodeHandler
	WordLists       *WordListHandler
	RateLimiter     *middleware.RateLimiter
	DecodePerMinute int
	MaxBodyBytes    int64
}

// NewRouter builds the HTTP handler: probes are unwrapped, API routes go
// through request id, logging, panic recovery and a body limit, and /decode
// is additionally rate limited.
func NewRouter(deps RouterDeps) http.Handler {
	api := middleware.API(deps.Logger, deps.MaxBodyBytes)

	limited := func(h http.Handler) http.Handler { return h }
	if deps.RateLimiter != nil {
		limited = deps.RateLimiter.Limit(deps.DecodePerMinute)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", deps.Health.Live)
	mux.HandleFunc("GET /ready", deps.Health.Ready)
	mux.HandleFunc("GET /health", deps.Health.Health)

	mux.Handle("POST /decode", api(limited(http.HandlerFunc(deps.Decode.Decode))))

	if deps.WordLists != nil {
		mux.Handle("GET /word-lists", api(http.HandlerFunc(deps.WordLists.List)))
		mux.Handle("POST /word-lists", api(http.HandlerFunc(deps.WordLists.Create)))
		mux.Handle("DELETE /word-lists/{name}", api(http.HandlerFunc(deps.WordLists.Delete)))
		mux.Handle("GET /word-lists/{name}/runs", api(http.HandlerFunc(deps.WordLists.Runs)))
	}

	return mux
}

// NewServer wraps handler in an *http.Server with the configured timeouts.
func NewServer(addr string, handler http.Handler, read, write, idle time.Duration) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       read,
		ReadHeaderTimeout: read,
		WriteTimeout:      write,
		IdleTimeout:       idle,
	}
}
