package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ukaji3/sheetserve/internal/middleware"
)

// RouterConfig carries the middleware settings for NewRouter.
type RouterConfig struct {
	RateLimitRPS       float64
	RateLimitBurst     int
	CORSAllowedOrigins []string
}

// NewRouter assembles the chi router for h with the standard middleware
// chain: request IDs, request logging, panic recovery, CORS and per-client
// rate limiting.
func NewRouter(h *Handler, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(h.logger))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))
	r.Use(middleware.RateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst))

	r.Get("/", h.Root)
	r.Get("/list_tables", h.ListTables)
	r.Get("/get_table_details", h.TableDetails)
	r.Get("/row_sum", h.RowSum)
	r.Get("/health", h.Health)

	return r
}
