package server

import (
	_ "embed"
	"net/http"

	"github.com/VictoriaMetrics/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/websharper-samples/PeopleAPI/internal/config"
	"github.com/websharper-samples/PeopleAPI/internal/events"
	"github.com/websharper-samples/PeopleAPI/internal/handlers"
	"github.com/websharper-samples/PeopleAPI/internal/people"
)

//go:embed web/index.html
var indexPage []byte

// New creates a fully-configured chi router with all route groups,
// middleware, and handlers wired together.
func New(cfg *config.Config, store *people.Store, broker *events.Broker) http.Handler {
	r := chi.NewRouter()
	set := metrics.NewSet()

	// ── Middleware ───────────────────────────────────────────
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.RealIP)
	r.Use(requestID)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	if cfg.RateLimitRPS > 0 {
		r.Use(rateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst))
	}
	r.Use(meterRequests(set))

	// ── Handlers ────────────────────────────────────────────
	peopleH := handlers.NewPeopleHandler(store, broker)
	systemH := handlers.NewSystemHandler(store)
	eventsH := handlers.NewEventsHandler(broker)

	// ── Route groups ────────────────────────────────────────
	r.Get("/", handleIndex)
	r.Get("/metrics", func(w http.ResponseWriter, _ *http.Request) {
		set.WritePrometheus(w)
		metrics.WriteProcessMetrics(w)
	})

	r.Route("/api/people", peopleH.Routes)
	r.Route("/api/system", systemH.Routes)
	r.Route("/api/events", eventsH.Routes)

	return r
}

func handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(indexPage)
}
