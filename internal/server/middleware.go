package server

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// requestIDHeader is echoed back to clients and attached to log lines.
const requestIDHeader = "X-Request-Id"

// requestID assigns a fresh uuid to every request that arrives without one.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(requestIDHeader, id)
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

// requestLogger is a simple middleware that logs each HTTP request with
// method, path, status code, and duration.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		// Only log API requests to reduce noise from page loads and
		// metrics scrapes.
		if strings.HasPrefix(r.URL.Path, "/api/") {
			duration := time.Since(start)
			status := ww.Status()
			if status == 0 {
				status = 200
			}
			log.Printf("%s %s %d %s rid=%s",
				r.Method,
				r.URL.Path,
				status,
				duration.Round(time.Millisecond),
				r.Header.Get(requestIDHeader),
			)
		}
	})
}

// rateLimiter enforces a per-client token bucket: rps tokens per second up
// to burst. Clients over the limit get 429 with the standard failure body.
func rateLimiter(rps, burst int) func(http.Handler) http.Handler {
	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)
	clientLimiter := func(addr string) *rate.Limiter {
		// RealIP has already rewritten RemoteAddr when the request came
		// through a proxy, so addr may or may not carry a port.
		host, _, err := net.SplitHostPort(addr)
		if err != nil {
			host = addr
		}

		mu.Lock()
		defer mu.Unlock()
		lim, ok := limiters[host]
		if !ok {
			lim = rate.NewLimiter(rate.Limit(rps), burst)
			limiters[host] = lim
		}
		return lim
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !clientLimiter(r.RemoteAddr).Allow() {
				http.Error(w, `{"result":"failure","message":"Too many requests."}`, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

var durationBuckets = metrics.ExponentialBuckets(1e-3, 5, 6)

// meterRequests records a request counter and a duration histogram per
// route pattern, method and status. Patterns keep label cardinality bounded
// regardless of the ids clients ask for.
func meterRequests(set *metrics.Set) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			pattern := chi.RouteContext(r.Context()).RoutePattern()
			if pattern == "" {
				pattern = "unmatched"
			}
			status := ww.Status()
			if status == 0 {
				status = 200
			}
			labels := fmt.Sprintf(`{method="%s",path="%s",status="%d"}`, r.Method, pattern, status)
			set.GetOrCreateCounter(`http_requests_total` + labels).Inc()
			set.GetOrCreatePrometheusHistogramExt(`http_request_duration_seconds`+labels, durationBuckets).UpdateDuration(start)
		})
	}
}
