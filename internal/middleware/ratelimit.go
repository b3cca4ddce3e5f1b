package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// client tracks one caller's token bucket. lastSeen is unix nanoseconds,
// written on every request and read by the sweeper.
type client struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

// RateLimiter enforces a per-client token-bucket limit of rps sustained
// requests per second with the given burst capacity. Rejected requests get
// 429 Too Many Requests with a Retry-After header.
func RateLimiter(rps float64, burst int) func(http.Handler) http.Handler {
	var clients sync.Map // map[string]*client

	// Sweep out clients that have gone quiet
	go func() {
		for {
			time.Sleep(5 * time.Minute)
			clients.Range(func(key, value any) bool {
				lastSeen := time.Unix(0, value.(*client).lastSeen.Load())
				if time.Since(lastSeen) > 10*time.Minute {
					clients.Delete(key)
				}
				return true
			})
		}
	}()

	limiterFor := func(ip string) *rate.Limiter {
		v, ok := clients.Load(ip)
		if !ok {
			// Concurrent first requests must end up sharing one limiter.
			v, _ = clients.LoadOrStore(ip, &client{
				limiter: rate.NewLimiter(rate.Limit(rps), burst),
			})
		}
		cl := v.(*client)
		cl.lastSeen.Store(time.Now().UnixNano())
		return cl.limiter
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limiter := limiterFor(clientIP(r))

			reservation := limiter.Reserve()
			if !reservation.OK() {
				writeTooManyRequests(w, 0)
				return
			}
			if delay := reservation.Delay(); delay > 0 {
				reservation.Cancel()
				writeTooManyRequests(w, int(delay.Seconds())+1)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(burst))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(int(limiter.Tokens())))
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP strips the port from RemoteAddr. Forwarded-for headers are not
// consulted; they are caller-controlled.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func writeTooManyRequests(w http.ResponseWriter, retryAfterSecs int) {
	if retryAfterSecs > 0 {
		w.Header().Set("Retry-After", strconv.Itoa(retryAfterSecs))
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusTooManyRequests)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"code":    http.StatusTooManyRequests,
		"message": "rate limit exceeded",
	})
}
