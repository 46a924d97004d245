package middleware

import (
	"fmt"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/phrazzld/crm-mobile-api/internal/api/shared"
)

// TooManyRequestsMessage is the body message for 429 responses.
const TooManyRequestsMessage = "Too Many Attempts."

// limiterTTL is how long an idle client's limiter is kept.
const limiterTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles requests per client with a token bucket. Clients
// are keyed by staff id once authenticated and by IP otherwise.
type RateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	limit     rate.Limit
	burst     int
	perMinute int
	lastSweep time.Time

	// Now is the limiter's clock.
	Now func() time.Time
}

// NewRateLimiter allows perMinute requests per client with bursts of up to
// burst. A burst below 1 is raised to 1.
func NewRateLimiter(perMinute, burst int) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		visitors:  map[string]*visitor{},
		limit:     rate.Limit(float64(perMinute) / 60),
		burst:     burst,
		perMinute: perMinute,
		Now:       time.Now,
	}
}

// Handler answers 429 with a Retry-After header once a client exceeds its
// budget.
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientKey(r)
		wait := rl.reserve(key)

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.perMinute))
		if wait > 0 {
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
			shared.RespondWithErrorAndLog(w, r, http.StatusTooManyRequests, TooManyRequestsMessage,
				fmt.Errorf("rate limit exceeded for %s", key))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// reserve takes a token for key. It returns zero when the request may
// proceed, or how long the client has to wait.
func (rl *RateLimiter) reserve(key string) time.Duration {
	now := rl.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.sweep(now)
	v, ok := rl.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = now

	res := v.limiter.ReserveN(now, 1)
	if !res.OK() {
		return time.Minute
	}
	if delay := res.DelayFrom(now); delay > 0 {
		res.CancelAt(now)
		return delay
	}
	return 0
}

// sweep drops idle visitors. Callers hold rl.mu.
func (rl *RateLimiter) sweep(now time.Time) {
	if now.Sub(rl.lastSweep) < limiterTTL {
		return
	}
	for key, v := range rl.visitors {
		if now.Sub(v.lastSeen) > limiterTTL {
			delete(rl.visitors, key)
		}
	}
	rl.lastSweep = now
}

// Len reports how many clients are being tracked.
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.visitors)
}

func clientKey(r *http.Request) string {
	if id, ok := shared.StaffID(r.Context()); ok {
		return "staff:" + strconv.FormatInt(id, 10)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}
