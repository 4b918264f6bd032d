package site

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/warehousepro/landing/internal/structpages"
)

const limiterIdle = 10 * time.Minute

// FormLimiter limits form posts per client address. Each form has its own
// bucket per client, so posting one form does not use up another's allowance.
type FormLimiter struct {
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	clients   map[string]*client
	lastSweep time.Time
	now       func() time.Time
}

type client struct {
	limiter *rate.Limiter
	seen    time.Time
}

// NewFormLimiter allows perMinute posts per client with bursts of burst.
func NewFormLimiter(perMinute float64, burst int) *FormLimiter {
	return &FormLimiter{
		limit:   rate.Limit(perMinute / 60),
		burst:   burst,
		clients: make(map[string]*client),
		now:     time.Now,
	}
}

// DraftLimiter limits the demo form's draft saves. They fire on every field
// change, so they get their own, looser limit than submissions.
type DraftLimiter struct {
	*FormLimiter
}

func NewDraftLimiter(perMinute float64, burst int) *DraftLimiter {
	return &DraftLimiter{FormLimiter: NewFormLimiter(perMinute, burst)}
}

// Allow reports whether the client identified by key may post form now.
func (l *FormLimiter) Allow(form, key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > limiterIdle {
		for k, c := range l.clients {
			if now.Sub(c.seen) > limiterIdle {
				delete(l.clients, k)
			}
		}
		l.lastSweep = now
	}
	key = form + " " + key
	c, ok := l.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = c
	}
	c.seen = now
	return c.limiter.AllowN(now, 1)
}

// retryAfter is the number of seconds until one more post is allowed.
func (l *FormLimiter) retryAfter() int {
	if l.limit <= 0 {
		return 60
	}
	return int(1/float64(l.limit)) + 1
}

// Middleware rejects posts to form over the limit with 429. onLimited, if
// set, is called for every rejected request.
func (l *FormLimiter) Middleware(form string, onLimited func(*http.Request)) structpages.MiddlewareFunc {
	return func(next http.Handler, _ *structpages.PageNode) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.Allow(form, clientKey(r)) {
				if onLimited != nil {
					onLimited(r)
				}
				w.Header().Set("Retry-After", strconv.Itoa(l.retryAfter()))
				writeError(w, r, http.StatusTooManyRequests, "Too many submissions. Please wait a minute and try again.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientKey is the client address without the port. middleware.RealIP has
// already replaced RemoteAddr when a proxy header was present.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
