package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	visitorTTL  = 10 * time.Minute
	maxVisitors = 4096
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter allows each client a fixed number of requests per minute with a
// burst of the same size. Clients are keyed by the connection's peer address;
// forwarding headers are honoured only when that peer is a trusted proxy.
type RateLimiter struct {
	logs           *zap.SugaredLogger
	perMinute      int
	trustedProxies []*net.IPNet
	now            func() time.Time

	mu       sync.Mutex
	visitors map[string]*visitor
}

func NewRateLimiter(logger *zap.SugaredLogger, perMinute int, trustedProxies []*net.IPNet, now func() time.Time) *RateLimiter {
	if now == nil {
		now = time.Now
	}
	return &RateLimiter{
		logs:           logger,
		perMinute:      perMinute,
		trustedProxies: trustedProxies,
		now:            now,
		visitors:       make(map[string]*visitor),
	}
}

func (l *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if l.perMinute <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		client := l.clientID(r)
		if !l.limiter(client).AllowN(l.now(), 1) {
			l.logs.Warnw("rate limit exceeded",
				"client", client,
				"path", r.URL.Path,
				"request_id", GetRequestID(r.Context()))
			w.Header().Set("Retry-After", "60")
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (l *RateLimiter) limiter(client string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if len(l.visitors) >= maxVisitors {
		for id, v := range l.visitors {
			if now.Sub(v.lastSeen) > visitorTTL {
				delete(l.visitors, id)
			}
		}
	}

	v, ok := l.visitors[client]
	if !ok {
		v = &visitor{
			limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(l.perMinute)), l.perMinute),
		}
		l.visitors[client] = v
	}
	v.lastSeen = now
	return v.limiter
}

func (l *RateLimiter) clientID(r *http.Request) string {
	peer, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		peer = r.RemoteAddr
	}
	if !l.trusted(net.ParseIP(peer)) {
		return peer
	}

	// walk the chain from the nearest hop, skipping our own proxies
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		hops := strings.Split(fwd, ",")
		for i := len(hops) - 1; i >= 0; i-- {
			ip := net.ParseIP(strings.TrimSpace(hops[i]))
			if ip == nil {
				break
			}
			if !l.trusted(ip) {
				return ip.String()
			}
		}
	}
	if ip := net.ParseIP(strings.TrimSpace(r.Header.Get("X-Real-IP"))); ip != nil {
		return ip.String()
	}
	return peer
}

func (l *RateLimiter) trusted(ip net.IP) bool {
	if ip == nil {
		return false
	}
	for _, n := range l.trustedProxies {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}
