package middleware

import (
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"insurance-office/internal/api/handler/dto"
	"insurance-office/internal/config"

	"golang.org/x/time/rate"
)

// limiterIdleTimeout is how long a client may stay quiet before its bucket is
// evicted; back-office sessions are long-lived, so this errs generous.
const limiterIdleTimeout = 10 * time.Minute

// clientLimiter pairs a token bucket with the last time its client was seen.
type clientLimiter struct {
	bucket   *rate.Limiter
	lastSeen time.Time
}

type RateLimiterMiddleware struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	cfg     config.RateLimitConfig
	logger  *slog.Logger
}

func NewRateLimiterMiddleware(cfg config.RateLimitConfig, logger *slog.Logger) *RateLimiterMiddleware {
	rl := &RateLimiterMiddleware{
		clients: make(map[string]*clientLimiter),
		cfg:     cfg,
		logger:  logger.With(slog.String("component", "RateLimiter")),
	}

	if cfg.Enabled {
		go rl.evictIdleClients()
	}

	return rl
}

func (rl *RateLimiterMiddleware) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	c, ok := rl.clients[ip]
	if !ok {
		c = &clientLimiter{bucket: rate.NewLimiter(rate.Limit(rl.cfg.RPS), rl.cfg.Burst)}
		rl.clients[ip] = c
	}
	c.lastSeen = time.Now()
	return c.bucket.Allow()
}

func (rl *RateLimiterMiddleware) evictIdleClients() {
	ticker := time.NewTicker(limiterIdleTimeout)
	defer ticker.Stop()

	for range ticker.C {
		rl.evictOlderThan(time.Now().Add(-limiterIdleTimeout))
	}
}

func (rl *RateLimiterMiddleware) evictOlderThan(cutoff time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for ip, c := range rl.clients {
		if c.lastSeen.Before(cutoff) {
			delete(rl.clients, ip)
		}
	}
}

// clientIP prefers proxy headers over the socket address; RealIP runs earlier
// in the chain but direct deployments skip it.
func clientIP(r *http.Request) string {
	xff := r.Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}

	xRealIP := r.Header.Get("X-Real-IP")
	if xRealIP != "" {
		return xRealIP
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func (rl *RateLimiterMiddleware) Middleware(next http.Handler) http.Handler {
	if !rl.cfg.Enabled {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)

		if !rl.allow(ip) {
			rl.logger.WarnContext(r.Context(), "Rate limit exceeded", slog.String("ip", ip))
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			json.NewEncoder(w).Encode(dto.ErrorResponse{
				Error: dto.ErrorDetail{Message: "Rate limit exceeded"},
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}
