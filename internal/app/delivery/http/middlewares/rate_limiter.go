package middlewares

import (
	"caremarket-service/internal/pkg/constvars"
	"caremarket-service/internal/pkg/exceptions"
	"caremarket-service/internal/pkg/utils"
	"errors"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
	"go.uber.org/zap"
)

// RateLimiter is a token bucket per client IP.
type RateLimiter struct {
	log       *zap.Logger
	limiters  map[string]*visitor
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	idleAfter time.Duration
	now       func() time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(logger *zap.Logger, perSecond, burst int) *RateLimiter {
	if perSecond <= 0 {
		perSecond = 1
	}
	if burst <= 0 {
		burst = perSecond
	}
	return &RateLimiter{
		log:       logger,
		limiters:  make(map[string]*visitor),
		limit:     rate.Limit(perSecond),
		burst:     burst,
		idleAfter: 10 * time.Minute,
		now:       time.Now,
	}
}

// MessageRateLimiter guards the message endpoint with the configured rate.
func (m *Middlewares) MessageRateLimiter() *RateLimiter {
	return NewRateLimiter(m.Log, m.InternalConfig.App.MessageRatePerSecond, m.InternalConfig.App.MessageRateBurst)
}

func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !rl.allow(ip) {
			rl.log.Warn("RateLimiter.Limit rejected request",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.String(constvars.LoggingRemoteAddrKey, ip),
			)
			w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(1))
			utils.BuildErrorResponse(rl.log, w, exceptions.ErrTooManyRequests(errors.New("rate limit exceeded for "+ip)))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(ip string) bool {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, v := range rl.limiters {
		if now.Sub(v.lastSeen) > rl.idleAfter {
			delete(rl.limiters, key)
		}
	}

	v, ok := rl.limiters[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[ip] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// clientIP keys on the connection address only. Forwarded headers are
// honoured when chi's RealIP runs in front, which rewrites RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
