package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// GlobalRateLimiter caps every route per IP over the configured window.
func (m *Middlewares) GlobalRateLimiter() func(next http.Handler) http.Handler {
	window := time.Duration(m.InternalConfig.App.MaxTimeRequestsPerSeconds) * time.Second
	if window <= 0 {
		window = time.Second
	}
	requests := m.InternalConfig.App.MaxRequests
	if requests <= 0 {
		requests = 100
	}
	return httprate.LimitByIP(requests, window)
}
