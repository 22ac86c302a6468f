package http

import (
	"net"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

func RateLimitMiddleware(limiter *RateLimiter, logger *logrus.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			ip, _, _ := net.SplitHostPort(r.RemoteAddr)

			if !limiter.Allow(ip) {
				logger.Warnf("rate limit exceeded for %s on %s", ip, r.URL.Path)
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
