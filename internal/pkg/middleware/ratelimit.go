package middleware

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"mottufind/internal/pkg/cache"
	"mottufind/internal/pkg/logger"
)

// RateLimiter limita cada IP a limit requisições por janela de duration, contando no cache.
// O contador é incrementado antes da decisão; o primeiro incremento da janela define o TTL.
// Se o cache estiver indisponível a requisição segue sem limite.
func RateLimiter(client cache.Client, limit int, duration time.Duration, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := "rate-limit:" + clientIP(r)
			ctx := r.Context()

			count, err := client.Incr(ctx, key)
			if err != nil {
				log.Warn("Cache indisponível, rate limit ignorado.", map[string]interface{}{"error": err.Error()})
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				if err := client.Expire(ctx, key, duration); err != nil {
					log.Warn("Falha ao definir janela de rate limit.", map[string]interface{}{"error": err.Error()})
				}
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			if count > int64(limit) {
				w.Header().Set("X-RateLimit-Remaining", "0")
				w.Header().Set("Retry-After", strconv.Itoa(int(duration.Seconds())))
				http.Error(w, "Rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(int64(limit)-count, 10))
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP usa RemoteAddr, que o middleware RealIP do chi já ajusta atrás de proxy.
func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
