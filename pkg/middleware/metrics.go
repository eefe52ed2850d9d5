package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/meta-ads-platform-api/pkg/metrics"
)

// Metrics registra contagem e duração por rota. Recebe o padrão da rota
// (ex.: /api/meta/account/:account_id/campaigns) para não explodir a cardinalidade.
func Metrics(method, route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startTime := time.Now()
			lrw := newLoggingResponseWriter(w)

			next.ServeHTTP(lrw, r)

			metrics.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(lrw.statusCode)).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(startTime).Seconds())
		})
	}
}
