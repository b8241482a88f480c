package middleware

import (
	"net/http"
	"time"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RequestObserver . RequestObserver
type RequestObserver interface {
	ObserveRequest(route string, code int, elapsed time.Duration)
}

type MetricsMiddleware struct {
	observer RequestObserver
}

func NewMetricsMiddleware(observer RequestObserver) *MetricsMiddleware {
	return &MetricsMiddleware{observer: observer}
}

// Metrics records the status and latency of next under the route label.
func (m *MetricsMiddleware) Metrics(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newStatusRecorder(w)

		next.ServeHTTP(rec, r)

		m.observer.ObserveRequest(route, rec.status, time.Since(start))
	})
}
