package middleware_test

import (
	"net"
	"net/http"
	"net/http/httptest"
	"time"

	"paygate/internal/http/handler/middleware"
	"paygate/internal/http/handler/middleware/fake"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("RequestID", func() {
	var (
		seen    string
		handler http.Handler
	)

	BeforeEach(func() {
		seen = ""
		handler = middleware.NewRequestIDMiddleware().RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = middleware.GetRequestID(r.Context())
		}))
	})

	It("generates an id", func() {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		_, err := uuid.Parse(seen)
		Expect(err).NotTo(HaveOccurred())
		Expect(w.Header().Get("X-Request-ID")).To(Equal(seen))
	})

	It("keeps a valid caller id", func() {
		id := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", id)

		handler.ServeHTTP(httptest.NewRecorder(), req)
		Expect(seen).To(Equal(id))
	})

	It("replaces a caller id that is not a uuid", func() {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "<script>")

		handler.ServeHTTP(httptest.NewRecorder(), req)
		Expect(seen).NotTo(Equal("<script>"))
	})
})

var _ = Describe("Metrics", func() {
	It("observes the route and status", func() {
		observer := new(fake.RequestObserver)
		handler := middleware.NewMetricsMiddleware(observer).Metrics("GET /x", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))

		Expect(observer.ObserveRequestCallCount()).To(Equal(1))
		route, code, _ := observer.ObserveRequestArgsForCall(0)
		Expect(route).To(Equal("GET /x"))
		Expect(code).To(Equal(http.StatusTeapot))
	})
})

var _ = Describe("Logging", func() {
	It("passes the request through", func() {
		called := false
		handler := middleware.NewLoggingMiddleware(zap.NewNop().Sugar()).Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		Expect(called).To(BeTrue())
	})
})

var _ = Describe("RateLimiter", func() {
	var (
		now     time.Time
		limiter *middleware.RateLimiter
		handler http.Handler
	)

	serveWith := func(remote string, headers map[string]string) int {
		req := httptest.NewRequest(http.MethodPost, "/paygate/payments", nil)
		req.RemoteAddr = remote
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w.Code
	}

	serve := func(remote string) int {
		return serveWith(remote, nil)
	}

	withProxies := func(cidrs ...string) {
		var nets []*net.IPNet
		for _, c := range cidrs {
			_, n, err := net.ParseCIDR(c)
			Expect(err).NotTo(HaveOccurred())
			nets = append(nets, n)
		}
		limiter = middleware.NewRateLimiter(zap.NewNop().Sugar(), 2, nets, func() time.Time { return now })
		handler = limiter.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
	}

	BeforeEach(func() {
		now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		limiter = middleware.NewRateLimiter(zap.NewNop().Sugar(), 2, nil, func() time.Time { return now })
		handler = limiter.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
	})

	It("rejects a client over its budget", func() {
		Expect(serve("10.0.0.1:1234")).To(Equal(http.StatusOK))
		Expect(serve("10.0.0.1:1234")).To(Equal(http.StatusOK))
		Expect(serve("10.0.0.1:4321")).To(Equal(http.StatusTooManyRequests))
	})

	It("tracks clients separately", func() {
		Expect(serve("10.0.0.1:1234")).To(Equal(http.StatusOK))
		Expect(serve("10.0.0.1:1234")).To(Equal(http.StatusOK))
		Expect(serve("10.0.0.2:1234")).To(Equal(http.StatusOK))
	})

	It("refills over time", func() {
		Expect(serve("10.0.0.1:1234")).To(Equal(http.StatusOK))
		Expect(serve("10.0.0.1:1234")).To(Equal(http.StatusOK))
		Expect(serve("10.0.0.1:1234")).To(Equal(http.StatusTooManyRequests))

		now = now.Add(30 * time.Second)
		Expect(serve("10.0.0.1:1234")).To(Equal(http.StatusOK))
	})

	It("ignores forwarding headers from untrusted peers", func() {
		Expect(serveWith("10.0.0.1:1234", map[string]string{"X-Forwarded-For": "1.1.1.1"})).To(Equal(http.StatusOK))
		Expect(serveWith("10.0.0.1:1234", map[string]string{"X-Real-IP": "2.2.2.2"})).To(Equal(http.StatusOK))
		Expect(serveWith("10.0.0.1:1234", map[string]string{"X-Forwarded-For": "3.3.3.3"})).To(Equal(http.StatusTooManyRequests))
	})

	When("the peer is a trusted proxy", func() {
		BeforeEach(func() {
			withProxies("10.0.0.0/8")
		})

		It("keys on the forwarded client", func() {
			Expect(serveWith("10.0.0.1:1234", map[string]string{"X-Forwarded-For": "1.1.1.1"})).To(Equal(http.StatusOK))
			Expect(serveWith("10.0.0.2:1234", map[string]string{"X-Forwarded-For": "1.1.1.1"})).To(Equal(http.StatusOK))
			Expect(serveWith("10.0.0.1:1234", map[string]string{"X-Forwarded-For": "1.1.1.1"})).To(Equal(http.StatusTooManyRequests))
			Expect(serveWith("10.0.0.1:1234", map[string]string{"X-Forwarded-For": "4.4.4.4"})).To(Equal(http.StatusOK))
		})

		It("does not let the client choose its key through a spoofed leftmost hop", func() {
			for _, spoofed := range []string{"5.5.5.5", "6.6.6.6", "7.7.7.7"} {
				serveWith("10.0.0.1:1234", map[string]string{"X-Forwarded-For": spoofed + ", 1.1.1.1, 10.0.0.9"})
			}
			Expect(serveWith("10.0.0.1:1234", map[string]string{"X-Forwarded-For": "8.8.8.8, 1.1.1.1"})).To(Equal(http.StatusTooManyRequests))
		})

		It("falls back to X-Real-IP", func() {
			Expect(serveWith("10.0.0.1:1234", map[string]string{"X-Real-IP": "9.9.9.9"})).To(Equal(http.StatusOK))
			Expect(serveWith("10.0.0.1:1234", map[string]string{"X-Real-IP": "9.9.9.9"})).To(Equal(http.StatusOK))
			Expect(serveWith("10.0.0.1:1234", map[string]string{"X-Real-IP": "9.9.9.9"})).To(Equal(http.StatusTooManyRequests))
		})
	})

	It("is disabled with a zero budget", func() {
		limiter = middleware.NewRateLimiter(zap.NewNop().Sugar(), 0, nil, nil)
		handler = limiter.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		for range 5 {
			Expect(serve("10.0.0.1:1234")).To(Equal(http.StatusOK))
		}
	})
})
