package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, arg ...any)                     {}
func (nopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Info(ctx context.Context, arg ...any)                     {}
func (nopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (nopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Error(ctx context.Context, arg ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (nopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (nopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func newTestRouter(rateLimitPerMin int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := New(nopLogger{}, rateLimitPerMin)
	r := gin.New()
	r.GET("/ping", mw.RateLimit(), func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func doGet(r *gin.Engine) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.1:12345"
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimit(t *testing.T) {
	t.Run("disabled when limit is zero", func(t *testing.T) {
		r := newTestRouter(0)
		for i := 0; i < 50; i++ {
			if code := doGet(r); code != http.StatusOK {
				t.Fatalf("request %d: got %d, want %d", i, code, http.StatusOK)
			}
		}
	})

	t.Run("trips after burst is exhausted", func(t *testing.T) {
		// 60 req/min gives a burst of 6
		r := newTestRouter(60)

		tripped := false
		for i := 0; i < 20; i++ {
			if doGet(r) == http.StatusTooManyRequests {
				tripped = true
				break
			}
		}
		if !tripped {
			t.Error("expected a 429 after exhausting the burst")
		}
	})
}
