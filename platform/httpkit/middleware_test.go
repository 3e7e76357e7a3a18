package httpkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"monjoel_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

func requestIDEngine(seen *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/ping", func(c *gin.Context) {
		*seen, _ = c.Request.Context().Value(logger.RequestIDKey).(string)
		c.Status(http.StatusNoContent)
	})
	return engine
}

func TestRequestID_GeneratesWhenAbsent(t *testing.T) {
	var seen string
	engine := requestIDEngine(&seen)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if seen == "" {
		t.Fatalf("expected a request id in the handler context")
	}
	if got := rec.Header().Get(RequestIDHeader); got != seen {
		t.Fatalf("response header %q does not match context id %q", got, seen)
	}
}

func TestRequestID_HonorsInboundHeader(t *testing.T) {
	var seen string
	engine := requestIDEngine(&seen)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "trace-123")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if seen != "trace-123" {
		t.Fatalf("expected inbound id trace-123 in context, got %q", seen)
	}
	if got := rec.Header().Get(RequestIDHeader); got != "trace-123" {
		t.Fatalf("expected inbound id echoed in response, got %q", got)
	}
}
