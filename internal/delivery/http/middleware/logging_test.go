package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// capturingHandler records the last log record for assertions.
type capturingHandler struct {
	record slog.Record
}

func (h *capturingHandler) Enabled(_ context.Context, _ slog.Level) bool { return true }

func (h *capturingHandler) Handle(_ context.Context, r slog.Record) error {
	h.record = r.Clone()
	return nil
}

func (h *capturingHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }

func (h *capturingHandler) WithGroup(_ string) slog.Handler { return h }

func recordAttrs(r slog.Record) map[string]slog.Value {
	attrs := make(map[string]slog.Value)
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value
		return true
	})
	return attrs
}

func TestLoggingMiddleware(t *testing.T) {
	var cap capturingHandler
	logger := slog.New(&cap)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data":{"id":"guest-1"}}`))
	})
	handler := LoggingMiddleware(logger, next)

	req := httptest.NewRequest(http.MethodPost, "http://test/admin/guests", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	require.Equal(t, "request", cap.record.Message)
	require.Equal(t, slog.LevelInfo, cap.record.Level)

	attrs := recordAttrs(cap.record)
	require.Equal(t, http.MethodPost, attrs["method"].String())
	require.Equal(t, "/admin/guests", attrs["path"].String())
	require.Equal(t, int64(http.StatusCreated), attrs["status"].Int64())
	require.Equal(t, int64(len(`{"data":{"id":"guest-1"}}`)), attrs["bytes"].Int64())
	require.GreaterOrEqual(t, attrs["duration_ms"].Int64(), int64(0))
}

func TestLoggingMiddleware_DefaultStatus(t *testing.T) {
	var cap capturingHandler
	logger := slog.New(&cap)

	// Handler never calls WriteHeader; the log must still show 200.
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	handler := LoggingMiddleware(logger, next)

	req := httptest.NewRequest(http.MethodGet, "http://test/api/gifts", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	attrs := recordAttrs(cap.record)
	require.Equal(t, int64(http.StatusOK), attrs["status"].Int64())
}

func TestLoggingMiddleware_HealthProbeAtDebug(t *testing.T) {
	var cap capturingHandler
	logger := slog.New(&cap)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := LoggingMiddleware(logger, next)

	req := httptest.NewRequest(http.MethodGet, "http://test/healthz", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.Equal(t, slog.LevelDebug, cap.record.Level)
}
