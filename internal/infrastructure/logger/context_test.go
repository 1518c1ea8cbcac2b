package logger

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithContext_RoundTrip(t *testing.T) {
	logger := zap.NewNop()
	ctx := WithContext(context.Background(), logger)

	assert.Same(t, logger, FromContext(ctx))
}

func TestFromContext_Missing(t *testing.T) {
	logger := FromContext(context.Background())

	assert.NotNil(t, logger)
	// must be safe to use
	logger.Info("no-op")
}

func TestWithRequestID(t *testing.T) {
	ctx, _ := WithRequestID(context.Background(), zap.NewNop(), "req-123")

	assert.Equal(t, "req-123", GetRequestID(ctx))
}

func TestWithAdminID(t *testing.T) {
	ctx, _ := WithAdminID(context.Background(), zap.NewNop(), "42")

	assert.Equal(t, "42", GetAdminID(ctx))
}

func TestWithLang(t *testing.T) {
	ctx := WithLang(context.Background(), "ru")

	assert.Equal(t, "ru", GetLang(ctx))
	assert.Empty(t, GetLang(context.Background()))
}

func TestGetTraceID_NoSpan(t *testing.T) {
	assert.Empty(t, GetTraceID(context.Background()))
	assert.Empty(t, GetSpanID(context.Background()))
}

func TestContextLogger_InjectsContextFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	ctx := WithContext(context.Background(), logger)
	ctx, _ = WithRequestID(ctx, logger, "req-7")
	ctx, _ = WithAdminID(ctx, logger, "1")

	L(ctx).Info("category created")

	entries := logs.All()
	assert.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "req-7", fields["request_id"])
	assert.Equal(t, "1", fields["admin_id"])
}

func TestContextLogger_WithLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	WithLogger(context.Background(), logger).
		With(zap.String("slug", "smart-watch")).
		Info("product updated")

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "smart-watch", entries[0].ContextMap()["slug"])
}

func TestContextKeys_Distinct(t *testing.T) {
	keys := []contextKey{LoggerKey, RequestIDKey, AdminIDKey, LangKey}
	seen := make(map[contextKey]bool)
	for _, k := range keys {
		assert.False(t, seen[k], "duplicate context key %q", k)
		seen[k] = true
	}
}

func TestContextLogger_NilLoggerSafe(t *testing.T) {
	cl := &ContextLogger{ctx: context.Background()}

	assert.NotPanics(t, func() {
		cl.Info("still works")
	})
}

func TestWithTraceContext_NoSpanUnchanged(t *testing.T) {
	logger := zap.NewNop()

	enriched := WithTraceContext(context.Background(), logger)

	assert.Same(t, logger, enriched)
}

func TestRequestIDPropagatesToOutput(t *testing.T) {
	var sb strings.Builder
	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(&sb), zapcore.InfoLevel)
	logger := zap.New(core)

	_, enriched := WithRequestID(context.Background(), logger, "req-out")
	enriched.Info("hello")
	_ = logger.Sync()

	assert.Contains(t, sb.String(), `"request_id":"req-out"`)
}
