package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/zjrosen/tuitour/internal/tracing"
)

func newRecorder(t *testing.T) (*tracetest.SpanRecorder, *sdktrace.TracerProvider) {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return rec, tp
}

func attrMap(kvs []attribute.KeyValue) map[string]any {
	out := make(map[string]any, len(kvs))
	for _, kv := range kvs {
		out[string(kv.Key)] = kv.Value.AsInterface()
	}
	return out
}

func TestClient_Get_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "tuitour", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte("hello"))
	}))
	defer srv.Close()

	rec, tp := newRecorder(t)
	c := New(WithTracer(tp.Tracer("test")), WithSource("test"))

	body, err := c.Get(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Equal(t, "hello", string(body))

	spans := rec.Ended()
	require.Len(t, spans, 1)
	require.Equal(t, tracing.SpanFetch, spans[0].Name())
	attrs := attrMap(spans[0].Attributes())
	require.Equal(t, srv.URL, attrs[tracing.AttrURL])
	require.Equal(t, int64(200), attrs[tracing.AttrStatusCode])
	require.Equal(t, "test", attrs[tracing.AttrSource])
}

func TestClient_Get_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	rec, tp := newRecorder(t)
	c := New(WithTracer(tp.Tracer("test")))

	_, err := c.Get(context.Background(), srv.URL)
	var se *StatusError
	require.True(t, errors.As(err, &se))
	require.Equal(t, http.StatusNotFound, se.Code)

	spans := rec.Ended()
	require.Len(t, spans, 1)
	require.Equal(t, int64(404), attrMap(spans[0].Attributes())[tracing.AttrStatusCode])
}

func TestClient_Get_MaxBytes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("0123456789"))
	}))
	defer srv.Close()

	body, err := New(WithMaxBytes(4)).Get(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Equal(t, "0123", string(body))
}

func TestClient_Get_Cancelled(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Get(ctx, srv.URL)
	require.ErrorIs(t, err, context.Canceled)
}

func TestClient_Get_BadURL(t *testing.T) {
	_, err := New().Get(context.Background(), "://bad")
	require.ErrorContains(t, err, "building request")
}

func TestFetcherFunc(t *testing.T) {
	var f Fetcher = FetcherFunc(func(_ context.Context, url string) ([]byte, error) {
		return []byte(url), nil
	})
	body, err := f.Get(context.Background(), "x")
	require.NoError(t, err)
	require.Equal(t, "x", string(body))
}
