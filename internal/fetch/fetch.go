// Package fetch performs traced HTTP GETs for the link viewer and the live
// previews. Requests carry no timeout of their own; callers cancel through
// the context.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/zjrosen/tuitour/internal/log"
	"github.com/zjrosen/tuitour/internal/tracing"
)

// DefaultMaxBytes caps how much of a response body is read.
const DefaultMaxBytes int64 = 2 << 20

// Fetcher retrieves the body at url.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d %s", e.URL, e.Code, http.StatusText(e.Code))
}

// Client is the default Fetcher.
type Client struct {
	http     *http.Client
	tracer   trace.Tracer
	maxBytes int64
	source   string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.http = c }
}

// WithTracer sets the tracer used for request spans.
func WithTracer(t trace.Tracer) Option {
	return func(cl *Client) { cl.tracer = t }
}

// WithMaxBytes limits how many body bytes are read.
func WithMaxBytes(n int64) Option {
	return func(cl *Client) { cl.maxBytes = n }
}

// WithSource tags spans and log lines with the calling component.
func WithSource(s string) Option {
	return func(cl *Client) { cl.source = s }
}

// New creates a Client. Without options it uses http.DefaultClient and a no-op tracer.
func New(opts ...Option) *Client {
	c := &Client{
		http:     http.DefaultClient,
		tracer:   noop.NewTracerProvider().Tracer("noop"),
		maxBytes: DefaultMaxBytes,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get issues a GET inside a client span and returns at most maxBytes of the body.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	ctx, span := c.tracer.Start(ctx, tracing.SpanFetch,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String(tracing.AttrURL, url),
			attribute.String(tracing.AttrSource, c.source),
		),
	)
	defer span.End()

	body, status, err := c.do(ctx, url)
	if status != 0 {
		span.SetAttributes(attribute.Int(tracing.AttrStatusCode, status))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.String(tracing.AttrErrorMessage, err.Error()))
		if errors.Is(err, context.Canceled) {
			log.Debug(log.CatFetch, "Fetch cancelled", "url", url, "source", c.source)
		} else {
			log.ErrorErr(log.CatFetch, "Fetch failed", err, "url", url, "source", c.source)
		}
		return nil, err
	}

	span.SetAttributes(attribute.Int(tracing.AttrBytes, len(body)))
	span.SetStatus(codes.Ok, "")
	log.Debug(log.CatFetch, "Fetched", "url", url, "status", status, "bytes", len(body), "source", c.source)
	return body, nil
}

func (c *Client) do(ctx context.Context, url string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", "tuitour")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("GET %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp.StatusCode, &StatusError{URL: url, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("reading body: %w", err)
	}
	return body, resp.StatusCode, nil
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, url string) ([]byte, error)

// Get calls f.
func (f FetcherFunc) Get(ctx context.Context, url string) ([]byte, error) {
	return f(ctx, url)
}
