package tracing

// Span attribute keys.
const (
	AttrURL          = "http.url"
	AttrStatusCode   = "http.status_code"
	AttrBytes        = "http.response_size"
	AttrSource       = "fetch.source" // "linkviewer", "preview.concurrency"
	AttrErrorMessage = "error.message"
)

// SpanFetch is the span name for remote GETs.
const SpanFetch = "fetch.get"
