package constant

const (
	// ContextKeyRequestID is the fiber locals key under which the request id is stored.
	ContextKeyRequestID = "requestid"

	// RequestIDHeader carries the generated request id back to the caller.
	RequestIDHeader = "X-CodeShare-Request-ID"

	// SnippetPathPrefix is the public path under which stored snippets are rendered.
	SnippetPathPrefix = "/c/"
)
