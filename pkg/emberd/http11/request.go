package http11

// Request is a parsed HTTP/1.1 request. Path, header names/values and
// Body all reference the connection's read buffer (or its arena copy);
// nothing here is percent-decoded or otherwise normalized.
type Request struct {
	Method  Method
	Path    []byte
	Version string
	Headers HeaderList
	Body    []byte
}

// Close reports whether the request carries a "Connection: close"
// header. Parsed and exposed for completeness; the server does not act
// on it since one-request-per-connection is already the only supported
// model (see spec's Non-goals on keep-alive/pipelining).
func (r *Request) Close() bool {
	v, ok := r.Headers.GetString("Connection")
	if !ok {
		return false
	}
	return string(v) == "close"
}
