package http11

// Response is a parsed or to-be-serialized HTTP/1.1 response.
type Response struct {
	Version string
	Status  int
	Reason  string
	Headers HeaderList
	Body    []byte
}

// Serialize writes r's wire representation into dst (which the caller
// sizes, typically via arena.Push) and returns the number of bytes
// written. The CORS header is unconditional, matching the source's
// serializer exactly: every response carries
// "Access-Control-Allow-Origin: *" regardless of what the handler set.
func (r *Response) Serialize(dst []byte) (int, error) {
	reason := r.Reason
	if reason == "" {
		var ok bool
		reason, ok = ReasonPhrase(r.Status)
		if !ok {
			return 0, ErrUnknownStatus
		}
	} else if !statusMatches(r.Status, reason) {
		return 0, ErrUnknownStatus
	}

	n := 0
	n += copyString(dst[n:], r.Version)
	n += copyString(dst[n:], " ")
	n += copyInt(dst[n:], r.Status)
	n += copyString(dst[n:], " ")
	n += copyString(dst[n:], reason)
	n += copyString(dst[n:], "\r\n")
	n += copyString(dst[n:], CORSHeaderLine)

	for _, h := range r.Headers {
		n += copy(dst[n:], h.Name)
		n += copyString(dst[n:], ": ")
		n += copy(dst[n:], h.Value)
		n += copyString(dst[n:], "\r\n")
	}

	n += copyString(dst[n:], "\r\n")
	n += copy(dst[n:], r.Body)
	return n, nil
}

// SerializedLen returns the exact byte length Serialize will write for r,
// so callers can size the destination buffer (typically an arena.Push)
// precisely.
func (r *Response) SerializedLen() (int, error) {
	reason := r.Reason
	if reason == "" {
		var ok bool
		reason, ok = ReasonPhrase(r.Status)
		if !ok {
			return 0, ErrUnknownStatus
		}
	} else if !statusMatches(r.Status, reason) {
		return 0, ErrUnknownStatus
	}

	n := len(r.Version) + 1 + intLen(r.Status) + 1 + len(reason) + 2
	n += len(CORSHeaderLine)
	for _, h := range r.Headers {
		n += len(h.Name) + 2 + len(h.Value) + 2
	}
	n += 2
	n += len(r.Body)
	return n, nil
}

func copyString(dst []byte, s string) int {
	return copy(dst, s)
}

func intLen(n int) int {
	if n == 0 {
		return 1
	}
	l := 0
	if n < 0 {
		l++
		n = -n
	}
	for n > 0 {
		l++
		n /= 10
	}
	return l
}

func copyInt(dst []byte, n int) int {
	if n == 0 {
		dst[0] = '0'
		return 1
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return copy(dst, buf[i:])
}
