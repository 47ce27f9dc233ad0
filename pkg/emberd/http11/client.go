package http11

import (
	"fmt"
	"net"

	"github.com/yourusername/emberd/pkg/emberd/arena"
)

// maxClientRead bounds the single read a client performs after writing
// its request, regardless of how much arena space is free.
const maxClientRead = 64 << 20

// Send resolves host:port over IPv4, connects, writes req's wire form,
// performs one bounded read of the reply, and parses it as a Response
// into a. There is no retry and no partial-read loop: exactly one Read
// call, sized to min(a.Remaining()/16, maxClientRead), matching the
// source's one-shot client transport.
func Send(a *arena.Arena, host string, port int, req *Request) (*Response, error) {
	addr := fmt.Sprintf("%s:%d", host, port)
	conn, err := net.Dial("tcp4", addr)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	reqLen, err := requestSerializedLen(req)
	if err != nil {
		return nil, err
	}
	reqBuf := a.Push(reqLen)
	n, err := serializeRequest(req, reqBuf)
	if err != nil {
		return nil, err
	}
	if _, err := conn.Write(reqBuf[:n]); err != nil {
		return nil, err
	}

	readBudget := a.Remaining() / 16
	if readBudget > maxClientRead {
		readBudget = maxClientRead
	}
	readBuf := a.Push(readBudget)
	read, err := conn.Read(readBuf)
	if err != nil {
		return nil, err
	}

	return ParseResponse(readBuf[:read])
}

func requestSerializedLen(r *Request) (int, error) {
	n := len(r.Method.String()) + 1 + len(r.Path) + 1 + len(r.Version) + 2
	for _, h := range r.Headers {
		n += len(h.Name) + 2 + len(h.Value) + 2
	}
	n += 2
	n += len(r.Body)
	return n, nil
}

func serializeRequest(r *Request, dst []byte) (int, error) {
	if r.Method == MethodUnknown {
		return 0, ErrInvalidMethod
	}
	n := 0
	n += copyString(dst[n:], r.Method.String())
	n += copyString(dst[n:], " ")
	n += copy(dst[n:], r.Path)
	n += copyString(dst[n:], " ")
	n += copyString(dst[n:], r.Version)
	n += copyString(dst[n:], "\r\n")
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
