package http11

import (
	"testing"

	"github.com/yourusername/emberd/pkg/emberd/arena"
)

func TestParseRequestBasic(t *testing.T) {
	raw := []byte("GET /ping HTTP/1.1\r\nHost: x\r\n\r\n")
	req, err := ParseRequest(raw)
	if err != nil {
		t.Fatalf("ParseRequest failed: %v", err)
	}
	if req.Method != MethodGET {
		t.Errorf("Method = %v, want GET", req.Method)
	}
	if string(req.Path) != "/ping" {
		t.Errorf("Path = %q, want /ping", req.Path)
	}
	if len(req.Headers) != 1 {
		t.Fatalf("len(Headers) = %d, want 1", len(req.Headers))
	}
	if string(req.Headers[0].Name) != "Host" || string(req.Headers[0].Value) != "x" {
		t.Errorf("Headers[0] = %+v, want Host: x", req.Headers[0])
	}
	if len(req.Body) != 0 {
		t.Errorf("Body = %q, want empty", req.Body)
	}
}

func TestParseRequestRejectsMissingTerminator(t *testing.T) {
	raw := []byte("GET / HTTP/1.1\r\nHost: x\r\n")
	if _, err := ParseRequest(raw); err == nil {
		t.Fatal("ParseRequest accepted a request missing the blank-line terminator")
	}
}

func TestParseRequestRejectsUnknownMethod(t *testing.T) {
	raw := []byte("FROB / HTTP/1.1\r\n\r\n")
	if _, err := ParseRequest(raw); err != ErrInvalidMethod {
		t.Fatalf("err = %v, want ErrInvalidMethod", err)
	}
}

func TestParseRequestDuplicateHeadersPreserved(t *testing.T) {
	raw := []byte("GET / HTTP/1.1\r\nX-A: 1\r\nX-A: 2\r\n\r\n")
	req, err := ParseRequest(raw)
	if err != nil {
		t.Fatalf("ParseRequest failed: %v", err)
	}
	if len(req.Headers) != 2 {
		t.Fatalf("len(Headers) = %d, want 2 (duplicates preserved)", len(req.Headers))
	}
}

func TestResponseSerializeIncludesCORS(t *testing.T) {
	resp := &Response{
		Version: Version,
		Status:  200,
		Headers: HeaderList{{Name: []byte("Content-Type"), Value: []byte("text/plain")}},
		Body:    []byte("hi"),
	}
	n, err := resp.SerializedLen()
	if err != nil {
		t.Fatalf("SerializedLen failed: %v", err)
	}
	a := arena.New(4096)
	dst := a.Push(n)
	written, err := resp.Serialize(dst)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	out := string(dst[:written])

	wantPrefix := "HTTP/1.1 200 OK\r\n"
	if out[:len(wantPrefix)] != wantPrefix {
		t.Errorf("status line = %q, want prefix %q", out, wantPrefix)
	}
	if !contains(out, "Access-Control-Allow-Origin: *\r\n") {
		t.Errorf("missing CORS header: %q", out)
	}
	if !contains(out, "Content-Type: text/plain\r\n") {
		t.Errorf("missing Content-Type header: %q", out)
	}
	if !contains(out, "\r\n\r\nhi") {
		t.Errorf("missing body: %q", out)
	}
}

func TestResponseSerializeUnknownStatusFails(t *testing.T) {
	resp := &Response{Version: Version, Status: 299}
	if _, err := resp.SerializedLen(); err != ErrUnknownStatus {
		t.Fatalf("err = %v, want ErrUnknownStatus", err)
	}
}

func TestRequestResponseRoundTrip(t *testing.T) {
	req := &Request{
		Method:  MethodPOST,
		Path:    []byte("/echo"),
		Version: Version,
		Headers: HeaderList{{Name: []byte("X-Test"), Value: []byte("v")}},
		Body:    []byte("payload"),
	}
	n, err := requestSerializedLen(req)
	if err != nil {
		t.Fatalf("requestSerializedLen failed: %v", err)
	}
	buf := make([]byte, n)
	written, err := serializeRequest(req, buf)
	if err != nil {
		t.Fatalf("serializeRequest failed: %v", err)
	}

	parsed, err := ParseRequest(buf[:written])
	if err != nil {
		t.Fatalf("ParseRequest failed: %v", err)
	}
	if parsed.Method != req.Method || string(parsed.Path) != string(req.Path) {
		t.Errorf("round trip mismatch: %+v", parsed)
	}
	if string(parsed.Body) != "payload" {
		t.Errorf("Body = %q, want payload", parsed.Body)
	}
}

func TestReasonPhraseLookup(t *testing.T) {
	r, ok := ReasonPhrase(404)
	if !ok || r != "Not Found" {
		t.Errorf("ReasonPhrase(404) = %q, %v", r, ok)
	}
	if _, ok := ReasonPhrase(299); ok {
		t.Errorf("ReasonPhrase(299) unexpectedly found")
	}
}

func contains(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
