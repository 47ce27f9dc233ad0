package server

import (
	"github.com/yourusername/emberd/pkg/emberd/arena"
	"github.com/yourusername/emberd/pkg/emberd/http11"
	jsonpkg "github.com/yourusername/emberd/pkg/emberd/json"
)

// contextArenaSize is the per-request arena every Context owns. The
// source reserves 4 GiB of address space per context relying on
// OS-virtual-memory overcommit; Go has no equivalent cheap reservation
// trick, so this is a real, modest allocation sized for one HTTP
// request+response instead (see DESIGN.md).
const contextArenaSize = 1 << 20

// Context is the handler-facing API for one request: spec.md §4.J. It is
// owned by exactly one worker goroutine for the duration of a request,
// obtained from a respool.Pool before the request is read and returned
// after the response is sent.
type Context struct {
	Request *http11.Request
	Status  int
	Headers http11.HeaderList
	Content []byte

	arena *arena.Arena
}

// newContext allocates a fresh Context with its own arena. Used as the
// respool miss-path constructor.
func newContext() *Context {
	return &Context{arena: arena.New(contextArenaSize)}
}

// Arena returns the context's per-request arena, for handlers that need
// to allocate scratch space with the same lifetime as the request.
func (c *Context) Arena() *arena.Arena { return c.arena }

// AddHeader appends a response header. Name and value are copied into
// the context's arena so handlers may pass stack-local byte slices.
func (c *Context) AddHeader(name, value []byte) {
	c.Headers.Add(c.arena.PutBytes(name), c.arena.PutBytes(value))
}

// AddHeaderString is a convenience wrapper for string literals.
func (c *Context) AddHeaderString(name, value string) {
	c.AddHeader([]byte(name), []byte(value))
}

// SetContent sets the response body.
func (c *Context) SetContent(body []byte) {
	c.Content = body
}

// Text sets the response body to s with a "Content-Type: text/plain"
// header, and returns the status the caller should return from the
// handler — a small convenience beyond the bare spec API, matching the
// kind of helper a real handler set tends to grow (see SPEC_FULL.md's
// Supplemented Features).
func (c *Context) Text(status int, s string) int {
	c.AddHeaderString("Content-Type", "text/plain")
	c.SetContent(c.arena.PutString(s))
	return status
}

// JSON sets body (JSON text the caller has already rendered, typically
// with a json.Writer) as the response body with a
// "Content-Type: application/json" header, and returns status. It does
// not serialize anything itself.
func (c *Context) JSON(status int, body []byte) int {
	c.AddHeaderString("Content-Type", "application/json")
	c.SetContent(body)
	return status
}

// ParseBodyAsJSON runs the JSON parser over the request body using the
// context's arena-backed request — spec.md §6's
// parse_request_body_as_json convenience.
func (c *Context) ParseBodyAsJSON() (jsonpkg.Value, bool) {
	return jsonpkg.Parse(c.Request.Body)
}

// reset clears a context for reuse, rewinding its arena. Called by the
// worker before returning the context to its pool.
func (c *Context) reset() {
	c.Request = nil
	c.Status = 0
	c.Headers = nil
	c.Content = nil
	c.arena.Reset()
}
