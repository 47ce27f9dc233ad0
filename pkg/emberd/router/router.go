// Package router implements the flat, exact-match route table spec.md
// §4.I describes: a small fixed-capacity array scanned linearly, with no
// path parameters, no prefix matching and no method filtering. This is
// deliberately not the radix-tree router the framework half of this
// corpus uses elsewhere — see DESIGN.md for why.
package router

import "fmt"

// MaxRoutes is the table's fixed capacity. Registering past it is a
// fatal programming error, not a runtime one.
const MaxRoutes = 100

// Handler produces a response given a context. The concrete type is
// defined by the server package; router only needs it as an opaque
// value to store and return.
type Handler any

type route struct {
	path    string
	handler Handler
}

// Table is a flat array of (path, handler) pairs.
type Table struct {
	routes []route
}

// New returns an empty table.
func New() *Table {
	return &Table{routes: make([]route, 0, MaxRoutes)}
}

// Register adds an exact-match route for path. It panics if the table
// already holds MaxRoutes entries — spec.md §6 requires registration to
// be fatal past 100 routes, not silently dropped or resized.
func (t *Table) Register(path string, handler Handler) {
	if len(t.routes) >= MaxRoutes {
		panic(fmt.Sprintf("router: cannot register %q, table already holds the maximum of %d routes", path, MaxRoutes))
	}
	t.routes = append(t.routes, route{path: path, handler: handler})
}

// Lookup scans the table in registration order and returns the first
// exact match. If two routes share a path, the one registered first
// wins — later registrations for the same path are simply unreachable,
// matching the source's first-match-wins semantics exactly.
func (t *Table) Lookup(path []byte) (Handler, bool) {
	for _, r := range t.routes {
		if r.path == string(path) {
			return r.handler, true
		}
	}
	return nil, false
}

// Len returns the number of registered routes.
func (t *Table) Len() int { return len(t.routes) }
