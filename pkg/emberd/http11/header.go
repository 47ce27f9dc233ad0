package http11

import "github.com/yourusername/emberd/pkg/emberd/byteview"

// Header is one name/value pair. Both hold slices into whatever buffer
// the owning message was parsed from (or, on the write side, into the
// response's arena); neither is copied or normalized.
type Header struct {
	Name  []byte
	Value []byte
}

// HeaderList is an ordered sequence of headers. Duplicate names are
// permitted and preserved in insertion order — this is a plain Go slice,
// not the arena-backed dynamic array the source builds, since nothing
// about request-scoped header growth needs the arena's realloc fast path.
type HeaderList []Header

// Add appends a header, preserving order.
func (h *HeaderList) Add(name, value []byte) {
	*h = append(*h, Header{Name: name, Value: value})
}

// Get returns the value of the first header named name, matched
// byte-for-byte (case-sensitive, matching the source's exact-match
// comparisons throughout).
func (h HeaderList) Get(name []byte) ([]byte, bool) {
	for _, hdr := range h {
		if byteview.Equal(hdr.Name, name) {
			return hdr.Value, true
		}
	}
	return nil, false
}

// GetString is a convenience wrapper around Get for string literals.
func (h HeaderList) GetString(name string) ([]byte, bool) {
	for _, hdr := range h {
		if byteview.EqualString(hdr.Name, name) {
			return hdr.Value, true
		}
	}
	return nil, false
}
