package json

import (
	"strconv"

	"github.com/yourusername/emberd/pkg/emberd/arena"
)

type writerState int

const (
	clean writerState = iota
	dirty
)

// Writer streams JSON text directly into an arena. It is not safe for
// concurrent use and tracks no container nesting of its own — callers
// are trusted to balance Begin/End calls, exactly like the source's
// writer.
type Writer struct {
	a     *arena.Arena
	start int
	state writerState
}

// Begin captures a and the arena offset text will start from.
func (w *Writer) Begin(a *arena.Arena) {
	w.a = a
	w.start = a.Len()
	w.state = clean
}

// End returns the byte view of everything written since Begin and
// restores the arena's word alignment for whatever is pushed next.
func (w *Writer) End() []byte {
	result := w.a.Slice(w.start)
	w.a.AlignTo8()
	return result
}

func (w *Writer) putByte(c byte) {
	dst := w.a.PushUnaligned(1)
	dst[0] = c
}

func (w *Writer) putBytes(b []byte) {
	dst := w.a.PushUnaligned(len(b))
	copy(dst, b)
}

func (w *Writer) putRaw(s string) {
	dst := w.a.PushUnaligned(len(s))
	copy(dst, s)
}

// BeginObject opens a `{`. State resets to clean: the first key written
// needs no leading comma.
func (w *Writer) BeginObject() {
	w.putByte('{')
	w.state = clean
}

// EndObject closes a `}`. The object itself now counts as a completed
// value in whatever container holds it.
func (w *Writer) EndObject() {
	w.putByte('}')
	w.state = dirty
}

// BeginArray opens a `[`.
func (w *Writer) BeginArray() {
	w.putByte('[')
	w.state = clean
}

// EndArray closes a `]`.
func (w *Writer) EndArray() {
	w.putByte(']')
	w.state = dirty
}

// PrepareArrayElement must be called between array elements (not before
// the first). It emits a separating comma if the previous element
// completed, then resets to clean so the upcoming value needs none.
func (w *Writer) PrepareArrayElement() {
	if w.state == dirty {
		w.putByte(',')
	}
	w.state = clean
}

// PutKey writes `"name":`, preceded by a comma if the previous key/value
// pair completed.
func (w *Writer) PutKey(name []byte) {
	if w.state == dirty {
		w.putByte(',')
	}
	w.putByte('"')
	w.putBytes(name)
	w.putRaw("\":")
	w.state = clean
}

// PutString writes a quoted string with no escape processing: a value
// containing '"' or control characters will produce invalid JSON. This
// matches the source writer exactly.
func (w *Writer) PutString(s []byte) {
	w.putByte('"')
	w.putBytes(s)
	w.putByte('"')
	w.state = dirty
}

// PutNumber writes n as an integer if its fractional part is zero, else
// as a general floating-point literal.
func (w *Writer) PutNumber(n float64) {
	var s string
	if n == float64(int64(n)) {
		s = strconv.FormatInt(int64(n), 10)
	} else {
		s = strconv.FormatFloat(n, 'g', -1, 64)
	}
	w.putRaw(s)
	w.state = dirty
}

// PutTrue writes the literal `true`.
func (w *Writer) PutTrue() {
	w.putRaw("true")
	w.state = dirty
}

// PutFalse writes the literal `false`.
func (w *Writer) PutFalse() {
	w.putRaw("false")
	w.state = dirty
}

// PutNull writes the literal `null`.
func (w *Writer) PutNull() {
	w.putRaw("null")
	w.state = dirty
}
