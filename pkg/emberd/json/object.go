package json

import (
	"fmt"

	"github.com/yourusername/emberd/pkg/emberd/byteview"
)

// DefaultObjectCapacity is the slot count a freshly parsed object starts
// with.
const DefaultObjectCapacity = 37

// ObjectMap is an open-addressed, linear-probed hash map from byte-view
// keys to Values, hashed with FNV-1. It never shrinks; it grows by
// tripling (newCapacity = (capacity+1)*3) whenever an insert finds the
// load factor already at 65% or above. A growth only extends the backing
// arrays — existing entries are not rehashed into new slots — so lookups
// after a resize fall back to a full cyclic scan of the table rather than
// stopping at the first empty slot. This mirrors the source map exactly;
// see DESIGN.md for why it's kept rather than "fixed".
type ObjectMap struct {
	keys     [][]byte
	vals     []Value
	capacity int
	count    int
}

// NewObjectMap returns an empty map with the default initial capacity.
func NewObjectMap() *ObjectMap {
	return &ObjectMap{
		keys:     make([][]byte, DefaultObjectCapacity),
		vals:     make([]Value, DefaultObjectCapacity),
		capacity: DefaultObjectCapacity,
	}
}

// Len returns the number of keys currently stored.
func (o *ObjectMap) Len() int { return o.count }

// Insert adds key/val. It panics if key is already present — duplicate
// keys are a fatal programming error in this model, not an overwrite.
func (o *ObjectMap) Insert(key []byte, val Value) {
	// Growth does not rehash, so the probe below can stop at an empty slot
	// before reaching an older copy of key; check the full table first.
	if _, exists := o.Get(key); exists {
		panic(fmt.Sprintf("json: duplicate key %q inserted into object", key))
	}

	if loadPercent := 100 * o.count / o.capacity; loadPercent >= 65 {
		o.grow()
	}

	idx := int(byteview.FNV1(key) % uint64(o.capacity))
	for {
		if o.keys[idx] == nil {
			o.keys[idx] = key
			o.vals[idx] = val
			o.count++
			return
		}
		if byteview.Equal(o.keys[idx], key) {
			panic(fmt.Sprintf("json: duplicate key %q inserted into object", key))
		}
		idx++
		if idx >= o.capacity {
			idx = 0
		}
	}
}

func (o *ObjectMap) grow() {
	newCap := (o.capacity + 1) * 3
	newKeys := make([][]byte, newCap)
	newVals := make([]Value, newCap)
	copy(newKeys, o.keys)
	copy(newVals, o.vals)
	o.keys = newKeys
	o.vals = newVals
	o.capacity = newCap
}

// Get looks up key, scanning the full table cyclically on miss (a probe
// never stops early at an empty slot, only on a full cycle back to its
// start index) since growth does not rehash older entries into their new
// ideal slot.
func (o *ObjectMap) Get(key []byte) (Value, bool) {
	start := int(byteview.FNV1(key) % uint64(o.capacity))
	idx := start
	for {
		if o.keys[idx] != nil && byteview.Equal(o.keys[idx], key) {
			return o.vals[idx], true
		}
		idx++
		if idx >= o.capacity {
			idx = 0
		}
		if idx == start {
			return Value{}, false
		}
	}
}

// GetString is a convenience typed getter over Get.
func (o *ObjectMap) GetString(key []byte) ([]byte, bool) {
	v, ok := o.Get(key)
	if !ok {
		return nil, false
	}
	return v.String()
}

// Keys returns the occupied keys in table-slot order (not insertion
// order). Not part of the wire format.
func (o *ObjectMap) Keys() [][]byte {
	out := make([][]byte, 0, o.count)
	for _, k := range o.keys {
		if k != nil {
			out = append(out, k)
		}
	}
	return out
}
