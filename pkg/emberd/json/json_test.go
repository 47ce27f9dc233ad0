package json

import (
	"testing"

	"github.com/yourusername/emberd/pkg/emberd/arena"
)

func TestParseScalars(t *testing.T) {
	cases := []struct {
		in   string
		kind Kind
	}{
		{"true", True},
		{"false", False},
		{"null", Null},
		{"42", Number},
		{"-7", Number},
		{`"hi"`, String},
	}
	for _, c := range cases {
		v, ok := Parse([]byte(c.in))
		if !ok {
			t.Fatalf("Parse(%q) failed", c.in)
		}
		if v.Kind != c.kind {
			t.Errorf("Parse(%q).Kind = %v, want %v", c.in, v.Kind, c.kind)
		}
	}
}

func TestParseArray(t *testing.T) {
	v, ok := Parse([]byte(`[1,2]`))
	if !ok {
		t.Fatal("Parse failed")
	}
	arr, ok := v.Array()
	if !ok || len(arr) != 2 {
		t.Fatalf("got %v", v)
	}
	if n, _ := arr[0].Float64(); n != 1 {
		t.Errorf("arr[0] = %v, want 1", n)
	}
}

func TestParseEmptyArrayAndObject(t *testing.T) {
	if v, ok := Parse([]byte(`[]`)); !ok || len(v.Arr) != 0 {
		t.Fatalf("Parse([]) = %v, %v", v, ok)
	}
	if v, ok := Parse([]byte(`{}`)); !ok || v.Obj.Len() != 0 {
		t.Fatalf("Parse({}) = %v, %v", v, ok)
	}
}

func TestParseObject(t *testing.T) {
	v, ok := Parse([]byte(`{"k":"v","n":42,"t":true,"a":[1,2]}`))
	if !ok {
		t.Fatal("Parse failed")
	}
	obj, ok := v.Object()
	if !ok || obj.Len() != 4 {
		t.Fatalf("got %v keys=%d", v, obj.Len())
	}
	if s, _ := obj.GetString([]byte("k")); string(s) != "v" {
		t.Errorf("k = %q, want v", s)
	}
	nv, _ := obj.Get([]byte("n"))
	if n, _ := nv.Float64(); n != 42 {
		t.Errorf("n = %v, want 42", n)
	}
	tv, _ := obj.Get([]byte("t"))
	if b, _ := tv.Bool(); !b {
		t.Errorf("t = %v, want true", b)
	}
	av, _ := obj.Get([]byte("a"))
	arr, _ := av.Array()
	if len(arr) != 2 {
		t.Errorf("len(a) = %d, want 2", len(arr))
	}
}

func TestParseDuplicateKeyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate key")
		}
	}()
	Parse([]byte(`{"a":1,"a":2}`))
}

func TestParseRejectsUnterminatedString(t *testing.T) {
	if _, ok := Parse([]byte(`"abc`)); ok {
		t.Fatal("Parse accepted an unterminated string")
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	cases := []string{`{`, `[1,2`, `{"a":}`, `nul`, ``}
	for _, c := range cases {
		if _, ok := Parse([]byte(c)); ok {
			t.Errorf("Parse(%q) unexpectedly succeeded", c)
		}
	}
}

func TestObjectMapGrowth(t *testing.T) {
	obj := NewObjectMap()
	for i := 0; i < 100; i++ {
		key := []byte{byte('a' + i%26), byte('0' + i/26)}
		obj.Insert(key, Value{Kind: Number, Num: float64(i)})
	}
	if obj.Len() != 100 {
		t.Fatalf("Len() = %d, want 100", obj.Len())
	}
	for i := 0; i < 100; i++ {
		key := []byte{byte('a' + i%26), byte('0' + i/26)}
		v, ok := obj.Get(key)
		if !ok {
			t.Fatalf("Get(%q) missing after growth", key)
		}
		if n, _ := v.Float64(); n != float64(i) {
			t.Errorf("Get(%q) = %v, want %d", key, n, i)
		}
	}
}

func TestObjectMapInsertDuplicatePanics(t *testing.T) {
	obj := NewObjectMap()
	obj.Insert([]byte("k"), Value{Kind: True})
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate insert")
		}
	}()
	obj.Insert([]byte("k"), Value{Kind: False})
}

func TestWriterObjectWithArray(t *testing.T) {
	a := arena.New(1024)
	var w Writer
	w.Begin(a)
	w.BeginObject()
	w.PutKey([]byte("a"))
	w.PutNumber(1)
	w.PutKey([]byte("b"))
	w.BeginArray()
	w.PutString([]byte("x"))
	w.PrepareArrayElement()
	w.PutTrue()
	w.EndArray()
	w.EndObject()
	got := string(w.End())

	want := `{"a":1,"b":["x",true]}`
	if got != want {
		t.Fatalf("writer output = %q, want %q", got, want)
	}
}

func TestWriterRoundTrip(t *testing.T) {
	a := arena.New(4096)
	var w Writer
	w.Begin(a)
	w.BeginObject()
	w.PutKey([]byte("k"))
	w.PutString([]byte("v"))
	w.PutKey([]byte("n"))
	w.PutNumber(42)
	w.EndObject()
	out := w.End()

	v, ok := Parse(out)
	if !ok {
		t.Fatalf("Parse(%q) failed", out)
	}
	obj, _ := v.Object()
	if s, _ := obj.GetString([]byte("k")); string(s) != "v" {
		t.Errorf("k = %q", s)
	}
	if nv, ok := obj.Get([]byte("n")); !ok {
		t.Errorf("n missing")
	} else if n, _ := nv.Float64(); n != 42 {
		t.Errorf("n = %v, want 42", n)
	}
}
