package byteview

import "testing"

func TestEqual(t *testing.T) {
	cases := []struct {
		a, b []byte
		want bool
	}{
		{[]byte("abc"), []byte("abc"), true},
		{[]byte("abc"), []byte("abd"), false},
		{[]byte("abc"), []byte("ab"), false},
		{nil, nil, true},
		{[]byte(""), nil, true},
	}
	for _, c := range cases {
		if got := Equal(c.a, c.b); got != c.want {
			t.Errorf("Equal(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestFNV1KnownValue(t *testing.T) {
	// FNV-1 (not FNV-1a) offset basis hashed with an empty input is the
	// basis itself.
	if got := FNV1(nil); got != fnvOffsetBasis {
		t.Errorf("FNV1(nil) = %#x, want %#x", got, fnvOffsetBasis)
	}
}

func TestFNV1Deterministic(t *testing.T) {
	a := FNV1([]byte("hello"))
	b := FNV1([]byte("hello"))
	if a != b {
		t.Fatalf("FNV1 not deterministic: %#x != %#x", a, b)
	}
	if a == FNV1([]byte("world")) {
		t.Fatalf("FNV1 collided on distinct short inputs (suspiciously)")
	}
}

func TestParseInt(t *testing.T) {
	cases := []struct {
		in     string
		want   int64
		wantOK bool
	}{
		{"0", 0, true},
		{"42", 42, true},
		{"-42", -42, true},
		{"-0", 0, true},
		{"", 0, false},
		{"-", 0, false},
		{"4a2", 0, false},
		{"+4", 0, false},
		{"007", 7, true},
	}
	for _, c := range cases {
		got, ok := ParseInt([]byte(c.in))
		if ok != c.wantOK || (ok && got != c.want) {
			t.Errorf("ParseInt(%q) = (%d, %v), want (%d, %v)", c.in, got, ok, c.want, c.wantOK)
		}
	}
}
