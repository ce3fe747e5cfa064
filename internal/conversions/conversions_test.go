package conversions

import "testing"

func TestByteSlice2String(t *testing.T) {
	b := []byte("0x1f")
	s := ByteSlice2String(b)
	if s != "0x1f" {
		t.Errorf("TestByteSlice2String: got %q, want %q", s, "0x1f")
	}
	if ByteSlice2String(nil) != "" {
		t.Errorf("TestByteSlice2String(nil): got non-empty string")
	}
	if got := UnsafeGetBytes(s); &got[0] != &b[0] {
		t.Errorf("TestByteSlice2String: UnsafeGetBytes did not return the original storage")
	}
}

func TestOverlaps(t *testing.T) {
	buf := make([]byte, 16)
	other := make([]byte, 16)

	tests := []struct {
		name string
		a, b []byte
		want bool
	}{
		{name: "same", a: buf, b: buf, want: true},
		{name: "inner", a: buf, b: buf[4:8], want: true},
		{name: "tail touches head", a: buf[:8], b: buf[8:], want: false},
		{name: "one byte shared", a: buf[:9], b: buf[8:], want: true},
		{name: "different arrays", a: buf, b: other, want: false},
		{name: "empty", a: buf[4:4], b: buf, want: false},
	}

	for _, test := range tests {
		if got := Overlaps(test.a, test.b); got != test.want {
			t.Errorf("TestOverlaps(%s): got %v, want %v", test.name, got, test.want)
		}
		if got := Overlaps(test.b, test.a); got != test.want {
			t.Errorf("TestOverlaps(%s reversed): got %v, want %v", test.name, got, test.want)
		}
	}
}
