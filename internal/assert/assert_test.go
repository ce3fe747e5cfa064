package assert

import (
	"strings"
	"testing"
)

func TestThat(t *testing.T) {
	That(true, "never fires")

	if !Enabled {
		That(false, "compiled out")
		return
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("TestThat: got no panic, want one")
		}
		s, ok := r.(string)
		if !ok || !strings.Contains(s, "bad radix") {
			t.Errorf("TestThat: got panic %v, want message containing %q", r, "bad radix")
		}
	}()
	That(false, "bad radix")
}
