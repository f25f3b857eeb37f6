package txid

import (
	"regexp"
	"testing"
)

var idPattern = regexp.MustCompile(`^TXN\d{13,}[A-Z0-9]{6}$`)

func TestGenerator_Format(t *testing.T) {
	gen, err := NewGenerator()
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}

	for i := 0; i < 100; i++ {
		id := gen.Next()
		if !idPattern.MatchString(id) {
			t.Fatalf("id %q does not match expected format", id)
		}
	}
}

func TestGenerator_Uniqueness(t *testing.T) {
	gen, err := NewGenerator()
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}

	seen := make(map[string]bool, 10000)
	for i := 0; i < 10000; i++ {
		id := gen.Next()
		if seen[id] {
			t.Fatalf("duplicate id generated: %q", id)
		}
		seen[id] = true
	}
}
