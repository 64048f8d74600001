package random

import (
	"regexp"
	"testing"
)

func TestSeqLength(t *testing.T) {
	for _, n := range []int{0, 1, 20, 64} {
		if got := len(Seq(n)); got != n {
			t.Errorf("Seq(%d) returned %d characters", n, got)
		}
	}
}

func TestSeqAlphabet(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Za-z0-9]{20}$`)
	for i := 0; i < 100; i++ {
		token := Seq(20)
		if !pattern.MatchString(token) {
			t.Fatalf("token %q does not match ^[A-Za-z0-9]{20}$", token)
		}
	}
}

func TestSeqUniqueness(t *testing.T) {
	const n = 10000
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		token := Seq(20)
		if _, dup := seen[token]; dup {
			t.Fatalf("duplicate token after %d draws: %q", i, token)
		}
		seen[token] = struct{}{}
	}
}
