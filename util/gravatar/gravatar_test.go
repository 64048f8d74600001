package gravatar

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"testing"
)

func TestURL(t *testing.T) {
	sum := sha256.Sum256([]byte("bob@example.com"))
	want := fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=110&d=identicon", sum)
	if got := URL("bob@example.com"); got != want {
		t.Errorf("URL() = %q, want %q", got, want)
	}
}

func TestURLNormalizesEmail(t *testing.T) {
	base := URL("bob@example.com")
	tests := []string{
		"  bob@example.com  ",
		"Bob@Example.COM",
		"\tBOB@EXAMPLE.COM\n",
	}
	for _, email := range tests {
		if got := URL(email); got != base {
			t.Errorf("URL(%q) = %q, want the normalized %q", email, got, base)
		}
	}
}

func TestURLShape(t *testing.T) {
	got := URL("anyone@anywhere.dev")
	if !strings.HasPrefix(got, "https://www.gravatar.com/avatar/") {
		t.Errorf("unexpected prefix in %q", got)
	}
	if !strings.HasSuffix(got, "?s=110&d=identicon") {
		t.Errorf("unexpected suffix in %q", got)
	}
}
