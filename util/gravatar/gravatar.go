// Package gravatar derives avatar URLs from email addresses.
package gravatar

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

// URL returns the gravatar URL for an email address. The address is trimmed
// and lowercased before hashing, so equivalent spellings map to the same
// avatar. Pure function, never fails.
func URL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := sha256.Sum256([]byte(normalized))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=110&d=identicon", sum)
}
