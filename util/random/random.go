// Package random provides cryptographically random string generation.
package random

import (
	"crypto/rand"
	"math/big"
)

const alphanum = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Seq generates a random string of exactly n alphanumeric characters.
// Used for issuing opaque API tokens.
func Seq(n int) string {
	chars := make([]byte, n)
	max := big.NewInt(int64(len(alphanum)))
	for i := range chars {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic("crypto/rand failed: " + err.Error())
		}
		chars[i] = alphanum[idx.Int64()]
	}
	return string(chars)
}
