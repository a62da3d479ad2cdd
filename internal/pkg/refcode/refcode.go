package refcode

import (
	"crypto/rand"
	"fmt"
)

// Length of generated reference codes
const Length = 6

// Unambiguous upper-case alphabet: no I, O, 0 or 1
const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// New generates a random reference code. Uniqueness is the caller's
// concern; clubs check the code against the store before stamping it.
func New() (string, error) {
	buf := make([]byte, Length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	code := make([]byte, Length)
	for i, b := range buf {
		code[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(code), nil
}
