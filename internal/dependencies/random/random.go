// Package random abstracts randomness so ID generation and word selection
// are deterministic in tests.
package random

import (
	"crypto/rand"
	"math/big"
)

// Random is the source of randomness for IDs and word selection
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// String builds a random string of length characters drawn from alphabet
	String(length int, alphabet string) string
}

// CryptoRandom is the production Random backed by crypto/rand
type CryptoRandom struct{}

// New returns a CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

func (r *CryptoRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(v.Int64())
}

func (r *CryptoRandom) String(length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	out := make([]byte, length)
	for i := range out {
		out[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(out)
}
