package random

import (
	"crypto/rand"
	"math/big"
)

// Random provides random number generation that can be mocked for testing.
// Piece selection and game ID generation go through this interface so tests
// can drive deterministic sequences.
type Random interface {
	// Intn returns a random int in [0, n).
	Intn(n int) int

	// String draws length characters from alphabet.
	String(length int, alphabet string) string
}

// CryptoRandom draws from crypto/rand.
type CryptoRandom struct{}

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
