package ordernumber

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strings"
)

// DefaultDigits is the length of generated order numbers.
const DefaultDigits = 6

// Generator produces order number candidates.
type Generator interface {
	Next() (string, error)
}

// RandomGenerator draws fixed-length decimal strings from a uniform random source.
type RandomGenerator struct {
	digits int
	source io.Reader
}

// NewRandomGenerator creates generator backed by crypto/rand.
func NewRandomGenerator(digits int) *RandomGenerator {
	return newRandomGenerator(digits, rand.Reader)
}

func newRandomGenerator(digits int, source io.Reader) *RandomGenerator {
	if digits <= 0 {
		digits = DefaultDigits
	}
	return &RandomGenerator{digits: digits, source: source}
}

// Digits returns configured number length.
func (g *RandomGenerator) Digits() int {
	return g.digits
}

// Next returns a candidate number; uniqueness is enforced by the caller.
func (g *RandomGenerator) Next() (string, error) {
	ten := big.NewInt(10)
	var b strings.Builder
	b.Grow(g.digits)
	for i := 0; i < g.digits; i++ {
		n, err := rand.Int(g.source, ten)
		if err != nil {
			return "", fmt.Errorf("draw order number digit: %w", err)
		}
		b.WriteByte(byte('0' + n.Int64()))
	}
	return b.String(), nil
}

// Valid checks that number consists of decimal digits only.
func Valid(number string) bool {
	if number == "" {
		return false
	}
	for i := 0; i < len(number); i++ {
		if number[i] < '0' || number[i] > '9' {
			return false
		}
	}
	return true
}
