// Package identifier provides generators for public-facing identifiers.
package identifier

import (
	"crypto/rand"

	"savor/internal/domain/service"

	"github.com/pkg/errors"
)

// orderNumberAlphabet excludes visually ambiguous characters (0/O, 1/I/L)
// so the number survives being read over the phone.
const orderNumberAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

const orderNumberLength = 10

type randomOrderNumberGenerator struct{}

// NewOrderNumberGenerator returns a generator backed by crypto/rand.
func NewOrderNumberGenerator() service.OrderNumberGenerator {
	return &randomOrderNumberGenerator{}
}

// Generate returns a fixed-length random order number such as "K7Q2MX9RTD".
func (g *randomOrderNumberGenerator) Generate() (string, error) {
	buf := make([]byte, orderNumberLength)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes for order number")
	}

	for i, b := range buf {
		buf[i] = orderNumberAlphabet[int(b)%len(orderNumberAlphabet)]
	}

	return string(buf), nil
}
