// Package token implements the partner token generator on top of crypto/rand.
package token

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/Sebastian609/SOA-PARTNERS/internal/domain/service"

	"github.com/pkg/errors"
)

// tokenBytes is the entropy drawn per token: 16 bytes, rendered as 32
// lowercase hexadecimal characters.
const tokenBytes = 16

type generator struct{}

// NewGenerator returns the crypto/rand-backed TokenGenerator.
func NewGenerator() service.TokenGenerator {
	return &generator{}
}

// Generate draws tokenBytes of randomness and hex-encodes them. Uniqueness is
// not checked here; the lifecycle layer verifies candidates against the store.
func (g *generator) Generate() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return hex.EncodeToString(buf), nil
}
