package accesskey

import (
	"crypto/rand"
	"encoding/base64"

	"bikepacking-api/internal/pkg/errs"
)

// ByteLength is the amount of random entropy behind each key (256 bits).
const ByteLength = 32

// Length of an encoded key: base64 without padding of ByteLength bytes.
var Length = base64.RawURLEncoding.EncodedLen(ByteLength)

var ErrEntropyUnavailable = errs.New("access key entropy unavailable")

// Generator produces access keys. Swapped in tests for deterministic keys.
type Generator interface {
	Generate() (string, error)
}

type RandomGenerator struct{}

func NewRandomGenerator() Generator {
	return RandomGenerator{}
}

func (RandomGenerator) Generate() (string, error) {
	return Generate()
}

// Generate returns a URL-safe token with ByteLength bytes of entropy.
func Generate() (string, error) {
	buf := make([]byte, ByteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", errs.Mark(err, ErrEntropyUnavailable)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// LooksValid reports whether s has the shape of a generated key.
func LooksValid(s string) bool {
	if len(s) != Length {
		return false
	}
	_, err := base64.RawURLEncoding.DecodeString(s)
	return err == nil
}
