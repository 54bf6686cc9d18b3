package totp

import (
	"crypto/rand"
	"encoding/base32"
	"errors"
	"regexp"
	"strings"
)

const (
	// DefaultSecretLength is the number of base32 characters produced by
	// GenerateSecret when no explicit length is requested. 16 characters
	// decode to 80 bits of key material, the minimum RFC 4226 recommends.
	DefaultSecretLength = 16

	// secretAlphabet is the RFC 4648 base32 alphabet. Its size divides 256,
	// so masking a random byte keeps the character distribution uniform.
	secretAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
)

// ValidateSecretKeyRegex ensures Base32 format compliance: uppercase A-Z,
// digits 2-7, optional trailing padding.
var ValidateSecretKeyRegex = regexp.MustCompile("^[A-Z2-7]+={0,6}$")

// Secret is the raw shared key one-time passwords are derived from.
// It lives in memory for the session only and is never written anywhere.
type Secret []byte

// ParseSecret decodes a base32-encoded secret into its raw bytes.
// Input is normalized before decoding: surrounding whitespace is trimmed,
// interior spaces (the grouping enrollment pages display secrets with) are
// removed, and lowercase letters are accepted. Both padded and unpadded
// RFC 4648 forms decode. Empty input returns ErrMissingSecret; anything
// that is not well-formed base32 returns ErrInvalidSecret with no partial
// result.
func ParseSecret(text string) (Secret, error) {
	normalized := strings.ToUpper(strings.Join(strings.Fields(text), ""))
	if normalized == "" {
		return nil, ErrMissingSecret
	}
	if !ValidateSecretKeyRegex.MatchString(normalized) {
		return nil, ErrInvalidSecret
	}

	var (
		raw []byte
		err error
	)
	if strings.ContainsRune(normalized, '=') {
		// Padded input must form complete RFC 4648 blocks.
		raw, err = base32.StdEncoding.DecodeString(normalized)
	} else {
		raw, err = base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(normalized)
	}
	if err != nil {
		return nil, errors.Join(ErrInvalidSecret, err)
	}

	return Secret(raw), nil
}

// Encode returns the canonical base32 form of the secret: uppercase and
// unpadded. ParseSecret(s.Encode()) recovers the identical bytes.
func (s Secret) Encode() string {
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(s)
}

// GenerateSecret produces a new random secret of length base32 characters,
// drawn from a cryptographically secure source. A predictable secret would
// compromise every code derived from it. Non-positive lengths fall back to
// DefaultSecretLength. The returned string is already in canonical form and
// safe to pass to ParseSecret or embed in a provisioning URI.
func GenerateSecret(length int) (string, error) {
	if length <= 0 {
		length = DefaultSecretLength
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Join(ErrFailedToGenerateSecret, err)
	}
	for i, b := range buf {
		buf[i] = secretAlphabet[b&31]
	}

	return string(buf), nil
}
