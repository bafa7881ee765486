// SPDX-License-Identifier: ice License 1.0

package hotp

import (
	"crypto/hmac"
	"crypto/sha1" //nolint:gosec // RFC 4226 mandates HMAC-SHA1.
	"crypto/subtle"
	"encoding/binary"
	"fmt"

	"github.com/ice-blockchain/icepin/terror"
)

// GenerateCode computes the RFC 4226 one time password for the given key, counter and digit count.
// It is a pure function: equal inputs always produce the exact same code.
func GenerateCode(key []byte, counter uint64, digits uint8) (string, error) {
	if len(key) == 0 {
		return "", terror.New(ErrEmptyKey, map[string]any{"counter": counter})
	}
	if digits < minDigits || digits > MaxDigits {
		return "", terror.New(ErrInvalidDigits, map[string]any{"digits": digits})
	}
	movingFactor := make([]byte, movingFactorLength)
	binary.BigEndian.PutUint64(movingFactor, counter)
	mac := hmac.New(sha1.New, key)
	mac.Write(movingFactor) //nolint:errcheck // Hash writes never return an error.
	sum := mac.Sum(nil)
	offset := sum[len(sum)-1] & offsetMask
	truncated := binary.BigEndian.Uint32(sum[offset:offset+truncationLength]) & truncationMask

	return fmt.Sprintf("%0*d", int(digits), truncated%pow10(digits)), nil
}

// Validate compares the candidate against the code of that exact counter, in constant time.
// Anything that would make GenerateCode fail makes it return false.
func Validate(key []byte, counter uint64, digits uint8, candidate string) bool {
	code, err := GenerateCode(key, counter, digits)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(code), []byte(candidate)) == 1
}

func pow10(digits uint8) uint32 {
	modulus := uint32(1)
	for range digits {
		modulus *= 10
	}

	return modulus
}
