// SPDX-License-Identifier: ice License 1.0

package hotp

import (
	"encoding/base32"
	"fmt"
	"math"
	"testing"

	pquernaotp "github.com/pquerna/otp"
	pquernahotp "github.com/pquerna/otp/hotp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ice-blockchain/icepin/terror"
)

// Reference data from RFC 4226, appendix D.
//
//nolint:gochecknoglobals // Shared, read only.
var (
	rfc4226Key             = []byte("12345678901234567890")
	rfc4226TruncatedValues = []uint32{
		1284755224, 1094287082, 137359152, 1726969429, 1640338314,
		868254676, 1918287922, 82162583, 673399871, 645520489,
	}
)

func TestGenerateCodeRFC4226Vectors(t *testing.T) {
	t.Parallel()
	expected := []string{"755224", "287082", "359152", "969429", "338314", "254676", "287922", "162583", "399871", "520489"}
	for counter, expectedCode := range expected {
		code, err := GenerateCode(rfc4226Key, uint64(counter), DefaultDigits)
		require.NoError(t, err)
		assert.Equal(t, expectedCode, code, "counter %v", counter)
	}
}

func TestGenerateCodeDigitWidths(t *testing.T) {
	t.Parallel()
	for counter, truncated := range rfc4226TruncatedValues {
		for digits := uint8(1); digits <= MaxDigits; digits++ {
			code, err := GenerateCode(rfc4226Key, uint64(counter), digits)
			require.NoError(t, err)
			require.Len(t, code, int(digits))
			expected := fmt.Sprintf("%0*d", int(digits), truncated%uint32(math.Pow10(int(digits))))
			assert.Equal(t, expected, code, "counter %v, digits %v", counter, digits)
		}
	}
}

func TestGenerateCodeZeroPadsShortValues(t *testing.T) {
	t.Parallel()
	// The truncated value for counter 7 is 82162583, which has only 8 digits.
	code, err := GenerateCode(rfc4226Key, 7, 9)
	require.NoError(t, err)
	assert.Equal(t, "082162583", code)
}

func TestGenerateCodeParameterValidation(t *testing.T) {
	t.Parallel()
	code, err := GenerateCode(nil, 0, DefaultDigits)
	require.ErrorIs(t, err, ErrEmptyKey)
	assert.Empty(t, code)
	_, err = GenerateCode([]byte{}, 42, DefaultDigits)
	require.ErrorIs(t, err, ErrEmptyKey)
	assert.Equal(t, uint64(42), terror.As(err).Data["counter"])
	_, err = GenerateCode(rfc4226Key, 0, 0)
	require.ErrorIs(t, err, ErrInvalidDigits)
	_, err = GenerateCode(rfc4226Key, 0, MaxDigits+1)
	require.ErrorIs(t, err, ErrInvalidDigits)
	assert.Equal(t, MaxDigits+1, terror.As(err).Data["digits"])
}

func TestGenerateCodeIsDeterministic(t *testing.T) {
	t.Parallel()
	first, err := GenerateCode(rfc4226Key, math.MaxUint64, DefaultDigits)
	require.NoError(t, err)
	second, err := GenerateCode(rfc4226Key, math.MaxUint64, DefaultDigits)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, first, int(DefaultDigits))
}

func TestValidate(t *testing.T) {
	t.Parallel()
	assert.True(t, Validate(rfc4226Key, 0, DefaultDigits, "755224"))
	assert.False(t, Validate(rfc4226Key, 0, DefaultDigits, "55224"))
	assert.False(t, Validate(rfc4226Key, 0, DefaultDigits, "0755224"))
	assert.False(t, Validate(rfc4226Key, 1, DefaultDigits, "755224"))
	assert.False(t, Validate(nil, 0, DefaultDigits, "755224"))
	assert.False(t, Validate(rfc4226Key, 0, 0, ""))
}

func TestGenerateCodeMatchesPquerna(t *testing.T) {
	t.Parallel()
	secret := base32.StdEncoding.EncodeToString(rfc4226Key)
	for counter := range uint64(10) {
		theirs, err := pquernahotp.GenerateCodeCustom(secret, counter, pquernahotp.ValidateOpts{
			Digits:    pquernaotp.DigitsSix,
			Algorithm: pquernaotp.AlgorithmSHA1,
		})
		require.NoError(t, err)
		ours, err := GenerateCode(rfc4226Key, counter, DefaultDigits)
		require.NoError(t, err)
		assert.Equal(t, theirs, ours, "counter %v", counter)
	}
}
