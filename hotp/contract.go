// SPDX-License-Identifier: ice License 1.0

package hotp

import (
	"github.com/pkg/errors"
)

// Public API.

const (
	// DefaultDigits is what virtually every authenticator app produces.
	DefaultDigits uint8 = 6
	// MaxDigits is bounded by the 31 bit value dynamic truncation extracts: a 10th digit would not be fully covered.
	MaxDigits uint8 = 9
)

var (
	ErrEmptyKey      = errors.New("empty key")
	ErrInvalidDigits = errors.New("invalid digits")
)

// Private API.

const (
	minDigits uint8 = 1
	// The moving factor is the counter as 8 big endian bytes, per RFC 4226 section 5.1.
	movingFactorLength       = 8
	truncationLength         = 4
	offsetMask          byte = 0x0f
	//nolint:gomnd // Dynamic truncation keeps the low 31 bits, per RFC 4226 section 5.3.
	truncationMask uint32 = 0x7fffffff
)
