// SPDX-License-Identifier: ice License 1.0

package totp

import (
	"io"

	"github.com/pkg/errors"

	"github.com/ice-blockchain/icepin/time"
)

// Public API.

type (
	TOTP interface {
		Generator
		Verifier
	}
	Generator interface {
		GenerateCode(now *time.Time, userSecret string) (string, error)
		GenerateSecret() string
		GenerateBackupCodes(count int) (codes, hashes []string, err error)
		GenerateURI(userSecret, account string) string
		GenerateQR(userSecret, account string) ([]byte, error)
		TimeRemaining(now *time.Time) uint64
	}
	Verifier interface {
		Verify(now *time.Time, userSecret, totpCode string) bool
		VerifyBackupCode(backupCode string, hashes []string, used []bool) int
	}
)

var (
	ErrInvalidSecret          = errors.New("invalid base32 secret")
	ErrInvalidBackupCodeCount = errors.New("invalid backup code count")
)

// Private API.

const (
	defaultPeriodSeconds uint64 = 30
	defaultWindow        uint64 = 1
	defaultSecretLength  uint   = 16
	defaultQRSize               = 256
	// The RFC 4648 base32 alphabet; its size divides 256 evenly, so sampling bytes modulo its size is unbiased.
	secretAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

	backupCodeByteLength = 4
	backupCodeBcryptCost = 12
)

type (
	totp struct {
		entropy io.Reader
		cfg     *config
	}
	config struct {
		IcepinTOTP struct {
			Issuer        string `yaml:"issuer" mapstructure:"issuer"`
			Digits        uint8  `yaml:"digits" mapstructure:"digits"`
			PeriodSeconds uint64 `yaml:"periodSeconds" mapstructure:"periodSeconds"`
			// Window is a pointer because an explicit 0 (current step only) differs from an omitted value (defaults to 1).
			Window       *uint64 `yaml:"window" mapstructure:"window"`
			SecretLength uint    `yaml:"secretLength" mapstructure:"secretLength"`
			QRSize       int     `yaml:"qrSize" mapstructure:"qrSize"`
		} `yaml:"icepin/totp" mapstructure:"icepin/totp"` //nolint:tagliatelle // .
	}
)
