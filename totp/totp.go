// SPDX-License-Identifier: ice License 1.0

package totp

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	qrcode "github.com/skip2/go-qrcode"

	appcfg "github.com/ice-blockchain/icepin/config"
	"github.com/ice-blockchain/icepin/hotp"
	"github.com/ice-blockchain/icepin/log"
	"github.com/ice-blockchain/icepin/terror"
	"github.com/ice-blockchain/icepin/time"
)

func New(applicationYAMLKey string) TOTP {
	var cfg config
	appcfg.MustLoadFromKey(applicationYAMLKey, &cfg)
	cfg.applyDefaults()
	if cfg.IcepinTOTP.Digits > hotp.MaxDigits {
		log.Panic(errors.Errorf("`%v` digits exceed the maximum of `%v`", cfg.IcepinTOTP.Digits, hotp.MaxDigits))
	}

	return &totp{entropy: rand.Reader, cfg: &cfg}
}

func (c *config) applyDefaults() {
	if c.IcepinTOTP.Digits == 0 {
		c.IcepinTOTP.Digits = hotp.DefaultDigits
	}
	if c.IcepinTOTP.PeriodSeconds == 0 {
		c.IcepinTOTP.PeriodSeconds = defaultPeriodSeconds
	}
	if c.IcepinTOTP.Window == nil {
		window := defaultWindow
		c.IcepinTOTP.Window = &window
	}
	if c.IcepinTOTP.SecretLength == 0 {
		c.IcepinTOTP.SecretLength = defaultSecretLength
	}
	if c.IcepinTOTP.QRSize == 0 {
		c.IcepinTOTP.QRSize = defaultQRSize
	}
}

func (t *totp) Verify(now *time.Time, userSecret, totpCode string) bool {
	key, err := decodeSecret(userSecret)
	if err != nil || len(totpCode) != int(t.cfg.IcepinTOTP.Digits) {
		return false
	}
	current, window := t.counterAt(now), *t.cfg.IcepinTOTP.Window
	firstCounter := uint64(0)
	if current > window {
		firstCounter = current - window
	}
	for counter := firstCounter; counter <= current+window; counter++ {
		if hotp.Validate(key, counter, t.cfg.IcepinTOTP.Digits, totpCode) {
			return true
		}
	}

	return false
}

func (t *totp) GenerateCode(now *time.Time, userSecret string) (string, error) {
	key, err := decodeSecret(userSecret)
	if err != nil {
		return "", terror.New(ErrInvalidSecret, map[string]any{"cause": err.Error()})
	}
	code, err := hotp.GenerateCode(key, t.counterAt(now), t.cfg.IcepinTOTP.Digits)

	return code, errors.Wrapf(err, "failed to generate the code for the current period")
}

func (t *totp) GenerateSecret() string {
	buffer := make([]byte, t.cfg.IcepinTOTP.SecretLength)
	_, err := io.ReadFull(t.entropy, buffer)
	log.Panic(errors.Wrapf(err, "failed to read entropy for a new secret")) //nolint:revive // Intended.
	for ix, randomByte := range buffer {
		buffer[ix] = secretAlphabet[int(randomByte)%len(secretAlphabet)]
	}

	return string(buffer)
}

func (t *totp) GenerateURI(userSecret, account string) string {
	query := url.Values{}
	query.Set("secret", userSecret)
	query.Set("issuer", t.cfg.IcepinTOTP.Issuer)

	return fmt.Sprintf("otpauth://totp/%v:%v?%v", url.PathEscape(t.cfg.IcepinTOTP.Issuer), url.PathEscape(account), query.Encode())
}

func (t *totp) GenerateQR(userSecret, account string) ([]byte, error) {
	png, err := qrcode.Encode(t.GenerateURI(userSecret, account), qrcode.Medium, t.cfg.IcepinTOTP.QRSize)

	return png, errors.Wrapf(err, "failed to render the provisioning QR for account %v", account)
}

func (t *totp) TimeRemaining(now *time.Time) uint64 {
	period := t.cfg.IcepinTOTP.PeriodSeconds

	return (period - uint64(nonNegativeUnix(now))%period) % period
}

func (t *totp) counterAt(now *time.Time) uint64 {
	return uint64(nonNegativeUnix(now)) / t.cfg.IcepinTOTP.PeriodSeconds
}

func nonNegativeUnix(now *time.Time) int64 {
	if unix := now.Unix(); unix > 0 {
		return unix
	}

	return 0
}

func decodeSecret(userSecret string) ([]byte, error) {
	normalized := strings.ToUpper(strings.TrimRight(userSecret, "="))
	key, err := base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(normalized)
	if err != nil {
		return nil, errors.Wrapf(err, "malformed base32 secret")
	}
	if len(key) == 0 {
		return nil, errors.New("empty secret")
	}

	return key, nil
}
