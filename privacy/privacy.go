// SPDX-License-Identifier: ice License 1.0

package privacy

import (
	"encoding/hex"

	"github.com/ericlagergren/siv"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	appcfg "github.com/ice-blockchain/icepin/config"
	"github.com/ice-blockchain/icepin/log"
)

func init() { //nolint:gochecknoinits // We're initializing the process wide default, once.
	var cfg config
	appcfg.MustLoadFromKey("icepin/privacy", &cfg)

	ed = NewEncryptDecrypter(cfg.Secret)
}

// NewEncryptDecrypter builds a deterministic AES-256-GCM-SIV sealer out of a hex encoded
// `nonce || key` secret. Determinism is what lets storage layers unique-index sealed values.
func NewEncryptDecrypter(secret string) EncryptDecrypter {
	material, err := hex.DecodeString(secret)
	log.Panic(errors.Wrap(err, "failed to hex decode the privacy secret")) //nolint:revive // Intended.
	if len(material) != aesKeyLength+siv.NonceSize {
		log.Panic(errors.Errorf("privacy secret has to be %v bytes, not %v", aesKeyLength+siv.NonceSize, len(material)))
	}
	aead, err := siv.NewGCM(material[siv.NonceSize:])
	log.Panic(errors.Wrap(err, "failed to build the aes-256-gcm-siv aead"))

	return &encryptDecrypter{aead: aead, nonce: material[:siv.NonceSize]}
}

func Encrypt(plaintext string) string {
	return ed.Encrypt(plaintext)
}

func Decrypt(val string) (string, error) {
	return ed.Decrypt(val) //nolint:wrapcheck // We proxy it.
}

func (e *encryptDecrypter) Encrypt(plaintext string) string {
	bytes := []byte(plaintext)

	return hex.EncodeToString(e.aead.Seal(bytes[:0], e.nonce, bytes, nil))
}

func (e *encryptDecrypter) Decrypt(val string) (string, error) {
	ciphertext, err := hex.DecodeString(val)
	if err != nil {
		return "", multierror.Append(errHexDecodingFailed, errors.Wrap(err, "failed to hex decode value"))
	}
	plaintext, err := e.aead.Open(ciphertext[:0], e.nonce, ciphertext, nil)
	if err != nil {
		return "", multierror.Append(errDecryptionFailed, errors.Wrap(err, "failed to open ciphertext"))
	}

	return string(plaintext), nil
}
