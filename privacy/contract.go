// SPDX-License-Identifier: ice License 1.0

package privacy

import (
	"crypto/cipher"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// Public API.

type (
	// EncryptDecrypter seals enrolled authenticator secrets (and anything else worth hiding)
	// deterministically, so equal plaintexts produce equal ciphertexts and storage layers can index them.
	EncryptDecrypter interface {
		Encrypt(string) string
		Decrypt(string) (string, error)
	}
	Secret   string
	DBSecret string
)

// Private API.

const (
	aesKeyLength = 32
)

// .
var (
	errHexDecodingFailed = errors.New("failed to hex decode value")
	errDecryptionFailed  = errors.New("failed to decrypt value")
	//nolint:gochecknoglobals // Because its loaded once, at runtime.
	ed EncryptDecrypter
	_  msgpack.CustomEncoder   = (*DBSecret)(nil)
	_  msgpack.CustomDecoder   = (*DBSecret)(nil)
	_  msgpack.CustomEncoder   = (*Secret)(nil)
	_  msgpack.CustomDecoder   = (*Secret)(nil)
	_  json.UnmarshalerContext = (*Secret)(nil)
	_  json.MarshalerContext   = (*Secret)(nil)
)

type (
	encryptDecrypter struct {
		aead  cipher.AEAD
		nonce []byte
	}
	config struct {
		Secret string `yaml:"secret" mapstructure:"secret"`
	}
)
