// SPDX-License-Identifier: ice License 1.0

package privacy

import (
	"context"
	"encoding/hex"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/ice-blockchain/icepin/log"
)

func (s *Secret) Bind(val string) *Secret {
	*s = Secret(val)

	return s
}

func (s *DBSecret) Bind(val string) *DBSecret {
	*s = DBSecret(val)

	return s
}

func (s *Secret) MarshalJSON(_ context.Context) ([]byte, error) {
	if s == nil {
		return []byte(`null`), nil
	}
	if *s == "" {
		return []byte(`""`), nil
	}

	return []byte(`"` + seal(string(*s)) + `"`), nil
}

func (s *Secret) UnmarshalJSON(_ context.Context, bytes []byte) error {
	val := string(bytes)
	if val == "null" || val == `""` || val == "" {
		return nil
	}

	return s.decrypt(string(bytes[1 : len(bytes)-1]))
}

func (s *Secret) EncodeMsgpack(encoder *msgpack.Encoder) error {
	return encodeSealed(encoder, s == nil || *s == "", func() string { return string(*s) })
}

func (s *DBSecret) EncodeMsgpack(encoder *msgpack.Encoder) error {
	return encodeSealed(encoder, s == nil || *s == "", func() string { return string(*s) })
}

func (s *Secret) DecodeMsgpack(decoder *msgpack.Decoder) error {
	val, err := decoder.DecodeString()
	if err != nil {
		return errors.Wrap(err, "failed to decode value as string")
	}
	if val == "" {
		return nil
	}

	return s.decrypt(val)
}

func (s *DBSecret) DecodeMsgpack(decoder *msgpack.Decoder) error {
	val, err := decoder.DecodeString()
	if err != nil {
		return errors.Wrap(err, "failed to decode value as string")
	}
	if val == "" {
		return nil
	}

	return s.decrypt(val)
}

func (s *Secret) decrypt(val string) error {
	plaintext, err := unseal(val)
	if err != nil {
		return err
	}
	*s = Secret(plaintext)

	return nil
}

func (s *DBSecret) decrypt(val string) error {
	plaintext, err := unseal(val)
	if err != nil {
		return err
	}
	*s = DBSecret(plaintext)

	return nil
}

func (s *Secret) String() string {
	if s == nil {
		return ""
	}

	return string(*s)
}

func (s *DBSecret) String() string {
	if s == nil {
		return ""
	}

	return string(*s)
}

// seal encrypts the value, unless it is already hex, in which case it is assumed to be sealed already.
func seal(val string) string {
	if _, err := hex.DecodeString(val); err == nil {
		return val
	}

	return Encrypt(val)
}

// unseal is lenient with values that predate encryption at rest: those are kept as is.
func unseal(val string) (string, error) {
	decrypted, err := Decrypt(val)
	if err != nil {
		if errors.Is(err, errHexDecodingFailed) || errors.Is(err, errDecryptionFailed) {
			if errors.Is(err, errDecryptionFailed) {
				log.Error(err)
			}

			return val, nil
		}

		return "", errors.Wrap(err, "failed to decrypt value")
	}

	return decrypted, nil
}

func encodeSealed(encoder *msgpack.Encoder, empty bool, val func() string) error {
	if empty {
		return errors.Wrap(encoder.EncodeNil(), "failed to encode to nil")
	}

	return errors.Wrap(encoder.EncodeString(seal(val())), "failed to encode sealed string")
}
