// SPDX-License-Identifier: ice License 1.0

package totp

import (
	"encoding/hex"
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/ice-blockchain/icepin/terror"
)

// GenerateBackupCodes builds single use recovery codes together with their bcrypt hashes.
// Codes go to the user, hashes go to storage; plaintext codes are not recoverable from the hashes.
func (t *totp) GenerateBackupCodes(count int) (codes, hashes []string, err error) {
	if count < 1 {
		return nil, nil, terror.New(ErrInvalidBackupCodeCount, map[string]any{"count": count})
	}
	codes = make([]string, 0, count)
	hashes = make([]string, 0, count)
	for range count {
		randomBytes := make([]byte, backupCodeByteLength)
		if _, rErr := io.ReadFull(t.entropy, randomBytes); rErr != nil {
			return nil, nil, errors.Wrapf(rErr, "failed to read entropy for a backup code")
		}
		code := hex.EncodeToString(randomBytes)
		hash, hErr := bcrypt.GenerateFromPassword([]byte(code), backupCodeBcryptCost)
		if hErr != nil {
			return nil, nil, errors.Wrapf(hErr, "failed to hash a backup code")
		}
		codes = append(codes, code)
		hashes = append(hashes, string(hash))
	}

	return codes, hashes, nil
}

// VerifyBackupCode returns the index of the first unused hash matching the code, or -1.
// The caller is expected to mark the returned index as used.
func (*totp) VerifyBackupCode(backupCode string, hashes []string, used []bool) int {
	candidate := []byte(strings.TrimSpace(backupCode))
	for ix, hash := range hashes {
		if ix < len(used) && used[ix] {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(hash), candidate) == nil {
			return ix
		}
	}

	return -1
}
