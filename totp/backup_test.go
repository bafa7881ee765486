// SPDX-License-Identifier: ice License 1.0

package totp

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ice-blockchain/icepin/terror"
)

func TestGenerateBackupCodes(t *testing.T) {
	t.Parallel()
	client := New("self")
	codes, hashes, err := client.GenerateBackupCodes(4)
	require.NoError(t, err)
	require.Len(t, codes, 4)
	require.Len(t, hashes, 4)
	seen := make(map[string]bool, len(codes))
	for ix, code := range codes {
		require.Len(t, code, 2*backupCodeByteLength)
		_, dErr := hex.DecodeString(code)
		require.NoError(t, dErr)
		require.False(t, seen[code])
		seen[code] = true
		require.NotEqual(t, code, hashes[ix])
	}
}

func TestGenerateBackupCodesInvalidCount(t *testing.T) {
	t.Parallel()
	client := New("self")
	for _, count := range []int{0, -3} {
		codes, hashes, err := client.GenerateBackupCodes(count)
		require.ErrorIs(t, err, ErrInvalidBackupCodeCount)
		require.Equal(t, count, terror.As(err).Data["count"])
		require.Nil(t, codes)
		require.Nil(t, hashes)
	}
}

func TestVerifyBackupCode(t *testing.T) {
	t.Parallel()
	client := New("self")
	codes, hashes, err := client.GenerateBackupCodes(4)
	require.NoError(t, err)
	used := make([]bool, len(hashes))
	require.Equal(t, 2, client.VerifyBackupCode(codes[2], hashes, used))
	require.Equal(t, 0, client.VerifyBackupCode(" \t"+codes[0]+"\n", hashes, used))
	used[2] = true
	require.Equal(t, -1, client.VerifyBackupCode(codes[2], hashes, used))
	require.Equal(t, -1, client.VerifyBackupCode("deadbeef", hashes, used))
	require.Equal(t, -1, client.VerifyBackupCode("", hashes, used))
	require.Equal(t, -1, client.VerifyBackupCode(codes[1], nil, nil))
}
