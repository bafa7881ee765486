// SPDX-License-Identifier: ice License 1.0

package fixture

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ice-blockchain/icepin/time"
	"github.com/ice-blockchain/icepin/totp"
)

// Enrollment is everything an authenticator app receives when a user enables 2FA.
type Enrollment struct {
	Client  totp.TOTP
	Account string
	Secret  string
	URI     string
}

// Enroll builds a complete bogus enrollment, so consumer tests don't have to orchestrate one.
func Enroll(tb testing.TB, applicationYAMLKey string) *Enrollment {
	tb.Helper()
	client := totp.New(applicationYAMLKey)
	account := uuid.NewString() + "@example.com"
	secret := client.GenerateSecret()
	require.NotEmpty(tb, secret)

	return &Enrollment{Client: client, Account: account, Secret: secret, URI: client.GenerateURI(secret, account)}
}

// CodeAt returns the code the enrolled authenticator would display at that instant.
func (e *Enrollment) CodeAt(tb testing.TB, now *time.Time) string {
	tb.Helper()
	code, err := e.Client.GenerateCode(now, e.Secret)
	require.NoError(tb, err)

	return code
}

// AssertCurrentCode verifies that the enrolled secret accepts the code it just displayed.
func AssertCurrentCode(tb testing.TB, enrollment *Enrollment) {
	tb.Helper()
	now := time.Now()
	assert.True(tb, enrollment.Client.Verify(now, enrollment.Secret, enrollment.CodeAt(tb, now)))
}
