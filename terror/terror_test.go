// SPDX-License-Identifier: ice License 1.0

package terror

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBogus = errors.New("bogus") //nolint:gochecknoglobals // Shared, read only.

func TestTerrorCarriesData(t *testing.T) {
	t.Parallel()
	err := New(errBogus, map[string]any{"digits": 10})
	require.ErrorIs(t, err, errBogus)
	typed := As(err)
	require.NotNil(t, typed)
	assert.Equal(t, 10, typed.Data["digits"])
	assert.Equal(t, "bogus", err.Error())
}

func TestTerrorSurvivesWrapping(t *testing.T) {
	t.Parallel()
	wrapped := errors.Wrap(New(errBogus, map[string]any{"account": "bogusAccount"}), "outer layer")
	require.ErrorIs(t, wrapped, errBogus)
	typed := As(wrapped)
	require.NotNil(t, typed)
	assert.Equal(t, "bogusAccount", typed.Data["account"])
	assert.Nil(t, As(errors.New("plain")))
}
