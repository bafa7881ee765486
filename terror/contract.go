// SPDX-License-Identifier: ice License 1.0

package terror

// Public API.

type (
	// Err is an error that carries structured data about what exactly went wrong,
	// so callers can act on the specifics without parsing the message.
	Err struct {
		error
		Data map[string]any `json:"data"`
	}
)
