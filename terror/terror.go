// SPDX-License-Identifier: ice License 1.0

package terror

import (
	"github.com/pkg/errors"
)

func New(err error, data map[string]any) *Err {
	return &Err{error: err, Data: data}
}

// As extracts the typed error from anywhere in err's chain, or returns nil.
func As(err error) *Err {
	tErr := new(Err)
	if ok := errors.As(err, tErr); ok {
		return tErr
	}

	return nil
}

func (e *Err) Is(target error) bool {
	return errors.Is(target, e.error)
}

func (e *Err) Unwrap() error {
	return e.error
}

func (e *Err) As(target any) bool {
	other, ok := target.(*Err)
	if ok {
		*other = *e
	}

	return ok
}
