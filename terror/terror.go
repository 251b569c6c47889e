// SPDX-License-Identifier: ice License 1.0

package terror

import (
	"fmt"

	"github.com/pkg/errors"
)

func New(err error, data map[string]any) *Err {
	return &Err{error: err, Data: data}
}

// WithDetail wraps err, attaching a formatted detail description to it.
func WithDetail(err error, format string, args ...any) *Err {
	return New(err, map[string]any{DetailKey: fmt.Sprintf(format, args...)})
}

func As(err error) *Err {
	var tErr *Err
	if errors.As(err, &tErr) {
		return tErr
	}

	return nil
}

// Detail returns the detail description carried by err, if any.
func Detail(err error) string {
	if tErr := As(err); tErr != nil {
		if detail, ok := tErr.Data[DetailKey].(string); ok {
			return detail
		}
	}

	return ""
}

func (e *Err) Error() string {
	if detail, ok := e.Data[DetailKey].(string); ok && detail != "" {
		return fmt.Sprintf("%v: %v", e.error, detail)
	}

	return e.error.Error()
}

func (e *Err) Is(er error) bool {
	return errors.Is(er, e.error)
}

func (e *Err) Unwrap() error {
	return e.error
}
