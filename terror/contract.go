// SPDX-License-Identifier: ice License 1.0

package terror

// Public API.

type (
	// Err is an error enriched with structured data, kept next to the sentinel it wraps.
	Err struct {
		error
		Data map[string]any `json:"data"`
	}
)

const (
	// DetailKey holds a human-readable description of what exactly went wrong.
	DetailKey = "detail"
)
