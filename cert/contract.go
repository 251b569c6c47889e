// SPDX-License-Identifier: ice License 1.0

package cert

import (
	"github.com/pkg/errors"
)

// Public API.

var (
	ErrMalformedCertificate = errors.New("malformed certificate")
	ErrUnsupportedKey       = errors.New("unsupported public key")
)

// Private API.

const (
	minRSAKeyBits = 1024
	maxRSAKeyBits = 4096
)
