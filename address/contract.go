// SPDX-License-Identifier: ice License 1.0

package address

import (
	"net/netip"
)

// Public API.

type (
	// Family is the address family of an Instance.
	Family uint8

	// Instance is an immutable socket address value.
	// The zero value is the unspecified address.
	Instance struct {
		addrPort netip.AddrPort
	}
)

const (
	Unspecified Family = iota
	IPv4
	IPv6
)

// Private API.

const (
	unspecifiedText = "<unspecified>"
)
