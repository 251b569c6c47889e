// SPDX-License-Identifier: ice License 1.0

package errcode

import (
	"github.com/quic-go/quic-go/http3"

	"github.com/ice-blockchain/quicbridge/proxy"
)

// Public API.

type (
	// Kind tells where a Signal came from and what it terminates.
	Kind uint8

	// Signal is a reset, close or goaway observed on the wire, paired with the reason the proxy uses for it.
	// Reason is meaningful for every Kind but GoAway; GoAwayReason only for GoAway.
	Signal struct {
		Code         uint64
		Kind         Kind
		Reason       proxy.StreamResetReason
		GoAwayReason proxy.GoAwayErrorCode
	}
)

const (
	LocalStreamReset Kind = iota
	RemoteStreamReset
	LocalConnectionClose
	RemoteConnectionClose
	GoAway
)

// Every table falls back to these for codes or reasons it has no dedicated entry for.
const (
	FallbackStreamError           = http3.ErrCodeGeneralProtocolError
	FallbackLocalResetReason      = proxy.LocalReset
	FallbackRemoteResetReason     = proxy.RemoteReset
	FallbackConnectionCloseReason = proxy.ConnectionTermination
	FallbackGoAwayCode            = proxy.GoAwayOther
)
