// SPDX-License-Identifier: ice License 1.0

package proxy

// Public API.

type (
	// StreamResetReason is the reason the proxy attaches to a stream that ended abnormally.
	StreamResetReason uint8
	// GoAwayErrorCode is the reason the proxy attaches to a received GOAWAY.
	GoAwayErrorCode uint8
)

const (
	// ConnectionFailure means the connection could not be established or failed during the handshake.
	ConnectionFailure StreamResetReason = iota
	// ConnectionTermination means the connection was closed after it had been established.
	ConnectionTermination
	// LocalReset means the stream was reset by this process.
	LocalReset
	// LocalRefusedStreamReset means this process refused the stream before it was processed.
	LocalRefusedStreamReset
	// Overflow means a buffer or stream limit was exceeded.
	Overflow
	// RemoteReset means the peer reset the stream.
	RemoteReset
	// RemoteRefusedStreamReset means the peer refused the stream before it was processed.
	RemoteRefusedStreamReset
	// ConnectError means the CONNECT tunnel failed upstream.
	ConnectError
	// ProtocolError means the peer violated the application protocol.
	ProtocolError
	// OverloadManager means the stream was shed because the proxy is overloaded.
	OverloadManager
)

const (
	GoAwayNoError GoAwayErrorCode = iota
	GoAwayOther
)

// Private API.

//nolint:gochecknoglobals // Immutable lookup tables.
var (
	streamResetReasonNames = [...]string{
		ConnectionFailure:        "ConnectionFailure",
		ConnectionTermination:    "ConnectionTermination",
		LocalReset:               "LocalReset",
		LocalRefusedStreamReset:  "LocalRefusedStreamReset",
		Overflow:                 "Overflow",
		RemoteReset:              "RemoteReset",
		RemoteRefusedStreamReset: "RemoteRefusedStreamReset",
		ConnectError:             "ConnectError",
		ProtocolError:            "ProtocolError",
		OverloadManager:          "OverloadManager",
	}
	goAwayErrorCodeNames = [...]string{
		GoAwayNoError: "NoError",
		GoAwayOther:   "Other",
	}
)
