// SPDX-License-Identifier: ice License 1.0

package errcode

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/quic-go/quic-go"
	"github.com/quic-go/quic-go/http3"

	"github.com/ice-blockchain/quicbridge/proxy"
)

// ResetReasonToStreamError is used when the proxy resets a stream itself.
func ResetReasonToStreamError(reason proxy.StreamResetReason) http3.ErrCode {
	switch reason {
	case proxy.LocalRefusedStreamReset:
		return http3.ErrCodeRequestRejected
	case proxy.ConnectionFailure, proxy.ConnectionTermination:
		return http3.ErrCodeInternalError
	case proxy.LocalReset:
		return http3.ErrCodeRequestCanceled
	case proxy.ProtocolError:
		return http3.ErrCodeMessageError
	case proxy.Overflow, proxy.OverloadManager:
		return http3.ErrCodeExcessiveLoad
	case proxy.ConnectError:
		return http3.ErrCodeConnectError
	default:
		return FallbackStreamError
	}
}

// StreamErrorToLocalResetReason is used when the QUIC stack of this process reset the stream.
func StreamErrorToLocalResetReason(code http3.ErrCode) proxy.StreamResetReason {
	switch code { //nolint:exhaustive // Everything else is a plain local reset.
	case http3.ErrCodeRequestRejected:
		return proxy.LocalRefusedStreamReset
	case http3.ErrCodeInternalError:
		return proxy.ConnectionFailure
	case http3.ErrCodeGeneralProtocolError, http3.ErrCodeMessageError:
		return proxy.ProtocolError
	case http3.ErrCodeExcessiveLoad:
		return proxy.Overflow
	default:
		return FallbackLocalResetReason
	}
}

// StreamErrorToRemoteResetReason is used when a RESET_STREAM frame is received from the peer.
func StreamErrorToRemoteResetReason(code http3.ErrCode) proxy.StreamResetReason {
	switch code { //nolint:exhaustive // Everything else is a plain remote reset.
	case http3.ErrCodeRequestRejected:
		return proxy.RemoteRefusedStreamReset
	case http3.ErrCodeInternalError:
		return proxy.ConnectionFailure
	case http3.ErrCodeConnectError:
		return proxy.ConnectError
	default:
		return FallbackRemoteResetReason
	}
}

// ConnectionErrorToLocalResetReason is used when the connection is closed by this process.
func ConnectionErrorToLocalResetReason(code quic.TransportErrorCode) proxy.StreamResetReason {
	switch {
	case code == quic.ConnectionRefused, code.IsCryptoError():
		return proxy.ConnectionFailure
	case code == quic.ProtocolViolation, code == quic.FrameEncodingError:
		return proxy.ProtocolError
	default:
		return FallbackConnectionCloseReason
	}
}

// ConnectionErrorToRemoteResetReason is used when the connection is closed by the peer.
func ConnectionErrorToRemoteResetReason(code quic.TransportErrorCode) proxy.StreamResetReason {
	if code == quic.ConnectionRefused || code.IsCryptoError() {
		return proxy.ConnectionFailure
	}

	return FallbackConnectionCloseReason
}

// ConnectionErrorToGoAwayCode is used when a GOAWAY is received.
func ConnectionErrorToGoAwayCode(code http3.ErrCode) proxy.GoAwayErrorCode {
	if code == http3.ErrCodeNoError {
		return proxy.GoAwayNoError
	}

	return FallbackGoAwayCode
}

func NewStreamReset(code http3.ErrCode, remote bool) Signal {
	if remote {
		return Signal{Kind: RemoteStreamReset, Code: uint64(code), Reason: StreamErrorToRemoteResetReason(code)}
	}

	return Signal{Kind: LocalStreamReset, Code: uint64(code), Reason: StreamErrorToLocalResetReason(code)}
}

func NewConnectionClose(code quic.TransportErrorCode, remote bool) Signal {
	if remote {
		return Signal{Kind: RemoteConnectionClose, Code: uint64(code), Reason: ConnectionErrorToRemoteResetReason(code)}
	}

	return Signal{Kind: LocalConnectionClose, Code: uint64(code), Reason: ConnectionErrorToLocalResetReason(code)}
}

func NewGoAway(code http3.ErrCode) Signal {
	return Signal{Kind: GoAway, Code: uint64(code), GoAwayReason: ConnectionErrorToGoAwayCode(code)}
}

// FromError classifies an error returned by quic-go into a Signal.
// It reports false if err does not carry any reset, close or timeout information.
//
//nolint:funlen // A flat switch over the quic-go error types reads better.
func FromError(err error) (Signal, bool) {
	if err == nil {
		return Signal{}, false
	}
	var (
		streamErr      *quic.StreamError
		applicationErr *quic.ApplicationError
		transportErr   *quic.TransportError
		handshakeErr   *quic.HandshakeTimeoutError
		idleErr        *quic.IdleTimeoutError
		resetErr       *quic.StatelessResetError
	)
	switch {
	case errors.As(err, &streamErr):
		return NewStreamReset(http3.ErrCode(streamErr.ErrorCode), streamErr.Remote), true
	case errors.As(err, &transportErr):
		return NewConnectionClose(transportErr.ErrorCode, transportErr.Remote), true
	case errors.As(err, &applicationErr):
		kind := LocalConnectionClose
		if applicationErr.Remote {
			kind = RemoteConnectionClose
		}

		return Signal{Kind: kind, Code: uint64(applicationErr.ErrorCode), Reason: FallbackConnectionCloseReason}, true
	case errors.As(err, &handshakeErr):
		return Signal{Kind: LocalConnectionClose, Code: uint64(quic.NoError), Reason: proxy.ConnectionFailure}, true
	case errors.As(err, &idleErr):
		return Signal{Kind: LocalConnectionClose, Code: uint64(quic.NoError), Reason: FallbackConnectionCloseReason}, true
	case errors.As(err, &resetErr):
		return Signal{Kind: RemoteConnectionClose, Code: uint64(quic.NoError), Reason: FallbackConnectionCloseReason}, true
	default:
		return Signal{}, false
	}
}

func (k Kind) String() string {
	switch k {
	case LocalStreamReset:
		return "LocalStreamReset"
	case RemoteStreamReset:
		return "RemoteStreamReset"
	case LocalConnectionClose:
		return "LocalConnectionClose"
	case RemoteConnectionClose:
		return "RemoteConnectionClose"
	case GoAway:
		return "GoAway"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

func (s Signal) String() string {
	if s.Kind == GoAway {
		return fmt.Sprintf("%v(code=%#x, reason=%v)", s.Kind, s.Code, s.GoAwayReason)
	}

	return fmt.Sprintf("%v(code=%#x, reason=%v)", s.Kind, s.Code, s.Reason)
}
