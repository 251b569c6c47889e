// SPDX-License-Identifier: ice License 1.0

package socket

import (
	"context"
	"io"
	"net"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/ice-blockchain/quicbridge/address"
)

// Public API.

const (
	// Fresh sockets were allocated by the Factory, which owns them.
	Fresh Role = iota + 1
	// Wrapped sockets delegate to a handle owned by the caller.
	Wrapped
)

var (
	ErrSocketCreation = errors.New("socket creation failed")
)

type (
	Role uint8

	// Option is a socket option applied to the raw descriptor before it is bound.
	Option interface {
		Name() string
		Apply(fd uintptr) error
	}

	// IntOption sets an integer valued socket option.
	IntOption struct {
		Label string
		Level int
		Opt   int
		Value int
	}

	// BorrowedHandle is a packet connection owned by someone else.
	// Sockets built on top of it never close it.
	BorrowedHandle struct {
		conn net.PacketConn
	}

	ConnectionSocket interface {
		io.Closer
		ID() string
		Role() Role
		PacketConn() net.PacketConn
		LocalAddress() address.Instance
		RemoteAddress() address.Instance
		// RequestedServerName is the SNI the wrapped connection was established with.
		RequestedServerName() string
		NegotiatedProtocol() string
		// AppliedOptions lists the names of the options successfully set on the descriptor, in order.
		AppliedOptions() []string
		IsOpen() bool
	}

	Factory interface {
		CreateFresh(ctx context.Context, peer, local address.Instance, options ...Option) (ConnectionSocket, error)
		WrapExisting(handle BorrowedHandle, self, peer net.Addr, hostname, alpn string) ConnectionSocket
	}

	// Config sizes the kernel buffers of fresh sockets. Zero picks the default, a negative value keeps the OS one.
	Config struct {
		ReceiveBufferSize int `yaml:"receiveBufferSize"`
		SendBufferSize    int `yaml:"sendBufferSize"`
	}
)

// Private API.

const (
	packetInfoV4Option             = "IP_PKTINFO"
	packetInfoV6Option             = "IPV6_RECVPKTINFO"
	receiveQueueOverflowOption     = "SO_RXQ_OVFL"
	receiveBufferSizeOption        = "SO_RCVBUF"
	sendBufferSizeOption           = "SO_SNDBUF"
	defaultReceiveBufferSize       = 2 << 20
	defaultSendBufferSize          = 2 << 20
	enabled                    int = 1
)

var (
	errUnsupportedOption = errors.New("socket option is not supported on this platform")

	//nolint:gochecknoglobals // Fallbacks for whatever the socket section leaves empty.
	defaultConfig = Config{
		ReceiveBufferSize: defaultReceiveBufferSize,
		SendBufferSize:    defaultSendBufferSize,
	}
)

type (
	factory struct {
		cfg *Config
	}

	freshSocket struct {
		conn    *net.UDPConn
		id      string
		local   address.Instance
		peer    address.Instance
		applied []string
		closed  atomic.Bool
	}

	wrappedSocket struct {
		conn       *borrowedConn
		id         string
		local      address.Instance
		peer       address.Instance
		serverName string
		alpn       string
	}

	// borrowedConn hides Close of the underlying handle.
	borrowedConn struct {
		net.PacketConn
		closed atomic.Bool
	}

	creationError struct {
		cause error
		msg   string
	}
)
