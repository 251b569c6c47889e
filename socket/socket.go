// SPDX-License-Identifier: ice License 1.0

package socket

import (
	"context"
	"fmt"
	"net"
	"slices"
	"syscall"
	"time"

	"dario.cat/mergo"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/quic-go/quic-go"
	"golang.org/x/net/ipv4"
	"golang.org/x/net/ipv6"

	"github.com/ice-blockchain/quicbridge/address"
	appcfg "github.com/ice-blockchain/quicbridge/config"
	"github.com/ice-blockchain/quicbridge/log"
)

func NewFactory(applicationYAMLKey string) Factory {
	var cfg Config
	appcfg.MustLoadFromKey(applicationYAMLKey, &cfg)

	return newFactory(&cfg)
}

func newFactory(cfg *Config) *factory {
	merged := *cfg
	if err := mergo.Merge(&merged, defaultConfig); err != nil {
		log.Panic(errors.Wrap(err, "failed to apply socket defaults"))
	}

	return &factory{cfg: &merged}
}

// Borrow marks conn as owned by the caller. Sockets wrapping it will never close it.
func Borrow(conn net.PacketConn) BorrowedHandle {
	return BorrowedHandle{conn: conn}
}

// NewTransport hands the socket over to quic-go.
func NewTransport(sock ConnectionSocket) *quic.Transport {
	return &quic.Transport{Conn: sock.PacketConn()}
}

// CreateFresh binds a new UDP endpoint to local, or to the wildcard address of peer's family if local is unspecified.
// Caller options are applied before bind; any failure aborts the creation.
func (f *factory) CreateFresh(ctx context.Context, peer, local address.Instance, options ...Option) (ConnectionSocket, error) {
	bind := local
	if bind.IsUnspecified() {
		bind = address.Any(peer.Family())
	}
	if bind.IsUnspecified() {
		return nil, newCreationError(errors.New("neither local nor peer address is specified"), "no address to bind to")
	}
	applied := make([]string, 0, len(options)+4) //nolint:mnd // Buffers, packet info and overflow counters.
	listenConfig := net.ListenConfig{Control: func(_, _ string, raw syscall.RawConn) error {
		var optErr error
		if err := raw.Control(func(fd uintptr) {
			applied, optErr = applyOptions(fd, options, applied)
		}); err != nil {
			return errors.Wrap(err, "failed to access raw socket")
		}

		return optErr
	}}
	packetConn, err := listenConfig.ListenPacket(ctx, bind.Network(), address.ToWire(bind).String())
	if err != nil {
		return nil, newCreationError(err, fmt.Sprintf("failed to bind to %v", bind))
	}
	conn := packetConn.(*net.UDPConn) //nolint:errcheck,forcetypeassert // UDP networks always yield *net.UDPConn.
	if applied, err = f.configure(conn, bind.Family(), applied); err != nil {
		return nil, newCreationError(multierror.Append(err, conn.Close()).ErrorOrNil(), fmt.Sprintf("failed to configure %v", bind))
	}
	sock := &freshSocket{
		conn:    conn,
		id:      uuid.NewString(),
		local:   address.FromWire(conn.LocalAddr()),
		peer:    peer,
		applied: applied,
	}
	log.Debug("fresh socket created", "id", sock.id, "local", sock.local, "peer", sock.peer, "options", sock.applied)

	return sock, nil
}

func applyOptions(fd uintptr, options []Option, applied []string) ([]string, error) {
	var mErr *multierror.Error
	for _, option := range options {
		if err := option.Apply(fd); err != nil {
			mErr = multierror.Append(mErr, errors.Wrapf(err, "failed to apply %v", option.Name()))

			continue
		}
		applied = append(applied, option.Name())
	}

	return applied, mErr.ErrorOrNil()
}

func (f *factory) configure(conn *net.UDPConn, family address.Family, applied []string) ([]string, error) {
	var mErr *multierror.Error
	if f.cfg.ReceiveBufferSize > 0 {
		if err := conn.SetReadBuffer(f.cfg.ReceiveBufferSize); err != nil {
			mErr = multierror.Append(mErr, errors.Wrapf(err, "failed to set %v", receiveBufferSizeOption))
		} else {
			applied = append(applied, receiveBufferSizeOption)
		}
	}
	if f.cfg.SendBufferSize > 0 {
		if err := conn.SetWriteBuffer(f.cfg.SendBufferSize); err != nil {
			mErr = multierror.Append(mErr, errors.Wrapf(err, "failed to set %v", sendBufferSizeOption))
		} else {
			applied = append(applied, sendBufferSizeOption)
		}
	}
	name, err := enablePacketInfo(conn, family)
	applied = appendIfSupported(applied, name, err)
	applied = appendIfSupported(applied, receiveQueueOverflowOption, enableReceiveQueueOverflow(conn))

	return applied, mErr.ErrorOrNil()
}

func enablePacketInfo(conn *net.UDPConn, family address.Family) (string, error) {
	if family == address.IPv4 {
		return packetInfoV4Option, ipv4.NewPacketConn(conn).SetControlMessage(ipv4.FlagDst|ipv4.FlagInterface, true) //nolint:wrapcheck // .
	}

	return packetInfoV6Option, ipv6.NewPacketConn(conn).SetControlMessage(ipv6.FlagDst|ipv6.FlagInterface, true) //nolint:wrapcheck // .
}

// appendIfSupported records name only when the platform accepted the option.
// Platforms lacking it are not an error.
func appendIfSupported(applied []string, name string, err error) []string {
	if err != nil {
		log.Debug("socket option unavailable", "option", name, "reason", err.Error())

		return applied
	}

	return append(applied, name)
}

// WrapExisting adapts a connection somebody else accepted. No options are applied and the handle is never closed.
func (*factory) WrapExisting(handle BorrowedHandle, self, peer net.Addr, hostname, alpn string) ConnectionSocket {
	sock := &wrappedSocket{
		conn:       &borrowedConn{PacketConn: handle.conn},
		id:         uuid.NewString(),
		local:      address.FromWire(self),
		peer:       address.FromWire(peer),
		serverName: hostname,
		alpn:       alpn,
	}
	log.Debug("wrapped socket created", "id", sock.id, "local", sock.local, "peer", sock.peer, "sni", hostname, "alpn", alpn)

	return sock
}

func (s *freshSocket) ID() string {
	return s.id
}

func (*freshSocket) Role() Role {
	return Fresh
}

func (s *freshSocket) PacketConn() net.PacketConn {
	return s.conn
}

func (s *freshSocket) LocalAddress() address.Instance {
	return s.local
}

func (s *freshSocket) RemoteAddress() address.Instance {
	return s.peer
}

func (*freshSocket) RequestedServerName() string {
	return ""
}

func (*freshSocket) NegotiatedProtocol() string {
	return ""
}

func (s *freshSocket) AppliedOptions() []string {
	return slices.Clone(s.applied)
}

func (s *freshSocket) IsOpen() bool {
	return !s.closed.Load()
}

func (s *freshSocket) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	log.Debug("fresh socket closed", "id", s.id)
	if err := s.conn.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		return errors.Wrapf(err, "failed to close socket %v", s.id)
	}

	return nil
}

func (s *wrappedSocket) ID() string {
	return s.id
}

func (*wrappedSocket) Role() Role {
	return Wrapped
}

func (s *wrappedSocket) PacketConn() net.PacketConn {
	return s.conn
}

func (s *wrappedSocket) LocalAddress() address.Instance {
	return s.local
}

func (s *wrappedSocket) RemoteAddress() address.Instance {
	return s.peer
}

func (s *wrappedSocket) RequestedServerName() string {
	return s.serverName
}

func (s *wrappedSocket) NegotiatedProtocol() string {
	return s.alpn
}

func (*wrappedSocket) AppliedOptions() []string {
	return nil
}

func (s *wrappedSocket) IsOpen() bool {
	return !s.conn.closed.Load()
}

func (s *wrappedSocket) Close() error {
	if !s.conn.closed.Swap(true) {
		log.Debug("wrapped socket released", "id", s.id)
	}

	return nil
}

func (c *borrowedConn) ReadFrom(p []byte) (int, net.Addr, error) {
	if c.closed.Load() {
		return 0, nil, net.ErrClosed
	}

	return c.PacketConn.ReadFrom(p) //nolint:wrapcheck // Callers rely on the original network errors.
}

func (c *borrowedConn) WriteTo(p []byte, addr net.Addr) (int, error) {
	if c.closed.Load() {
		return 0, net.ErrClosed
	}

	return c.PacketConn.WriteTo(p, addr) //nolint:wrapcheck // Callers rely on the original network errors.
}

func (c *borrowedConn) SetDeadline(t time.Time) error {
	if c.closed.Load() {
		return net.ErrClosed
	}

	return c.PacketConn.SetDeadline(t) //nolint:wrapcheck // Callers rely on the original network errors.
}

func (c *borrowedConn) SetReadDeadline(t time.Time) error {
	if c.closed.Load() {
		return net.ErrClosed
	}

	return c.PacketConn.SetReadDeadline(t) //nolint:wrapcheck // Callers rely on the original network errors.
}

func (c *borrowedConn) SetWriteDeadline(t time.Time) error {
	if c.closed.Load() {
		return net.ErrClosed
	}

	return c.PacketConn.SetWriteDeadline(t) //nolint:wrapcheck // Callers rely on the original network errors.
}

// Close releases the borrowed handle without closing it.
func (c *borrowedConn) Close() error {
	c.closed.Store(true)

	return nil
}

func (o IntOption) Name() string {
	return o.Label
}

func (o IntOption) Apply(fd uintptr) error {
	return setsockoptInt(fd, o.Level, o.Opt, o.Value)
}

func (r Role) String() string {
	switch r {
	case Fresh:
		return "fresh"
	case Wrapped:
		return "wrapped"
	default:
		return fmt.Sprintf("Role(%d)", uint8(r))
	}
}

func newCreationError(cause error, msg string) error {
	return errors.WithStack(&creationError{cause: cause, msg: msg})
}

func (e *creationError) Error() string {
	return fmt.Sprintf("%v: %v: %v", ErrSocketCreation, e.msg, e.cause)
}

func (e *creationError) Is(target error) bool {
	return target == ErrSocketCreation //nolint:errorlint // Sentinel identity.
}

func (e *creationError) Unwrap() error {
	return e.cause
}
