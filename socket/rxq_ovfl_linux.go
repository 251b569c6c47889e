// SPDX-License-Identifier: ice License 1.0
//go:build linux

package socket

import (
	"net"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// enableReceiveQueueOverflow turns on the dropped datagrams counter delivered as ancillary data.
func enableReceiveQueueOverflow(conn *net.UDPConn) error {
	raw, err := conn.SyscallConn()
	if err != nil {
		return errors.Wrap(err, "failed to access raw socket")
	}
	var optErr error
	if err = raw.Control(func(fd uintptr) {
		optErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_RXQ_OVFL, enabled)
	}); err != nil {
		return errors.Wrap(err, "failed to access raw socket")
	}

	return errors.Wrapf(optErr, "failed to set %v", receiveQueueOverflowOption)
}
