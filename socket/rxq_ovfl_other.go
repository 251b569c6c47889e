// SPDX-License-Identifier: ice License 1.0
//go:build !linux

package socket

import (
	"net"
)

func enableReceiveQueueOverflow(*net.UDPConn) error {
	return errUnsupportedOption
}
