// SPDX-License-Identifier: ice License 1.0
//go:build unix

package socket

import (
	"golang.org/x/sys/unix"
)

// ReuseAddress allows binding while a previous socket on the same address lingers.
func ReuseAddress() Option {
	return IntOption{Label: "SO_REUSEADDR", Level: unix.SOL_SOCKET, Opt: unix.SO_REUSEADDR, Value: enabled}
}

func setsockoptInt(fd uintptr, level, opt, value int) error {
	return unix.SetsockoptInt(int(fd), level, opt, value) //nolint:wrapcheck // Wrapped by the caller.
}
