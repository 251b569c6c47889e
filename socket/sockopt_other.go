// SPDX-License-Identifier: ice License 1.0
//go:build !unix

package socket

func ReuseAddress() Option {
	return IntOption{Label: "SO_REUSEADDR"}
}

func setsockoptInt(uintptr, int, int, int) error {
	return errUnsupportedOption
}
