// SPDX-License-Identifier: ice License 1.0

package proxy

import (
	"fmt"

	"github.com/pkg/errors"
)

// StreamResetReasons lists every reset reason, in declaration order.
func StreamResetReasons() []StreamResetReason {
	all := make([]StreamResetReason, 0, len(streamResetReasonNames))
	for ix := range streamResetReasonNames {
		all = append(all, StreamResetReason(ix))
	}

	return all
}

func (r StreamResetReason) String() string {
	if int(r) < len(streamResetReasonNames) {
		return streamResetReasonNames[r]
	}

	return fmt.Sprintf("StreamResetReason(%d)", uint8(r))
}

func (r StreamResetReason) MarshalText() ([]byte, error) {
	if int(r) >= len(streamResetReasonNames) {
		return nil, errors.Errorf("unknown stream reset reason %d", uint8(r))
	}

	return []byte(r.String()), nil
}

func (r *StreamResetReason) UnmarshalText(text []byte) error {
	for ix, name := range streamResetReasonNames {
		if name == string(text) {
			*r = StreamResetReason(ix)

			return nil
		}
	}

	return errors.Errorf("unknown stream reset reason %q", text)
}

func (c GoAwayErrorCode) String() string {
	if int(c) < len(goAwayErrorCodeNames) {
		return goAwayErrorCodeNames[c]
	}

	return fmt.Sprintf("GoAwayErrorCode(%d)", uint8(c))
}

func (c GoAwayErrorCode) MarshalText() ([]byte, error) {
	if int(c) >= len(goAwayErrorCodeNames) {
		return nil, errors.Errorf("unknown goaway error code %d", uint8(c))
	}

	return []byte(c.String()), nil
}

func (c *GoAwayErrorCode) UnmarshalText(text []byte) error {
	for ix, name := range goAwayErrorCodeNames {
		if name == string(text) {
			*c = GoAwayErrorCode(ix)

			return nil
		}
	}

	return errors.Errorf("unknown goaway error code %q", text)
}
