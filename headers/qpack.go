// SPDX-License-Identifier: ice License 1.0

package headers

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/quic-go/qpack"
)

// ErrEmptyBlock is returned when encoding a header block without any fields.
var ErrEmptyBlock = errors.New("empty header block")

// Encode QPACK-encodes a wire block, without using the dynamic table.
func Encode(block []Field) ([]byte, error) {
	if len(block) == 0 {
		return nil, ErrEmptyBlock
	}
	buf := new(bytes.Buffer)
	encoder := qpack.NewEncoder(buf)
	for ix := range block {
		if err := encoder.WriteField(block[ix]); err != nil {
			return nil, errors.Wrapf(err, "failed to encode header field %q", block[ix].Name)
		}
	}
	if err := encoder.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to finish header block")
	}

	return buf.Bytes(), nil
}

// Decode decodes a complete QPACK-encoded header block.
func Decode(encoded []byte) ([]Field, error) {
	fields, err := qpack.NewDecoder(nil).DecodeFull(encoded)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode header block")
	}

	return fields, nil
}
