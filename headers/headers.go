// SPDX-License-Identifier: ice License 1.0

package headers

import (
	"strings"

	"github.com/ice-blockchain/quicbridge/log"
)

// FromWire builds a collection out of a received header list.
// Fields are processed once, in order. Accepted names are lower-cased and cookie crumbs are
// concatenated into a single "cookie" entry. A single Reject discards everything built so far.
func FromWire[S Sink](fields []Field, validator Validator, create func() S) Result[S] {
	headers := create()
	for ix := range fields {
		switch validator.ValidateHeader(fields[ix].Name, fields[ix].Value) {
		case Accept:
			if name := strings.ToLower(fields[ix].Name); name == Cookie {
				headers.Append(name, fields[ix].Value)
			} else {
				headers.Add(name, fields[ix].Value)
			}
		case Drop:
			continue
		default:
			log.Debug("header list rejected", "position", ix, "fields", len(fields))

			return Result[S]{}
		}
	}

	return Result[S]{headers: headers, accepted: true}
}

// FromBlock builds a collection out of a header block in which the QUIC stack coalesced
// same-name values with Separator (i.e. trailers). No validation is performed.
func FromBlock[S Sink](block []Field, create func() S) S {
	headers := create()
	for ix := range block {
		name := strings.ToLower(block[ix].Name)
		for value := range strings.SplitSeq(block[ix].Value, Separator) {
			headers.Add(name, value)
		}
	}

	return headers
}

// ToWireBlock flattens a collection into a wire-ready header list.
// Values containing Separator are split into one field per segment, in order. No validation is performed.
func ToWireBlock(collection Iterable) []Field {
	var block []Field
	collection.Range(func(name, value string) bool {
		name = strings.ToLower(name)
		for segment := range strings.SplitSeq(value, Separator) {
			block = append(block, Field{Name: name, Value: segment})
		}

		return true
	})

	return block
}

func (r Result[S]) Headers() (S, bool) {
	return r.headers, r.accepted
}

func (r Result[S]) Rejected() bool {
	return !r.accepted
}

func (f ValidatorFunc) ValidateHeader(name, value string) ValidationResult {
	return f(name, value)
}

func (v ValidationResult) String() string {
	switch v {
	case Accept:
		return "ACCEPT"
	case Drop:
		return "DROP"
	case Reject:
		return "REJECT"
	default:
		return "UNKNOWN"
	}
}
