// SPDX-License-Identifier: ice License 1.0

package headers

import (
	"github.com/quic-go/qpack"
)

// Public API.

type (
	// ValidationResult is the verdict a Validator gives for a single header field.
	ValidationResult uint8

	// Validator decides, per field, whether a received header is kept, silently dropped or fails the whole block.
	Validator interface {
		ValidateHeader(name, value string) ValidationResult
	}
	ValidatorFunc func(name, value string) ValidationResult

	// Sink is the write side of a header collection.
	// Add always creates a new entry; Append concatenates to the first entry with that name, creating it if absent.
	Sink interface {
		Add(name, value string)
		Append(name, value string)
	}
	// Iterable is the read side of a header collection. Range stops when fn returns false.
	Iterable interface {
		Range(fn func(name, value string) bool)
	}

	// Result is either an accepted, fully built collection or a rejection. Nothing in between.
	Result[S Sink] struct {
		headers  S
		accepted bool
	}

	// Field is a single header entry, as carried on the wire.
	Field = qpack.HeaderField
	// Map is an ordered header collection with lower-cased names.
	// The zero value is ready to use. It is not safe for concurrent mutation.
	Map struct {
		fields []Field
	}

	// ProtocolValidator is the default HTTP/3 field validator.
	ProtocolValidator struct {
		// DropUnderscoreHeaders drops, instead of accepting, fields whose name contains '_'.
		DropUnderscoreHeaders bool
	}
)

const (
	Accept ValidationResult = iota
	Drop
	Reject
)

const (
	// Separator is what the QUIC stack uses to join multiple values of the same field into one.
	Separator = "\x00"
	Cookie    = "cookie"
)

// Private API.

const (
	trailersValue = "trailers"
)

//nolint:gochecknoglobals // Immutable lookup tables.
var (
	connectionSpecificHeaders = map[string]struct{}{
		"connection":        {},
		"keep-alive":        {},
		"proxy-connection":  {},
		"transfer-encoding": {},
		"upgrade":           {},
	}
	knownPseudoHeaders = map[string]struct{}{
		":method":    {},
		":scheme":    {},
		":authority": {},
		":path":      {},
		":protocol":  {},
		":status":    {},
	}
)
