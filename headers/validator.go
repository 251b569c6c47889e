// SPDX-License-Identifier: ice License 1.0

package headers

import (
	"strings"

	"golang.org/x/net/http/httpguts"
)

func NewProtocolValidator() *ProtocolValidator {
	return new(ProtocolValidator)
}

// ValidateHeader rejects fields that make an HTTP/3 message malformed (RFC 9114, section 4.2 and 4.3):
// invalid names or values, names with uppercase characters, unknown pseudo-headers, connection-specific fields
// and any TE other than "trailers".
func (v *ProtocolValidator) ValidateHeader(name, value string) ValidationResult {
	if !httpguts.ValidHeaderFieldValue(value) {
		return Reject
	}
	if strings.HasPrefix(name, ":") {
		if _, known := knownPseudoHeaders[name]; !known {
			return Reject
		}

		return Accept
	}
	if !httpguts.ValidHeaderFieldName(name) || name != strings.ToLower(name) {
		return Reject
	}
	if _, found := connectionSpecificHeaders[name]; found {
		return Reject
	}
	if name == "te" && !strings.EqualFold(strings.TrimSpace(value), trailersValue) {
		return Reject
	}
	if v.DropUnderscoreHeaders && strings.Contains(name, "_") {
		return Drop
	}

	return Accept
}
