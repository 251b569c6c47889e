// SPDX-License-Identifier: ice License 1.0

package headers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/ice-blockchain/quicbridge/testing"
)

func acceptAll() Validator {
	return ValidatorFunc(func(string, string) ValidationResult { return Accept })
}

//nolint:funlen // It's better to keep it together.
func TestFromWire(t *testing.T) {
	t.Parallel()
	GIVEN("a header list without cookies", func() {
		fields := []Field{
			{Name: ":method", Value: "GET"},
			{Name: "X-Trace", Value: "1"},
			{Name: "accept", Value: "text/html"},
			{Name: "x-trace", Value: "2"},
		}
		WHEN("every field is accepted", func() {
			result := FromWire(fields, acceptAll(), NewMap)
			THEN(func() {
				headers, ok := result.Headers()
				require.True(t, ok)
				assert.False(t, result.Rejected())
				IT("keeps every value in first-seen order, with lower-cased names", func() {
					assert.Equal(t, []Field{
						{Name: ":method", Value: "GET"},
						{Name: "x-trace", Value: "1"},
						{Name: "accept", Value: "text/html"},
						{Name: "x-trace", Value: "2"},
					}, headers.Fields())
					assert.Equal(t, []string{"1", "2"}, headers.Values("X-Trace"))
				})
			})
		})
	})
	GIVEN("a header list with cookie crumbs", func() {
		fields := []Field{
			{Name: "cookie", Value: "a=1"},
			{Name: "accept", Value: "*/*"},
			{Name: "Cookie", Value: "b=2"},
			{Name: "cookie", Value: "c=3"},
		}
		WHEN("every field is accepted", func() {
			headers, ok := FromWire(fields, acceptAll(), NewMap).Headers()
			require.True(t, ok)
			IT("concatenates the crumbs into a single entry without a delimiter", func() {
				assert.Equal(t, []string{"a=1b=2c=3"}, headers.Values(Cookie))
				assert.Equal(t, 2, headers.Len())
				cookie, found := headers.Get(Cookie)
				assert.True(t, found)
				assert.Equal(t, "a=1b=2c=3", cookie)
			})
		})
	})
}

func TestFromWire_DropAndReject(t *testing.T) {
	t.Parallel()
	fields := []Field{{Name: "a", Value: "1"}, {Name: "b", Value: "2"}, {Name: "c", Value: "3"}}
	for position := range fields {
		validator := ValidatorFunc(func(name, _ string) ValidationResult {
			if name == fields[position].Name {
				return Drop
			}

			return Accept
		})
		headers, ok := FromWire(fields, validator, NewMap).Headers()
		require.True(t, ok, position)
		assert.Equal(t, len(fields)-1, headers.Len(), position)
		_, found := headers.Get(fields[position].Name)
		assert.False(t, found, position)
	}
	for position := range fields {
		validations := 0
		validator := ValidatorFunc(func(name, _ string) ValidationResult {
			validations++
			if name == fields[position].Name {
				return Reject
			}

			return Accept
		})
		result := FromWire(fields, validator, NewMap)
		assert.True(t, result.Rejected(), position)
		headers, ok := result.Headers()
		assert.False(t, ok, position)
		assert.Nil(t, headers, position)
		assert.Equal(t, position+1, validations, position)
	}
	unknown := ValidatorFunc(func(string, string) ValidationResult { return ValidationResult(42) })
	assert.True(t, FromWire(fields, unknown, NewMap).Rejected())

	headers, ok := FromWire(nil, acceptAll(), NewMap).Headers()
	require.True(t, ok)
	assert.Zero(t, headers.Len())
}

func TestToWireBlock(t *testing.T) {
	t.Parallel()
	headers := NewMap()
	headers.Add("X-Multi", "x\x00y\x00z")
	headers.Add("accept", "*/*")
	headers.Add("empty", "")
	assert.Equal(t, []Field{
		{Name: "x-multi", Value: "x"},
		{Name: "x-multi", Value: "y"},
		{Name: "x-multi", Value: "z"},
		{Name: "accept", Value: "*/*"},
		{Name: "empty", Value: ""},
	}, ToWireBlock(headers))
	assert.Empty(t, ToWireBlock(NewMap()))
}

func TestFromBlock(t *testing.T) {
	t.Parallel()
	headers := FromBlock([]Field{{Name: "Grpc-Status", Value: "0"}, {Name: "x-multi", Value: "a\x00b"}}, NewMap)
	assert.Equal(t, []Field{
		{Name: "grpc-status", Value: "0"},
		{Name: "x-multi", Value: "a"},
		{Name: "x-multi", Value: "b"},
	}, headers.Fields())
}

func TestMap(t *testing.T) {
	t.Parallel()
	var headers Map
	headers.Append("Cookie", "a=1")
	headers.Add("X-A", "1")
	headers.Append("cookie", "b=2")
	_, found := headers.Get("missing")
	assert.False(t, found)
	assert.Nil(t, headers.Values("missing"))
	fields := headers.Fields()
	assert.Equal(t, []Field{{Name: "cookie", Value: "a=1b=2"}, {Name: "x-a", Value: "1"}}, fields)
	fields[0].Value = "mutated"
	cookie, _ := headers.Get("cookie")
	assert.Equal(t, "a=1b=2", cookie)

	visited := 0
	headers.Range(func(string, string) bool {
		visited++

		return false
	})
	assert.Equal(t, 1, visited)
}

func TestProtocolValidator(t *testing.T) {
	t.Parallel()
	validator := NewProtocolValidator()
	for _, tc := range []struct {
		name, value string
		expected    ValidationResult
	}{
		{":method", "GET", Accept},
		{":protocol", "websocket", Accept},
		{":unknown", "x", Reject},
		{"content-type", "text/plain", Accept},
		{"x_custom", "1", Accept},
		{"Content-Type", "text/plain", Reject},
		{"X-Trace", "1", Reject},
		{":Method", "GET", Reject},
		{"Connection", "keep-alive", Reject},
		{"connection", "keep-alive", Reject},
		{"keep-alive", "timeout=5", Reject},
		{"proxy-connection", "close", Reject},
		{"transfer-encoding", "chunked", Reject},
		{"upgrade", "h2c", Reject},
		{"te", "trailers", Accept},
		{"te", "gzip", Reject},
		{"bad name", "x", Reject},
		{"", "x", Reject},
		{"x-value", "line\r\nbreak", Reject},
		{"x-value", "nul\x00byte", Reject},
	} {
		assert.Equal(t, tc.expected, validator.ValidateHeader(tc.name, tc.value), tc.name+": "+tc.value)
	}
	validator.DropUnderscoreHeaders = true
	assert.Equal(t, Drop, validator.ValidateHeader("x_custom", "1"))
	assert.Equal(t, Reject, validator.ValidateHeader("X_Custom", "1"))
	assert.Equal(t, Accept, validator.ValidateHeader("x-custom", "1"))
	assert.Equal(t, "DROP", Drop.String())
	assert.Equal(t, "UNKNOWN", ValidationResult(9).String())
}

func TestEncodeDecode(t *testing.T) {
	t.Parallel()
	block := []Field{
		{Name: ":status", Value: "200"},
		{Name: "content-type", Value: "application/json"},
		{Name: "x-multi", Value: "a"},
		{Name: "x-multi", Value: "b"},
		{Name: "x-empty", Value: ""},
	}
	encoded, err := Encode(block)
	require.NoError(t, err)
	assert.NotEmpty(t, encoded)
	decoded, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, block, decoded)

	_, err = Encode(nil)
	require.ErrorIs(t, err, ErrEmptyBlock)
	decoded, err = Decode([]byte{0x00, 0x00, 0xff, 0xff, 0xff})
	require.Error(t, err)
	assert.Nil(t, decoded)
}
