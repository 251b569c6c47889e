// SPDX-License-Identifier: ice License 1.0

package testing

import (
	"context"
	"encoding"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func GIVEN(_ string, logic func()) {
	logic()
}

func WHEN(_ string, logic func()) {
	logic()
}

func THEN(logic func()) {
	logic()
}

func IT(_ string, logic func()) {
	logic()
}

func AND(_ string, logic func()) {
	logic()
}

func SETUP(_ string, logic func()) {
	logic()
}

// AssertSymmetricTextMarshalling checks that val renders as expected, both as text and as a JSON string,
// and that unmarshalling the JSON form yields val back.
func AssertSymmetricTextMarshalling[T any, PT interface {
	*T
	encoding.TextMarshaler
	encoding.TextUnmarshaler
}](tb testing.TB, val T, expected string,
) {
	tb.Helper()
	text, err := PT(&val).MarshalText()
	require.NoError(tb, err)
	assert.Equal(tb, expected, string(text))
	marshalled := MustMarshal(tb, PT(&val))
	assert.Equal(tb, MustMarshal(tb, expected), marshalled)
	assert.Equal(tb, val, *MustUnmarshal[T](tb, marshalled))
}

func MustMarshal(tb testing.TB, val any) string {
	tb.Helper()
	valueBytes, err := json.MarshalContext(context.Background(), val)
	require.NoError(tb, err)

	return string(valueBytes)
}

func MustUnmarshal[T any](tb testing.TB, val string) *T {
	tb.Helper()
	tt := new(T)
	require.NoError(tb, json.UnmarshalContext(context.Background(), []byte(val), tt))

	return tt
}
