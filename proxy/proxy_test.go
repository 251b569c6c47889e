// SPDX-License-Identifier: ice License 1.0

package proxy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/ice-blockchain/quicbridge/testing"
)

func TestStreamResetReason_Marshalling(t *testing.T) {
	t.Parallel()
	all := StreamResetReasons()
	require.Len(t, all, len(streamResetReasonNames))
	assert.Equal(t, ConnectionFailure, all[0])
	assert.Equal(t, OverloadManager, all[len(all)-1])
	for _, reason := range all {
		AssertSymmetricTextMarshalling(t, reason, streamResetReasonNames[reason])
	}
	AssertSymmetricTextMarshalling(t, LocalRefusedStreamReset, "LocalRefusedStreamReset")

	unknown := StreamResetReason(200)
	assert.Equal(t, "StreamResetReason(200)", unknown.String())
	_, err := unknown.MarshalText()
	require.Error(t, err)
	require.Error(t, new(StreamResetReason).UnmarshalText([]byte("Bogus")))
}

func TestGoAwayErrorCode_Marshalling(t *testing.T) {
	t.Parallel()
	AssertSymmetricTextMarshalling(t, GoAwayNoError, "NoError")
	AssertSymmetricTextMarshalling(t, GoAwayOther, "Other")

	unknown := GoAwayErrorCode(7)
	assert.Equal(t, "GoAwayErrorCode(7)", unknown.String())
	_, err := unknown.MarshalText()
	require.Error(t, err)
	require.Error(t, new(GoAwayErrorCode).UnmarshalText([]byte("nope")))
}
