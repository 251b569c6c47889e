// SPDX-License-Identifier: ice License 1.0

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromKey(t *testing.T) {
	t.Parallel()
	var cfg struct {
		Encoder string `yaml:"encoder"`
		Level   string `yaml:"level"`
	}
	require.NoError(t, LoadFromKey("logger", &cfg))
	assert.Equal(t, "console", cfg.Encoder)
	assert.Equal(t, "debug", cfg.Level)

	require.ErrorIs(t, LoadFromKey("does-not-exist", &cfg), ErrKeyNotFound)
	assert.Panics(t, func() { MustLoadFromKey("does-not-exist", &cfg) })
}
