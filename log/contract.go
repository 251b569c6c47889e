// SPDX-License-Identifier: ice License 1.0

package log

// Private API.

type (
	cfg struct {
		Encoder string `yaml:"encoder"`
		Level   string `yaml:"level"`
	}
)

const (
	applicationYAMLKey = "logger"
	jsonEncoder        = "json"
	stackFramesToSkip  = 2
)

//nolint:gochecknoglobals // Fallbacks for whatever the logger section leaves empty.
var defaultCfg = cfg{
	Encoder: "console",
	Level:   "info",
}
