// SPDX-License-Identifier: ice License 1.0

package log

// Private API.

const (
	levelDebug = "debug"
	levelInfo  = "info"
	levelWarn  = "warn"
)

type (
	cfg struct {
		Encoder string `yaml:"encoder"`
		Level   string `yaml:"level"`
	}
)
