// Package logging hands out pion leveled loggers scoped under "yuvclip/".
// Verbosity is controlled through the PION_LOG_* environment variables.
package logging

import (
	"github.com/pion/logging"
)

const scopePrefix = "yuvclip/"

var loggerFactory logging.LoggerFactory = logging.NewDefaultLoggerFactory()

// NewLogger returns a leveled logger for scope, e.g. NewLogger("yuv").
func NewLogger(scope string) logging.LeveledLogger {
	return loggerFactory.NewLogger(scopePrefix + scope)
}
