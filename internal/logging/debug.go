package logging

import (
	"fmt"
	"os"
	"strings"
)

// DebugEnabled returns true if debug mode is enabled via the TL_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv("TL_DEBUG") != ""
}

// Debugf logs a formatted debug message through the root logger
func Debugf(format string, args ...any) {
	Get().Debug().Msgf(strings.TrimSuffix(format, "\n"), args...)
}

// Debugln logs the arguments as a single debug message
func Debugln(args ...any) {
	Get().Debug().Msg(strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}
