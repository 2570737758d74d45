// Package util holds the process-environment switches shared by the fints
// packages.
package util

import (
	"os"
	"strconv"
)

const (
	debugFlag     = "FINTS_DEBUG"
	httpTraceFlag = "FINTS_HTTP_TRACE"
)

// DebugEnabled reports whether debug logging is requested via FINTS_DEBUG.
func DebugEnabled() bool { return boolFlag(debugFlag) }

// HTTPTraceEnabled reports whether per-request transport tracing is
// requested via FINTS_HTTP_TRACE.
func HTTPTraceEnabled() bool { return boolFlag(httpTraceFlag) }

func boolFlag(name string) bool {
	b, err := strconv.ParseBool(os.Getenv(name))
	return err == nil && b
}
