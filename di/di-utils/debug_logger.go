package diutils

import (
	"log"
	"os"
)

// DebugLog writes a trace line when GODI_DEBUG=true. It is a no-op
// otherwise, keeping the hot resolution path free of formatting cost.
func DebugLog(format string, v ...interface{}) {
	if os.Getenv("GODI_DEBUG") == "true" {
		log.Printf(format, v...)
	}
}
