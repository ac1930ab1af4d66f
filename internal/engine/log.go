package engine

import (
	"os"

	"github.com/rs/zerolog"
)

// Log is the engine's package-level diagnostics logger. It writes to
// stderr only: the wire protocol owns stdout, and mixing the two would
// corrupt the XBoard session. Disabled by default so a bare engine
// stays silent; cmd/waxwing turns it on via -verbose.
var Log = zerolog.New(os.Stderr).Level(zerolog.Disabled).With().Timestamp().Logger()

// SetVerbose toggles the package logger between Disabled and Debug.
func SetVerbose(v bool) {
	if v {
		Log = Log.Level(zerolog.DebugLevel)
	} else {
		Log = Log.Level(zerolog.Disabled)
	}
}
