package chanrt

import "github.com/rs/zerolog"

// logger is the package-wide optional sink for channel lifecycle tracing.
// The on/off switch is a runtime value rather than a build tag, since
// this is a library linked into arbitrary callers rather than something
// recompiled per caller, but the intent is the same: near-zero cost when
// off, readable tracing of send/recv/close/choose events when on.
var logger = zerolog.Nop()

// SetLogger installs l as the destination for channel lifecycle events.
// Passing the zero zerolog.Logger disables logging again.
func SetLogger(l zerolog.Logger) {
	logger = l
}
