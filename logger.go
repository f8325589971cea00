package mldsa

import (
	"io"

	"github.com/rs/zerolog"
)

// pkgLogger is the package-wide diagnostic logger, disabled by default
// so importing this package is silent unless a caller opts in. This
// mirrors the *zerolog.Logger field threaded through cloudflared's
// supervisor.ConnAwareLogger: a logger the caller can replace wholesale
// rather than a set of package-level log level flags.
var pkgLogger = zerolog.New(io.Discard).Level(zerolog.Disabled).With().Str("pkg", "mldsa").Logger()

// SetLogger replaces the package's diagnostic logger. The core only
// logs Debug-level events: one per generated key pair and one per
// restart of the sign rejection-sampling loop (§4.7); it never logs
// secret material. Pass zerolog.Nop() to silence it again.
func SetLogger(l zerolog.Logger) {
	pkgLogger = l
}

// Logger returns the package's current diagnostic logger.
func Logger() *zerolog.Logger {
	return &pkgLogger
}
