package infinitescroll

import "log/slog"

// logger discards records unless the host installs one via SetLogger.
var logger = slog.New(slog.DiscardHandler)

// SetLogger routes this package's debug logging to the given logger. Passing
// nil restores the default discarding logger.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger = l
}
