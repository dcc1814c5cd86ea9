package log

import "log/slog"

// Discard drops everything logged to it. Components use it when no
// logger was configured.
var Discard = &Logger{slog.New(slog.DiscardHandler)}
