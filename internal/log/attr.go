package log

import "log/slog"

// OmitEmpty returns attr(key, v), or an empty attribute if v is the zero
// value of its type. The handler drops empty attributes, so a request's
// LogValue can list every field and only the ones set are printed.
//
//	log.OmitEmpty(slog.String, "pane", req.Pane)
func OmitEmpty[T comparable](attr func(string, T) slog.Attr, key string, v T) slog.Attr {
	if v == *new(T) {
		return slog.Attr{}
	}
	return attr(key, v)
}
