package logger

import (
	"log/slog"
	"time"
)

// Error returns an "error" attribute, or an empty one for a nil error.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func RequestID(id string) slog.Attr { return slog.String("request_id", id) }

func Locale(lang string) slog.Attr { return slog.String("locale", lang) }

func Tool(id string) slog.Attr { return slog.String("tool", id) }

func Path(p string) slog.Attr { return slog.String("path", p) }

func Method(m string) slog.Attr { return slog.String("method", m) }

func Status(code int) slog.Attr { return slog.Int("status", code) }

func Bytes(n int64) slog.Attr { return slog.Int64("bytes", n) }

func Count(n int) slog.Attr { return slog.Int("count", n) }

func Version(v uint64) slog.Attr { return slog.Uint64("version", v) }

// Duration records d as text, e.g. "1.25ms".
func Duration(d time.Duration) slog.Attr { return slog.String("duration", d.String()) }

func Component(name string) slog.Attr { return slog.String("component", name) }

// Group nests attrs under name.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}
