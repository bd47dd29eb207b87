package logger

import (
	"log/slog"
	"strconv"
)

// Group wraps attrs under name.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under "error". A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups the non-nil errors under "errors".
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return Group("errors", as...)
}

// RequestID records the request identifier. Empty ids are dropped.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Component(name string) slog.Attr { return slog.String("component", name) }

func Event(name string) slog.Attr { return slog.String("event", name) }

func Duration(d any) slog.Attr { return slog.Any("duration", d) }

// DeviceClass records the classification result ("mobile" or "desktop").
func DeviceClass(class string) slog.Attr { return slog.String("device_class", class) }

// Variant records the page variant that was served.
func Variant(name string) slog.Attr { return slog.String("variant", name) }

// Slide records a zero-based carousel slide index.
func Slide(index int) slog.Attr { return slog.Int("slide", index) }

// Session records a carousel session id.
func Session(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("session", id)
}
