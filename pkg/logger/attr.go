package logger

import (
	"log/slog"
	"time"
)

// Error records err under the key "error". A nil err yields an empty Attr,
// which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// TherapistID records the directory record identifier under the key "therapist_id".
// Empty ids produce an empty Attr.
func TherapistID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("therapist_id", id)
}

// Check records a data-quality check name under the key "check".
func Check(name string) slog.Attr {
	return slog.String("check", name)
}

// Field records a record field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Count records a number of records under the key "count".
func Count(n int64) slog.Attr {
	return slog.Int64("count", n)
}

// RequestID records the request identifier under the key "request_id".
// If id is nil, it returns an empty Attr.
func RequestID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}
