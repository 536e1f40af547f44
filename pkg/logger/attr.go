package logger

import (
	"log/slog"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under "error". A nil error yields an empty Attr, which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Event(name string) slog.Attr {
	return slog.String("event", name)
}

func Handler(name string) slog.Attr {
	return slog.String("handler", name)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// SubmissionID records the contact submission identifier.
func SubmissionID(id string) slog.Attr {
	return slog.String("submission_id", id)
}

// Session records the form session key.
func Session(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("session", id)
}

func Form(id string) slog.Attr {
	return slog.String("form", id)
}

func Outcome(o string) slog.Attr {
	return slog.String("outcome", o)
}

// Transition records a state change as "from -> to".
func Transition(from, to string) slog.Attr {
	return slog.String("transition", from+" -> "+to)
}
