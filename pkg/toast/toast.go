package toast

import (
	"time"
)

// Level controls how a toast is styled.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Valid reports whether l is one of the known levels.
func (l Level) Valid() bool {
	switch l {
	case LevelInfo, LevelSuccess, LevelError:
		return true
	}
	return false
}

// Color is the background used by the built-in toast markup.
func (l Level) Color() string {
	switch l {
	case LevelError:
		return "#ef4444"
	case LevelSuccess:
		return "#10b981"
	default:
		return "#3b82f6"
	}
}

const (
	DefaultDisplayTime = 3000 * time.Millisecond
	DefaultFadeTime    = 300 * time.Millisecond
)

// Toast is a transient notification shown to one session.
type Toast struct {
	ID        string    `json:"id"`
	Session   string    `json:"-"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	Fading    bool      `json:"fading"`
}

// Phase is a step in a toast's lifetime.
type Phase string

const (
	PhaseShown   Phase = "shown"
	PhaseFading  Phase = "fading"
	PhaseRemoved Phase = "removed"
)

// Event is published to stream subscribers on every phase change.
type Event struct {
	Phase Phase `json:"phase"`
	Toast Toast `json:"toast"`
}
