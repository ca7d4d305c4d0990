package session

import (
	"io"

	"github.com/iw2rmb/cellgrid/grid"
)

// Mode is the session's top-level state.
type Mode uint8

const (
	ModeBrowsing Mode = iota
	ModeEditing
)

func (m Mode) String() string {
	switch m {
	case ModeBrowsing:
		return "browsing"
	case ModeEditing:
		return "editing"
	default:
		return "unknown"
	}
}

// Cursor is the pointer shape a renderer should show while hovering.
type Cursor uint8

const (
	CursorDefault Cursor = iota
	CursorColResize
	CursorRowResize
)

func (c Cursor) String() string {
	switch c {
	case CursorDefault:
		return "default"
	case CursorColResize:
		return "col-resize"
	case CursorRowResize:
		return "row-resize"
	default:
		return "unknown"
	}
}

// Gesture reports what a pointer-down started.
type Gesture uint8

const (
	GestureNone Gesture = iota
	GestureResize
	GestureSelect
	GestureExit
)

func (g Gesture) String() string {
	switch g {
	case GestureNone:
		return "none"
	case GestureResize:
		return "resize"
	case GestureSelect:
		return "select"
	case GestureExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Config configures a Session.
type Config struct {
	// Forwarded to grid.New.
	Grid grid.Options

	// Distance within which a pointer grabs an internal grid line.
	// Zero selects grid.DefaultTolerance.
	Tolerance float64

	// Distance from an outer edge within which EdgeAt reports that edge.
	// Zero selects grid.DefaultEdgeBand.
	EdgeBand float64

	// Debug enables trace logging to Trace and an invariant check after every
	// applied mutation.
	Debug bool
	Trace io.Writer

	// OnChange, when set, is called after every applied grid mutation.
	OnChange func(ChangeEvent)
}

func normalizeConfig(cfg Config) Config {
	if !(cfg.Tolerance > 0) {
		cfg.Tolerance = grid.DefaultTolerance
	}
	if !(cfg.EdgeBand > 0) {
		cfg.EdgeBand = grid.DefaultEdgeBand
	}
	if cfg.Trace == nil {
		cfg.Trace = io.Discard
	}
	return cfg
}
