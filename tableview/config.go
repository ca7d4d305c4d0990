package tableview

import "github.com/iw2rmb/cellgrid/session"

const (
	DefaultCellWidth  = 10.0
	DefaultCellHeight = 20.0
)

// Config configures the table view Model.
type Config struct {
	// Session to drive. Nil creates a session with default options.
	Session *session.Session

	// Local pixels per terminal column and row.
	CellWidth  float64
	CellHeight float64

	Style  Style
	KeyMap KeyMap

	// ShowActions composites a hint bar listing the available actions over
	// the bottom row while editing.
	ShowActions bool
}

func normalizeConfig(cfg Config) Config {
	if cfg.Session == nil {
		cfg.Session = session.New(session.Config{})
	}
	if !(cfg.CellWidth > 0) {
		cfg.CellWidth = DefaultCellWidth
	}
	if !(cfg.CellHeight > 0) {
		cfg.CellHeight = DefaultCellHeight
	}
	if !cfg.KeyMap.Merge.Enabled() {
		cfg.KeyMap = DefaultKeyMap()
	}
	return cfg
}
