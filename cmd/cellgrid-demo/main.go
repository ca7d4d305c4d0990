package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/cellgrid"
	"github.com/iw2rmb/cellgrid/grid"
	"github.com/iw2rmb/cellgrid/internal/raster"
	"github.com/iw2rmb/cellgrid/session"
	"github.com/iw2rmb/cellgrid/tableview"
)

const statusLines = 1

type model struct {
	table tableview.Model
}

func newModel(s *session.Session) model {
	return model{table: tableview.New(tableview.Config{
		Session:     s,
		Style:       tableview.DefaultStyle(),
		ShowActions: true,
	})}
}

func (m model) Init() tea.Cmd { return m.table.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.table = m.table.SetSize(msg.Width, max(msg.Height-statusLines, 0))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m model) View() string {
	s := m.table.Session()
	g := s.Grid()
	status := fmt.Sprintf("%s  %dx%d  v%d  cursor=%s  last=%s  (q quits)",
		cellgrid.VersionTag(), g.Rows(), g.Cols(), g.Version(), m.table.Cursor(), m.table.LastResult())
	return m.table.View() + "\n" + status
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("cellgrid-demo", flag.ContinueOnError)
	rows := fs.Int("rows", grid.DefaultRows, "initial row count")
	cols := fs.Int("cols", grid.DefaultCols, "initial column count")
	pngPath := fs.String("png", "", "write a PNG of the initial table to this path and exit")
	tracePath := fs.String("trace", "", "append session debug trace to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := session.Config{Grid: grid.Options{Rows: *rows, Cols: *cols}}
	if *tracePath != "" {
		f, err := os.OpenFile(*tracePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open trace: %w", err)
		}
		defer f.Close()
		_, _ = io.WriteString(f, strings.Repeat("-", 8)+" "+cellgrid.UserAgent("cellgrid-demo")+"\n")
		cfg.Debug = true
		cfg.Trace = f
	}
	s := session.New(cfg)

	if *pngPath != "" {
		return writePNG(*pngPath, s)
	}

	p := tea.NewProgram(newModel(s), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}

func writePNG(path string, s *session.Session) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	if err := raster.WritePNG(f, s.Snapshot(), raster.Options{Margin: raster.DefaultMargin}); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
