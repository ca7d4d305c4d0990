package tableview

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the table view key bindings.
type KeyMap struct {
	Enter, Exit key.Binding

	Merge, Split                   key.Binding
	InsertRowAbove, InsertRowBelow key.Binding
	InsertColLeft, InsertColRight  key.Binding
	RemoveRow, RemoveCol           key.Binding

	Bold, Italic                       key.Binding
	AlignLeft, AlignCenter, AlignRight key.Binding
	ResetStyles                        key.Binding

	ScrollUp, ScrollDown, ScrollLeft, ScrollRight key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Enter: key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter", "edit")),
		Exit:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "done")),

		Merge: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "merge")),
		Split: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "split")),

		InsertRowAbove: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "row above")),
		InsertRowBelow: key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "row below")),
		InsertColLeft:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "col left")),
		InsertColRight: key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "col right")),
		RemoveRow:      key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete row")),
		RemoveCol:      key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "delete col")),

		Bold:        key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "bold")),
		Italic:      key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "italic")),
		AlignLeft:   key.NewBinding(key.WithKeys("["), key.WithHelp("[", "align left")),
		AlignRight:  key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "align right")),
		AlignCenter: key.NewBinding(key.WithKeys("\\"), key.WithHelp("\\", "center")),
		ResetStyles: key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "reset styles")),

		ScrollUp:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "scroll up")),
		ScrollDown:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "scroll down")),
		ScrollLeft:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "scroll left")),
		ScrollRight: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "scroll right")),
	}
}
