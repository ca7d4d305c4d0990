// Package tableview provides a Bubble Tea component that draws a
// session.Session as a box-drawn table and turns mouse and key input into
// session triggers.
//
// Terminal cells map to the session's local pixel space with a fixed scale
// (Config.CellWidth by Config.CellHeight pixels per cell). Mouse coordinates
// are taken relative to the component's top-left corner; hosts that place the
// component elsewhere must translate tea.MouseMsg before forwarding it.
package tableview
