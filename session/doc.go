// Package session drives a grid.Grid from pointer gestures and discrete
// triggers.
//
// A Session is either browsing or editing. Structural edits are only accepted
// while editing. Renderers never touch the grid directly: they feed pointer
// coordinates in the table's local space into the session and draw whatever
// Snapshot returns.
//
// Sessions are not safe for concurrent use.
package session
