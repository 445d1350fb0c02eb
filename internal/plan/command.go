// Package plan converts an enriched model.Session into a linear sequence
// of typed Command values with the ordering and focus invariants spec.md
// §4.5 pins down. Grounded on original_source's
// load/src/interpreter/to_command.rs (the Plan trait and its window/pane
// traversal) and the teacher's pkg/templates/engine.go Command/Compiled
// shape (a flat, typed command list rather than a string template).
package plan

import "muxed/internal/model"

// Kind identifies which multiplexer operation a Command represents.
type Kind int

const (
	KindPre Kind = iota
	KindSession
	KindWindow
	KindSplit
	KindLayout
	KindSendKeys
	KindSelectWindow
	KindSelectPane
	KindAttach
)

// Command is one step of the plan. Only the fields relevant to Kind are
// populated; the rest are zero values.
type Command struct {
	Kind Kind

	// Pre
	Exec string

	// Session
	Name           string
	FirstWindow    string
	Root           *string

	// Window / Split / Layout / SendKeys / SelectWindow / SelectPane / Attach
	Target model.Target
	Path   *string
	Layout string
	Line   string
}
