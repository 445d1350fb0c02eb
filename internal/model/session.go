// Package model defines the in-memory session tree: the typed
// representation that the loader produces, the enrichment pass mutates,
// the planner reads, and the snapshotter reconstructs.
package model

// PreHook is an ordered sequence of shell command strings run before the
// session is built (Session.Pre) or at the start of each window/pane
// (Session.PreWindow). A nil PreHook and an empty, non-nil PreHook are
// semantically equivalent to the planner.
type PreHook []string

// Pane is a single rectangular region inside a Window running one shell.
//
// Target starts nil and is filled by the enrichment pass.
type Pane struct {
	Active  bool
	Command *string
	Path    *string
	Target  *Target
}

// Window is a tab inside a Session containing one or more Panes. Even when
// Panes is empty, the window has an intrinsic single pane conceptually; the
// planner accounts for that by directing window-level commands at the
// window's own target.
//
// Name is never empty and never the literal "~" (enforced by the loader).
type Window struct {
	Name    string
	Active  bool
	Command *string
	Layout  *string
	Path    *string
	Panes   []Pane
	Target  *Target
}

// MultiplexerConfig captures the integer offsets the running multiplexer
// uses when numbering windows and panes, queried once via the gateway.
type MultiplexerConfig struct {
	BaseIndex     int
	PaneBaseIndex int
}

// Session is the root of the in-memory tree. It is created by either the
// loader or the snapshotter, mutated exclusively by the enrichment pass,
// and read-only thereafter (consumed by the planner, dropped after the
// executor finishes).
//
// After enrichment: Name, Target, and Config are all present; every
// Window.Target is session+window; every Pane.Target is
// session+window+pane; every Window.Path and Pane.Path is either nil or
// fully expanded (no leading "~").
type Session struct {
	Name      *string
	Pre       PreHook
	PreWindow PreHook
	Root      *string
	Windows   []Window
	Target    *Target
	Daemonize *bool
	Config    *MultiplexerConfig
}

// StringPtr is a small convenience constructor used throughout the
// pipeline wherever an optional string field needs a pointer to a literal.
func StringPtr(s string) *string { return &s }

// IntPtr mirrors StringPtr for optional int fields.
func IntPtr(i int) *int { return &i }

// BoolPtr mirrors StringPtr for optional bool fields.
func BoolPtr(b bool) *bool { return &b }
