package model

import (
	"fmt"

	"muxed/internal/errs"
)

// Target addresses a session, window, or pane triple in the multiplexer's
// own addressing scheme. The textual form is computed once at construction
// and never recomputed, matching the combined-string-cache pattern of the
// source project's Target type.
//
// Textual forms:
//
//	session only           -> S
//	session + window       -> S:W
//	session + window + pane -> S:W.P
//
// "session + pane without window" is never constructed; Extend enforces
// this by only ever filling the next unset slot.
type Target struct {
	Session string
	Window  *int
	Pane    *int
	text    string
}

// NewTarget builds a Target and computes its canonical textual form.
func NewTarget(session string, window, pane *int) Target {
	t := Target{Session: session, Window: window, Pane: pane}
	t.text = t.Session
	if window != nil {
		t.text += fmt.Sprintf(":%d", *window)
	}
	if pane != nil {
		t.text += fmt.Sprintf(".%d", *pane)
	}
	return t
}

// Extend returns a new Target with the next unset slot (window, then pane)
// filled with value. Extending a fully-specified target fails.
func (t Target) Extend(value int) (Target, error) {
	switch {
	case t.Window == nil && t.Pane == nil:
		return NewTarget(t.Session, IntPtr(value), nil), nil
	case t.Window != nil && t.Pane == nil:
		return NewTarget(t.Session, t.Window, IntPtr(value)), nil
	default:
		return Target{}, fmt.Errorf("%w: target %q is already fully specified", errs.ErrInvalidTargetExtend, t.String())
	}
}

// String returns the canonical textual form.
func (t Target) String() string {
	return t.text
}

// Equal compares two targets by their textual form.
func (t Target) Equal(other Target) bool {
	return t.text == other.text
}

// MarshalYAML serializes a Target as its textual form.
func (t Target) MarshalYAML() (interface{}, error) {
	return t.text, nil
}
