package loader

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"muxed/internal/errs"
	"muxed/internal/model"
)

// rawWindow decodes a single windows[] entry, which accepts three shapes:
//
//	windows: [vim, cargo]            # bare command string; name == command
//	windows: [1, 2, 3]                # bare integer; name == its decimal form, no command
//	windows:
//	  - editor:
//	      layout: main-vertical
//	      panes: [...]
//	  - cargo: ''                     # single-key map, value is a bare command string
//
// Grounded on original_source's common::tmux::Window custom Deserialize
// (WindowRepr / InnerOrString untagged enums).
type rawWindow struct {
	window model.Window
}

func (r *rawWindow) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!int" {
			var n int64
			if err := node.Decode(&n); err != nil {
				return fmt.Errorf("%w: window entry: %v", errs.ErrMalformedWindowEntry, err)
			}
			r.window = model.Window{Name: strconv.FormatInt(n, 10)}
			return nil
		}
		var name string
		if err := node.Decode(&name); err != nil {
			return fmt.Errorf("%w: window entry: %v", errs.ErrMalformedWindowEntry, err)
		}
		if name == "" || name == "~" {
			return fmt.Errorf("%w: window name cannot be empty", errs.ErrMalformedWindowEntry)
		}
		return r.fromNameAndCommand(name, model.StringPtr(name))

	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return fmt.Errorf("%w: each windows entry must be a single-key map", errs.ErrMalformedWindowEntry)
		}
		var name string
		if err := node.Content[0].Decode(&name); err != nil {
			return fmt.Errorf("%w: window entry: %v", errs.ErrMalformedWindowEntry, err)
		}
		if name == "" || name == "~" {
			return fmt.Errorf("%w: window name cannot be empty", errs.ErrMalformedWindowEntry)
		}
		value := node.Content[1]

		if value.Kind == yaml.ScalarNode {
			var cmd string
			if err := value.Decode(&cmd); err != nil {
				return fmt.Errorf("%w: window entry %q: %v", errs.ErrMalformedWindowEntry, name, err)
			}
			if cmd == "" {
				return r.fromNameAndCommand(name, nil)
			}
			return r.fromNameAndCommand(name, model.StringPtr(cmd))
		}

		var inner struct {
			Layout  *string    `yaml:"layout"`
			Panes   []rawPane  `yaml:"panes"`
			Active  *bool      `yaml:"active"`
			Path    *string    `yaml:"path"`
			Command *string    `yaml:"command"`
		}
		if err := value.Decode(&inner); err != nil {
			return fmt.Errorf("%w: window entry %q: %v", errs.ErrMalformedWindowEntry, name, err)
		}
		active := false
		if inner.Active != nil {
			active = *inner.Active
		}
		panes := make([]model.Pane, 0, len(inner.Panes))
		for _, p := range inner.Panes {
			panes = append(panes, p.pane)
		}
		r.window = model.Window{
			Name:    name,
			Active:  active,
			Command: inner.Command,
			Layout:  inner.Layout,
			Path:    inner.Path,
			Panes:   panes,
		}
		return nil

	default:
		return fmt.Errorf("%w: window entry must be a string, integer, or single-key map", errs.ErrMalformedWindowEntry)
	}
}

func (r *rawWindow) fromNameAndCommand(name string, command *string) error {
	r.window = model.Window{Name: name, Command: command}
	return nil
}
