package loader

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"muxed/internal/errs"
	"muxed/internal/model"
)

// rawPane decodes a single windows[].panes[] entry. Accepted shapes:
//
//	panes: [htop]                  # bare command string
//	panes:
//	  - active: true
//	    command: ls
//	    path: /tmp
//
// Grounded on original_source's common::tmux::Pane custom Deserialize.
type rawPane struct {
	pane model.Pane
}

func (r *rawPane) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var cmd string
		if err := node.Decode(&cmd); err != nil {
			return fmt.Errorf("%w: pane entry: %v", errs.ErrMalformedWindowEntry, err)
		}
		r.pane = model.Pane{Command: model.StringPtr(cmd)}
		return nil
	case yaml.MappingNode:
		var inner struct {
			Active  *bool   `yaml:"active"`
			Command *string `yaml:"command"`
			Path    *string `yaml:"path"`
		}
		if err := node.Decode(&inner); err != nil {
			return fmt.Errorf("%w: pane entry: %v", errs.ErrMalformedWindowEntry, err)
		}
		active := false
		if inner.Active != nil {
			active = *inner.Active
		}
		r.pane = model.Pane{Active: active, Command: inner.Command, Path: inner.Path}
		return nil
	default:
		return fmt.Errorf("%w: pane entry must be a string or a map", errs.ErrMalformedWindowEntry)
	}
}
