package loader

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"muxed/internal/errs"
	"muxed/internal/model"
)

// unmarshalPreHook decodes the two accepted shapes for Session.Pre and
// Session.PreWindow: a single scalar string (split into a one-element
// hook, or zero elements if the string is empty) or a sequence of
// strings. Grounded on original_source's common::tmux::Pre Visitor impl.
func unmarshalPreHook(node *yaml.Node) (model.PreHook, error) {
	if node == nil || node.Kind == 0 {
		return nil, nil
	}
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrMalformedPreHook, err)
		}
		if s == "" {
			return model.PreHook{}, nil
		}
		return model.PreHook{s}, nil
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrMalformedPreHook, err)
		}
		return model.PreHook(items), nil
	default:
		return nil, fmt.Errorf("%w: must be a string or a list of strings", errs.ErrMalformedPreHook)
	}
}
