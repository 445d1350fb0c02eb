package loader

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"muxed/internal/errs"
	"muxed/internal/model"
)

// rawDocument mirrors the on-disk project document shape. Name, Root, and
// Daemonize map straight onto model.Session; Pre/PreWindow/Windows go
// through the hand-written polymorphic decoders in prehook.go, window.go
// and pane.go because gopkg.in/
// yaml.v3 (like serde) has no notion of an untagged enum field, only of a
// custom UnmarshalYAML per type.
type rawDocument struct {
	Name      *string     `yaml:"name"`
	Pre       yaml.Node   `yaml:"pre"`
	PreWindow yaml.Node   `yaml:"pre_window"`
	Root      *string     `yaml:"root"`
	Windows   []rawWindow `yaml:"windows"`
	Daemonize *bool       `yaml:"daemonize"`
}

// toSession converts a decoded rawDocument into the unenriched model.Session
// the rest of the pipeline expects: Target, per-window Target, and Config
// are all still nil at this point; they're filled in by internal/enrich.
func (d *rawDocument) toSession() (*model.Session, error) {
	if len(d.Windows) == 0 {
		return nil, errs.ErrMissingWindows
	}

	pre, err := unmarshalPreHook(&d.Pre)
	if err != nil {
		return nil, err
	}
	preWindow, err := unmarshalPreHook(&d.PreWindow)
	if err != nil {
		return nil, err
	}

	windows := make([]model.Window, 0, len(d.Windows))
	for i := range d.Windows {
		// A null entry (e.g. "- ~") never reaches rawWindow.UnmarshalYAML
		// and decodes to a zero window; reject it here.
		if d.Windows[i].window.Name == "" {
			return nil, fmt.Errorf("%w: window name cannot be empty", errs.ErrMalformedWindowEntry)
		}
		windows = append(windows, d.Windows[i].window)
	}

	return &model.Session{
		Name:      d.Name,
		Pre:       pre,
		PreWindow: preWindow,
		Root:      d.Root,
		Windows:   windows,
		Daemonize: d.Daemonize,
	}, nil
}

// decode parses raw document bytes (YAML or JSON; JSON is a YAML subset so
// the same decoder handles both) into an unenriched Session.
func decode(data []byte) (*model.Session, error) {
	var doc rawDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrDocumentSyntax, err)
	}
	return doc.toSession()
}
