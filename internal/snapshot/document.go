package snapshot

// docSession/docWindow/docPane are the serialization-side counterparts of
// internal/loader's rawDocument: a shape gopkg.in/yaml.v3 can marshal
// (docWindow through its MarshalYAML), carrying none of model.Session's
// Target pointers (a snapshot round-trips to a project document, not back
// to itself).
type docSession struct {
	Name    string     `yaml:"name"`
	Windows []docWindow `yaml:"windows"`
}

type docWindow struct {
	Name   string    `yaml:"name"`
	Active bool      `yaml:"active,omitempty"`
	Layout string    `yaml:"layout,omitempty"`
	Panes  []docPane `yaml:"panes,omitempty"`
}

// MarshalYAML emits a window in the loader's single-key map shape,
// {<name>: {active, layout, panes}}.
func (w docWindow) MarshalYAML() (interface{}, error) {
	inner := struct {
		Active bool      `yaml:"active,omitempty"`
		Layout string    `yaml:"layout,omitempty"`
		Panes  []docPane `yaml:"panes,omitempty"`
	}{Active: w.Active, Layout: w.Layout, Panes: w.Panes}
	return map[string]interface{}{w.Name: inner}, nil
}

type docPane struct {
	Active  bool   `yaml:"active,omitempty"`
	Command string `yaml:"command,omitempty"`
	Path    string `yaml:"path,omitempty"`
}
