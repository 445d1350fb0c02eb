// Package scaffold creates a new project document from the project
// directory's template (or a built-in default), stamping it with a fresh
// meta.id so later tooling can correlate a document back to the `new`
// invocation that created it.
package scaffold

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"muxed/internal/errs"
)

const defaultTemplate = `windows:
  - edit: vim
`

// New writes a fresh project document at documentPath, sourced from
// templatePath if it exists, else a minimal built-in default. force
// permits overwriting an existing document; without it, an existing file
// is an ErrFileExists.
func New(documentPath, templatePath string, force bool) error {
	if !force {
		if _, err := os.Stat(documentPath); err == nil {
			return fmt.Errorf("%w: %s", errs.ErrFileExists, documentPath)
		}
	}

	body := defaultTemplate
	if data, err := os.ReadFile(templatePath); err == nil {
		body = string(data)
	}

	stamped, err := stampMeta(body)
	if err != nil {
		return err
	}

	if err := os.WriteFile(documentPath, []byte(stamped), 0o644); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrIO, err)
	}
	return nil
}

// stampMeta decodes body as a generic YAML mapping, sets a top-level
// meta mapping holding a fresh UUID as id (replacing any meta value the
// template already has), and re-encodes it. Unknown
// top-level keys (like meta) are harmless to the loader, which only reads
// the fields it recognizes.
func stampMeta(body string) (string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(body), &doc); err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrSerialization, err)
	}
	if len(doc.Content) == 0 {
		doc.Kind = yaml.DocumentNode
		doc.Content = []*yaml.Node{{Kind: yaml.MappingNode}}
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return "", fmt.Errorf("%w: template root must be a mapping", errs.ErrSerialization)
	}

	metaNode := &yaml.Node{Kind: yaml.MappingNode}
	idNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: uuid.NewString()}
	metaNode.Content = append(metaNode.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "id"}, idNode)

	replaced := false
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == "meta" {
			root.Content[i+1] = metaNode
			replaced = true
		}
	}
	if !replaced {
		root.Content = append(root.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "meta"}, metaNode)
	}

	out, err := yaml.Marshal(&doc)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrSerialization, err)
	}
	return string(out), nil
}
