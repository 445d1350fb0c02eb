// Package project resolves the project document directory and the
// per-project document path within it. Filesystem discovery of this
// directory is named as external-collaborator "thin glue" in spec.md §1,
// but it still needs a single, shared implementation: this is it.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"muxed/internal/errs"
)

const defaultDirName = ".muxed"

// TemplateName is the scaffold template's well-known basename within the
// project directory (spec.md §6, "Filesystem layout").
const TemplateName = ".template.yml"

// Dir resolves the project directory: override if non-empty, else
// $HOME/.muxed. It auto-heals a missing directory by creating it, per
// spec.md §7's "Pre-run creation of the project directory is auto-healing"
// policy; failure to create it is a hard Environment error.
func Dir(override string) (string, error) {
	dir := strings.TrimSpace(override)
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil || home == "" {
			return "", errs.ErrNoHomeDirectory
		}
		dir = filepath.Join(home, defaultDirName)
	}

	info, err := os.Stat(dir)
	switch {
	case err == nil && !info.IsDir():
		return "", fmt.Errorf("%w: %s is not a directory", errs.ErrProjectDirUnusable, dir)
	case os.IsNotExist(err):
		if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
			return "", fmt.Errorf("%w: creating %s: %v", errs.ErrProjectDirUnusable, dir, mkErr)
		}
	case err != nil:
		return "", fmt.Errorf("%w: %s: %v", errs.ErrProjectDirUnusable, dir, err)
	}
	return dir, nil
}

// DocumentPath returns the path of project's document within dir.
func DocumentPath(dir, name string) string {
	return filepath.Join(dir, name+".yml")
}

// TemplatePath returns the path of the scaffold template within dir.
func TemplatePath(dir string) string {
	return filepath.Join(dir, TemplateName)
}

// List returns the basenames (without the .yml suffix) of every project
// document in dir, sorted lexically.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errs.ErrProjectDirUnusable, dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".yml") || name == TemplateName {
			continue
		}
		names = append(names, strings.TrimSuffix(name, ".yml"))
	}
	sort.Strings(names)
	return names, nil
}
