// Package editor opens a project document in the user's editor.
package editor

import (
	"fmt"
	"os"
	"os/exec"

	"muxed/internal/errs"
)

const fallback = "vi"

// Open launches $EDITOR (falling back to vi when unset) on path,
// inheriting the current process's stdio so the editor can take over the
// terminal. Grounded on original_source's src/editor.rs fallback chain:
// a missing $EDITOR falls back to vi rather than erroring immediately;
// only an unresolvable vi surfaces the Environment error kind.
func Open(path string) error {
	name := os.Getenv("EDITOR")
	if name == "" {
		name = fallback
	}

	if _, err := exec.LookPath(name); err != nil {
		if name != fallback {
			if _, fallbackErr := exec.LookPath(fallback); fallbackErr == nil {
				name = fallback
			} else {
				return fmt.Errorf("%w: neither %q nor %q found on $PATH", errs.ErrNoEditor, name, fallback)
			}
		} else {
			return fmt.Errorf("%w: %q not found on $PATH", errs.ErrNoEditor, fallback)
		}
	}

	cmd := exec.Command(name, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
