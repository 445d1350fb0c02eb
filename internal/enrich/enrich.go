// Package enrich fills in everything the loader leaves nil: targets,
// expanded paths, the project name, and the live multiplexer config. It is
// the only stage permitted to mutate a model.Session after it's built.
//
// Grounded on original_source's load/src/interpreter/enrichment.rs
// (enrich(session, project_name, daemonize, config)).
package enrich

import (
	"os"
	"path/filepath"
	"strings"

	"muxed/internal/model"
)

// Options bundles the external inputs enrichment needs beyond the
// session tree itself.
type Options struct {
	ProjectName string
	Daemonize   bool
	// DaemonizeSet distinguishes "daemonize: false requested" from
	// "daemonize not requested", matching spec.md §4.4 step 2: only a
	// true request pins Session.Daemonize; otherwise it's left nil so
	// the planner treats it as "attach at the end".
	DaemonizeSet bool
	Config       model.MultiplexerConfig
}

// Enrich mutates session in place per spec.md §4.4, steps 1-4.
func Enrich(session *model.Session, opts Options) {
	// 1. name, config, target.
	session.Name = model.StringPtr(opts.ProjectName)
	cfg := opts.Config
	session.Config = &cfg
	sessionTarget := model.NewTarget(opts.ProjectName, nil, nil)
	session.Target = &sessionTarget

	// 2. daemonize.
	if opts.DaemonizeSet && opts.Daemonize {
		session.Daemonize = model.BoolPtr(true)
	} else {
		session.Daemonize = nil
	}

	// 3. root expansion.
	if session.Root != nil {
		session.Root = expandPath(*session.Root)
	}

	// 4. walk windows/panes assigning targets and expanding paths.
	for i := range session.Windows {
		window := &session.Windows[i]
		windowIndex := i + opts.Config.BaseIndex
		windowTarget := model.NewTarget(opts.ProjectName, model.IntPtr(windowIndex), nil)
		window.Target = &windowTarget

		if window.Path != nil {
			window.Path = expandPath(*window.Path)
		} else {
			window.Path = session.Root
		}

		for j := range window.Panes {
			pane := &window.Panes[j]
			paneIndex := j + opts.Config.PaneBaseIndex
			paneTarget := model.NewTarget(opts.ProjectName, model.IntPtr(windowIndex), model.IntPtr(paneIndex))
			pane.Target = &paneTarget

			if pane.Path != nil {
				pane.Path = expandPath(*pane.Path)
			} else {
				// Panes inherit the session root, not the window path,
				// per spec.md §4.4 step 4.
				pane.Path = session.Root
			}
		}
	}
}

// expandPath replaces a single leading "~" path component with the user's
// home directory. If "~" is leading but the home directory can't be
// resolved, the path is dropped (returns nil) rather than left literal,
// matching spec.md §4.4's "return absent" rule.
func expandPath(p string) *string {
	if p == "" {
		return model.StringPtr(p)
	}
	if p != "~" && !strings.HasPrefix(p, "~"+string(filepath.Separator)) {
		return model.StringPtr(p)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return nil
	}
	if p == "~" {
		return model.StringPtr(home)
	}
	return model.StringPtr(filepath.Join(home, strings.TrimPrefix(p, "~"+string(filepath.Separator))))
}
