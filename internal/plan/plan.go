package plan

import (
	"fmt"

	"muxed/internal/errs"
	"muxed/internal/model"
)

// Plan compiles an enriched session into its command sequence. session
// must already carry Name, Target, and every Window/Pane Target (the
// enrichment pass's job); Plan treats their absence as a bug, not a user
// error, and returns the Internal-kind sentinels from spec.md §4.5.
func Plan(session *model.Session) ([]Command, error) {
	if session.Name == nil {
		return nil, errs.ErrSessionNameRequired
	}
	if session.Target == nil {
		return nil, errs.ErrSessionTargetRequired
	}

	var commands []Command

	// 1. Pre commands, in declared order.
	for _, exec := range session.Pre {
		commands = append(commands, Command{Kind: KindPre, Exec: exec})
	}

	var activeWindowTarget *model.Target
	for i := range session.Windows {
		window := &session.Windows[i]
		if window.Target == nil {
			return nil, fmt.Errorf("%w: window %q", errs.ErrWindowTargetRequired, window.Name)
		}
		if activeWindowTarget == nil && window.Active {
			activeWindowTarget = window.Target
		}

		if i == 0 {
			commands = append(commands, Command{
				Kind:        KindSession,
				Name:        *session.Name,
				FirstWindow: window.Name,
				Root:        session.Root,
			})
		} else {
			commands = append(commands, Command{
				Kind:   KindWindow,
				Target: *window.Target,
				Line:   window.Name,
				Path:   window.Path,
			})
		}

		if window.Path != nil {
			commands = append(commands, Command{Kind: KindSendKeys, Target: *window.Target, Line: "cd " + *window.Path})
		}

		for _, hook := range session.PreWindow {
			commands = append(commands, Command{Kind: KindSendKeys, Target: *window.Target, Line: hook})
		}

		splits := len(window.Panes) - 1
		for s := 0; s < splits; s++ {
			commands = append(commands, Command{Kind: KindSplit, Target: *window.Target, Path: window.Path})
		}

		if window.Layout != nil {
			commands = append(commands, Command{Kind: KindLayout, Target: *window.Target, Layout: *window.Layout})
		}

		if window.Command != nil {
			commands = append(commands, Command{Kind: KindSendKeys, Target: *window.Target, Line: *window.Command})
		}

		for p := range window.Panes {
			pane := &window.Panes[p]
			if pane.Target == nil {
				return nil, fmt.Errorf("%w: window %q pane %d", errs.ErrPaneTargetRequired, window.Name, p)
			}
			for _, hook := range session.PreWindow {
				commands = append(commands, Command{Kind: KindSendKeys, Target: *pane.Target, Line: hook})
			}
			if pane.Command != nil {
				commands = append(commands, Command{Kind: KindSendKeys, Target: *pane.Target, Line: *pane.Command})
			}
			if pane.Active {
				commands = append(commands, Command{Kind: KindSelectPane, Target: *pane.Target})
			}
		}
	}

	// 3. Focus resolution.
	if activeWindowTarget == nil {
		if len(session.Windows) == 0 {
			return nil, errs.ErrMissingWindows
		}
		activeWindowTarget = session.Windows[0].Target
	}
	paneBaseIndex := 0
	if session.Config != nil {
		paneBaseIndex = session.Config.PaneBaseIndex
	}
	focusPane, err := activeWindowTarget.Extend(paneBaseIndex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrWindowTargetRequired, err)
	}
	commands = append(commands,
		Command{Kind: KindSelectWindow, Target: *activeWindowTarget},
		Command{Kind: KindSelectPane, Target: focusPane},
	)

	// 4. Attach unless daemonized.
	if session.Daemonize == nil {
		commands = append(commands, Command{Kind: KindAttach, Target: *session.Target, Root: session.Root})
	}

	return commands, nil
}
