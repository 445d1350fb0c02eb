// Package snapshot codifies a live multiplexer session back into a
// project document: query structured listings, parse them into entities,
// resolve each pane's foreground process, and serialize the result as
// YAML.
//
// Grounded on original_source's snapshot/src/entity.rs (the Entity enum,
// its TryFrom<&Entity> conversions, and find_foreground_process) plus the
// teacher's own YAML-document-shaped output via gopkg.in/yaml.v3.
package snapshot

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"muxed/internal/errs"
)

const windowRecordFormat = `{"type":"window","session":"#{session_name}","index":#{window_index},"name":"#{window_name}","active":#{window_active},"layout":"#{window_layout}"}`

const paneRecordFormat = `{"type":"pane","session":"#{session_name}","window_index":#{window_index},"index":#{pane_index},"active":#{pane_active},"path":"#{pane_current_path}","pid":#{pane_pid}}`

// Multiplexer is the seam snapshot dispatches through.
type Multiplexer interface {
	CallBytes(args ...string) ([]byte, error)
	HasSession(name string) bool
}

// Snapshot queries sessionName and returns its project-document form as
// YAML bytes.
func Snapshot(gw Multiplexer, sessionName string) ([]byte, error) {
	if !gw.HasSession(sessionName) {
		return nil, fmt.Errorf("%w: %s", errs.ErrSessionNotFound, sessionName)
	}

	windowData, err := gw.CallBytes("list-windows", "-t", sessionName, "-F", windowRecordFormat)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrProcessQueryFailed, err)
	}
	paneData, err := gw.CallBytes("list-panes", "-t", sessionName, "-s", "-F", paneRecordFormat)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrProcessQueryFailed, err)
	}

	windows, _, err := parseRecords(windowData)
	if err != nil {
		return nil, err
	}
	_, panes, err := parseRecords(paneData)
	if err != nil {
		return nil, err
	}

	doc, err := assemble(sessionName, windows, panes)
	if err != nil {
		return nil, err
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrSerialization, err)
	}
	return out, nil
}

// assemble reconstructs an ordered docSession from parsed entities. Panes
// whose window_index has no matching window are dropped (spec.md §4.7
// step 2: resilience against a window disappearing mid-query).
func assemble(sessionName string, windows []windowEntity, panes []paneEntity) (*docSession, error) {
	order := make([]int, 0, len(windows))
	byIndex := make(map[int]*docWindow, len(windows))
	for _, w := range windows {
		if _, exists := byIndex[w.Index]; !exists {
			order = append(order, w.Index)
		}
		byIndex[w.Index] = &docWindow{Name: w.Name, Active: w.Active, Layout: w.Layout}
	}

	children, procErr := processTree()
	if procErr != nil {
		// Process introspection is best-effort; a failed `ps` call still
		// yields a valid snapshot, just without resolved commands.
		children = map[int][]procInfo{}
	}

	panesByWindow := make(map[int][]paneEntity, len(byIndex))
	for _, p := range panes {
		if p.Session != sessionName {
			continue
		}
		if _, ok := byIndex[p.WindowIndex]; !ok {
			continue
		}
		panesByWindow[p.WindowIndex] = append(panesByWindow[p.WindowIndex], p)
	}
	for windowIndex, ps := range panesByWindow {
		sort.Slice(ps, func(i, j int) bool { return ps[i].Index < ps[j].Index })
		window := byIndex[windowIndex]
		for _, p := range ps {
			pane := docPane{Active: p.Active, Path: p.Path}
			if cmd, ok := findForegroundProcess(children, p.Pid); ok {
				pane.Command = cmd
			}
			window.Panes = append(window.Panes, pane)
		}
	}

	sort.Ints(order)
	result := &docSession{Name: sessionName}
	for _, idx := range order {
		result.Windows = append(result.Windows, *byIndex[idx])
	}
	return result, nil
}
