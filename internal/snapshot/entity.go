package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"muxed/internal/errs"
)

// record is the wire shape of one JSON-object-per-line emitted by
// list-windows/list-panes -F (spec.md §6). "type" tags which variant it
// is; tmux's boolean format variables (#{window_active}, #{pane_active})
// render as 0/1, so Active is decoded as an int and coerced to bool —
// grounded on original_source's entity.rs bool_from_int.
type record struct {
	Type        string `json:"type"`
	Session     string `json:"session"`
	Index       int    `json:"index"`
	Name        string `json:"name"`
	Active      int    `json:"active"`
	Layout      string `json:"layout"`
	WindowIndex int    `json:"window_index"`
	Path        string `json:"path"`
	Pid         int    `json:"pid"`
}

type windowEntity struct {
	Session string
	Index   int
	Name    string
	Active  bool
	Layout  string
}

type paneEntity struct {
	Session     string
	WindowIndex int
	Index       int
	Active      bool
	Path        string
	Pid         int
}

// parseRecords decodes a newline-delimited stream of JSON records into the
// window and pane entities it describes, preserving declaration order.
func parseRecords(data []byte) ([]windowEntity, []paneEntity, error) {
	var windows []windowEntity
	var panes []paneEntity

	decoder := json.NewDecoder(bytes.NewReader(data))
	for {
		var r record
		if err := decoder.Decode(&r); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, nil, fmt.Errorf("%w: %v", errs.ErrMalformedRecord, err)
		}
		switch r.Type {
		case "window":
			windows = append(windows, windowEntity{
				Session: r.Session,
				Index:   r.Index,
				Name:    r.Name,
				Active:  r.Active != 0,
				Layout:  r.Layout,
			})
		case "pane":
			panes = append(panes, paneEntity{
				Session:     r.Session,
				WindowIndex: r.WindowIndex,
				Index:       r.Index,
				Active:      r.Active != 0,
				Path:        r.Path,
				Pid:         r.Pid,
			})
		default:
			return nil, nil, fmt.Errorf("%w: unknown record type %q", errs.ErrMalformedRecord, r.Type)
		}
	}
	return windows, panes, nil
}
