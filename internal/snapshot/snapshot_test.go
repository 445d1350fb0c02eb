package snapshot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMultiplexer struct {
	hasSession bool
	windowData []byte
	paneData   []byte
}

func (f *fakeMultiplexer) HasSession(name string) bool { return f.hasSession }

func (f *fakeMultiplexer) CallBytes(args ...string) ([]byte, error) {
	if args[0] == "list-windows" {
		return f.windowData, nil
	}
	return f.paneData, nil
}

func TestSnapshotSessionNotFound(t *testing.T) {
	gw := &fakeMultiplexer{hasSession: false}
	_, err := Snapshot(gw, "ghost")
	require.Error(t, err)
}

func TestSnapshotDropsOrphanPanes(t *testing.T) {
	gw := &fakeMultiplexer{
		hasSession: true,
		windowData: []byte(`{"type":"window","session":"s","index":0,"name":"a","active":1,"layout":"even-horizontal"}`),
		paneData: []byte(
			`{"type":"pane","session":"s","window_index":0,"index":0,"active":1,"path":"/tmp","pid":1}` + "\n" +
				`{"type":"pane","session":"s","window_index":99,"index":0,"active":0,"path":"/tmp","pid":2}`),
	}
	out, err := Snapshot(gw, "s")
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "- a:")
	assert.Equal(t, 1, strings.Count(text, "path: /tmp"), "expected orphan pane to be dropped")
}

func TestSnapshotAssembleDropsPanesFromOtherSessions(t *testing.T) {
	doc, err := assemble("s", []windowEntity{
		{Session: "s", Index: 0, Name: "a"},
	}, []paneEntity{
		{Session: "s", WindowIndex: 0, Index: 0, Path: "/s/pane"},
		{Session: "other", WindowIndex: 0, Index: 1, Path: "/other/pane"},
	})
	require.NoError(t, err)
	require.Len(t, doc.Windows, 1)
	require.Len(t, doc.Windows[0].Panes, 1)
	assert.Equal(t, "/s/pane", doc.Windows[0].Panes[0].Path)
}

func TestSnapshotAssembleOrdersWindowsByIndex(t *testing.T) {
	doc, err := assemble("s", []windowEntity{
		{Session: "s", Index: 2, Name: "second"},
		{Session: "s", Index: 0, Name: "first"},
	}, nil)
	require.NoError(t, err)
	require.Len(t, doc.Windows, 2)
	assert.Equal(t, "first", doc.Windows[0].Name)
	assert.Equal(t, "second", doc.Windows[1].Name)
}
