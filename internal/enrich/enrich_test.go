package enrich

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"muxed/internal/model"
)

func TestEnrichAssignsSessionIdentity(t *testing.T) {
	session := &model.Session{Windows: []model.Window{{Name: "vim"}}}
	Enrich(session, Options{ProjectName: "myproj", Config: model.MultiplexerConfig{BaseIndex: 1, PaneBaseIndex: 1}})

	require.NotNil(t, session.Name)
	assert.Equal(t, "myproj", *session.Name)
	require.NotNil(t, session.Target)
	assert.Equal(t, "myproj", session.Target.String())
	require.NotNil(t, session.Config)
	assert.Equal(t, 1, session.Config.BaseIndex)
}

func TestEnrichWindowAndPaneTargetsRespectBaseIndex(t *testing.T) {
	session := &model.Session{Windows: []model.Window{
		{Name: "a", Panes: []model.Pane{{}, {}}},
		{Name: "b"},
	}}
	Enrich(session, Options{ProjectName: "p", Config: model.MultiplexerConfig{BaseIndex: 1, PaneBaseIndex: 1}})

	assert.Equal(t, "p:1", session.Windows[0].Target.String())
	assert.Equal(t, "p:2", session.Windows[1].Target.String())
	assert.Equal(t, "p:1.1", session.Windows[0].Panes[0].Target.String())
	assert.Equal(t, "p:1.2", session.Windows[0].Panes[1].Target.String())
}

func TestEnrichDaemonizeOnlySetWhenRequested(t *testing.T) {
	session := &model.Session{Windows: []model.Window{{Name: "a"}}}
	Enrich(session, Options{ProjectName: "p", DaemonizeSet: true, Daemonize: true})
	require.NotNil(t, session.Daemonize)
	assert.True(t, *session.Daemonize)

	session2 := &model.Session{Windows: []model.Window{{Name: "a"}}}
	Enrich(session2, Options{ProjectName: "p"})
	assert.Nil(t, session2.Daemonize)
}

func TestEnrichPaneInheritsSessionRootNotWindowPath(t *testing.T) {
	session := &model.Session{
		Root: model.StringPtr("/session/root"),
		Windows: []model.Window{
			{Name: "a", Path: model.StringPtr("/window/path"), Panes: []model.Pane{{}}},
		},
	}
	Enrich(session, Options{ProjectName: "p"})

	require.NotNil(t, session.Windows[0].Path)
	assert.Equal(t, "/window/path", *session.Windows[0].Path)
	require.NotNil(t, session.Windows[0].Panes[0].Path)
	assert.Equal(t, "/session/root", *session.Windows[0].Panes[0].Path)
}

func TestEnrichWindowInheritsRootWhenPathUnset(t *testing.T) {
	session := &model.Session{
		Root:    model.StringPtr("/session/root"),
		Windows: []model.Window{{Name: "a"}},
	}
	Enrich(session, Options{ProjectName: "p"})
	require.NotNil(t, session.Windows[0].Path)
	assert.Equal(t, "/session/root", *session.Windows[0].Path)
}

func TestExpandPathTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory in this environment")
	}
	session := &model.Session{
		Root:    model.StringPtr(filepath.Join("~", "code")),
		Windows: []model.Window{{Name: "a"}},
	}
	Enrich(session, Options{ProjectName: "p"})
	want := filepath.Join(home, "code")
	require.NotNil(t, session.Root)
	assert.Equal(t, want, *session.Root)
}
