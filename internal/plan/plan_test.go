package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"muxed/internal/enrich"
	"muxed/internal/errs"
	"muxed/internal/model"
)

func buildSession(t *testing.T, session *model.Session, cfg model.MultiplexerConfig) *model.Session {
	t.Helper()
	enrich.Enrich(session, enrich.Options{ProjectName: "proj", Config: cfg})
	return session
}

func TestPlanBasicSingleWindowAttachesByDefault(t *testing.T) {
	session := buildSession(t, &model.Session{
		Windows: []model.Window{{Name: "vim", Command: model.StringPtr("vim")}},
	}, model.MultiplexerConfig{})

	commands, err := Plan(session)
	require.NoError(t, err)

	want := []Kind{KindSession, KindSendKeys, KindSelectWindow, KindSelectPane, KindAttach}
	assertKinds(t, kindsOf(commands), want)
}

func TestPlanDaemonizeSuppressesAttach(t *testing.T) {
	session := buildSession(t, &model.Session{
		Windows: []model.Window{{Name: "vim"}},
	}, model.MultiplexerConfig{})
	enrich.Enrich(session, enrich.Options{ProjectName: "proj", DaemonizeSet: true, Daemonize: true})

	commands, err := Plan(session)
	require.NoError(t, err)
	assert.NotContains(t, kindsOf(commands), KindAttach)
}

func TestPlanSecondWindowEmitsWindowNotSession(t *testing.T) {
	session := buildSession(t, &model.Session{
		Windows: []model.Window{{Name: "a"}, {Name: "b"}},
	}, model.MultiplexerConfig{})

	commands, err := Plan(session)
	require.NoError(t, err)

	kinds := kindsOf(commands)
	assert.Equal(t, 1, countKind(kinds, KindSession))
	assert.Equal(t, 1, countKind(kinds, KindWindow))
}

func TestPlanZeroPanesEmitsNoSplit(t *testing.T) {
	session := buildSession(t, &model.Session{
		Windows: []model.Window{{Name: "a"}},
	}, model.MultiplexerConfig{})

	commands, err := Plan(session)
	require.NoError(t, err)
	assert.NotContains(t, kindsOf(commands), KindSplit)
}

func TestPlanNPanesEmitsNMinusOneSplits(t *testing.T) {
	session := buildSession(t, &model.Session{
		Windows: []model.Window{{Name: "a", Panes: []model.Pane{{}, {}, {}}}},
	}, model.MultiplexerConfig{})

	commands, err := Plan(session)
	require.NoError(t, err)
	assert.Equal(t, 2, countKind(kindsOf(commands), KindSplit))
}

func TestPlanFirstActiveWindowWinsTieBreak(t *testing.T) {
	session := buildSession(t, &model.Session{
		Windows: []model.Window{
			{Name: "a", Active: true},
			{Name: "b", Active: true},
		},
	}, model.MultiplexerConfig{})

	commands, err := Plan(session)
	require.NoError(t, err)

	selectWindowTarget := findTarget(commands, KindSelectWindow)
	require.NotNil(t, selectWindowTarget)
	assert.True(t, selectWindowTarget.Equal(*session.Windows[0].Target))
}

func TestPlanNoActiveWindowDefaultsToFirst(t *testing.T) {
	session := buildSession(t, &model.Session{
		Windows: []model.Window{{Name: "a"}, {Name: "b"}},
	}, model.MultiplexerConfig{})

	commands, err := Plan(session)
	require.NoError(t, err)

	selectWindowTarget := findTarget(commands, KindSelectWindow)
	require.NotNil(t, selectWindowTarget)
	assert.True(t, selectWindowTarget.Equal(*session.Windows[0].Target))
}

func TestPlanMissingNameIsInternalError(t *testing.T) {
	session := &model.Session{Windows: []model.Window{{Name: "a"}}}
	_, err := Plan(session)
	require.ErrorIs(t, err, errs.ErrSessionNameRequired)
}

func TestPlanGlobalPreEmitsPreCommandFirst(t *testing.T) {
	session := &model.Session{
		Pre:     model.PreHook{"echo hi", "echo bye"},
		Windows: []model.Window{{Name: "a"}},
	}
	enrich.Enrich(session, enrich.Options{ProjectName: "proj"})

	commands, err := Plan(session)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(commands), 3)

	assert.Equal(t, KindPre, commands[0].Kind)
	assert.Equal(t, "echo hi", commands[0].Exec)
	assert.Equal(t, KindPre, commands[1].Kind)
	assert.Equal(t, "echo bye", commands[1].Exec)
	assert.Equal(t, KindSession, commands[2].Kind)
}

func TestPlanPreWindowFiresPerWindowAndPerPane(t *testing.T) {
	session := &model.Session{
		PreWindow: model.PreHook{"hook"},
		Windows: []model.Window{
			{Name: "a"},
			{Name: "b", Panes: []model.Pane{{}, {}}},
		},
	}
	enrich.Enrich(session, enrich.Options{ProjectName: "proj"})

	commands, err := Plan(session)
	require.NoError(t, err)

	var hookTargets []model.Target
	for _, c := range commands {
		if c.Kind == KindSendKeys && c.Line == "hook" {
			hookTargets = append(hookTargets, c.Target)
		}
	}

	// Once for window a (no panes), once for window b itself, once for
	// each of window b's two panes: 4 firings total.
	require.Len(t, hookTargets, 4)
	assert.True(t, hookTargets[0].Equal(*session.Windows[0].Target), "window a's own hook")
	assert.True(t, hookTargets[1].Equal(*session.Windows[1].Target), "window b's own hook")
	assert.True(t, hookTargets[2].Equal(*session.Windows[1].Panes[0].Target), "window b pane 0's hook")
	assert.True(t, hookTargets[3].Equal(*session.Windows[1].Panes[1].Target), "window b pane 1's hook")
}

func kindsOf(commands []Command) []Kind {
	kinds := make([]Kind, 0, len(commands))
	for _, c := range commands {
		kinds = append(kinds, c.Kind)
	}
	return kinds
}

func countKind(kinds []Kind, want Kind) int {
	n := 0
	for _, k := range kinds {
		if k == want {
			n++
		}
	}
	return n
}

func findTarget(commands []Command, kind Kind) *model.Target {
	for _, c := range commands {
		if c.Kind == kind {
			target := c.Target
			return &target
		}
	}
	return nil
}

func assertKinds(t *testing.T, got, want []Kind) {
	t.Helper()
	require.Equal(t, want, got)
}
