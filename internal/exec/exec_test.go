package exec

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"muxed/internal/model"
	"muxed/internal/plan"
)

type fakeMultiplexer struct {
	calls      [][]string
	attached   [][]string
	failOnCall int // index at which Call should fail, -1 to never fail
}

func (f *fakeMultiplexer) Call(args ...string) (string, error) {
	f.calls = append(f.calls, args)
	if f.failOnCall >= 0 && len(f.calls)-1 == f.failOnCall {
		return "", errors.New("boom")
	}
	return "", nil
}

func (f *fakeMultiplexer) Attach(args ...string) error {
	f.attached = append(f.attached, args)
	return nil
}

type fakeShell struct {
	runs []string
}

func (f *fakeShell) Run(program string, args ...string) error {
	f.runs = append(f.runs, strings.Join(append([]string{program}, args...), " "))
	return nil
}

func TestExecuteDispatchesSessionCommand(t *testing.T) {
	gw := &fakeMultiplexer{failOnCall: -1}
	shell := &fakeShell{}
	commands := []plan.Command{
		{Kind: plan.KindSession, Name: "proj", FirstWindow: "vim", Root: model.StringPtr("/tmp")},
	}
	require.NoError(t, Execute(commands, gw, shell))
	require.Len(t, gw.calls, 1)
	assert.Equal(t, []string{"new", "-d", "-s", "proj", "-n", "vim", "-c", "/tmp"}, gw.calls[0])
}

func TestExecuteDispatchesSendKeysWithKPEnter(t *testing.T) {
	gw := &fakeMultiplexer{failOnCall: -1}
	target := model.NewTarget("proj", model.IntPtr(1), nil)
	commands := []plan.Command{{Kind: plan.KindSendKeys, Target: target, Line: "ls"}}
	require.NoError(t, Execute(commands, gw, &fakeShell{}))
	assert.Equal(t, []string{"send-keys", "-t", "proj:1", "ls", "KPEnter"}, gw.calls[0])
}

func TestExecuteDispatchesPreToHostShell(t *testing.T) {
	shell := &fakeShell{}
	commands := []plan.Command{{Kind: plan.KindPre, Exec: "echo hi"}}
	require.NoError(t, Execute(commands, &fakeMultiplexer{failOnCall: -1}, shell))
	assert.Equal(t, []string{"echo hi"}, shell.runs)
}

func TestExecuteDispatchesAttach(t *testing.T) {
	gw := &fakeMultiplexer{failOnCall: -1}
	target := model.NewTarget("proj", nil, nil)
	commands := []plan.Command{{Kind: plan.KindAttach, Target: target}}
	require.NoError(t, Execute(commands, gw, &fakeShell{}))
	assert.Len(t, gw.attached, 1)
}

func TestExecuteStopsOnFirstFailure(t *testing.T) {
	gw := &fakeMultiplexer{failOnCall: 0}
	commands := []plan.Command{
		{Kind: plan.KindSession, Name: "proj", FirstWindow: "vim"},
		{Kind: plan.KindSendKeys, Target: model.NewTarget("proj", model.IntPtr(0), nil), Line: "ls"},
	}
	err := Execute(commands, gw, &fakeShell{})
	require.Error(t, err)
	assert.Len(t, gw.calls, 1, "execution should stop after first failure")
}
