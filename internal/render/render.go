// Package render formats CLI output: the project `list`, and the dry-run
// preview of a compiled plan. Grounded on the teacher's
// pkg/templates/engine.go DryRunLines (one prefixed line per command) for
// shape, restyled with lipgloss/fatih/color since those are real pack
// dependencies rather than bare fmt.Println calls.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	"muxed/internal/plan"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	nameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// ProjectList renders known project document basenames as a heading plus
// one styled line per name.
func ProjectList(names []string) string {
	if len(names) == 0 {
		return headingStyle.Render("no project documents found")
	}
	var b strings.Builder
	b.WriteString(headingStyle.Render(fmt.Sprintf("%d project document(s)", len(names))))
	b.WriteString("\n")
	for _, n := range names {
		b.WriteString(nameStyle.Render(n))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// DryRunLines renders each compiled command as a preview line, one per
// command: the multiplexer verb, the target and the command's main
// argument. It is a summary, not the exact argument vector internal/exec
// dispatches; flags such as -d and -c paths are not shown.
func DryRunLines(commands []plan.Command) []string {
	lines := make([]string, 0, len(commands))
	for _, cmd := range commands {
		lines = append(lines, formatCommand(cmd))
	}
	return lines
}

func formatCommand(cmd plan.Command) string {
	accent := color.New(color.FgCyan).SprintFunc()
	switch cmd.Kind {
	case plan.KindPre:
		return accent("pre") + " " + cmd.Exec
	case plan.KindSession:
		return accent("new-session") + " " + cmd.Name + " -n " + cmd.FirstWindow
	case plan.KindWindow:
		return accent("new-window") + " " + cmd.Target.String() + " -n " + cmd.Line
	case plan.KindSplit:
		return accent("split-window") + " " + cmd.Target.String()
	case plan.KindLayout:
		return accent("select-layout") + " " + cmd.Target.String() + " " + cmd.Layout
	case plan.KindSendKeys:
		return accent("send-keys") + " " + cmd.Target.String() + " " + cmd.Line
	case plan.KindSelectWindow:
		return accent("select-window") + " " + cmd.Target.String()
	case plan.KindSelectPane:
		return accent("select-pane") + " " + cmd.Target.String()
	case plan.KindAttach:
		return accent("attach") + " " + cmd.Target.String()
	default:
		return "unknown command"
	}
}
