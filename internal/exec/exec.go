// Package exec walks a plan.Command sequence and dispatches each command
// to the multiplexer gateway, strictly sequentially — spec.md §4.6 and §5
// require each command to complete before the next begins, since the
// multiplexer itself is the only concurrency boundary and must observe a
// causally ordered stream.
//
// Grounded on the teacher's pkg/manager/apply_spec.go (ApplySpecFile's
// compile-then-execute shape) and pkg/templates/engine.go's Runner
// interface, narrowed to the single Multiplexer seam this design needs.
package exec

import (
	"fmt"
	"strings"

	"muxed/internal/errs"
	"muxed/internal/plan"
)

// Multiplexer is the seam the executor dispatches through. *gateway.Gateway
// satisfies it; tests supply a fake.
type Multiplexer interface {
	Call(args ...string) (string, error)
	Attach(args ...string) error
}

// HostShell runs a Pre command's exec string on the local machine, outside
// the multiplexer. Split on whitespace: first token is the program, the
// rest are arguments, per spec.md §4.6.
type HostShell interface {
	Run(program string, args ...string) error
}

// Execute walks commands in order, dispatching each to gw (multiplexer
// calls) or shell (Pre host-shell commands). The first failing command
// aborts the walk: spec.md §5 forbids retries and treats partial
// multiplexer state as something for the user to handle manually.
func Execute(commands []plan.Command, gw Multiplexer, shell HostShell) error {
	for _, cmd := range commands {
		if err := dispatch(cmd, gw, shell); err != nil {
			return err
		}
	}
	return nil
}

func dispatch(cmd plan.Command, gw Multiplexer, shell HostShell) error {
	switch cmd.Kind {
	case plan.KindPre:
		fields := strings.Fields(cmd.Exec)
		if len(fields) == 0 {
			return nil
		}
		if err := shell.Run(fields[0], fields[1:]...); err != nil {
			return fmt.Errorf("%w: pre-hook %q: %v", errs.ErrGatewayIO, cmd.Exec, err)
		}
		return nil

	case plan.KindSession:
		args := []string{"new", "-d", "-s", cmd.Name, "-n", cmd.FirstWindow}
		if cmd.Root != nil {
			args = append(args, "-c", *cmd.Root)
		}
		_, err := gw.Call(args...)
		return err

	case plan.KindWindow:
		args := []string{"new-window", "-t", cmd.Target.Session + ":", "-n", cmd.Line}
		if cmd.Path != nil {
			args = append(args, "-c", *cmd.Path)
		}
		_, err := gw.Call(args...)
		return err

	case plan.KindSplit:
		args := []string{"split-window", "-t", cmd.Target.String()}
		if cmd.Path != nil {
			args = append(args, "-c", *cmd.Path)
		}
		_, err := gw.Call(args...)
		return err

	case plan.KindLayout:
		_, err := gw.Call("select-layout", "-t", cmd.Target.String(), cmd.Layout)
		return err

	case plan.KindSendKeys:
		_, err := gw.Call("send-keys", "-t", cmd.Target.String(), cmd.Line, "KPEnter")
		return err

	case plan.KindSelectWindow:
		_, err := gw.Call("select-window", "-t", cmd.Target.String())
		return err

	case plan.KindSelectPane:
		_, err := gw.Call("select-pane", "-t", cmd.Target.String())
		return err

	case plan.KindAttach:
		args := []string{"attach", "-t", cmd.Target.String()}
		if cmd.Root != nil {
			args = append(args, "-c", *cmd.Root)
		}
		return gw.Attach(args...)

	default:
		return fmt.Errorf("%w: unknown command kind %d", errs.ErrGatewayIO, cmd.Kind)
	}
}
