// Package gateway is the single chokepoint for side-effecting interaction
// with the multiplexer binary. Nothing outside this package spawns the
// multiplexer; the executor and snapshotter both go through a Gateway.
package gateway

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"muxed/internal/errs"
	"muxed/internal/logging"
)

// Gateway spawns the multiplexer binary, passing argument vectors through
// and capturing output. Adapted from the teacher's pkg/manager/tmuxwrap.go
// Tmux wrapper, narrowed to the two operations spec.md §4.2 actually names
// (call, attach) plus their derived helpers (has_session, get_config).
type Gateway struct {
	// Bin is the multiplexer binary name/path. Empty means "tmux" resolved
	// via PATH.
	Bin string

	// ExtraEnv is appended to the process environment of every spawned
	// call, e.g. to pin a specific multiplexer socket.
	ExtraEnv []string
}

// New returns a Gateway with the default binary name.
func New() *Gateway {
	return &Gateway{Bin: "tmux"}
}

func (g *Gateway) bin() string {
	if strings.TrimSpace(g.Bin) == "" {
		return "tmux"
	}
	return g.Bin
}

// Call spawns the multiplexer with args, captures stdout/stderr, and
// returns trimmed stdout. A non-zero exit wraps errs.ErrGatewayIO with both
// captured streams, matching the teacher's wrapErr.
func (g *Gateway) Call(args ...string) (string, error) {
	out, err := g.CallBytes(args...)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(out), "\r\n"), nil
}

// CallBytes is Call without trimming, for machine-readable record streams
// (the snapshotter's list-windows/list-panes output).
func (g *Gateway) CallBytes(args ...string) ([]byte, error) {
	if logging.Debug() {
		logging.L().Debug("gateway call", "bin", g.bin(), "args", args)
	}
	cmd := exec.Command(g.bin(), args...)
	cmd.Env = append(os.Environ(), g.ExtraEnv...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, g.wrapErr(args, stdout.Bytes(), stderr.Bytes(), err)
	}
	return stdout.Bytes(), nil
}

// Attach spawns the multiplexer inheriting this process's stdio, so control
// of the terminal passes to the multiplexer client until the user detaches.
// Go cannot replace the current process image the way an in-process exec
// substitute would (no fork+exec-into-self primitive is offered by
// os/exec); spawning and waiting satisfies the contract in spec.md §4.2
// ("user interacts with the multiplexer after this call returns").
func (g *Gateway) Attach(args ...string) error {
	if logging.Debug() {
		logging.L().Debug("gateway attach", "bin", g.bin(), "args", args)
	}
	cmd := exec.Command(g.bin(), args...)
	cmd.Env = append(os.Environ(), g.ExtraEnv...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %s: %v", errs.ErrGatewayIO, g.bin(), err)
	}
	return nil
}

// HasSession reports whether a session named name currently exists.
func (g *Gateway) HasSession(name string) bool {
	_, err := g.Call("has-session", "-t", name)
	return err == nil
}

// GetConfig runs the options dump used to discover base-index/
// pane-base-index and returns the combined stdout.
func (g *Gateway) GetConfig() (string, error) {
	out, err := g.Call("start-server", ";", "show-options", "-g", ";", "show-options", "-g", "-w")
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrOptionsDecode, err)
	}
	return out, nil
}

// IsAvailable reports whether the multiplexer binary can be found on PATH.
func (g *Gateway) IsAvailable() bool {
	_, err := exec.LookPath(g.bin())
	return err == nil
}

func (g *Gateway) wrapErr(args []string, stdout, stderr []byte, err error) error {
	sout := strings.TrimSpace(string(stdout))
	serr := strings.TrimSpace(string(stderr))
	switch {
	case sout == "" && serr == "":
		return fmt.Errorf("%w: %s %s: %v", errs.ErrGatewayIO, g.bin(), strings.Join(args, " "), err)
	case serr == "":
		return fmt.Errorf("%w: %s %s: %v (stdout=%q)", errs.ErrGatewayIO, g.bin(), strings.Join(args, " "), err, sout)
	case sout == "":
		return fmt.Errorf("%w: %s %s: %v (stderr=%q)", errs.ErrGatewayIO, g.bin(), strings.Join(args, " "), err, serr)
	default:
		return fmt.Errorf("%w: %s %s: %v (stdout=%q stderr=%q)", errs.ErrGatewayIO, g.bin(), strings.Join(args, " "), err, sout, serr)
	}
}
