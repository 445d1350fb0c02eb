package exec

import (
	"os"
	osexec "os/exec"
)

// OSShell runs a Pre command's program on the host machine, inheriting
// this process's stdio so interactive prompts (ssh-add, sudo, etc.) still
// work.
type OSShell struct{}

func (OSShell) Run(program string, args ...string) error {
	cmd := osexec.Command(program, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
