package installer

import (
	"context"
	"os"
	"os/exec"
)

// Runner executes package manager commands. The interface exists so tests
// can record invocations without shelling out.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs commands with inherited stdio. Package managers may
// prompt (sudo passwords, confirmation dialogs) and may block on network
// I/O indefinitely; no timeout is applied.
type ExecRunner struct{}

// Run executes name with args, streaming output to the terminal.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
