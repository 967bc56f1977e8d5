package media

import (
	"context"
	"os/exec"
)

// CommandFunc builds an external command. It matches exec.CommandContext so
// tests can substitute a helper process for the real tools.
type CommandFunc func(ctx context.Context, name string, args ...string) *exec.Cmd

// DefaultCommand runs the named binary directly
func DefaultCommand(ctx context.Context, name string, args ...string) *exec.Cmd {
	return exec.CommandContext(ctx, name, args...)
}
