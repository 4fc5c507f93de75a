package ytdlp

import (
	"context"
	"io"
	"os"
	"os/exec"
)

// Runner abstracts external-process invocation. Output is for metadata
// probes (stdout captured, non-zero exit is an error); Run is for
// downloads (output streamed, the caller only inspects the error).
type Runner interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
	Run(ctx context.Context, name string, args ...string) error
}

// SystemRunner executes commands with os/exec. Stdout and Stderr receive
// the streamed output of Run calls; they default to the process streams.
type SystemRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewSystemRunner returns a SystemRunner wired to os.Stdout/os.Stderr so
// download progress stays visible.
func NewSystemRunner() *SystemRunner {
	return &SystemRunner{Stdout: os.Stdout, Stderr: os.Stderr}
}

// Output runs the command and returns its captured stdout. Stderr is
// discarded; a non-zero exit surfaces as *exec.ExitError.
func (r *SystemRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Run executes the command with output streamed to the configured writers
// and blocks until it exits.
func (r *SystemRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	return cmd.Run()
}
