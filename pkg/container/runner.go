package container

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"os/exec"

	"github.com/rs/zerolog"

	"github.com/wincross/wincross/pkg/errors"
	"github.com/wincross/wincross/pkg/logging"
)

// Runner executes an argv. Implementations must surface a non-zero exit as an
// EXTERNAL_COMMAND error carrying the exit status.
type Runner interface {
	Run(ctx context.Context, argv []string) error
}

// ExecRunner runs commands as child processes with stdio passed through.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	LookPath func(string) (string, error)

	log zerolog.Logger
}

// NewExecRunner returns a runner attached to the current process stdio.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		LookPath: exec.LookPath,
		log:      logging.GetLogger("container"),
	}
}

// Run executes argv and waits for it to finish.
func (r *ExecRunner) Run(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return errors.New(errors.ErrInvalidInput, "empty command")
	}

	lookPath := r.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	bin, err := lookPath(argv[0])
	if err != nil {
		return errors.Wrapf(err, errors.ErrExternalToolMissing, "%s not found on PATH", argv[0]).
			WithDetail("tool", argv[0])
	}

	logging.LogCommand(argv[0], argv[1:])

	cmd := exec.CommandContext(ctx, bin, argv[1:]...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			r.log.Debug().
				Str("command", argv[0]).
				Int("exit_code", exitErr.ExitCode()).
				Msg("Command failed")
			return errors.ExternalCommand(err, exitErr.ExitCode(), argv[0])
		}
		return errors.Wrapf(err, errors.ErrExternalCommand, "failed to execute %s", argv[0])
	}
	return nil
}
