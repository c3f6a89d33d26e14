package device

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// defaultWaitDelay bounds how long a killed command may keep its output pipes
// open before Run gives up on it.
const defaultWaitDelay = 2 * time.Second

// Result captures a finished external command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner executes an external command to completion.
// A non-zero exit status is reported through Result.ExitCode, not as an error;
// errors are reserved for commands that could not be started or did not finish
// before ctx expired.
type Runner interface {
	Run(ctx context.Context, argv []string) (Result, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	WaitDelay time.Duration
}

// Run implements Runner.
func (r ExecRunner) Run(ctx context.Context, argv []string) (Result, error) {
	if len(argv) == 0 {
		return Result{ExitCode: -1}, fmt.Errorf("empty command")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = r.WaitDelay
	if cmd.WaitDelay <= 0 {
		cmd.WaitDelay = defaultWaitDelay
	}
	hideWindow(cmd)

	err := cmd.Run()

	res := Result{
		Stdout:   sanitize(stdout.Bytes()),
		Stderr:   sanitize(stderr.Bytes()),
		ExitCode: -1,
	}
	if cmd.ProcessState != nil {
		res.ExitCode = cmd.ProcessState.ExitCode()
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return res, fmt.Errorf("%s: %w", argv[0], ctxErr)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return res, nil
	}
	if err != nil {
		return res, fmt.Errorf("run %s: %w", argv[0], err)
	}
	return res, nil
}

// sanitize replaces invalid UTF-8 and normalizes Windows line endings.
func sanitize(b []byte) string {
	s := strings.ToValidUTF8(string(b), "�")
	return strings.ReplaceAll(s, "\r\n", "\n")
}
