package launcher

import (
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
)

var ErrNoExecutable = errors.New("emulator executable not set")

// ExecSpawner runs the emulator as a child process. The process is never
// killed; the launcher only waits for it to exit.
type ExecSpawner struct {
	Logger *slog.Logger
}

func NewExecSpawner(logger *slog.Logger) *ExecSpawner {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExecSpawner{Logger: logger}
}

// Spawn starts executable with args from the executable's own directory and
// reports the exit code through onExit from a separate goroutine.
func (s *ExecSpawner) Spawn(executable string, args []string, onExit func(exitCode int)) error {
	if executable == "" {
		return ErrNoExecutable
	}

	cmd := exec.Command(executable, args...)
	cmd.Dir = filepath.Dir(executable)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", executable, err)
	}

	s.Logger.Debug("Emulator started", "pid", cmd.Process.Pid, "executable", executable, "args", args)

	go func() {
		err := cmd.Wait()
		exitCode := cmd.ProcessState.ExitCode()

		var exitErr *exec.ExitError
		if err != nil && !errors.As(err, &exitErr) {
			s.Logger.Error("Waiting for emulator failed", "executable", executable, "error", err)
		}

		s.Logger.Debug("Emulator exited", "executable", executable, "exitCode", exitCode)

		if onExit != nil {
			onExit(exitCode)
		}
	}()

	return nil
}
