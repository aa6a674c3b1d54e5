// Package shell provides the external compiler adapter.
package shell

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	"go.trai.ch/zerr"
	"go.whl.build/whl/internal/core/domain"
	"go.whl.build/whl/internal/core/ports"
)

// FilePlaceholder in the configured argv template is replaced with the
// source path. If no argument carries it, the path is appended.
const FilePlaceholder = "{file}"

var _ ports.Compiler = (*Compiler)(nil)

// Compiler invokes the configured per-file compile command via os/exec.
// The command itself is opaque; only its exit status matters.
type Compiler struct {
	logger ports.Logger
}

// NewCompiler creates a new Compiler.
func NewCompiler(logger ports.Logger) *Compiler {
	return &Compiler{logger: logger}
}

// Compile runs the spec's command for one source file. Stdout and stderr are
// streamed line-wise into the telemetry vertex attached to the context, or
// into the logger when no vertex is recording. A non-zero exit is returned
// with the exit code attached; the caller decides whether to continue with
// the remaining files.
func (c *Compiler) Compile(ctx context.Context, spec domain.CompilerSpec, path string) error {
	if len(spec.Cmd) == 0 {
		return domain.ErrNoCompiler
	}

	argv := expandArgv(spec.Cmd, path)
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // Command comes from project configuration

	stdout, stderr := c.outputs(ctx)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		wrapped := zerr.With(zerr.Wrap(err, "compile command failed"), "path", path)
		return zerr.With(wrapped, "exit_code", exitCode)
	}

	return nil
}

// outputs picks the stream destinations: the recording vertex when present,
// the logger otherwise.
func (c *Compiler) outputs(ctx context.Context) (io.Writer, io.Writer) {
	if vtx, ok := ports.VertexFromContext(ctx); ok {
		return vtx.Stdout(), vtx.Stderr()
	}
	return &logWriter{logger: c.logger, level: domain.LogLevelInfo},
		&logWriter{logger: c.logger, level: domain.LogLevelError}
}

// expandArgv substitutes the file placeholder into the argv template.
func expandArgv(tmpl []string, path string) []string {
	argv := make([]string, len(tmpl))
	replaced := false
	for i, arg := range tmpl {
		if strings.Contains(arg, FilePlaceholder) {
			argv[i] = strings.ReplaceAll(arg, FilePlaceholder, path)
			replaced = true
			continue
		}
		argv[i] = arg
	}
	if !replaced {
		argv = append(argv, path)
	}
	return argv
}

// logWriter forwards process output to the logger, one line at a time.
type logWriter struct {
	logger ports.Logger
	level  domain.LogLevel
}

func (w *logWriter) Write(p []byte) (int, error) {
	lines := strings.Split(strings.TrimSuffix(string(p), "\n"), "\n")
	for _, line := range lines {
		if w.level >= domain.LogLevelError {
			w.logger.Error(zerr.New(line))
			continue
		}
		w.logger.Info(line)
	}
	return len(p), nil
}
