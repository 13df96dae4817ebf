package flac

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"flacup/internal/flacver"
)

var commandContext = exec.CommandContext

// DefaultBinary is the encoder executable name resolved from PATH when no
// explicit path is configured.
const DefaultBinary = "flac"

// encodeArgs is the fixed flag set every re-encode invocation uses: best
// compression, verify the output while encoding, overwrite the input file,
// and keep decoding through errors in the source stream.
var encodeArgs = []string{"--best", "--verify", "--force", "--decode-through-errors"}

// Encoder launches external encode processes and reports the tool version.
type Encoder interface {
	Version(ctx context.Context) (flacver.Version, string, error)
	Start(ctx context.Context, path string, verbose bool) (Process, error)
	// CommandLine renders the invocation Start would launch for path.
	CommandLine(path string) string
}

// Process is one running encode invocation.
type Process interface {
	// Wait blocks until the process exits. A nonzero exit status is
	// returned as an error.
	Wait() error
	// ExitCode is valid after Wait returns; -1 when the process never ran
	// or was terminated by a signal.
	ExitCode() int
	// CommandLine is the full invocation, for failure reporting.
	CommandLine() string
}

// Option configures the CLI client.
type Option func(*CLI)

// WithBinary overrides the default binary name.
func WithBinary(binary string) Option {
	return func(c *CLI) {
		if strings.TrimSpace(binary) != "" {
			c.binary = strings.TrimSpace(binary)
		}
	}
}

// CLI wraps the reference flac command-line encoder.
type CLI struct {
	binary string
}

// NewCLI constructs a CLI client using defaults.
func NewCLI(opts ...Option) *CLI {
	cli := &CLI{binary: DefaultBinary}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

// Binary returns the configured executable name or path.
func (c *CLI) Binary() string {
	return c.binary
}

// Version runs the encoder's version query and parses the trailing dotted
// version number from its free-text output (e.g. "flac 1.4.3").
func (c *CLI) Version(ctx context.Context) (flacver.Version, string, error) {
	out, err := commandContext(ctx, c.binary, "-v").Output()
	if err != nil {
		return flacver.Version{}, "", fmt.Errorf("run %s -v: %w", c.binary, err)
	}
	raw := strings.TrimSpace(string(out))
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return flacver.Version{}, raw, fmt.Errorf("empty version output from %s", c.binary)
	}
	version, err := flacver.Parse(fields[len(fields)-1])
	if err != nil {
		return flacver.Version{}, raw, fmt.Errorf("parse encoder version from %q: %w", raw, err)
	}
	return version, raw, nil
}

// Start launches a re-encode of the file at path with the fixed flag set.
// Child output is discarded unless verbose is set, in which case it is
// passed through to the parent's streams; verbosity never changes
// success/failure semantics.
func (c *CLI) Start(ctx context.Context, path string, verbose bool) (Process, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("encode path required")
	}
	args := make([]string, 0, len(encodeArgs)+1)
	args = append(args, encodeArgs...)
	args = append(args, path)

	cmd := commandContext(ctx, c.binary, args...)
	if verbose {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", c.binary, err)
	}
	return &process{
		cmd:  cmd,
		line: strings.Join(append([]string{c.binary}, args...), " "),
	}, nil
}

// CommandLine renders the invocation Start would launch for path, without
// running anything. Used for dry-run output and launch-failure reporting.
func (c *CLI) CommandLine(path string) string {
	parts := append([]string{c.binary}, encodeArgs...)
	return strings.Join(append(parts, path), " ")
}

type process struct {
	cmd  *exec.Cmd
	line string
}

func (p *process) Wait() error {
	return p.cmd.Wait()
}

func (p *process) ExitCode() int {
	state := p.cmd.ProcessState
	if state == nil {
		return -1
	}
	return state.ExitCode()
}

func (p *process) CommandLine() string {
	return p.line
}
