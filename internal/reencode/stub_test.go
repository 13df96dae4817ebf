package reencode

import (
	"context"
	"fmt"
	"sync"
	"time"

	"flacup/internal/flacver"
	"flacup/internal/services/flac"
)

// stubEncoder satisfies flac.Encoder without launching real processes.
// Each Start returns a process whose Wait sleeps briefly, runs an optional
// hook, and exits with the configured code for that path.
type stubEncoder struct {
	version    flacver.Version
	versionRaw string
	versionErr error

	exitFor  map[string]int // missing entries exit 0
	startErr map[string]error
	waitTime time.Duration
	onWait   func(path string)

	mu         sync.Mutex
	started    []string
	running    int
	maxRunning int
}

func newStubEncoder(version string) *stubEncoder {
	v, err := flacver.Parse(version)
	if err != nil {
		panic(err)
	}
	return &stubEncoder{
		version:    v,
		versionRaw: "flac " + version,
		waitTime:   5 * time.Millisecond,
	}
}

func (e *stubEncoder) Version(context.Context) (flacver.Version, string, error) {
	if e.versionErr != nil {
		return flacver.Version{}, "", e.versionErr
	}
	return e.version, e.versionRaw, nil
}

func (e *stubEncoder) CommandLine(path string) string {
	return "flac --best --verify --force --decode-through-errors " + path
}

func (e *stubEncoder) Start(_ context.Context, path string, _ bool) (flac.Process, error) {
	if err := e.startErr[path]; err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.started = append(e.started, path)
	e.running++
	if e.running > e.maxRunning {
		e.maxRunning = e.running
	}
	e.mu.Unlock()

	return &stubProcess{encoder: e, path: path, exit: e.exitFor[path]}, nil
}

func (e *stubEncoder) startedPaths() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string{}, e.started...)
}

func (e *stubEncoder) peakConcurrency() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.maxRunning
}

type stubProcess struct {
	encoder *stubEncoder
	path    string
	exit    int
}

func (p *stubProcess) Wait() error {
	time.Sleep(p.encoder.waitTime)
	if p.encoder.onWait != nil {
		p.encoder.onWait(p.path)
	}

	p.encoder.mu.Lock()
	p.encoder.running--
	p.encoder.mu.Unlock()

	if p.exit != 0 {
		return fmt.Errorf("exit status %d", p.exit)
	}
	return nil
}

func (p *stubProcess) ExitCode() int {
	return p.exit
}

func (p *stubProcess) CommandLine() string {
	return p.encoder.CommandLine(p.path)
}
