package reencode

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func TestOrchestratorBoundsConcurrency(t *testing.T) {
	encoder := newStubEncoder("1.4.3")

	candidates := make([]string, 9)
	for i := range candidates {
		candidates[i] = fmt.Sprintf("/music/%02d.flac", i)
	}

	orch := NewOrchestrator(encoder, 3)
	failures := orch.Run(context.Background(), candidates)

	if len(failures) != 0 {
		t.Fatalf("failures = %v, want none", failures)
	}
	if got := encoder.peakConcurrency(); got > 3 {
		t.Fatalf("peak concurrency = %d, want <= 3", got)
	}
	if started := encoder.startedPaths(); len(started) != len(candidates) {
		t.Fatalf("started %d tasks, want %d", len(started), len(candidates))
	}
}

func TestOrchestratorLaunchesInDiscoveryOrder(t *testing.T) {
	encoder := newStubEncoder("1.4.3")

	candidates := []string{"/m/a.flac", "/m/b.flac", "/m/c.flac", "/m/d.flac"}
	NewOrchestrator(encoder, 2).Run(context.Background(), candidates)

	if got := encoder.startedPaths(); !reflect.DeepEqual(got, candidates) {
		t.Fatalf("launch order = %v, want %v", got, candidates)
	}
}

func TestOrchestratorRecordsFailures(t *testing.T) {
	encoder := newStubEncoder("1.4.3")
	encoder.exitFor = map[string]int{"/m/bad.flac": 3}

	candidates := []string{"/m/good.flac", "/m/bad.flac", "/m/fine.flac"}
	failures := NewOrchestrator(encoder, 2).Run(context.Background(), candidates)

	if len(failures) != 1 {
		t.Fatalf("failures = %v, want exactly one", failures)
	}
	got := failures[0]
	if got.ExitCode != 3 {
		t.Fatalf("ExitCode = %d, want 3", got.ExitCode)
	}
	if want := encoder.CommandLine("/m/bad.flac"); got.CommandLine != want {
		t.Fatalf("CommandLine = %q, want %q", got.CommandLine, want)
	}
	if got.Succeeded {
		t.Fatal("failure marked succeeded")
	}
}

func TestOrchestratorContinuesPastLaunchFailure(t *testing.T) {
	encoder := newStubEncoder("1.4.3")
	encoder.startErr = map[string]error{"/m/b.flac": errors.New("fork failed")}

	candidates := []string{"/m/a.flac", "/m/b.flac", "/m/c.flac"}
	failures := NewOrchestrator(encoder, 1).Run(context.Background(), candidates)

	if len(failures) != 1 {
		t.Fatalf("failures = %v, want one", failures)
	}
	if failures[0].ExitCode != -1 {
		t.Fatalf("ExitCode = %d, want -1", failures[0].ExitCode)
	}
	if started := encoder.startedPaths(); len(started) != 2 {
		t.Fatalf("started = %v, want the two launchable tasks", started)
	}
}

func TestOrchestratorProgressReporting(t *testing.T) {
	encoder := newStubEncoder("1.4.3")

	type update struct {
		current, total int
		final          bool
	}
	var updates []update
	orch := NewOrchestrator(encoder, 2, WithProgress(func(current, total int, final bool) {
		updates = append(updates, update{current, total, final})
	}))

	orch.Run(context.Background(), []string{"/m/a.flac", "/m/b.flac", "/m/c.flac"})

	if len(updates) != 4 {
		t.Fatalf("updates = %v, want 3 dispatch calls plus a final call", updates)
	}
	last := updates[len(updates)-1]
	if !last.final || last.current != 3 || last.total != 3 {
		t.Fatalf("final update = %+v, want {3 3 true}", last)
	}
	for _, u := range updates[:len(updates)-1] {
		if u.final {
			t.Fatalf("unexpected early final update: %+v", u)
		}
	}
}

func TestOrchestratorCorrectsInvalidJobs(t *testing.T) {
	encoder := newStubEncoder("1.4.3")
	orch := NewOrchestrator(encoder, 0)
	if orch.Jobs() != DefaultJobs {
		t.Fatalf("Jobs = %d, want %d", orch.Jobs(), DefaultJobs)
	}

	failures := orch.Run(context.Background(), []string{"/m/a.flac"})
	if len(failures) != 0 {
		t.Fatalf("failures = %v, want none", failures)
	}
}

func TestOrchestratorEmptyCandidates(t *testing.T) {
	encoder := newStubEncoder("1.4.3")

	var finals int
	orch := NewOrchestrator(encoder, 2, WithProgress(func(current, total int, final bool) {
		if final {
			finals++
		}
	}))

	failures := orch.Run(context.Background(), nil)
	if len(failures) != 0 {
		t.Fatalf("failures = %v, want none", failures)
	}
	if finals != 1 {
		t.Fatalf("final progress calls = %d, want 1", finals)
	}
}

func TestOrchestratorStopsLaunchingOnCancel(t *testing.T) {
	encoder := newStubEncoder("1.4.3")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	failures := NewOrchestrator(encoder, 2).Run(ctx, []string{"/m/a.flac", "/m/b.flac"})
	if len(failures) != 0 {
		t.Fatalf("failures = %v, want none", failures)
	}
	if started := encoder.startedPaths(); len(started) != 0 {
		t.Fatalf("started = %v, want none after cancellation", started)
	}
}
