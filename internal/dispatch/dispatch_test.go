package dispatch

import (
	"context"
	"errors"
	"syscall"
	"testing"

	"nkill/internal/signals"
)

// fakeFinder serves canned PID sets per name.
type fakeFinder struct {
	procs map[string][]int32
	err   error
}

func (f *fakeFinder) Find(_ context.Context, name string) ([]int32, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.procs[name], nil
}

// recordingSender records deliveries and fails for PIDs in reject.
type recordingSender struct {
	calls  []int32
	sigs   []syscall.Signal
	reject map[int32]error
}

func (s *recordingSender) send(pid int32, sig syscall.Signal) error {
	s.calls = append(s.calls, pid)
	s.sigs = append(s.sigs, sig)
	if err, ok := s.reject[pid]; ok {
		return err
	}
	return nil
}

func termDispatcher(f *fakeFinder, s *recordingSender) *Dispatcher {
	return New(f, signals.Default(), s.send)
}

func TestRun_SignalsAllMatches(t *testing.T) {
	finder := &fakeFinder{procs: map[string][]int32{"worker": {300, 100, 200}}}
	sender := &recordingSender{}

	outcomes, err := termDispatcher(finder, sender).Run(context.Background(), []string{"worker"})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(outcomes) != 1 {
		t.Fatalf("got %d outcomes, want 1", len(outcomes))
	}
	out := outcomes[0]
	if !out.Matched() {
		t.Error("worker should be matched")
	}
	want := []int32{100, 200, 300}
	for i, pid := range want {
		if out.PIDs[i] != pid {
			t.Errorf("PIDs[%d] = %d, want %d (ascending)", i, out.PIDs[i], pid)
		}
	}
	if len(sender.calls) != 3 {
		t.Errorf("sender called %d times, want 3", len(sender.calls))
	}
	for _, sig := range sender.sigs {
		if sig != syscall.SIGTERM {
			t.Errorf("sent %v, want SIGTERM", sig)
		}
	}
}

func TestRun_ContinuesPastUnmatchedName(t *testing.T) {
	finder := &fakeFinder{procs: map[string][]int32{"second": {42}}}
	sender := &recordingSender{}

	outcomes, err := termDispatcher(finder, sender).Run(context.Background(), []string{"first", "second"})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(outcomes) != 2 {
		t.Fatalf("got %d outcomes, want 2", len(outcomes))
	}
	if outcomes[0].Matched() {
		t.Error("first should be unmatched")
	}
	if !outcomes[1].Matched() {
		t.Error("second should still be processed after an unmatched name")
	}
	if len(sender.calls) != 1 || sender.calls[0] != 42 {
		t.Errorf("sender calls = %v, want [42]", sender.calls)
	}
}

func TestRun_DeliveryFailureDoesNotAbortBroadcast(t *testing.T) {
	finder := &fakeFinder{procs: map[string][]int32{"worker": {100, 200, 300}}}
	sender := &recordingSender{reject: map[int32]error{200: syscall.EPERM}}

	outcomes, err := termDispatcher(finder, sender).Run(context.Background(), []string{"worker"})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	out := outcomes[0]
	if len(sender.calls) != 3 {
		t.Errorf("sender called %d times, want 3 (failure must not stop the broadcast)", len(sender.calls))
	}
	if len(out.Failures) != 1 {
		t.Fatalf("got %d failures, want 1", len(out.Failures))
	}
	if out.Failures[0].PID != 200 {
		t.Errorf("Failures[0].PID = %d, want 200", out.Failures[0].PID)
	}
	if !errors.Is(out.Failures[0].Err, syscall.EPERM) {
		t.Errorf("Failures[0].Err = %v, want EPERM", out.Failures[0].Err)
	}
	if out.Delivered() != 2 {
		t.Errorf("Delivered() = %d, want 2", out.Delivered())
	}
}

func TestRun_ListingErrorAborts(t *testing.T) {
	listErr := errors.New("proc unavailable")
	finder := &fakeFinder{err: listErr}
	sender := &recordingSender{}

	_, err := termDispatcher(finder, sender).Run(context.Background(), []string{"worker"})
	if !errors.Is(err, listErr) {
		t.Errorf("Run error = %v, want %v", err, listErr)
	}
	if len(sender.calls) != 0 {
		t.Errorf("sender should not be called, got %v", sender.calls)
	}
}

func TestNew_NilSenderDefaultsToKill(t *testing.T) {
	d := New(&fakeFinder{}, signals.Default(), nil)
	if d.send == nil {
		t.Error("nil sender should default to kill(2)")
	}
	if d.Signal().Name != "TERM" {
		t.Errorf("Signal().Name = %q, want TERM", d.Signal().Name)
	}
}

func TestRun_SignalChoicePropagates(t *testing.T) {
	finder := &fakeFinder{procs: map[string][]int32{"worker": {7}}}
	sender := &recordingSender{}

	kill, ok := signals.Resolve("KILL")
	if !ok {
		t.Fatal("Resolve(KILL) not found")
	}

	if _, err := New(finder, kill, sender.send).Run(context.Background(), []string{"worker"}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(sender.sigs) != 1 || sender.sigs[0] != syscall.SIGKILL {
		t.Errorf("sent %v, want [SIGKILL]", sender.sigs)
	}
}
