// Package dispatch resolves target names to PIDs and broadcasts a
// signal to every match.
package dispatch

import (
	"context"
	"sort"
	"syscall"

	"nkill/internal/proc"
	"nkill/internal/signals"
)

// Sender delivers a signal to a single process.
type Sender func(pid int32, sig syscall.Signal) error

// DefaultSender delivers via kill(2).
func DefaultSender(pid int32, sig syscall.Signal) error {
	return syscall.Kill(int(pid), sig)
}

// Failure records a delivery the OS rejected for one PID.
type Failure struct {
	PID int32
	Err error
}

// Outcome is the per-name result of one dispatch run.
type Outcome struct {
	Name     string
	PIDs     []int32 // matched PIDs, ascending
	Failures []Failure
}

// Matched reports whether any process matched the name.
func (o Outcome) Matched() bool {
	return len(o.PIDs) > 0
}

// Delivered returns how many matched PIDs accepted the signal.
func (o Outcome) Delivered() int {
	return len(o.PIDs) - len(o.Failures)
}

// Dispatcher sends one signal to every process matching each target name.
type Dispatcher struct {
	finder proc.Finder
	send   Sender
	sig    signals.Descriptor
}

// New builds a Dispatcher. A nil sender means kill(2).
func New(finder proc.Finder, sig signals.Descriptor, send Sender) *Dispatcher {
	if send == nil {
		send = DefaultSender
	}
	return &Dispatcher{finder: finder, send: send, sig: sig}
}

// Signal returns the descriptor this dispatcher delivers.
func (d *Dispatcher) Signal() signals.Descriptor {
	return d.sig
}

// Run processes every name in order. A name with no matches does not
// stop the run, and a rejected delivery does not stop the broadcast to
// the remaining PIDs; the caller inspects the outcomes for both. Only
// a process-table listing failure aborts the run.
func (d *Dispatcher) Run(ctx context.Context, names []string) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(names))
	for _, name := range names {
		pids, err := d.finder.Find(ctx, name)
		if err != nil {
			return nil, err
		}
		sort.Slice(pids, func(i, j int) bool { return pids[i] < pids[j] })

		out := Outcome{Name: name, PIDs: pids}
		for _, pid := range pids {
			if err := d.send(pid, d.sig.Signal); err != nil {
				out.Failures = append(out.Failures, Failure{PID: pid, Err: err})
			}
		}
		outcomes = append(outcomes, out)
	}
	return outcomes, nil
}
