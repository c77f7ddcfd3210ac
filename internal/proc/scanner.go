// Package proc discovers live processes by command name from the
// process-table pseudo-filesystem.
package proc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

// DefaultRoot is the process-table pseudo-filesystem on Linux.
const DefaultRoot = "/proc"

// commBufSize bounds the comm read. The kernel truncates comm to
// TASK_COMM_LEN (16 bytes including the NUL); 64 leaves slack for the
// trailing newline and future kernel growth.
const commBufSize = 64

// Finder locates live processes by their command name.
type Finder interface {
	// Find returns the PIDs of every process whose comm record equals
	// name exactly. An empty result is not an error; only a failure to
	// list the process-table root is. Result order is unspecified.
	Find(ctx context.Context, name string) ([]int32, error)
}

type scanner struct {
	root    string
	workers int
}

// New returns a Finder scanning DefaultRoot. workers bounds the scan
// fan-out; zero or negative means one worker per CPU.
func New(workers int) Finder {
	return NewAt(DefaultRoot, workers)
}

// NewAt returns a Finder scanning an alternate process-table root.
// Tests use this to point the scanner at a fixture directory.
func NewAt(root string, workers int) Finder {
	return &scanner{root: root, workers: workers}
}

func (s *scanner) Find(ctx context.Context, name string) ([]int32, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.root, err)
	}

	target := []byte(name)
	workers := s.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(entries) {
		workers = len(entries)
	}

	if workers <= 1 {
		var pids []int32
		for _, entry := range entries {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if pid, ok := s.check(entry.Name(), target); ok {
				pids = append(pids, pid)
			}
		}
		return pids, nil
	}

	// Fan out across entries. Entries are independent and read-only;
	// the only shared mutable state is the result slice.
	var (
		mu   sync.Mutex
		pids []int32
		wg   sync.WaitGroup
	)
	work := make(chan string, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for entry := range work {
				if pid, ok := s.check(entry, target); ok {
					mu.Lock()
					pids = append(pids, pid)
					mu.Unlock()
				}
			}
		}()
	}

	var ctxErr error
	for _, entry := range entries {
		if ctxErr = ctx.Err(); ctxErr != nil {
			break
		}
		work <- entry.Name()
	}
	close(work)
	wg.Wait()

	if ctxErr != nil {
		return nil, ctxErr
	}
	return pids, nil
}

// check parses entry as a PID and compares its comm record against
// target. Non-numeric entries and vanished or unreadable processes are
// not matches; the process table is a racy snapshot and both are
// expected.
func (s *scanner) check(entry string, target []byte) (int32, bool) {
	pid, ok := ParsePID(entry)
	if !ok {
		return 0, false
	}

	f, err := os.Open(filepath.Join(s.root, entry, "comm"))
	if err != nil {
		return 0, false
	}
	var buf [commBufSize]byte
	n, err := f.Read(buf[:])
	_ = f.Close()
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, false
	}

	comm := buf[:n]
	if len(comm) > 0 && comm[len(comm)-1] == '\n' {
		comm = comm[:len(comm)-1]
	}
	if !bytes.Equal(comm, target) {
		return 0, false
	}
	return pid, true
}
