package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	tea "github.com/charmbracelet/bubbletea"

	"nkill/internal/proc"
	"nkill/internal/signals"
	"nkill/internal/ui"
)

// runInteractive gathers all matches up front into the picker; names
// with no matches are reported to stderr before the picker opens.
func runInteractive(ctx context.Context, finder proc.Finder, names []string, sig signals.Descriptor) error {
	var targets []ui.Target
	unmatched := 0

	for _, name := range names {
		pids, err := finder.Find(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to scan process table: %w", err)
		}
		if len(pids) == 0 {
			unmatched++
			fmt.Fprintf(os.Stderr, "%s: no process found\n", name)
			continue
		}
		sort.Slice(pids, func(i, j int) bool { return pids[i] < pids[j] })
		for _, pid := range pids {
			targets = append(targets, ui.Target{Name: name, Details: proc.Describe(ctx, pid)})
		}
	}

	if len(targets) == 0 {
		return fmt.Errorf("no process found")
	}

	m := ui.NewModel(targets, sig.Name, sig.Signal, nil)
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("interactive picker failed: %w", err)
	}

	fm, ok := final.(ui.Model)
	if !ok {
		return fmt.Errorf("unexpected model type %T", final)
	}
	if !fm.Executed() {
		fmt.Println("Aborted")
		return nil
	}

	signaled, failed := fm.Counts()
	fmt.Printf("Sent %s: %d signaled, %d failed\n", sig.Name, signaled, failed)
	if failed > 0 || unmatched > 0 {
		return fmt.Errorf("%d delivery failure(s), %d name(s) unmatched", failed, unmatched)
	}
	return nil
}
