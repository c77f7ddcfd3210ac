package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"nkill/internal/config"
	"nkill/internal/dispatch"
	"nkill/internal/output"
	"nkill/internal/proc"
	"nkill/internal/signals"
)

// maxNames caps target names per invocation at the native int bit width.
const maxNames = strconv.IntSize

var (
	signalName  string
	listSignals bool
	dryRun      bool
	interactive bool
	jsonOutput  bool
)

var rootCmd = &cobra.Command{
	Use:   "nkill [flags] NAME...",
	Short: "Send a signal to processes by command name",
	Long: `nkill scans the process table for processes whose command name equals
NAME exactly and sends each match a signal (TERM unless --signal is given).

Examples:
  nkill myserver
  nkill -s KILL myserver worker
  nkill -n myserver    # dry run: list matches, send nothing
  nkill -i myserver    # pick matches interactively
  nkill -l             # list known signal names`,
	Version: Version,
	RunE:    runRoot,
}

func init() {
	rootCmd.Flags().StringVarP(&signalName, "signal", "s", "", "Signal to send, by name with or without SIG prefix (default TERM)")
	rootCmd.Flags().BoolVarP(&listSignals, "list-signals", "l", false, "List known signal names and exit")
	rootCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Print matching processes without signaling them")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Pick matched processes interactively before signaling")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for scripting/agent consumption)")
}

func runRoot(cmd *cobra.Command, args []string) error {
	if listSignals {
		fmt.Println(signals.List())
		return nil
	}
	if len(args) == 0 {
		return fmt.Errorf("no process name given")
	}
	if len(args) > maxNames {
		return fmt.Errorf("too many names: %d (limit %d)", len(args), maxNames)
	}

	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: using default settings: %v\n", err)
	}

	requested := signalName
	if requested == "" {
		requested = settings.DefaultSignal
	}
	sig, ok := signals.Resolve(requested)
	if !ok {
		return fmt.Errorf("unknown signal: %s", requested)
	}

	finder := proc.New(settings.Workers)
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	styled := settings.Color && isTTY
	ctx := context.Background()

	if dryRun {
		return runDryRun(ctx, finder, args, styled)
	}
	if interactive {
		if !isTTY {
			return fmt.Errorf("interactive mode requires a terminal")
		}
		return runInteractive(ctx, finder, args, sig)
	}

	outcomes, err := dispatch.New(finder, sig, nil).Run(ctx, args)
	if err != nil {
		return fmt.Errorf("failed to scan process table: %w", err)
	}

	if jsonOutput {
		if err := output.RenderJSON(os.Stdout, sig.Name, outcomes); err != nil {
			return fmt.Errorf("failed to render JSON: %w", err)
		}
	} else {
		output.RenderText(os.Stdout, sig.Name, outcomes, styled)
	}

	var unmatched, failures int
	for _, out := range outcomes {
		if !out.Matched() {
			unmatched++
		}
		failures += len(out.Failures)
	}
	if unmatched > 0 {
		return fmt.Errorf("%d of %d name(s) matched no process", unmatched, len(args))
	}
	if failures > 0 {
		return fmt.Errorf("%d delivery failure(s)", failures)
	}
	return nil
}

func runDryRun(ctx context.Context, finder proc.Finder, names []string, styled bool) error {
	unmatched := 0
	for _, name := range names {
		pids, err := finder.Find(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to scan process table: %w", err)
		}
		sort.Slice(pids, func(i, j int) bool { return pids[i] < pids[j] })

		details := make([]proc.Details, 0, len(pids))
		for _, pid := range pids {
			details = append(details, proc.Describe(ctx, pid))
		}
		output.RenderMatches(os.Stdout, name, details, styled)
		if len(pids) == 0 {
			unmatched++
		}
	}
	if unmatched > 0 {
		return fmt.Errorf("%d of %d name(s) matched no process", unmatched, len(names))
	}
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
