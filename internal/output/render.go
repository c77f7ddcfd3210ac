// Package output renders dispatch results for humans and machines.
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"nkill/internal/dispatch"
	"nkill/internal/proc"
)

// Report palette, matching the industrial theme accents.
var (
	matchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#3fb950"))
	missStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f85149"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#d29922"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7d8590"))
)

func joinPIDs(pids []int32) string {
	parts := make([]string, len(pids))
	for i, pid := range pids {
		parts[i] = strconv.Itoa(int(pid))
	}
	return strings.Join(parts, " ")
}

func render(w io.Writer, style lipgloss.Style, styled bool, line string) {
	if styled {
		line = style.Render(line)
	}
	fmt.Fprintln(w, line)
}

// RenderText writes the per-name dispatch report. One line per name,
// plus one line per rejected delivery.
func RenderText(w io.Writer, signal string, outcomes []dispatch.Outcome, styled bool) {
	for _, out := range outcomes {
		if !out.Matched() {
			render(w, missStyle, styled, fmt.Sprintf("%s: no process found", out.Name))
			continue
		}

		line := fmt.Sprintf("%s: sent %s to %d of %d (%s)",
			out.Name, signal, out.Delivered(), len(out.PIDs), joinPIDs(out.PIDs))
		render(w, matchStyle, styled, line)

		for _, f := range out.Failures {
			render(w, warnStyle, styled, fmt.Sprintf("  PID %d: %v", f.PID, f.Err))
		}
	}
}

// RenderMatches writes the dry-run listing: every matched process with
// its display details, no signal sent.
func RenderMatches(w io.Writer, name string, details []proc.Details, styled bool) {
	if len(details) == 0 {
		render(w, missStyle, styled, fmt.Sprintf("%s: no process found", name))
		return
	}

	render(w, matchStyle, styled, fmt.Sprintf("%s: %d match(es)", name, len(details)))
	for _, d := range details {
		cmdline := d.Cmdline
		if cmdline == "" {
			cmdline = d.Exe
		}
		render(w, mutedStyle, styled, fmt.Sprintf("  %7d  %-10s %s", d.PID, d.User, cmdline))
	}
}
