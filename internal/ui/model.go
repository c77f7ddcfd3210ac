// Package ui implements the interactive picker over matched processes.
package ui

import (
	"syscall"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"nkill/internal/dispatch"
	"nkill/internal/proc"
)

// Reserved lines around the viewport: header, blank, footer, status.
const chromeHeight = 4

// Target is one selectable matched process.
type Target struct {
	Name    string // the target name that matched
	Details proc.Details
}

// Model drives the picker: a scrollable list of matched processes, a
// selection set, and a confirm step before the signal is sent.
type Model struct {
	targets    []Target
	selected   map[int]bool
	cursor     int
	signalName string
	sig        syscall.Signal
	send       dispatch.Sender

	confirming bool
	quitting   bool
	executed   bool
	signaled   int
	failed     int

	viewport viewport.Model
	ready    bool
	width    int
	height   int
}

// NewModel creates a picker over the given targets. Every match starts
// selected; a nil sender means kill(2).
func NewModel(targets []Target, signalName string, sig syscall.Signal, send dispatch.Sender) Model {
	if send == nil {
		send = dispatch.DefaultSender
	}
	selected := make(map[int]bool, len(targets))
	for i := range targets {
		selected[i] = true
	}
	return Model{
		targets:    targets,
		selected:   selected,
		signalName: signalName,
		sig:        sig,
		send:       send,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Executed reports whether the signal was sent before the picker closed.
func (m Model) Executed() bool {
	return m.executed
}

// Counts returns how many deliveries succeeded and failed.
func (m Model) Counts() (signaled, failed int) {
	return m.signaled, m.failed
}

// SelectedCount returns the number of currently selected targets.
func (m Model) SelectedCount() int {
	n := 0
	for _, on := range m.selected {
		if on {
			n++
		}
	}
	return n
}
