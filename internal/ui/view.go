package ui

import (
	"fmt"
	"strings"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting || m.executed {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder

	header := fmt.Sprintf("nkill — %d match(es), signal %s", len(m.targets), m.signalName)
	b.WriteString(HeaderStyle().Render(header))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	if m.confirming {
		prompt := fmt.Sprintf("Send %s to %d process(es)? [y/n]", m.signalName, m.SelectedCount())
		b.WriteString(WarnStyle().Render(prompt))
	} else {
		b.WriteString(m.renderFooter())
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderRows() string {
	var b strings.Builder
	for i, target := range m.targets {
		marker := "[ ]"
		if m.selected[i] {
			marker = CheckedStyle().Render("[x]")
		}

		detail := target.Details.Cmdline
		if detail == "" {
			detail = target.Details.Exe
		}
		row := fmt.Sprintf("%s %7d  %-15s %-10s %s",
			marker, target.Details.PID, target.Name, target.Details.User, detail)

		if i == m.cursor {
			b.WriteString(SelectedRowStyle().Render("> " + row))
		} else {
			b.WriteString(RowStyle().Render("  " + row))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderFooter() string {
	bindings := []Keybinding{KeyUp, KeyDown, KeyToggle, KeyToggleAll, KeyConfirm, KeyQuit}
	parts := make([]string, 0, len(bindings))
	for _, k := range bindings {
		label := k.Key
		if label == " " {
			label = "space"
		}
		parts = append(parts,
			FooterKeyStyle().Render(label)+" "+FooterDescStyle().Render(k.Desc))
	}
	return strings.Join(parts, "  ")
}
