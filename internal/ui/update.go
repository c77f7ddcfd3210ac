package ui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		listHeight := msg.Height - chromeHeight
		if listHeight < 1 {
			listHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, listHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = listHeight
		}
		m.syncViewport()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if matchKey(key, KeyQuit, KeyQuitAlt) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.confirming {
		switch {
		case matchKey(key, KeyConfirmYes, KeyConfirm):
			return m.executeKill()
		case matchKey(key, KeyConfirmNo, KeyEsc):
			m.confirming = false
		}
		return m, nil
	}

	switch {
	case matchKey(key, KeyUp, KeyUpAlt):
		if m.cursor > 0 {
			m.cursor--
		}
		m.syncViewport()

	case matchKey(key, KeyDown, KeyDownAlt):
		if m.cursor < len(m.targets)-1 {
			m.cursor++
		}
		m.syncViewport()

	case matchKey(key, KeyToggle):
		m.selected[m.cursor] = !m.selected[m.cursor]
		m.syncViewport()

	case matchKey(key, KeyToggleAll):
		allOn := m.SelectedCount() == len(m.targets)
		for i := range m.targets {
			m.selected[i] = !allOn
		}
		m.syncViewport()

	case matchKey(key, KeyConfirm):
		if m.SelectedCount() > 0 {
			m.confirming = true
		}

	case matchKey(key, KeyEsc):
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// executeKill broadcasts the signal to every selected target and quits.
func (m Model) executeKill() (tea.Model, tea.Cmd) {
	for i, target := range m.targets {
		if !m.selected[i] {
			continue
		}
		if err := m.send(target.Details.PID, m.sig); err != nil {
			m.failed++
		} else {
			m.signaled++
		}
	}
	m.executed = true
	m.confirming = false
	return m, tea.Quit
}

// syncViewport rebuilds the list content and keeps the cursor visible.
func (m *Model) syncViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderRows())
	if m.cursor < m.viewport.YOffset {
		m.viewport.SetYOffset(m.cursor)
	} else if m.cursor >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
}
