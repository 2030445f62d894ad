package tui

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gqlhound/gqlhound/internal/exporter"
)

type statusMsg string

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		if m.showDetail {
			return m.handleDetailKeys(msg)
		}
		return m.handleListKeys(msg)

	case statusMsg:
		m.statusMsg = string(msg)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "enter":
		if i, ok := m.list.SelectedItem().(item); ok {
			m.selected = i.index
			m.showDetail = true
		}
	case "S":
		return m, m.saveAll()
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.showDetail = false
		m.statusMsg = ""
		return m, nil
	case "c":
		clipboard.WriteAll(m.findings[m.selected].Op.Raw)
		return m, func() tea.Msg { return statusMsg("Copied to clipboard!") }
	case "s":
		index := m.selected
		return m, func() tea.Msg {
			filename, err := saveOperation(m.findings[index], index+1)
			if err != nil {
				return statusMsg("Save failed: " + err.Error())
			}
			return statusMsg("Saved to " + filename)
		}
	}
	return m, nil
}

func saveOperation(f exporter.Finding, index int) (string, error) {
	filename := fmt.Sprintf("operation_%03d.graphql", index)
	if err := os.WriteFile(filename, []byte(fenceBody(f.Op.Rendered)+"\n"), 0644); err != nil {
		return "", err
	}
	return filename, nil
}

func (m Model) saveAll() tea.Cmd {
	findings := m.findings
	return func() tea.Msg {
		for i, f := range findings {
			if _, err := saveOperation(f, i+1); err != nil {
				return statusMsg("Save failed: " + err.Error())
			}
		}
		return statusMsg(fmt.Sprintf("Saved %d operation(s)", len(findings)))
	}
}
