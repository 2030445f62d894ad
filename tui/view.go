package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle         = lipgloss.NewStyle().MarginLeft(2).Bold(true).Foreground(lipgloss.Color("#FF06B7"))
	selectedItemStyle  = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("#00BFFF"))
	selectedDescStyle  = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("#666666"))
	operationStyle     = lipgloss.NewStyle().Margin(1).Padding(1).Border(lipgloss.RoundedBorder()).Background(lipgloss.Color("#1a1a1a"))
	sourceStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#2979FF"))
	helpStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
	statusMessageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")).Bold(true)
)

type item struct {
	title       string
	description string
	index       int
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.description }
func (i item) FilterValue() string { return i.title + i.description }

func (m Model) View() string {
	if m.showDetail {
		return m.renderDetailView()
	}
	return m.renderListView()
}

func (m Model) renderListView() string {
	var b strings.Builder
	b.WriteString(m.list.View())
	if m.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(statusMessageStyle.Render("✓ " + m.statusMsg))
	}
	return b.String()
}

func (m Model) renderDetailView() string {
	f := m.findings[m.selected]

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Operation #%d", m.selected+1)))
	b.WriteString("\n")
	b.WriteString(sourceStyle.Render("  " + f.Source))
	b.WriteString("\n")
	b.WriteString(operationStyle.Render(fenceBody(f.Op.Rendered)))
	b.WriteString("\n\n")

	if len(f.Op.Variables) > 0 {
		b.WriteString(lipgloss.NewStyle().Bold(true).Render("Variables:"))
		b.WriteString("\n")
		for _, v := range f.Op.Variables {
			b.WriteString(fmt.Sprintf("  $%s: %s\n", v.Name, v.Type))
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("c: copy • s: save • q: back • ctrl+c: quit"))

	if m.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(statusMessageStyle.Render(m.statusMsg))
	}

	return b.String()
}

// fenceBody peels the graphql fence markers off a rendered operation for
// bare display.
func fenceBody(rendered string) string {
	body := strings.TrimPrefix(rendered, "```graphql\n")
	return strings.TrimSuffix(body, "\n```")
}
