package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gqlhound/gqlhound/internal/exporter"
	"github.com/gqlhound/gqlhound/utils"
)

type Model struct {
	list       list.Model
	findings   []exporter.Finding
	selected   int
	showDetail bool
	width      int
	height     int
	statusMsg  string
}

func NewModel(findings []exporter.Finding) Model {
	items := make([]list.Item, len(findings))
	for i, f := range findings {
		items[i] = item{
			title:       fmt.Sprintf("Operation #%d · %s", i+1, utils.Truncate(f.Op.Signature(), 60)),
			description: utils.Truncate(f.Source, 72),
			index:       i,
		}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedItemStyle
	delegate.Styles.SelectedDesc = selectedDescStyle

	l := list.New(items, delegate, 0, 0)
	l.Title = fmt.Sprintf("🐕 gqlhound — %d GraphQL operation(s)", len(findings))
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Enter, keys.Copy, keys.SaveAll, keys.Quit}
	}

	return Model{
		list:     l,
		findings: findings,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}
