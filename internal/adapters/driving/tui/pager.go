// Package tui provides the interactive preview pager, the terminal
// counterpart of piping preview output through less.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")).
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086")).
			Padding(0, 1)
)

// model is the pager state: a viewport over pre-rendered content.
type model struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

// Page displays content in a scrollable full-screen pager and blocks
// until the user quits.
func Page(title, content string) error {
	p := tea.NewProgram(
		model{title: title, content: content},
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// Init initialises the pager.
func (m model) Init() tea.Cmd {
	return nil
}

// Update handles key and resize events.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		headerHeight := lipgloss.Height(m.headerView())
		footerHeight := lipgloss.Height(m.footerView())
		contentHeight := msg.Height - headerHeight - footerHeight

		if !m.ready {
			m.viewport = viewport.New(msg.Width, contentHeight)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = contentHeight
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the pager.
func (m model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return m.headerView() + "\n" + m.viewport.View() + "\n" + m.footerView()
}

func (m model) headerView() string {
	return titleStyle.Render(m.title)
}

func (m model) footerView() string {
	percent := fmt.Sprintf("%3.0f%%", m.viewport.ScrollPercent()*100)
	help := "↑/↓ scroll · q quit"
	return footerStyle.Render(strings.TrimSpace(percent + "  " + help))
}
