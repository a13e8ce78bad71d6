// Package tui provides the Bubble Tea frequency browser.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/charfreq/internal/freq"
	"github.com/verte-zerg/charfreq/internal/model"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Model implements the Bubble Tea frequency browser.
type Model struct {
	counts map[rune]int
	key    model.SortKey

	freqTable table.Model

	width  int
	height int
}

// NewModel constructs a browser model over the counted distribution.
func NewModel(counts map[rune]int, key model.SortKey) *Model {
	m := &Model{
		counts: counts,
		key:    key,
	}
	m.freqTable = table.New(
		table.WithColumns(buildColumns()),
		table.WithFocused(true),
		table.WithStyles(freqTableStyles()),
	)
	m.refreshRows()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		switch {
		case msg.Type == tea.KeyCtrlC, msg.String() == "q":
			return m, tea.Quit
		case msg.String() == "s":
			m.toggleSort()
			return m, nil
		default:
			var cmd tea.Cmd
			m.freqTable, cmd = m.freqTable.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	header := titleStyle.Render("charfreq") + " " +
		headerStyle.Render(fmt.Sprintf("(%d distinct, sorted by %s)", len(m.counts), m.key))
	footer := footerStyle.Render("s toggle sort · q quit")
	return header + "\n" + m.freqTable.View() + "\n" + footer
}

func (m *Model) toggleSort() {
	if m.key == model.SortByChar {
		m.key = model.SortByCount
	} else {
		m.key = model.SortByChar
	}
	m.refreshRows()
}

func (m *Model) refreshRows() {
	entries := freq.Order(m.counts, m.key)
	m.freqTable.SetRows(buildRows(entries, freq.Total(entries)))
	m.freqTable.GotoTop()
}

func (m *Model) updateLayout() {
	// One line each for the header and the footer.
	bodyHeight := m.height - 2
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	m.freqTable.SetWidth(m.width)
	m.freqTable.SetHeight(bodyHeight)
}

func buildColumns() []table.Column {
	return []table.Column{
		{Title: "Char", Width: 5},
		{Title: "Count", Width: 8},
		{Title: "Percent", Width: 8},
	}
}

func buildRows(entries []freq.Entry, total int) []table.Row {
	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		percent := 0.0
		if total > 0 {
			percent = float64(e.Count) / float64(total) * 100
		}
		rows = append(rows, table.Row{
			string(e.Char),
			fmt.Sprintf("%d", e.Count),
			fmt.Sprintf("%.2f%%", percent),
		})
	}
	return rows
}

func freqTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}
