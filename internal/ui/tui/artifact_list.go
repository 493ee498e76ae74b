package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/klauern/ctxaudit/internal/audit"
)

// artifactListKeyMap defines the key bindings for the artifact browser.
type artifactListKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Filter   key.Binding
	ClearFlt key.Binding
	Quit     key.Binding
}

func defaultArtifactListKeyMap() artifactListKeyMap {
	return artifactListKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		ClearFlt: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filter"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

const (
	artifactListKindWidth  = 16
	artifactListPathWidth  = 44
	artifactListSizeWidth  = 10
	artifactListFlagsWidth = 8
	artifactListDetailRows = 6
)

// ArtifactListModel is the BubbleTea model for browsing scan findings.
type ArtifactListModel struct {
	table     table.Model
	records   []audit.Record
	filtered  []audit.Record
	keys      artifactListKeyMap
	filter    string
	filtering bool
	width     int
	quitting  bool
}

// NewArtifactListModel creates a browser over the given records. Records
// arrive already sorted by the report builder.
func NewArtifactListModel(records []audit.Record) ArtifactListModel {
	m := ArtifactListModel{
		records:  records,
		filtered: records,
		keys:     defaultArtifactListKeyMap(),
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Kind", Width: artifactListKindWidth},
			{Title: "Path", Width: artifactListPathWidth},
			{Title: "Size", Width: artifactListSizeWidth},
			{Title: "Flags", Width: artifactListFlagsWidth},
		}),
		table.WithRows(m.recordsToRows(records)),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	m.table = t
	return m
}

func (m ArtifactListModel) recordsToRows(records []audit.Record) []table.Row {
	rows := make([]table.Row, len(records))
	for i, r := range records {
		rows[i] = table.Row{
			truncate(r.Kind.Label(), artifactListKindWidth),
			truncate(r.Path, artifactListPathWidth),
			fmt.Sprintf("%d B", r.SizeBytes),
			fmt.Sprintf("%d", len(r.Flags)),
		}
	}
	return rows
}

func truncate(value string, width int) string {
	if len(value) <= width {
		return value
	}
	if width <= 3 {
		return value[:width]
	}
	return value[:width-3] + "..."
}

// Init implements tea.Model.
func (m ArtifactListModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ArtifactListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		newHeight := max(msg.Height-8-artifactListDetailRows, 5)
		m.table.SetHeight(newHeight)

	case tea.KeyMsg:
		if m.filtering {
			switch msg.String() {
			case "enter":
				m.filtering = false
				return m, nil
			case "esc":
				m.filter = ""
				m.filtering = false
				m.applyFilter()
				return m, nil
			case "backspace":
				if len(m.filter) > 0 {
					m.filter = m.filter[:len(m.filter)-1]
					m.applyFilter()
				}
				return m, nil
			default:
				if len(msg.String()) == 1 {
					m.filter += msg.String()
					m.applyFilter()
				}
				return m, nil
			}
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Filter):
			m.filtering = true
			return m, nil

		case key.Matches(msg, m.keys.ClearFlt):
			m.filter = ""
			m.applyFilter()
			return m, nil
		}
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ArtifactListModel) applyFilter() {
	if m.filter == "" {
		m.filtered = m.records
	} else {
		var filtered []audit.Record
		lowerFilter := strings.ToLower(m.filter)
		for _, r := range m.records {
			if strings.Contains(strings.ToLower(r.Path), lowerFilter) ||
				strings.Contains(strings.ToLower(r.Kind.Label()), lowerFilter) {
				filtered = append(filtered, r)
			}
		}
		m.filtered = filtered
	}
	m.table.SetRows(m.recordsToRows(m.filtered))
}

func (m ArtifactListModel) selectedRecord() audit.Record {
	cursor := m.table.Cursor()
	if cursor >= 0 && cursor < len(m.filtered) {
		return m.filtered[cursor]
	}
	return audit.Record{}
}

// View implements tea.Model.
func (m ArtifactListModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(Styles.Title.Render("Context Artifacts"))
	b.WriteString("\n\n")

	if m.filter != "" || m.filtering {
		filterVal := m.filter
		if m.filtering {
			filterVal += "█"
		}
		b.WriteString("Filter: " + filterVal + "\n\n")
	}

	b.WriteString(m.table.View())
	b.WriteString("\n")
	b.WriteString(m.renderDetailPanel())
	b.WriteString("\n")

	status := fmt.Sprintf("%d artifact(s)", len(m.filtered))
	if m.filter != "" {
		status = fmt.Sprintf("%d of %d artifact(s) (filtered)", len(m.filtered), len(m.records))
	}
	b.WriteString(Styles.Status.Render(status))
	b.WriteString("\n")
	b.WriteString(Styles.Help.Render("↑/↓ navigate • / filter • esc clear • q quit"))

	return b.String()
}

func (m ArtifactListModel) renderDetailPanel() string {
	width := m.width
	if width <= 0 {
		width = artifactListKindWidth + artifactListPathWidth + artifactListSizeWidth + artifactListFlagsWidth + 8
	}

	r := m.selectedRecord()
	var lines []string
	if r.Path == "" {
		lines = append(lines, "No artifact selected.")
	} else {
		lines = append(lines, fmt.Sprintf("%s  %d bytes, %d lines", r.Path, r.SizeBytes, r.LineCount))
		if r.LastModified != nil {
			lines = append(lines, fmt.Sprintf("last modified %s (%d days ago)",
				r.LastModified.Format("2006-01-02"), r.AgeDays))
		}
		for _, f := range r.Flags {
			if f.Severity == audit.SeverityWarning {
				lines = append(lines, Styles.Warning.Render("⚠ "+f.Message))
			} else {
				lines = append(lines, Styles.Note.Render("· "+f.Message))
			}
		}
		if len(r.Flags) == 0 {
			lines = append(lines, Styles.Note.Render("no findings"))
		}
	}
	if len(lines) > artifactListDetailRows {
		lines = lines[:artifactListDetailRows]
	}

	return Styles.Detail.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// RunArtifactList runs the interactive artifact browser.
func RunArtifactList(records []audit.Record) error {
	if len(records) == 0 {
		return nil
	}

	model := NewArtifactListModel(records)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
