package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/crafttree/crafttree/pkg/graph"
	"github.com/crafttree/crafttree/pkg/tree"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// PathListModel - Interactive derivation path selection
// =============================================================================

// pathRow is the precomputed summary of one derivation path.
type pathRow struct {
	root    string
	recipes int
	stats   tree.TreeStats
	err     error
}

// PathListModel is the bubbletea model for choosing one path of a
// multi-path search response.
type PathListModel struct {
	Title    string
	Rows     []pathRow
	Cursor   int
	Selected int // -1 until a path is chosen
	Height   int
	Offset   int
}

// NewPathListModel summarizes every path of resp for display.
func NewPathListModel(resp graph.Response) PathListModel {
	rows := make([]pathRow, len(resp.Paths))
	for i, p := range resp.Paths {
		rows[i].recipes = len(p.Recipes)
		root, err := tree.FromGraphData(p)
		if err != nil {
			rows[i].err = err
			continue
		}
		rows[i].root = root.Name
		rows[i].stats = tree.Stats(root)
	}
	return PathListModel{
		Title:    resp.Title(),
		Rows:     rows,
		Selected: -1,
		Height:   15,
	}
}

func (m PathListModel) Init() tea.Cmd {
	return nil
}

func (m PathListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Rows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Rows) == 0 || m.Rows[m.Cursor].err != nil {
				return m, nil
			}
			m.Selected = m.Cursor
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 5)
	}
	return m, nil
}

func (m PathListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Derivation Path"))
	if m.Title != "" {
		b.WriteString(StyleDim.Render("  " + m.Title))
	}
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Rows))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		r := m.Rows[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		if r.err != nil {
			rows = append(rows, []string{cursor, strconv.Itoa(i + 1), "—", strconv.Itoa(r.recipes), "—", "—", "invalid"})
			continue
		}
		cyclic := "—"
		if r.stats.Cyclic > 0 {
			cyclic = strconv.Itoa(r.stats.Cyclic)
		}
		rows = append(rows, []string{
			cursor,
			strconv.Itoa(i + 1),
			r.root,
			strconv.Itoa(r.recipes),
			strconv.Itoa(r.stats.Nodes),
			strconv.Itoa(r.stats.Depth),
			cyclic,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "#", "Element", "Recipes", "Nodes", "Depth", "Cyclic").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			idx := m.Offset + row
			if idx >= len(m.Rows) {
				return lipgloss.NewStyle()
			}
			base := lipgloss.NewStyle()
			if m.Rows[idx].err != nil {
				return base.Foreground(colorDim)
			}
			if idx == m.Cursor {
				return base.Foreground(colorGreen).Bold(true)
			}
			if col == 6 && m.Rows[idx].stats.Cyclic > 0 {
				return base.Foreground(colorYellow)
			}
			return base.Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Rows))))

	return b.String()
}
