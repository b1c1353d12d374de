// Package browser provides an interactive viewer over the tone entries a
// generation run would produce, plus the plain table used by `list`.
package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/embedtone/internal/tone"
	"github.com/zjrosen/embedtone/internal/ui/styles"
)

// KeyMap defines the browser key bindings.
type KeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model holds the browser state.
type Model struct {
	entries  []tone.Entry
	keys     KeyMap
	selected int
	height   int // visible rows; 0 means show everything
	offset   int // first visible row
}

// New creates a browser over entries.
func New(entries []tone.Entry) Model {
	return Model{
		entries: entries,
		keys:    DefaultKeyMap(),
	}
}

// Selected returns the currently selected entry.
func (m Model) Selected() tone.Entry {
	if m.selected >= 0 && m.selected < len(m.entries) {
		return m.entries[m.selected]
	}
	return tone.Entry{}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Reserve rows for the box border, title, and help line.
		m.height = msg.Height - 7
		if m.height < 1 {
			m.height = 1
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Down):
			if m.selected < len(m.entries)-1 {
				m.selected++
			}
		case key.Matches(msg, m.keys.Up):
			if m.selected > 0 {
				m.selected--
			}
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
		m.scrollToSelection()
	}
	return m, nil
}

func (m *Model) scrollToSelection() {
	if m.height <= 0 {
		return
	}
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+m.height {
		m.offset = m.selected - m.height + 1
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if len(m.entries) == 0 {
		return styles.MutedStyle.Render("no tones found") + "\n"
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(fmt.Sprintf("Tones (%d)", len(m.entries))))
	b.WriteString("\n")

	last := len(m.entries)
	if m.height > 0 && m.offset+m.height < last {
		last = m.offset + m.height
	}
	for i := m.offset; i < last; i++ {
		e := m.entries[i]
		row := fmt.Sprintf("%3d  %-28s %8d  %s", e.Index, e.Symbol, e.Size, e.URL)
		if i == m.selected {
			b.WriteString(styles.SelectionIndicatorStyle.Render(">") + styles.SelectedStyle.Render(row))
		} else {
			b.WriteString(" " + row)
		}
		b.WriteString("\n")
	}

	b.WriteString(styles.MutedStyle.Render("↑/↓ navigate · q quit"))
	return styles.BoxStyle.Render(b.String()) + "\n"
}

// Table renders the non-interactive listing used by `list` without
// `--interactive`: a lipgloss-styled header row followed by one row per
// entry in scan order.
func Table(entries []tone.Entry) string {
	if len(entries) == 0 {
		return styles.MutedStyle.Render("no tones found") + "\n"
	}

	var b strings.Builder
	header := fmt.Sprintf("%3s  %-28s %8s  %s", "IDX", "SYMBOL", "BYTES", "URL")
	b.WriteString(styles.HeaderStyle.Render(header))
	b.WriteString("\n")
	for _, e := range entries {
		b.WriteString(fmt.Sprintf("%3d  %-28s %8d  %s\n", e.Index, e.Symbol, e.Size, e.URL))
	}
	b.WriteString("\n")
	b.WriteString(styles.MutedStyle.Render(fmt.Sprintf("%d tones, enum sentinel ESP_EMBED_TONE_URL_MAX = %d", len(entries), len(entries))))
	b.WriteString("\n")
	return b.String()
}

var _ tea.Model = Model{}
