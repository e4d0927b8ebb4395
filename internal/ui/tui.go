package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/done-app/donectl/internal/entry"
	"github.com/done-app/donectl/internal/i18n"
	"github.com/done-app/donectl/internal/journal"
	"github.com/done-app/donectl/internal/timeline"
)

// TUIConfig carries the settings the interactive timeline needs.
type TUIConfig struct {
	Language i18n.Language
	Theme    Theme
	MaxWidth int
}

// timelineModel is the interactive main screen: the grouped timeline in a
// viewport with a single-line input at the bottom for appending entries.
type timelineModel struct {
	store *journal.Store
	cfg   TUIConfig

	input     textinput.Model
	vp        viewport.Model
	searching bool
	search    string
	width     int
	height    int
	ready     bool
}

func newTimelineModel(store *journal.Store, cfg TUIConfig) timelineModel {
	ti := textinput.New()
	ti.Placeholder = i18n.T(cfg.Language, "placeholder")
	ti.Focus()
	ti.CharLimit = 0
	return timelineModel{store: store, cfg: cfg, input: ti}
}

func (m timelineModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m timelineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := m.height - 4 // header, input, help
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !m.ready {
			m.vp = viewport.New(m.contentWidth(), vpHeight)
			m.ready = true
		} else {
			m.vp.Width = m.contentWidth()
			m.vp.Height = vpHeight
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.searching || m.search != "" {
				m.searching = false
				m.search = ""
				m.input.SetValue("")
				m.input.Placeholder = i18n.T(m.cfg.Language, "placeholder")
				m.refresh()
				return m, nil
			}
			return m, tea.Quit
		case "ctrl+f":
			m.searching = !m.searching
			m.search = ""
			m.input.SetValue("")
			if m.searching {
				m.input.Placeholder = "/"
			} else {
				m.input.Placeholder = i18n.T(m.cfg.Language, "placeholder")
			}
			m.refresh()
			return m, nil
		case "enter":
			if m.searching {
				return m, nil
			}
			if _, ok := m.store.Add(m.input.Value()); ok {
				m.input.SetValue("")
				m.refresh()
				m.vp.GotoTop()
			}
			return m, nil
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			m.vp, cmd = m.vp.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.searching && m.input.Value() != m.search {
		m.search = m.input.Value()
		m.refresh()
	}
	return m, cmd
}

func (m *timelineModel) contentWidth() int {
	w := m.width
	if m.cfg.MaxWidth > 0 && w > m.cfg.MaxWidth {
		w = m.cfg.MaxWidth
	}
	return w
}

// visibleEntries applies the active search filter to the store snapshot.
func (m *timelineModel) visibleEntries() []entry.Entry {
	entries := m.store.Entries()
	if m.search == "" {
		return entries
	}
	needle := strings.ToLower(m.search)
	var out []entry.Entry
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Content), needle) {
			out = append(out, e)
		}
	}
	return out
}

// refresh re-derives the grouped view; grouping runs on every change, the
// store itself stays unordered.
func (m *timelineModel) refresh() {
	if !m.ready {
		return
	}
	buckets := timeline.Group(m.visibleEntries(), time.Now(), m.cfg.Language)

	var b strings.Builder
	if len(buckets) == 0 {
		key := "noLogs"
		if m.search != "" {
			key = "noSearchResults"
		}
		b.WriteString(m.cfg.Theme.MutedStyle().Render(i18n.T(m.cfg.Language, key)))
		b.WriteString("\n")
		b.WriteString(m.cfg.Theme.MutedStyle().Render(i18n.T(m.cfg.Language, "startTyping")))
	} else {
		for i, bucket := range buckets {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(m.cfg.Theme.HeaderStyle().Render(bucket.Label))
			b.WriteString("\n")
			for _, e := range bucket.Entries {
				b.WriteString("  ")
				b.WriteString(m.cfg.Theme.MutedStyle().Render(i18n.FormatTime(e.CreatedAt, m.cfg.Language)))
				b.WriteString("  ")
				b.WriteString(e.Content)
				b.WriteString("\n")
			}
		}
	}
	m.vp.SetContent(b.String())
}

func (m timelineModel) View() string {
	if !m.ready {
		return ""
	}
	title := lipgloss.NewStyle().Bold(true).Foreground(m.cfg.Theme.Primary).Render("Done.")
	help := m.cfg.Theme.MutedStyle().Render("enter: add  ctrl+f: search  esc: quit")
	return title + "\n" + m.vp.View() + "\n" + m.input.View() + "\n" + help
}

// RunTimeline starts the interactive timeline over the given store.
func RunTimeline(store *journal.Store, cfg TUIConfig) error {
	p := tea.NewProgram(newTimelineModel(store, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
