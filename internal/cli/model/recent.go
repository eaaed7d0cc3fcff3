// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/hoverpane/internal/application/port"
	"github.com/bnema/hoverpane/internal/cli/styles"
	"github.com/bnema/hoverpane/internal/domain/entity"
	"github.com/bnema/hoverpane/internal/logging"
)

// RecentList is the part of the recency tracker the list needs.
type RecentList interface {
	Recent(ctx context.Context) ([]*entity.RecentEntry, error)
	Forget(ctx context.Context, path string) error
}

// RecentModel browses the recently opened list.
type RecentModel struct {
	table    table.Model
	help     help.Model
	keys     styles.RecentKeyMap
	entries  []*entity.RecentEntry
	loading  bool
	showHelp bool
	status   string
	err      error
	width    int
	height   int

	ctx    context.Context
	recent RecentList
	opener port.ExternalOpener
	theme  *styles.Theme
}

// NewRecentModel creates the recent list model.
func NewRecentModel(ctx context.Context, theme *styles.Theme, recent RecentList, opener port.ExternalOpener) RecentModel {
	return RecentModel{
		help:    styles.NewStyledHelp(theme),
		keys:    styles.DefaultRecentKeyMap(),
		loading: true,
		width:   80,
		height:  24,
		ctx:     ctx,
		recent:  recent,
		opener:  opener,
		theme:   theme,
	}
}

// recentLoadedMsg is sent when the list is loaded.
type recentLoadedMsg struct {
	entries []*entity.RecentEntry
	err     error
}

// recentForgottenMsg is sent when an entry is removed.
type recentForgottenMsg struct {
	path string
	err  error
}

// recentOpenedMsg is sent once the external application was started.
type recentOpenedMsg struct {
	path string
	err  error
}

// Init implements tea.Model.
func (m RecentModel) Init() tea.Cmd {
	return m.load
}

func (m RecentModel) load() tea.Msg {
	entries, err := m.recent.Recent(m.ctx)
	if err != nil {
		logging.FromContext(m.ctx).Error().Err(err).Msg("failed to load recent list")
	}
	return recentLoadedMsg{entries: entries, err: err}
}

func (m RecentModel) forget(path string) tea.Cmd {
	return func() tea.Msg {
		return recentForgottenMsg{path: path, err: m.recent.Forget(m.ctx, path)}
	}
}

func (m RecentModel) open(path string) tea.Cmd {
	return func() tea.Msg {
		return recentOpenedMsg{path: path, err: m.opener.OpenExternal(m.ctx, path)}
	}
}

// Selected returns the entry under the cursor.
func (m RecentModel) Selected() (*entity.RecentEntry, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.entries) {
		return nil, false
	}
	return m.entries[i], true
}

// Update implements tea.Model.
func (m RecentModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateTable()

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case recentLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.entries = msg.entries
		m.updateTable()

	case recentForgottenMsg:
		if msg.err != nil {
			m.status = "Forget failed: " + msg.err.Error()
			return m, nil
		}
		m.status = "Forgot " + msg.path
		return m, m.load

	case recentOpenedMsg:
		if msg.err != nil {
			m.status = "Open failed: " + msg.err.Error()
		} else {
			m.status = "Opened " + msg.path
		}
	}

	return m, nil
}

func (m RecentModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Open):
		if e, ok := m.Selected(); ok && m.opener != nil {
			return m, m.open(e.Path)
		}
		return m, nil
	case key.Matches(msg, m.keys.Forget):
		if e, ok := m.Selected(); ok {
			return m, m.forget(e.Path)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// updateTable rebuilds the table, keeping the cursor in range.
func (m *RecentModel) updateTable() {
	cursor := m.table.Cursor()

	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = styles.RecentRow{
			Title:      e.Title,
			Path:       e.Path,
			Opens:      int(e.OpenCount),
			LastOpened: styles.RelativeTime(e.LastOpened),
		}.ToRow()
	}

	tableHeight := min(len(rows)+1, m.height-8)
	if tableHeight < 3 {
		tableHeight = 3
	}

	m.table = styles.NewStyledTable(m.theme, styles.RecentTableColumns(), rows, m.width-4, tableHeight)
	if len(rows) > 0 {
		m.table.SetCursor(max(0, min(cursor, len(rows)-1)))
	}
}

// View implements tea.Model.
func (m RecentModel) View() string {
	t := m.theme

	if m.loading {
		return t.Box.Render(t.Subtle.Render("Loading recent list..."))
	}
	if m.err != nil {
		return t.Box.Render(t.ErrorStyle.Render("Error: " + m.err.Error()))
	}

	header := lipgloss.JoinHorizontal(
		lipgloss.Top,
		t.Title.Render(styles.IconClock+" Recently opened"),
		" ",
		t.Badge.Render(fmt.Sprintf("%d", len(m.entries))),
	)

	body := m.table.View()
	if len(m.entries) == 0 {
		body = t.Subtle.Render("Nothing opened yet")
	}

	parts := []string{header, "", body}
	if e, ok := m.Selected(); ok {
		parts = append(parts, "", lipgloss.JoinHorizontal(
			lipgloss.Top,
			t.Normal.Render(e.Title),
			" ",
			t.OpenCountBadge(e.OpenCount),
			" ",
			t.TimeBadge(e.LastOpened),
		))
	}
	if m.status != "" {
		parts = append(parts, "", t.Subtle.Render(m.status))
	}
	parts = append(parts, "", m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
