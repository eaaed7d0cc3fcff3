package model

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/bnema/hoverpane/internal/application/port/mocks"
	"github.com/bnema/hoverpane/internal/cli/styles"
	"github.com/bnema/hoverpane/internal/domain/entity"
	repomocks "github.com/bnema/hoverpane/internal/domain/repository/mocks"
	"github.com/bnema/hoverpane/internal/infrastructure/recency"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func testEntries() []*entity.RecentEntry {
	now := time.Now()
	return []*entity.RecentEntry{
		{ID: 1, Path: "a.md", Title: "a", OpenCount: 3, LastOpened: now},
		{ID: 2, Path: "notes/b.md", Title: "b", OpenCount: 1, LastOpened: now.Add(-time.Hour)},
	}
}

func newLoadedModel(t *testing.T) (RecentModel, *repomocks.MockRecentRepository, *portmocks.MockExternalOpener) {
	t.Helper()
	repo := repomocks.NewMockRecentRepository(t)
	opener := portmocks.NewMockExternalOpener(t)
	tracker := recency.NewTracker(repo, 10)

	repo.EXPECT().Recent(mock.Anything, 10).Return(testEntries(), nil).Once()

	m := NewRecentModel(context.Background(), styles.NewTheme(), tracker, opener)
	updated, _ := m.Update(m.Init()())
	return updated.(RecentModel), repo, opener
}

func TestRecentModel_LoadsEntries(t *testing.T) {
	m, _, _ := newLoadedModel(t)

	view := m.View()
	assert.Contains(t, view, "Recently opened")
	assert.Contains(t, view, "a.md")
	assert.Contains(t, view, "notes/b.md")
	assert.Contains(t, view, "3 opens")

	e, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "a.md", e.Path)
}

func TestRecentModel_LoadError(t *testing.T) {
	repo := repomocks.NewMockRecentRepository(t)
	repo.EXPECT().Recent(mock.Anything, 50).Return(nil, errors.New("db gone"))

	m := NewRecentModel(context.Background(), styles.NewTheme(), recency.NewTracker(repo, 0), nil)
	updated, _ := m.Update(m.Init()())

	assert.Contains(t, updated.View(), "db gone")
}

func TestRecentModel_CursorMoves(t *testing.T) {
	m, _, _ := newLoadedModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	e, ok := updated.(RecentModel).Selected()
	require.True(t, ok)
	assert.Equal(t, "notes/b.md", e.Path)
}

func TestRecentModel_OpenSelected(t *testing.T) {
	m, _, opener := newLoadedModel(t)
	opener.EXPECT().OpenExternal(mock.Anything, "a.md").Return(nil).Once()

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	updated, _ = updated.Update(cmd())

	assert.Contains(t, updated.View(), "Opened a.md")
}

func TestRecentModel_ForgetReloads(t *testing.T) {
	m, repo, _ := newLoadedModel(t)
	repo.EXPECT().Delete(mock.Anything, "a.md").Return(nil).Once()
	repo.EXPECT().Recent(mock.Anything, 10).Return(testEntries()[1:], nil).Once()

	updated, cmd := m.Update(runeKey('d'))
	require.NotNil(t, cmd)
	updated, reload := updated.Update(cmd())
	require.NotNil(t, reload)
	assert.Contains(t, updated.View(), "Forgot a.md")

	updated, _ = updated.Update(reload())
	rm := updated.(RecentModel)
	require.Len(t, rm.entries, 1)
	e, ok := rm.Selected()
	require.True(t, ok)
	assert.Equal(t, "notes/b.md", e.Path)
}

func TestRecentModel_ForgetError(t *testing.T) {
	m, repo, _ := newLoadedModel(t)
	repo.EXPECT().Delete(mock.Anything, "a.md").Return(errors.New("locked")).Once()

	updated, cmd := m.Update(runeKey('d'))
	updated, reload := updated.Update(cmd())

	assert.Nil(t, reload)
	assert.Contains(t, updated.View(), "Forget failed: locked")
}

func TestRecentModel_Quit(t *testing.T) {
	m, _, _ := newLoadedModel(t)

	_, cmd := m.Update(runeKey('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRecentModel_EmptyList(t *testing.T) {
	repo := repomocks.NewMockRecentRepository(t)
	repo.EXPECT().Recent(mock.Anything, 5).Return(nil, nil)

	m := NewRecentModel(context.Background(), styles.NewTheme(), recency.NewTracker(repo, 5), nil)
	updated, _ := m.Update(m.Init()())

	assert.Contains(t, updated.View(), "Nothing opened yet")
	_, ok := updated.(RecentModel).Selected()
	assert.False(t, ok)

	// Enter and forget do nothing without a selection.
	_, cmd := updated.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	_, cmd = updated.Update(runeKey('d'))
	assert.Nil(t, cmd)
}
