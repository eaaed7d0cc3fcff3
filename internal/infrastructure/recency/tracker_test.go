package recency_test

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/hoverpane/internal/domain/entity"
	"github.com/bnema/hoverpane/internal/domain/repository/mocks"
	"github.com/bnema/hoverpane/internal/infrastructure/recency"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTracker_RecordsAndPrunes(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockRecentRepository(t)
	repo.EXPECT().Record(mock.Anything, "a.md", "A").Return(nil).Once()
	repo.EXPECT().Prune(mock.Anything, 20).Return(nil).Once()

	tracker := recency.NewTracker(repo, 20)
	recorded, err := tracker.Record(ctx, "a.md", "A")
	require.NoError(t, err)
	assert.True(t, recorded)
}

func TestTracker_IgnoreSuppressesUntilReleased(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockRecentRepository(t)
	tracker := recency.NewTracker(repo, 0)

	release := tracker.Ignore("a.md")
	recorded, err := tracker.Record(ctx, "a.md", "")
	require.NoError(t, err)
	assert.False(t, recorded)
	assert.True(t, tracker.Ignored("a.md"))
	assert.False(t, tracker.Ignored("b.md"))

	release()
	release()
	assert.False(t, tracker.Ignored("a.md"))

	repo.EXPECT().Record(mock.Anything, "a.md", "").Return(nil).Once()
	recorded, err = tracker.Record(ctx, "a.md", "")
	require.NoError(t, err)
	assert.True(t, recorded)
}

func TestTracker_IgnoresNest(t *testing.T) {
	tracker := recency.NewTracker(mocks.NewMockRecentRepository(t), 0)

	first := tracker.Ignore("a.md")
	second := tracker.Ignore("a.md")
	first()
	first()
	assert.True(t, tracker.Ignored("a.md"), "double release of one handle must not drop the other")
	second()
	assert.False(t, tracker.Ignored("a.md"))
}

func TestTracker_RecordError(t *testing.T) {
	repo := mocks.NewMockRecentRepository(t)
	repo.EXPECT().Record(mock.Anything, "a.md", "").Return(errors.New("disk full")).Once()

	recorded, err := recency.NewTracker(repo, 10).Record(context.Background(), "a.md", "")
	require.Error(t, err)
	assert.False(t, recorded)
}

func TestTracker_RecentAndForget(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockRecentRepository(t)
	want := []*entity.RecentEntry{{Path: "a.md"}}
	repo.EXPECT().Recent(mock.Anything, 50).Return(want, nil).Once()
	repo.EXPECT().Delete(mock.Anything, "a.md").Return(nil).Once()

	tracker := recency.NewTracker(repo, 0)
	got, err := tracker.Recent(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	require.NoError(t, tracker.Forget(ctx, "a.md"))
}
