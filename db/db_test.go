package db_test

import (
	"testing"
	"time"

	"github.com/dasdy/spookydraw/db"
	"github.com/dasdy/spookydraw/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pixel = "data:image/png;base64,iVBORw0KGgo="

func newMemoryStorage(t *testing.T) *db.SQLiteStorage {
	t.Helper()

	storage, err := db.NewStorageFromPath(":memory:")
	require.NoError(t, err)

	t.Cleanup(storage.Close)

	return storage
}

func TestToolEvents(t *testing.T) {
	t.Run("empty storage has no usage", func(t *testing.T) {
		storage := newMemoryStorage(t)

		usage, err := storage.GatherToolUsage()

		require.NoError(t, err)
		assert.Empty(t, usage)
	})

	t.Run("should insert and gather correctly", func(t *testing.T) {
		storage := newMemoryStorage(t)
		start := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

		tools := []model.Tool{
			model.ToolBrush, model.ToolGhost, model.ToolBrush,
			model.ToolFill, model.ToolBrush, model.ToolGhost,
		}
		for i, tool := range tools {
			err := storage.StoreToolEvent(&model.ToolEvent{Tool: tool, Timestamp: start.Add(time.Duration(i) * time.Second)})
			require.NoError(t, err)
		}

		usage, err := storage.GatherToolUsage()

		require.NoError(t, err)
		assert.Equal(t, []model.ToolUsage{
			{Tool: model.ToolBrush, Count: 3},
			{Tool: model.ToolGhost, Count: 2},
			{Tool: model.ToolFill, Count: 1},
		}, usage)

		iterator, err := storage.ToolEventIterator()
		require.NoError(t, err)

		replayed := make([]model.Tool, 0)
		for event := range iterator {
			replayed = append(replayed, event.Tool)
		}

		assert.Equal(t, tools, replayed)
	})

	t.Run("zero timestamp defaults to now", func(t *testing.T) {
		storage := newMemoryStorage(t)

		require.NoError(t, storage.StoreToolEvent(&model.ToolEvent{Tool: model.ToolSpray}))

		iterator, err := storage.ToolEventIterator()
		require.NoError(t, err)

		for event := range iterator {
			assert.WithinDuration(t, time.Now(), event.Timestamp, time.Minute)
		}
	})
}

func TestDrawings(t *testing.T) {
	storage := newMemoryStorage(t)
	now := time.Now().UTC()

	require.NoError(t, storage.SaveUser(&model.User{ID: "u1", Username: "casper"}))
	require.NoError(t, storage.SaveUser(&model.User{ID: "u2", Username: "jack"}))

	drawings := []model.Drawing{
		{ID: "d1", Title: "Ghost", AuthorID: "u1", AuthorName: "casper", ImageData: pixel, Likes: 3, Views: 10, IsPublic: true, CreatedAt: now.Add(-2 * time.Hour), Tags: []string{"boo"}},
		{ID: "d2", Title: "Pumpkin", AuthorID: "u2", AuthorName: "jack", ImageData: pixel, Likes: 7, Views: 20, IsPublic: true, CreatedAt: now.Add(-1 * time.Hour)},
		{ID: "d3", Title: "Secret", AuthorID: "u1", AuthorName: "casper", ImageData: pixel, Likes: 100, Views: 1, IsPublic: false, CreatedAt: now},
	}
	for i := range drawings {
		require.NoError(t, storage.SaveDrawing(&drawings[i]))
	}

	t.Run("lists public drawings newest first", func(t *testing.T) {
		items, err := storage.ListDrawings(true, 0)

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "d2", items[0].ID)
		assert.Equal(t, "d1", items[1].ID)
		assert.Equal(t, []string{"boo"}, items[1].Tags)
		assert.Equal(t, []string{}, items[0].Tags)
	})

	t.Run("lists all drawings with limit", func(t *testing.T) {
		items, err := storage.ListDrawings(false, 1)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "d3", items[0].ID)
	})

	t.Run("top drawings ignore private ones", func(t *testing.T) {
		items, err := storage.TopDrawings(5)

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "d2", items[0].ID)
	})

	t.Run("counts drawings by author", func(t *testing.T) {
		count, err := storage.CountDrawingsByAuthor("u1")

		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("gathers stats", func(t *testing.T) {
		stats, err := storage.GatherStats()

		require.NoError(t, err)
		assert.Equal(t, model.Stats{TotalDrawings: 3, TotalUsers: 2, TotalLikes: 110, TotalViews: 31}, stats)
	})

	t.Run("saving again updates the drawing", func(t *testing.T) {
		updated := drawings[0]
		updated.Likes = 4

		require.NoError(t, storage.SaveDrawing(&updated))

		got, err := storage.GetDrawing("d1")
		require.NoError(t, err)
		assert.Equal(t, 4, got.Likes)
	})

	t.Run("missing drawing", func(t *testing.T) {
		_, err := storage.GetDrawing("nope")

		require.ErrorIs(t, err, db.ErrNotFound)
	})

	t.Run("daily drawings", func(t *testing.T) {
		days, err := storage.DailyDrawings(7)

		require.NoError(t, err)

		total := 0
		for _, d := range days {
			total += d.Count
		}

		assert.Equal(t, 3, total)
	})
}
