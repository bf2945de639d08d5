package search

import (
	"context"
	"log/slog"
	"testing"

	"github.com/blugelabs/bluge"
	"github.com/stretchr/testify/require"

	"feedhub/domain"
)

func openTestIndex(t *testing.T) *Index {
	t.Helper()
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = writer.Close() })
	return NewIndex(writer, slog.Default())
}

func TestIndex_Search(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	index := openTestIndex(t)

	alice := domain.NewIdentity("alice", "d1")
	bob := domain.NewIdentity("bob", "d1")
	req.NoError(index.IndexMessage(domain.Message{ID: 1, Owner: alice, Text: "gophers at the beach"}))
	req.NoError(index.IndexMessage(domain.Message{ID: 2, Owner: alice, Text: "rainy monday"}))
	req.NoError(index.IndexMessage(domain.Message{ID: 3, Owner: bob, Text: "beach volleyball"}))

	t.Run("should match message text", func(t *testing.T) {
		hits, err := index.Search(ctx, "beach", "", 10)
		req.NoError(err)
		req.Len(hits, 2)
	})

	t.Run("should narrow to one owner", func(t *testing.T) {
		hits, err := index.Search(ctx, "beach", "alice", 10)
		req.NoError(err)
		req.Len(hits, 1)
		req.Equal(Hit{Owner: "alice", ID: 1}, hits[0])
	})

	t.Run("should cap results at the limit", func(t *testing.T) {
		hits, err := index.Search(ctx, "beach", "", 1)
		req.NoError(err)
		req.Len(hits, 1)
	})

	t.Run("should find nothing for absent terms", func(t *testing.T) {
		hits, err := index.Search(ctx, "snowstorm", "", 10)
		req.NoError(err)
		req.Empty(hits)
	})
}

func TestIndex_RemoveMessage(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	index := openTestIndex(t)

	alice := domain.NewIdentity("alice", "d1")
	req.NoError(index.IndexMessage(domain.Message{ID: 1, Owner: alice, Text: "ephemeral thought"}))
	req.NoError(index.RemoveMessage(alice, 1))

	hits, err := index.Search(ctx, "ephemeral", "", 10)
	req.NoError(err)
	req.Empty(hits)
}

func TestIndex_Reindex(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	index := openTestIndex(t)

	alice := domain.NewIdentity("alice", "d1")
	req.NoError(index.IndexMessage(domain.Message{ID: 1, Owner: alice, Text: "first draft"}))
	req.NoError(index.IndexMessage(domain.Message{ID: 1, Owner: alice, Text: "final version"}))

	hits, err := index.Search(ctx, "draft", "", 10)
	req.NoError(err)
	req.Empty(hits)

	hits, err = index.Search(ctx, "final", "", 10)
	req.NoError(err)
	req.Len(hits, 1)
}
