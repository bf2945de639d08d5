//go:generate go run go.uber.org/mock/mockgen -source=index.go -destination=../mocks/mock_search_index.go -package=mocks

// Package search maintains a full-text index over message text so a
// user can find posts in her own or anyone's local feed. The index is
// derivative: the feed store stays the source of truth and hits are
// re-read from it, which also filters out tombstoned entries.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/blugelabs/bluge"

	"feedhub/domain"
)

type IIndex interface {
	IndexMessage(msg domain.Message) error
	RemoveMessage(owner domain.UserIdentity, id uint64) error
	Search(ctx context.Context, terms, owner string, limit int) ([]Hit, error)
}

// Hit points back into a feed; the caller resolves it to a message.
type Hit struct {
	Owner string
	ID    uint64
}

type Index struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewIndex(writer *bluge.Writer, log *slog.Logger) *Index {
	return &Index{writer: writer, log: log}
}

func docID(owner string, id uint64) string {
	return fmt.Sprintf("%s:%d", owner, id)
}

func (i *Index) IndexMessage(msg domain.Message) error {
	doc := bluge.NewDocument(docID(msg.Owner.Name, msg.ID))
	doc.AddField(bluge.NewTextField("text", msg.Text))
	doc.AddField(bluge.NewKeywordField("owner", msg.Owner.Name))
	return i.writer.Update(doc.ID(), doc)
}

func (i *Index) RemoveMessage(owner domain.UserIdentity, id uint64) error {
	return i.writer.Delete(bluge.Identifier(docID(owner.Name, id)))
}

// Search runs a match query over message text, optionally narrowed to
// one owner, and returns up to limit hits, best first.
func (i *Index) Search(ctx context.Context, terms, owner string, limit int) ([]Hit, error) {
	reader, err := i.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	query := bluge.NewBooleanQuery().
		AddMust(bluge.NewMatchQuery(terms).SetField("text"))
	if owner != "" {
		query.AddMust(bluge.NewTermQuery(owner).SetField("owner"))
	}

	iter, err := reader.Search(ctx, bluge.NewTopNSearch(limit, query))
	if err != nil {
		return nil, err
	}

	var hits []Hit
	match, err := iter.Next()
	for err == nil && match != nil {
		visitErr := match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "_id" {
				if hit, ok := parseDocID(string(value)); ok {
					hits = append(hits, hit)
				} else {
					i.log.Warn("Skipping malformed index document id", "id", string(value))
				}
			}
			return true
		})
		if visitErr != nil {
			return nil, visitErr
		}
		match, err = iter.Next()
	}
	if err != nil {
		return nil, err
	}
	return hits, nil
}

func parseDocID(raw string) (Hit, bool) {
	owner, idPart, found := strings.Cut(raw, ":")
	if !found {
		return Hit{}, false
	}
	id, err := strconv.ParseUint(idPart, 10, 64)
	if err != nil {
		return Hit{}, false
	}
	return Hit{Owner: owner, ID: id}, true
}
