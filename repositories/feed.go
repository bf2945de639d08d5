//go:generate go run go.uber.org/mock/mockgen -source=feed.go -destination=../mocks/mock_feed_repository.go -package=mocks
package repositories

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"feedhub/domain"
	"feedhub/errors"
)

// AccountChecker is the narrow slice of the account directory the feed
// store needs: existence is checked on every append, never cached.
type AccountChecker interface {
	Exists(name string) (bool, error)
}

type IFeedRepository interface {
	Append(owner, text string, timestamp int64) (uint64, error)
	Remove(owner string, id uint64) error
	Get(owner string, id uint64) (domain.Message, error)
	ListSince(owner string, since int64) ([]domain.Message, error)
	Destroy(owner string) error
}

type FeedRepository struct {
	db       *badger.DB
	domain   string
	accounts AccountChecker
	locks    *stripedLocks
	log      *slog.Logger
}

func NewFeedRepository(db *badger.DB, domainName string, accounts AccountChecker, log *slog.Logger) *FeedRepository {
	return &FeedRepository{
		db:       db,
		domain:   domainName,
		accounts: accounts,
		locks:    newStripedLocks(),
		log:      log,
	}
}

// feedEntry is the stored form of a message. A deleted entry keeps its
// key so the id is never reused; reads skip it.
type feedEntry struct {
	Message domain.Message `json:"message"`
	Deleted bool           `json:"deleted"`
}

// Keys are formatted as "feed:{owner}:{id_padded}" so a prefix scan per
// owner yields entries in id order; 20-digit zero padding keeps the
// lexicographic and numeric orders aligned.
func feedKey(owner string, id uint64) []byte {
	return []byte(fmt.Sprintf("feed:%s:%020d", owner, id))
}

func feedPrefix(owner string) []byte {
	return []byte(fmt.Sprintf("feed:%s:", owner))
}

func seqKey(owner string) []byte {
	return []byte("feedseq:" + owner)
}

// Append allocates the owner's next id, starting at 1, and stores the
// entry. Allocation runs under the owner's lock so concurrent posts by
// the same user serialize while other users' feeds stay untouched.
func (r *FeedRepository) Append(owner, text string, timestamp int64) (uint64, error) {
	if err := r.checkOwner(owner); err != nil {
		return 0, err
	}

	mu := r.locks.For(owner)
	mu.Lock()
	defer mu.Unlock()

	var id uint64
	err := r.db.Update(func(txn *badger.Txn) error {
		next, err := nextSeq(txn, seqKey(owner))
		if err != nil {
			return err
		}
		id = next

		entry := feedEntry{
			Message: domain.Message{
				ID:        id,
				Owner:     domain.NewIdentity(owner, r.domain),
				Text:      text,
				Timestamp: timestamp,
			},
		}
		bytes, err := json.Marshal(entry)
		if err != nil {
			return err
		}
		return txn.Set(feedKey(owner, id), bytes)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Remove tombstones the entry. The key stays in place so the id is
// never handed out again.
func (r *FeedRepository) Remove(owner string, id uint64) error {
	if err := r.checkOwner(owner); err != nil {
		return err
	}

	mu := r.locks.For(owner)
	mu.Lock()
	defer mu.Unlock()

	return r.db.Update(func(txn *badger.Txn) error {
		entry, err := readEntry(txn, feedKey(owner, id))
		if err != nil {
			return err
		}
		if entry.Deleted {
			return fmt.Errorf("%w: message %d", errors.ErrNotFound, id)
		}
		entry.Deleted = true
		bytes, err := json.Marshal(entry)
		if err != nil {
			return err
		}
		return txn.Set(feedKey(owner, id), bytes)
	})
}

func (r *FeedRepository) Get(owner string, id uint64) (domain.Message, error) {
	if err := r.checkOwner(owner); err != nil {
		return domain.Message{}, err
	}

	var msg domain.Message
	err := r.db.View(func(txn *badger.Txn) error {
		entry, err := readEntry(txn, feedKey(owner, id))
		if err != nil {
			return err
		}
		if entry.Deleted {
			return fmt.Errorf("%w: message %d", errors.ErrNotFound, id)
		}
		msg = entry.Message
		return nil
	})
	return msg, err
}

// ListSince returns every live entry with timestamp >= since, newest
// first with ids as the tie break. The whole scan runs inside one View
// so readers observe a consistent snapshot of the owner's feed.
func (r *FeedRepository) ListSince(owner string, since int64) ([]domain.Message, error) {
	if err := r.checkOwner(owner); err != nil {
		return nil, err
	}

	var messages []domain.Message
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := feedPrefix(owner)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var entry feedEntry
				if err := json.Unmarshal(val, &entry); err != nil {
					return err
				}
				if !entry.Deleted && entry.Message.Timestamp >= since {
					messages = append(messages, entry.Message)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(messages, func(i, j int) bool {
		return messages[i].Newer(messages[j])
	})
	return messages, nil
}

// Destroy drops the owner's entire log and id counter. Called when the
// account is deleted; the feed lifecycle is bound to the account's.
// Runs after the directory entry is gone, so only the key charset is
// checked here.
func (r *FeedRepository) Destroy(owner string) error {
	if strings.ContainsAny(owner, "@:") {
		return fmt.Errorf("%w: owner must be a bare name", errors.ErrMalformedIdentity)
	}
	mu := r.locks.For(owner)
	mu.Lock()
	defer mu.Unlock()

	return r.db.Update(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{PrefetchValues: false})
		defer it.Close()

		prefix := feedPrefix(owner)
		var keys [][]byte
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		for _, key := range keys {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return txn.Delete(seqKey(owner))
	})
}

func (r *FeedRepository) checkOwner(owner string) error {
	// ":" delimits key components; a name carrying it would alias
	// another owner's prefix
	if strings.ContainsAny(owner, "@:") {
		return fmt.Errorf("%w: owner must be a bare name", errors.ErrMalformedIdentity)
	}
	ok, err := r.accounts.Exists(owner)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: user %s", errors.ErrNotFound, owner)
	}
	return nil
}

func readEntry(txn *badger.Txn, key []byte) (feedEntry, error) {
	item, err := txn.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return feedEntry{}, fmt.Errorf("%w: message", errors.ErrNotFound)
		}
		return feedEntry{}, err
	}
	var entry feedEntry
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &entry)
	})
	return entry, err
}

// nextSeq bumps the owner's id counter inside the caller's transaction.
// Counters start at 1 and never go backwards; deletions leave gaps.
func nextSeq(txn *badger.Txn, key []byte) (uint64, error) {
	var current uint64
	item, err := txn.Get(key)
	switch err {
	case nil:
		err = item.Value(func(val []byte) error {
			if len(val) == 8 {
				current = binary.BigEndian.Uint64(val)
			}
			return nil
		})
		if err != nil {
			return 0, err
		}
	case badger.ErrKeyNotFound:
		// first message for this owner
	default:
		return 0, err
	}

	next := current + 1
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, next)
	if err := txn.Set(key, buf); err != nil {
		return 0, err
	}
	return next, nil
}
