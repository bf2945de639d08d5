//go:generate go run go.uber.org/mock/mockgen -source=subscription.go -destination=../mocks/mock_subscription_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"feedhub/domain"
	"feedhub/errors"
)

type ISubscriptionRepository interface {
	Subscribe(subscriber string, target domain.UserIdentity) error
	Unsubscribe(subscriber string, target domain.UserIdentity) error
	ListTargets(subscriber string) ([]domain.UserIdentity, error)
	Destroy(subscriber string) error
}

// SubscriptionRepository stores the directed follow graph. Only local
// users own outgoing edges; targets may live on any domain and remote
// targets are not verified here (read time tolerates their absence).
type SubscriptionRepository struct {
	db       *badger.DB
	accounts AccountChecker
	log      *slog.Logger
}

func NewSubscriptionRepository(db *badger.DB, accounts AccountChecker, log *slog.Logger) *SubscriptionRepository {
	return &SubscriptionRepository{db: db, accounts: accounts, log: log}
}

// Keys are "sub:{subscriber}:{target@domain}"; the value is empty. The
// pair is the whole edge, so a second subscribe is a no-op overwrite.
func subKey(subscriber string, target domain.UserIdentity) []byte {
	return []byte(fmt.Sprintf("sub:%s:%s", subscriber, target))
}

func subPrefix(subscriber string) []byte {
	return []byte(fmt.Sprintf("sub:%s:", subscriber))
}

func (r *SubscriptionRepository) Subscribe(subscriber string, target domain.UserIdentity) error {
	if err := r.checkSubscriber(subscriber); err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(subKey(subscriber, target), nil)
	})
}

func (r *SubscriptionRepository) Unsubscribe(subscriber string, target domain.UserIdentity) error {
	if err := r.checkSubscriber(subscriber); err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		key := subKey(subscriber, target)
		if _, err := txn.Get(key); err != nil {
			if err == badger.ErrKeyNotFound {
				return fmt.Errorf("%w: no subscription to %s", errors.ErrNotFound, target)
			}
			return err
		}
		return txn.Delete(key)
	})
}

func (r *SubscriptionRepository) ListTargets(subscriber string) ([]domain.UserIdentity, error) {
	if err := r.checkSubscriber(subscriber); err != nil {
		return nil, err
	}

	var targets []domain.UserIdentity
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{PrefetchValues: false})
		defer it.Close()

		prefix := subPrefix(subscriber)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			raw := string(it.Item().Key()[len(prefix):])
			target, err := domain.ParseIdentity(raw)
			if err != nil {
				r.log.Warn("Skipping malformed subscription key", "subscriber", subscriber, "raw", raw)
				continue
			}
			targets = append(targets, target)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return targets, nil
}

// Destroy removes every outgoing edge of the subscriber. Runs as part
// of account deletion together with FeedRepository.Destroy, after the
// directory entry is gone, so only the key charset is checked.
func (r *SubscriptionRepository) Destroy(subscriber string) error {
	if strings.ContainsAny(subscriber, "@:") {
		return fmt.Errorf("%w: subscriber must be a bare name", errors.ErrMalformedIdentity)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{PrefetchValues: false})
		defer it.Close()

		prefix := subPrefix(subscriber)
		var keys [][]byte
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		for _, key := range keys {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *SubscriptionRepository) checkSubscriber(subscriber string) error {
	if strings.ContainsAny(subscriber, "@:") {
		return fmt.Errorf("%w: subscriber must be a bare name", errors.ErrMalformedIdentity)
	}
	ok, err := r.accounts.Exists(subscriber)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: user %s", errors.ErrNotFound, subscriber)
	}
	return nil
}
