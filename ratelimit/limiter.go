//go:generate go run go.uber.org/mock/mockgen -source=limiter.go -destination=../mocks/mock_limiter.go -package=mocks

// Package ratelimit enforces a fixed-window quota per pseudonymized
// identity, backed by BadgerDB entries with a TTL. The window is
// anchored at the first commit; expiry is left to Badger, so an
// elapsed counter simply stops existing.
package ratelimit

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"kindwall/domain"
	"kindwall/errors"

	"github.com/dgraph-io/badger/v4"
)

const keyPrefix = "rl:"

// Status is the read-only answer of Check. ResetTime is advisory when
// Allowed (computed from now), authoritative when the quota is spent
// (the counter's real expiry).
type Status struct {
	Allowed   bool
	Remaining int
	ResetTime time.Time
}

type ILimiter interface {
	Check(identity domain.Identity) (Status, error)
	Commit(identity domain.Identity) error
}

type Limiter struct {
	db     *badger.DB
	log    *slog.Logger
	max    int
	window time.Duration
}

func NewLimiter(db *badger.DB, log *slog.Logger, max int, window time.Duration) Limiter {
	return Limiter{db: db, log: log, max: max, window: window}
}

// Check reads the counter for the identity's bucket without mutating
// it. Check and Commit are two separate store operations: concurrent
// submissions from one identity can both pass Check before either
// commits, so the limit is soft by at most the number of in-flight
// requests.
func (l Limiter) Check(identity domain.Identity) (Status, error) {
	key, err := bucketKey(identity)
	if err != nil {
		return Status{}, err
	}

	var status Status
	err = l.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			status = Status{
				Allowed:   true,
				Remaining: l.max - 1,
				ResetTime: time.Now().Add(l.window),
			}
			return nil
		}
		if err != nil {
			return err
		}

		count, err := counterValue(item)
		if err != nil {
			return err
		}

		if count >= l.max {
			status = Status{
				Allowed:   false,
				Remaining: 0,
				ResetTime: time.Unix(int64(item.ExpiresAt()), 0),
			}
			return nil
		}

		status = Status{
			Allowed:   true,
			Remaining: l.max - count - 1,
			ResetTime: time.Now().Add(l.window),
		}
		return nil
	})
	if err != nil {
		return Status{}, fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}
	return status, nil
}

// Commit records one accepted action. The first commit in a window
// creates the counter with TTL=window; later commits increment the
// count and keep the original expiry.
func (l Limiter) Commit(identity domain.Identity) error {
	key, err := bucketKey(identity)
	if err != nil {
		return err
	}

	err = l.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			entry := badger.NewEntry(key, []byte("1")).WithTTL(l.window)
			return txn.SetEntry(entry)
		}
		if err != nil {
			return err
		}

		count, err := counterValue(item)
		if err != nil {
			return err
		}

		entry := badger.NewEntry(key, []byte(strconv.Itoa(count+1)))
		entry.ExpiresAt = item.ExpiresAt()
		return txn.SetEntry(entry)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}
	return nil
}

func bucketKey(identity domain.Identity) ([]byte, error) {
	bucket := identity.Key()
	if bucket == "" {
		return nil, errors.ErrInvalidIdentity
	}
	return []byte(keyPrefix + bucket), nil
}

func counterValue(item *badger.Item) (int, error) {
	var count int
	err := item.Value(func(val []byte) error {
		parsed, err := strconv.Atoi(string(val))
		if err != nil {
			return fmt.Errorf("corrupt counter %q: %w", string(val), err)
		}
		count = parsed
		return nil
	})
	return count, err
}
