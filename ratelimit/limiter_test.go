package ratelimit

import (
	"fmt"
	"log/slog"
	"testing"
	"time"

	"kindwall/domain"
	"kindwall/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestLimiter_FirstCheckReservesSlot(t *testing.T) {
	req := require.New(t)
	limiter := NewLimiter(openTestDB(t), slog.Default(), 10, 24*time.Hour)
	identity := domain.Identity{EmailHash: "abc123"}

	status, err := limiter.Check(identity)
	req.NoError(err)
	req.True(status.Allowed)
	req.Equal(9, status.Remaining)
	req.WithinDuration(time.Now().Add(24*time.Hour), status.ResetTime, time.Minute)
}

func TestLimiter_ExhaustsAfterMaxCommits(t *testing.T) {
	req := require.New(t)
	max := 10
	limiter := NewLimiter(openTestDB(t), slog.Default(), max, 24*time.Hour)
	identity := domain.Identity{EmailHash: "abc123"}

	for i := 0; i < max; i++ {
		status, err := limiter.Check(identity)
		req.NoError(err)
		req.True(status.Allowed)
		req.Equal(max-i-1, status.Remaining)
		req.NoError(limiter.Commit(identity))
	}

	status, err := limiter.Check(identity)
	req.NoError(err)
	req.False(status.Allowed)
	req.Equal(0, status.Remaining)
	// Exhausted buckets report the counter's real expiry.
	req.True(status.ResetTime.After(time.Now()))
	req.True(status.ResetTime.Before(time.Now().Add(24*time.Hour + time.Minute)))
}

func TestLimiter_BucketsAreIndependent(t *testing.T) {
	req := require.New(t)
	limiter := NewLimiter(openTestDB(t), slog.Default(), 1, 24*time.Hour)

	req.NoError(limiter.Commit(domain.Identity{EmailHash: "alice"}))

	status, err := limiter.Check(domain.Identity{EmailHash: "bob"})
	req.NoError(err)
	req.True(status.Allowed)
}

func TestLimiter_EmailPreferredOverIP(t *testing.T) {
	req := require.New(t)
	limiter := NewLimiter(openTestDB(t), slog.Default(), 1, 24*time.Hour)

	both := domain.Identity{EmailHash: "alice", IPHash: "ip-1"}
	req.NoError(limiter.Commit(both))

	// Quota was spent on the email bucket, not the IP bucket.
	status, err := limiter.Check(domain.Identity{EmailHash: "alice"})
	req.NoError(err)
	req.False(status.Allowed)

	status, err = limiter.Check(domain.Identity{IPHash: "ip-1"})
	req.NoError(err)
	req.True(status.Allowed)
}

func TestLimiter_WindowExpiryResetsBucket(t *testing.T) {
	req := require.New(t)
	limiter := NewLimiter(openTestDB(t), slog.Default(), 1, time.Second)
	identity := domain.Identity{IPHash: "ip-9"}

	req.NoError(limiter.Commit(identity))
	status, err := limiter.Check(identity)
	req.NoError(err)
	req.False(status.Allowed)

	// Badger TTLs have second granularity; wait past the window.
	time.Sleep(2500 * time.Millisecond)

	status, err = limiter.Check(identity)
	req.NoError(err)
	req.True(status.Allowed)
	req.Equal(0, status.Remaining)
}

func TestLimiter_WindowAnchoredAtFirstCommit(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	limiter := NewLimiter(db, slog.Default(), 10, time.Hour)
	identity := domain.Identity{EmailHash: "anchored"}

	req.NoError(limiter.Commit(identity))

	var firstExpiry uint64
	req.NoError(db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + "anchored"))
		if err != nil {
			return err
		}
		firstExpiry = item.ExpiresAt()
		return nil
	}))

	req.NoError(limiter.Commit(identity))

	req.NoError(db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + "anchored"))
		if err != nil {
			return err
		}
		if item.ExpiresAt() != firstExpiry {
			return fmt.Errorf("expiry moved from %d to %d", firstExpiry, item.ExpiresAt())
		}
		return nil
	}))
}

func TestLimiter_InvalidIdentity(t *testing.T) {
	req := require.New(t)
	limiter := NewLimiter(openTestDB(t), slog.Default(), 10, 24*time.Hour)

	_, err := limiter.Check(domain.Identity{})
	req.ErrorIs(err, errors.ErrInvalidIdentity)

	req.ErrorIs(limiter.Commit(domain.Identity{}), errors.ErrInvalidIdentity)
}
