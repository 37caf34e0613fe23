//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"kindwall/domain"
	"kindwall/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
)

const messagePrefix = "board:msg:"

type IMessageRepository interface {
	Store(message domain.Message) error
	SampleRandom(n int) ([]domain.Message, error)
	Count() (int, error)
}

// MessageRepository is an unordered bag of accepted messages in
// BadgerDB. There is no per-key lookup in the public contract; the
// UUID in the key only guards against collisions.
type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) MessageRepository {
	return MessageRepository{db: db, log: log}
}

// Store persists one accepted message as a JSON record under
// "board:msg:{uuid}". The write is atomic at the record level.
func (m MessageRepository) Store(message domain.Message) error {
	key := fmt.Sprintf("%s%s", messagePrefix, message.ID)
	bytes, err := json.Marshal(message)
	if err != nil {
		return err
	}
	err = m.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}
	return nil
}

// SampleRandom returns up to n messages chosen pseudorandomly from the
// current contents. Fewer than n stored means all of them; an empty
// store means an empty slice, never an error. A record that no longer
// decodes is returned with its raw bytes as Text rather than dropped.
func (m MessageRepository) SampleRandom(n int) ([]domain.Message, error) {
	var raw [][]byte
	err := m.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := []byte(messagePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				raw = append(raw, append([]byte(nil), val...))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}

	sampled := lo.Samples(raw, n)
	messages := make([]domain.Message, 0, len(sampled))
	for _, b := range sampled {
		var message domain.Message
		if err := json.Unmarshal(b, &message); err != nil {
			m.log.Warn("Undecodable stored message, keeping raw text", "error", err)
			messages = append(messages, domain.Message{Text: string(b)})
			continue
		}
		messages = append(messages, message)
	}
	return messages, nil
}

// Count returns the cardinality of the message set at call time.
// Keys-only iteration, no value fetches.
func (m MessageRepository) Count() (int, error) {
	var count int
	err := m.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := []byte(messagePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}
	return count, nil
}
