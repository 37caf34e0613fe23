// Package internal holds the Badger inspect endpoint used while
// debugging: it dumps the keys under a prefix with value sizes and
// TTLs, without decoding values.
package internal

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dgraph-io/badger/v4"
)

type InspectRow struct {
	Key       string `json:"key"`
	Size      int    `json:"size"`
	ExpiresAt string `json:"expires_at,omitempty"`
}

// InspectHandler lists the keys under ?prefix= (default "board:msg:").
func InspectHandler(db *badger.DB, log *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		if prefix == "" {
			prefix = "board:msg:"
		}

		var rows []InspectRow
		err := db.View(func(txn *badger.Txn) error {
			options := badger.DefaultIteratorOptions
			options.PrefetchValues = false
			it := txn.NewIterator(options)
			defer it.Close()

			for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
				item := it.Item()
				row := InspectRow{
					Key:  string(item.Key()),
					Size: int(item.EstimatedSize()),
				}
				if item.ExpiresAt() > 0 {
					row.ExpiresAt = time.Unix(int64(item.ExpiresAt()), 0).UTC().Format(time.RFC3339)
				}
				rows = append(rows, row)
			}
			return nil
		})
		if err != nil {
			log.Error("Inspect failed", "error", err)
			http.Error(w, "inspect failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"prefix": prefix, "items": rows})
	})
}
