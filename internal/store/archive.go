// Package store archives the move logs of matches in BadgerDB.
package store

import (
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/benbeisheim/chessmaster-backend/internal/config"
	"github.com/benbeisheim/chessmaster-backend/internal/model"
)

// Archive stores move records under match/<id>/log/<seq>, where seq is the
// 1-based position of the move in the match log.
type Archive struct {
	db *badger.DB
}

func Open(cfg config.StorageConfig) (*Archive, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(cfg.Dir)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	return &Archive{db: db}, nil
}

func (a *Archive) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

func logPrefix(matchID string) []byte {
	return []byte("match/" + matchID + "/log/")
}

func moveKey(matchID string, seq int) []byte {
	return []byte(fmt.Sprintf("match/%s/log/%08d", matchID, seq))
}

func (a *Archive) AppendMove(matchID string, seq int, rec model.MoveRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return a.db.Update(func(txn *badger.Txn) error {
		return txn.Set(moveKey(matchID, seq), data)
	})
}

// LoadLog returns the archived moves of a match in log order. A match with
// nothing archived yields an empty slice.
func (a *Archive) LoadLog(matchID string) ([]model.MoveRecord, error) {
	moves := make([]model.MoveRecord, 0)
	prefix := logPrefix(matchID)

	err := a.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var rec model.MoveRecord
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			})
			if err != nil {
				return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
			}
			moves = append(moves, rec)
		}
		return nil
	})
	return moves, err
}

func (a *Archive) DeleteLog(matchID string) error {
	prefix := logPrefix(matchID)
	return a.db.Update(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

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
