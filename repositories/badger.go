package repositories

import (
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/vmihailenco/msgpack/v5"
)

// Documents are stored as msgpack values under colon-separated keys. Keys
// that need chronological ordering embed a 19-digit zero-padded UnixNano so
// lexicographic iteration matches creation order.

func paddedNano(t time.Time) string {
	return fmt.Sprintf("%019d", t.UnixNano())
}

// store marshals v and sets it under key inside txn.
func store(txn *badger.Txn, key []byte, v any) error {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return txn.Set(key, data)
}

// load reads key inside txn and unmarshals it into out. Returns
// badger.ErrKeyNotFound untouched so callers can map it to a domain error.
func load(txn *badger.Txn, key []byte, out any) error {
	item, err := txn.Get(key)
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return msgpack.Unmarshal(val, out)
	})
}
