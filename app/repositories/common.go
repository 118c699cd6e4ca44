package repositories

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

var (
	ErrNotFound = errors.New("record not found")
)

const (
	// Key prefixes for different entity types. Comment keys embed the
	// parent post ID so a prefix scan yields one post's comments, and a
	// zero-padded sequence so scans come back in creation order.
	PostKeyPrefix    = "post:"
	CommentKeyPrefix = "comment:"
	UserKeyPrefix    = "user:"

	// Sequence keys for creation-ordered storage keys
	PostSeqKey    = "seq:post"
	CommentSeqKey = "seq:comment"
	UserSeqKey    = "seq:user"
)

// getNextID gets the next value of a stored sequence counter
func getNextID(txn *badger.Txn, seqKey string) (int, error) {
	var id int
	item, err := txn.Get([]byte(seqKey))
	if err == badger.ErrKeyNotFound {
		id = 1
	} else if err != nil {
		return 0, err
	} else {
		err = item.Value(func(val []byte) error {
			id = int(val[0])<<24 | int(val[1])<<16 | int(val[2])<<8 | int(val[3])
			return nil
		})
		if err != nil {
			return 0, err
		}
		id++
	}

	// Store new ID
	idBytes := []byte{byte(id >> 24), byte(id >> 16), byte(id >> 8), byte(id)}
	if err := txn.Set([]byte(seqKey), idBytes); err != nil {
		return 0, err
	}

	return id, nil
}

// seqKey formats a creation-ordered storage key under the given prefix
func seqKey(prefix string, seq int) []byte {
	return []byte(fmt.Sprintf("%s%012d", prefix, seq))
}

// findKeyByID scans a prefix for the storage key of the record whose
// extracted ID matches. Storage keys are sequence-ordered, so ID lookups
// have to scan.
func findKeyByID(txn *badger.Txn, prefix string, idOf func([]byte) (string, error), id string) ([]byte, error) {
	opts := badger.DefaultIteratorOptions
	it := txn.NewIterator(opts)
	defer it.Close()

	p := []byte(prefix)
	for it.Seek(p); it.ValidForPrefix(p); it.Next() {
		item := it.Item()
		var recordID string
		err := item.Value(func(val []byte) error {
			var err error
			recordID, err = idOf(val)
			return err
		})
		if err != nil {
			return nil, err
		}
		if recordID == id {
			return item.KeyCopy(nil), nil
		}
	}
	return nil, ErrNotFound
}

// marshalEntity marshals an entity to JSON
func marshalEntity(entity interface{}) ([]byte, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %v", err)
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity
func unmarshalEntity(data []byte, entity interface{}) error {
	if err := json.Unmarshal(data, entity); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %v", err)
	}
	return nil
}
