package repositories

import (
	"fmt"

	"blognest/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerPostRepository implements PostRepository using BadgerDB
type BadgerPostRepository struct {
	db *badger.DB
}

// NewBadgerPostRepository creates a new BadgerPostRepository
func NewBadgerPostRepository(db *badger.DB) *BadgerPostRepository {
	return &BadgerPostRepository{db: db}
}

// Create creates a new post under a creation-ordered key
func (r *BadgerPostRepository) Create(post *models.Post) error {
	return r.db.Update(func(txn *badger.Txn) error {
		seq, err := getNextID(txn, PostSeqKey)
		if err != nil {
			return err
		}

		post.BeforeCreate()

		data, err := marshalEntity(post)
		if err != nil {
			return err
		}

		return txn.Set(seqKey(PostKeyPrefix, seq), data)
	})
}

// GetByID retrieves a post by ID
func (r *BadgerPostRepository) GetByID(id string) (*models.Post, error) {
	post, _, err := r.findByID(id)
	return post, err
}

// List retrieves a paginated list of posts in creation order
func (r *BadgerPostRepository) List(limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		count := 0
		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if count < offset {
				count++
				continue
			}
			if count >= offset+limit {
				break
			}

			item := it.Item()
			var post models.Post
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal post: %v", err)
			}
			posts = append(posts, &post)
			count++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Update updates an existing post in place
func (r *BadgerPostRepository) Update(post *models.Post) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key, err := findKeyByID(txn, PostKeyPrefix, func(val []byte) (string, error) {
			var existing models.Post
			if err := unmarshalEntity(val, &existing); err != nil {
				return "", err
			}
			return existing.ID, nil
		}, post.ID)
		if err != nil {
			return err
		}

		data, err := marshalEntity(post)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
}

// Delete deletes a post by ID
func (r *BadgerPostRepository) Delete(id string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key, err := findKeyByID(txn, PostKeyPrefix, func(val []byte) (string, error) {
			var existing models.Post
			if err := unmarshalEntity(val, &existing); err != nil {
				return "", err
			}
			return existing.ID, nil
		}, id)
		if err != nil {
			return err
		}
		return txn.Delete(key)
	})
}

// findByID scans the post prefix for a record with the given ID
func (r *BadgerPostRepository) findByID(id string) (*models.Post, []byte, error) {
	var post models.Post
	var key []byte
	var found bool

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal post: %v", err)
			}
			if post.ID == id {
				found = true
				key = item.KeyCopy(nil)
				break
			}
		}
		return nil
	})

	if err != nil {
		return nil, nil, err
	}
	if !found {
		return nil, nil, ErrNotFound
	}
	return &post, key, nil
}
