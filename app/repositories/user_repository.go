package repositories

import (
	"fmt"

	"blognest/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerUserRepository implements UserRepository using BadgerDB
type BadgerUserRepository struct {
	db *badger.DB
}

// NewBadgerUserRepository creates a new BadgerUserRepository
func NewBadgerUserRepository(db *badger.DB) *BadgerUserRepository {
	return &BadgerUserRepository{db: db}
}

// Create creates a new user
func (r *BadgerUserRepository) Create(user *models.User) error {
	return r.db.Update(func(txn *badger.Txn) error {
		seq, err := getNextID(txn, UserSeqKey)
		if err != nil {
			return err
		}

		user.BeforeCreate()

		data, err := marshalEntity(user)
		if err != nil {
			return err
		}

		return txn.Set(seqKey(UserKeyPrefix, seq), data)
	})
}

// GetByID retrieves a user by ID
func (r *BadgerUserRepository) GetByID(id string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.ID == id })
}

// GetByUsername retrieves a user by username
func (r *BadgerUserRepository) GetByUsername(username string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.Username == username })
}

// List retrieves a paginated list of users in registration order
func (r *BadgerUserRepository) List(limit, offset int) ([]*models.User, error) {
	var users []*models.User
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		count := 0
		prefix := []byte(UserKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if count < offset {
				count++
				continue
			}
			if count >= offset+limit {
				break
			}

			item := it.Item()
			var user models.User
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &user)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal user: %v", err)
			}
			users = append(users, &user)
			count++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

// find scans the user prefix for the first record matching the predicate
func (r *BadgerUserRepository) find(match func(*models.User) bool) (*models.User, error) {
	var user models.User
	var found bool

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(UserKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &user)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal user: %v", err)
			}
			if match(&user) {
				found = true
				break
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return &user, nil
}
