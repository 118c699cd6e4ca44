package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Validate checks if the user meets all validation requirements
func (u *User) Validate() error {
	if err := wrapValidation(validate.Struct(u)); err != nil {
		return err
	}

	if u.PasswordHash == "" {
		return errors.New("password hash cannot be empty")
	}

	return nil
}

// BeforeCreate assigns the identity and creation timestamp
func (u *User) BeforeCreate() {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
}

// SetPassword hashes and stores the given plaintext password
func (u *User) SetPassword(password string) error {
	if len(password) < 8 {
		return &ValidationError{Fields: map[string]string{
			"password": "must be at least 8 characters",
		}}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether the plaintext password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
