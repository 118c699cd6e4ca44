package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Validate checks if the comment meets all validation requirements
func (c *Comment) Validate() error {
	if err := wrapValidation(validate.Struct(c)); err != nil {
		return err
	}

	if c.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate assigns the identity and timestamps before creation
func (c *Comment) BeforeCreate() {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = c.CreatedAt
	}
}

// BeforeUpdate advances the modified timestamp without moving it backwards.
func (c *Comment) BeforeUpdate() {
	now := time.Now().UTC()
	if now.After(c.UpdatedAt) {
		c.UpdatedAt = now
	}
}

// SetPost binds the comment to its parent post. The binding is permanent;
// services never call this on an existing comment.
func (c *Comment) SetPost(post *Post) error {
	if post == nil {
		return errors.New("post cannot be nil")
	}

	c.PostID = post.ID
	return nil
}
