package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := wrapValidation(validate.Struct(p)); err != nil {
		return err
	}

	if p.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate assigns the identity, slug and timestamps before creation
func (p *Post) BeforeCreate() {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.Slug = slug.Make(p.Title)
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.CreatedAt
	}
}

// BeforeUpdate recomputes the slug and advances the modified timestamp.
// UpdatedAt never moves backwards.
func (p *Post) BeforeUpdate() {
	p.Slug = slug.Make(p.Title)
	now := time.Now().UTC()
	if now.After(p.UpdatedAt) {
		p.UpdatedAt = now
	}
}
