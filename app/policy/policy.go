// Package policy decides, per action and per resource instance, whether a
// principal may proceed. Decisions are pure: no lookups, no side effects.
package policy

import (
	"errors"

	"blognest/app/models"
)

var (
	// ErrUnauthorized means no valid principal was presented where one is required.
	ErrUnauthorized = errors.New("authentication required")
	// ErrForbidden means the principal lacks ownership or the resource disallows the action.
	ErrForbidden = errors.New("forbidden")
)

// Policy evaluates access rules. ReadOpen controls whether read actions are
// allowed for anonymous callers.
type Policy struct {
	ReadOpen bool
}

// New returns a Policy with the given read-open setting.
func New(readOpen bool) *Policy {
	return &Policy{ReadOpen: readOpen}
}

// CanRead allows list/retrieve actions. Anonymous reads are allowed only
// when the policy is read-open.
func (p *Policy) CanRead(principal *models.User) error {
	if principal == nil && !p.ReadOpen {
		return ErrUnauthorized
	}
	return nil
}

// CanCreatePost requires an authenticated principal.
func (p *Policy) CanCreatePost(principal *models.User) error {
	if principal == nil {
		return ErrUnauthorized
	}
	return nil
}

// CanMutatePost allows update/delete only for the post's author.
func (p *Policy) CanMutatePost(principal *models.User, post *models.Post) error {
	if principal == nil {
		return ErrUnauthorized
	}
	if principal.ID != post.AuthorID {
		return ErrForbidden
	}
	return nil
}

// CanCreateComment requires authentication and the parent post accepting
// comments. The gate applies to everyone, the post's own author included.
func (p *Policy) CanCreateComment(principal *models.User, post *models.Post) error {
	if principal == nil {
		return ErrUnauthorized
	}
	if !post.AllowComments {
		return ErrForbidden
	}
	return nil
}

// CanMutateComment allows update/delete only for the comment's author.
func (p *Policy) CanMutateComment(principal *models.User, comment *models.Comment) error {
	if principal == nil {
		return ErrUnauthorized
	}
	if principal.ID != comment.AuthorID {
		return ErrForbidden
	}
	return nil
}
