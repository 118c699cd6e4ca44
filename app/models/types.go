package models

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// User is an authenticated principal. The password hash is persisted but
// never exposed through the API; controllers shape their own responses.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username" validate:"required,min=3,max=50"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// Post represents a blog post owned by a single author.
type Post struct {
	ID            string    `json:"id"`
	Title         string    `json:"title" validate:"required,min=3,max=100"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description" validate:"max=500"`
	Content       string    `json:"content" validate:"required"`
	AllowComments bool      `json:"allow_comments"`
	AuthorID      string    `json:"author_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Comment represents a comment permanently attached to one post.
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content" validate:"required,max=255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidationError carries per-field constraint failures.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// wrapValidation converts validator.ValidationErrors into a ValidationError
// with lower-cased field names and readable reasons.
func wrapValidation(err error) error {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[strings.ToLower(fe.Field())] = fieldReason(fe)
	}
	return &ValidationError{Fields: fields}
}

func fieldReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed %s constraint", fe.Tag())
	}
}

// ValidateStruct validates any tagged struct, returning a *ValidationError
// on constraint failures. Controllers use it for request payloads.
func ValidateStruct(v interface{}) error {
	return wrapValidation(validate.Struct(v))
}
