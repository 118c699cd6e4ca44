package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCommentValidate(t *testing.T) {
	t.Run("valid comment", func(t *testing.T) {
		comment := &Comment{
			Content:   "A fine comment",
			CreatedAt: time.Now(),
		}
		assert.NoError(t, comment.Validate())
	})

	t.Run("empty content", func(t *testing.T) {
		comment := &Comment{CreatedAt: time.Now()}
		err := comment.Validate()
		assert.Error(t, err)

		verr, ok := err.(*ValidationError)
		assert.True(t, ok)
		assert.Contains(t, verr.Fields, "content")
	})

	t.Run("content at limit", func(t *testing.T) {
		comment := &Comment{
			Content:   strings.Repeat("a", 255),
			CreatedAt: time.Now(),
		}
		assert.NoError(t, comment.Validate())
	})

	t.Run("content too long", func(t *testing.T) {
		comment := &Comment{
			Content:   strings.Repeat("a", 256),
			CreatedAt: time.Now(),
		}
		err := comment.Validate()
		assert.Error(t, err)

		verr, ok := err.(*ValidationError)
		assert.True(t, ok)
		assert.Contains(t, verr.Fields["content"], "255")
	})
}

func TestCommentBeforeCreate(t *testing.T) {
	comment := &Comment{Content: "hi"}
	comment.BeforeCreate()

	assert.NotEmpty(t, comment.ID)
	assert.False(t, comment.CreatedAt.IsZero())
	assert.Equal(t, comment.CreatedAt, comment.UpdatedAt)
}

func TestCommentSetPost(t *testing.T) {
	t.Run("binds the parent", func(t *testing.T) {
		post := &Post{Title: "Parent"}
		post.BeforeCreate()

		comment := &Comment{Content: "child"}
		err := comment.SetPost(post)
		assert.NoError(t, err)
		assert.Equal(t, post.ID, comment.PostID)
	})

	t.Run("nil post", func(t *testing.T) {
		comment := &Comment{Content: "child"}
		assert.Error(t, comment.SetPost(nil))
	})
}
