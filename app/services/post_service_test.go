package services

import (
	"testing"

	"blognest/app/models"
	"blognest/app/policy"
	"blognest/app/repositories"
	"blognest/app/repositories/mock"

	"github.com/stretchr/testify/assert"
)

func newTestPostService() (*PostService, *mock.PostRepository, *mock.CommentRepository) {
	postRepo := mock.NewPostRepository()
	commentRepo := mock.NewCommentRepository()
	service := NewPostService(postRepo, commentRepo, policy.New(true))
	return service, postRepo, commentRepo
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestPostServiceCreate(t *testing.T) {
	service, _, _ := newTestPostService()
	alice := &models.User{ID: "u-alice", Username: "alice"}

	t.Run("creates with server-assigned author", func(t *testing.T) {
		post := &models.Post{
			Title:         "Test Post",
			Content:       "Test Content",
			AuthorID:      "client-supplied-ignored",
			AllowComments: true,
		}
		err := service.CreatePost(alice, post)
		assert.NoError(t, err)
		assert.Equal(t, alice.ID, post.AuthorID)
		assert.NotEmpty(t, post.ID)
		assert.Equal(t, "test-post", post.Slug)
	})

	t.Run("anonymous is unauthorized", func(t *testing.T) {
		post := &models.Post{Title: "Test Post", Content: "Content"}
		err := service.CreatePost(nil, post)
		assert.Equal(t, policy.ErrUnauthorized, err)
	})

	t.Run("invalid payload", func(t *testing.T) {
		post := &models.Post{Title: "", Content: "Content"}
		err := service.CreatePost(alice, post)
		var verr *models.ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "title")
	})
}

func TestPostServiceUpdate(t *testing.T) {
	service, _, _ := newTestPostService()
	alice := &models.User{ID: "u-alice", Username: "alice"}
	bob := &models.User{ID: "u-bob", Username: "bob"}

	post := &models.Post{Title: "Original", Content: "Content", AllowComments: true}
	assert.NoError(t, service.CreatePost(alice, post))

	t.Run("author updates", func(t *testing.T) {
		updated, err := service.UpdatePost(alice, post.ID, PostUpdate{
			Title: strPtr("Renamed Post"),
		})
		assert.NoError(t, err)
		assert.Equal(t, "Renamed Post", updated.Title)
		assert.Equal(t, "renamed-post", updated.Slug)
		assert.Equal(t, "Content", updated.Content, "unspecified fields keep their values")
	})

	t.Run("non-owner is forbidden, not not-found", func(t *testing.T) {
		_, err := service.UpdatePost(bob, post.ID, PostUpdate{Title: strPtr("Hijack")})
		assert.Equal(t, policy.ErrForbidden, err)
	})

	t.Run("anonymous is unauthorized", func(t *testing.T) {
		_, err := service.UpdatePost(nil, post.ID, PostUpdate{Title: strPtr("Hijack")})
		assert.Equal(t, policy.ErrUnauthorized, err)
	})

	t.Run("missing post", func(t *testing.T) {
		_, err := service.UpdatePost(alice, "no-such-post", PostUpdate{Title: strPtr("X")})
		assert.Equal(t, repositories.ErrNotFound, err)
	})

	t.Run("flip allow_comments", func(t *testing.T) {
		updated, err := service.UpdatePost(alice, post.ID, PostUpdate{
			AllowComments: boolPtr(false),
		})
		assert.NoError(t, err)
		assert.False(t, updated.AllowComments)
	})

	t.Run("invalid merged payload", func(t *testing.T) {
		_, err := service.UpdatePost(alice, post.ID, PostUpdate{Title: strPtr("ab")})
		var verr *models.ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}

func TestPostServiceDelete(t *testing.T) {
	service, _, commentRepo := newTestPostService()
	alice := &models.User{ID: "u-alice", Username: "alice"}
	bob := &models.User{ID: "u-bob", Username: "bob"}

	post := &models.Post{Title: "Doomed Post", Content: "Content", AllowComments: true}
	assert.NoError(t, service.CreatePost(alice, post))

	for i := 0; i < 3; i++ {
		comment := &models.Comment{PostID: post.ID, AuthorID: bob.ID, Content: "c"}
		assert.NoError(t, commentRepo.Create(comment))
	}

	t.Run("non-owner is forbidden", func(t *testing.T) {
		assert.Equal(t, policy.ErrForbidden, service.DeletePost(bob, post.ID))
	})

	t.Run("delete cascades to comments", func(t *testing.T) {
		assert.NoError(t, service.DeletePost(alice, post.ID))

		_, err := service.GetPost(alice, post.ID)
		assert.Equal(t, repositories.ErrNotFound, err)

		comments, err := commentRepo.ListByPost(post.ID)
		assert.NoError(t, err)
		assert.Empty(t, comments)
	})

	t.Run("missing post", func(t *testing.T) {
		assert.Equal(t, repositories.ErrNotFound, service.DeletePost(alice, "gone"))
	})
}

func TestPostServiceRead(t *testing.T) {
	alice := &models.User{ID: "u-alice", Username: "alice"}

	t.Run("read-open allows anonymous", func(t *testing.T) {
		service, _, _ := newTestPostService()
		post := &models.Post{Title: "Readable", Content: "Content"}
		assert.NoError(t, service.CreatePost(alice, post))

		got, err := service.GetPost(nil, post.ID)
		assert.NoError(t, err)
		assert.Equal(t, post.ID, got.ID)

		posts, err := service.ListPosts(nil, 1, 10)
		assert.NoError(t, err)
		assert.Len(t, posts, 1)
	})

	t.Run("read-closed rejects anonymous", func(t *testing.T) {
		postRepo := mock.NewPostRepository()
		commentRepo := mock.NewCommentRepository()
		service := NewPostService(postRepo, commentRepo, policy.New(false))

		_, err := service.ListPosts(nil, 1, 10)
		assert.Equal(t, policy.ErrUnauthorized, err)

		_, err = service.ListPosts(alice, 1, 10)
		assert.NoError(t, err)
	})

	t.Run("pagination defaults", func(t *testing.T) {
		service, _, _ := newTestPostService()
		for i := 0; i < 15; i++ {
			post := &models.Post{Title: "Paged Post", Content: "Content"}
			assert.NoError(t, service.CreatePost(alice, post))
		}

		posts, err := service.ListPosts(nil, 0, 0)
		assert.NoError(t, err)
		assert.Len(t, posts, 10)

		posts, err = service.ListPosts(nil, 2, 10)
		assert.NoError(t, err)
		assert.Len(t, posts, 5)
	})
}
