package services

import (
	"fmt"

	"blognest/app/models"
	"blognest/app/policy"
	"blognest/app/repositories"
)

// PostService handles business logic for blog posts. Every operation takes
// the requesting principal explicitly; nil means anonymous.
type PostService struct {
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
	policy      *policy.Policy
}

// PostUpdate carries the mutable post fields. Nil pointers mean "keep the
// current value", which is how partial updates work.
type PostUpdate struct {
	Title         *string
	Description   *string
	Content       *string
	AllowComments *bool
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, commentRepo repositories.CommentRepository, pol *policy.Policy) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		policy:      pol,
	}
}

// CreatePost creates a new blog post owned by the principal. Any
// client-supplied author is ignored.
func (s *PostService) CreatePost(principal *models.User, post *models.Post) error {
	if err := s.policy.CanCreatePost(principal); err != nil {
		return err
	}

	post.AuthorID = principal.ID

	if err := models.ValidateStruct(post); err != nil {
		return err
	}

	return s.postRepo.Create(post)
}

// GetPost retrieves a post by ID
func (s *PostService) GetPost(principal *models.User, id string) (*models.Post, error) {
	if err := s.policy.CanRead(principal); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(id)
}

// ListPosts retrieves a paginated list of posts
func (s *PostService) ListPosts(principal *models.User, page, perPage int) ([]*models.Post, error) {
	if err := s.policy.CanRead(principal); err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	offset := (page - 1) * perPage
	return s.postRepo.List(perPage, offset)
}

// UpdatePost applies the given changes to an existing post. Only the post's
// author may mutate it; ownership is checked against the stored record
// before anything is applied.
func (s *PostService) UpdatePost(principal *models.User, id string, update PostUpdate) (*models.Post, error) {
	existing, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.policy.CanMutatePost(principal, existing); err != nil {
		return nil, err
	}

	if update.Title != nil {
		existing.Title = *update.Title
	}
	if update.Description != nil {
		existing.Description = *update.Description
	}
	if update.Content != nil {
		existing.Content = *update.Content
	}
	if update.AllowComments != nil {
		existing.AllowComments = *update.AllowComments
	}

	if err := models.ValidateStruct(existing); err != nil {
		return nil, err
	}

	existing.BeforeUpdate()

	if err := s.postRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeletePost deletes a post and all its comments. Deletion cascades: a
// post's comments do not outlive it.
func (s *PostService) DeletePost(principal *models.User, id string) error {
	existing, err := s.postRepo.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.policy.CanMutatePost(principal, existing); err != nil {
		return err
	}

	comments, err := s.commentRepo.ListByPost(id)
	if err != nil {
		return fmt.Errorf("failed to get comments: %v", err)
	}

	for _, comment := range comments {
		if err := s.commentRepo.Delete(comment.ID); err != nil {
			return fmt.Errorf("failed to delete comment %s: %v", comment.ID, err)
		}
	}

	return s.postRepo.Delete(id)
}
