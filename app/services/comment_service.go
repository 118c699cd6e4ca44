package services

import (
	"blognest/app/models"
	"blognest/app/policy"
	"blognest/app/repositories"
)

// CommentService handles business logic for comments, both on the nested
// path (scoped to a parent post) and the flat path (addressed by ID).
type CommentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
	policy      *policy.Policy
}

// CommentUpdate carries the mutable comment fields. The parent post
// reference is not among them: it is immutable after creation.
type CommentUpdate struct {
	Content *string
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository, pol *policy.Policy) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		policy:      pol,
	}
}

// CreateComment creates a comment under the given post. Preconditions run
// in a fixed order: the post must exist (so a missing post is never reported
// as anything but not-found), the principal must be allowed to comment, and
// the payload must validate. The author and parent are server-assigned.
func (s *CommentService) CreateComment(principal *models.User, postID string, content string) (*models.Comment, error) {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return nil, err
	}

	if err := s.policy.CanCreateComment(principal, post); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		AuthorID: principal.ID,
		Content:  content,
	}
	if err := comment.SetPost(post); err != nil {
		return nil, err
	}

	if err := models.ValidateStruct(comment); err != nil {
		return nil, err
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListPostComments retrieves all comments for a post in creation order.
// Listing only needs the post to exist; allow_comments gates new comments,
// not visibility of existing ones.
func (s *CommentService) ListPostComments(principal *models.User, postID string) ([]*models.Comment, error) {
	if err := s.policy.CanRead(principal); err != nil {
		return nil, err
	}

	if _, err := s.postRepo.GetByID(postID); err != nil {
		return nil, err
	}

	return s.commentRepo.ListByPost(postID)
}

// GetComment retrieves a comment by ID, independent of its parent
func (s *CommentService) GetComment(principal *models.User, id string) (*models.Comment, error) {
	if err := s.policy.CanRead(principal); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(id)
}

// ListComments retrieves a paginated list of comments across all posts
func (s *CommentService) ListComments(principal *models.User, page, perPage int) ([]*models.Comment, error) {
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
	return s.commentRepo.List(perPage, offset)
}

// UpdateComment applies the given changes to an existing comment. Only the
// comment's author may mutate it, and the parent post reference never
// changes.
func (s *CommentService) UpdateComment(principal *models.User, id string, update CommentUpdate) (*models.Comment, error) {
	existing, err := s.commentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.policy.CanMutateComment(principal, existing); err != nil {
		return nil, err
	}

	if update.Content != nil {
		existing.Content = *update.Content
	}

	if err := models.ValidateStruct(existing); err != nil {
		return nil, err
	}

	existing.BeforeUpdate()

	if err := s.commentRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteComment deletes a comment. Author only.
func (s *CommentService) DeleteComment(principal *models.User, id string) error {
	existing, err := s.commentRepo.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.policy.CanMutateComment(principal, existing); err != nil {
		return err
	}

	return s.commentRepo.Delete(id)
}
