package controllers

import (
	"time"

	"blognest/app/models"
)

// Response bodies carry a self link plus identity links to related
// resources, never embedded records.

type postResponse struct {
	URL           string    `json:"url"`
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description"`
	Content       string    `json:"content"`
	AllowComments bool      `json:"allow_comments"`
	Author        string    `json:"author"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type commentResponse struct {
	URL       string    `json:"url"`
	ID        string    `json:"id"`
	Blogpost  string    `json:"blogpost"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type userResponse struct {
	URL       string    `json:"url"`
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

func postURL(id string) string    { return "/api/posts/" + id }
func commentURL(id string) string { return "/api/comments/" + id }
func userURL(id string) string    { return "/api/users/" + id }

func newPostResponse(p *models.Post) postResponse {
	return postResponse{
		URL:           postURL(p.ID),
		ID:            p.ID,
		Title:         p.Title,
		Slug:          p.Slug,
		Description:   p.Description,
		Content:       p.Content,
		AllowComments: p.AllowComments,
		Author:        userURL(p.AuthorID),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func newPostResponses(posts []*models.Post) []postResponse {
	out := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, newPostResponse(p))
	}
	return out
}

func newCommentResponse(c *models.Comment) commentResponse {
	return commentResponse{
		URL:       commentURL(c.ID),
		ID:        c.ID,
		Blogpost:  postURL(c.PostID),
		Content:   c.Content,
		Author:    userURL(c.AuthorID),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func newCommentResponses(comments []*models.Comment) []commentResponse {
	out := make([]commentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, newCommentResponse(c))
	}
	return out
}

func newUserResponse(u *models.User) userResponse {
	return userResponse{
		URL:       userURL(u.ID),
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}

func newUserResponses(users []*models.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, newUserResponse(u))
	}
	return out
}
