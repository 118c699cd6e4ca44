package mock

import (
	"sync"

	"blognest/app/models"
	"blognest/app/repositories"
)

// In-memory repositories for tests. Insertion order is preserved so list
// operations behave like the creation-ordered badger scans.

type PostRepository struct {
	posts map[string]*models.Post
	order []string
	mutex sync.RWMutex
}

type CommentRepository struct {
	comments map[string]*models.Comment
	order    []string
	mutex    sync.RWMutex
}

type UserRepository struct {
	users map[string]*models.User
	order []string
	mutex sync.RWMutex
}

func NewPostRepository() *PostRepository {
	return &PostRepository{posts: make(map[string]*models.Post)}
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{comments: make(map[string]*models.Comment)}
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*models.User)}
}

func (m *PostRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.posts = make(map[string]*models.Post)
	m.order = nil
}

// PostRepository implementation

func (m *PostRepository) Create(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post.BeforeCreate()
	m.posts[post.ID] = post
	m.order = append(m.order, post.ID)
	return nil
}

func (m *PostRepository) GetByID(id string) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return post, nil
}

func (m *PostRepository) Update(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[post.ID]; !exists {
		return repositories.ErrNotFound
	}
	m.posts[post.ID] = post
	return nil
}

func (m *PostRepository) Delete(id string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *PostRepository) List(limit, offset int) ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var posts []*models.Post
	for i, id := range m.order {
		if i < offset {
			continue
		}
		if len(posts) >= limit {
			break
		}
		posts = append(posts, m.posts[id])
	}
	return posts, nil
}

// CommentRepository implementation

func (m *CommentRepository) Create(comment *models.Comment) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	comment.BeforeCreate()
	m.comments[comment.ID] = comment
	m.order = append(m.order, comment.ID)
	return nil
}

func (m *CommentRepository) GetByID(id string) (*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	comment, exists := m.comments[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return comment, nil
}

func (m *CommentRepository) Update(comment *models.Comment) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.comments[comment.ID]; !exists {
		return repositories.ErrNotFound
	}
	m.comments[comment.ID] = comment
	return nil
}

func (m *CommentRepository) Delete(id string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.comments[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.comments, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *CommentRepository) List(limit, offset int) ([]*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var comments []*models.Comment
	for i, id := range m.order {
		if i < offset {
			continue
		}
		if len(comments) >= limit {
			break
		}
		comments = append(comments, m.comments[id])
	}
	return comments, nil
}

func (m *CommentRepository) ListByPost(postID string) ([]*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var comments []*models.Comment
	for _, id := range m.order {
		if comment := m.comments[id]; comment.PostID == postID {
			comments = append(comments, comment)
		}
	}
	return comments, nil
}

// UserRepository implementation

func (m *UserRepository) Create(user *models.User) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	user.BeforeCreate()
	m.users[user.ID] = user
	m.order = append(m.order, user.ID)
	return nil
}

func (m *UserRepository) GetByID(id string) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	user, exists := m.users[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func (m *UserRepository) GetByUsername(username string) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for _, id := range m.order {
		if m.users[id].Username == username {
			return m.users[id], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *UserRepository) List(limit, offset int) ([]*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var users []*models.User
	for i, id := range m.order {
		if i < offset {
			continue
		}
		if len(users) >= limit {
			break
		}
		users = append(users, m.users[id])
	}
	return users, nil
}
