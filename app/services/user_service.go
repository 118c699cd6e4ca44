package services

import (
	"errors"

	"blognest/app/models"
	"blognest/app/policy"
	"blognest/app/repositories"
)

// ErrInvalidCredentials is returned when a username/password pair does not
// match a stored user.
var ErrInvalidCredentials = errors.New("invalid username or password")

// UserService handles registration, lookup and credential checks.
type UserService struct {
	userRepo repositories.UserRepository
	policy   *policy.Policy
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserRepository, pol *policy.Policy) *UserService {
	return &UserService{userRepo: userRepo, policy: pol}
}

// Register creates a new user with a bcrypt-hashed password. Usernames are
// unique; a taken name is reported as a field-level validation failure.
func (s *UserService) Register(username, password string) (*models.User, error) {
	user := &models.User{Username: username}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}

	if err := models.ValidateStruct(user); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByUsername(username); err == nil {
		return nil, &models.ValidationError{Fields: map[string]string{
			"username": "is already taken",
		}}
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate checks a username/password pair and returns the user on
// success. The same error covers unknown users and wrong passwords.
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(principal *models.User, id string) (*models.User, error) {
	if err := s.policy.CanRead(principal); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(id)
}

// ListUsers retrieves a paginated list of users
func (s *UserService) ListUsers(principal *models.User, page, perPage int) ([]*models.User, error) {
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
	return s.userRepo.List(perPage, offset)
}
