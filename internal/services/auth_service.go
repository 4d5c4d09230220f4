package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Callymags/task-manager-api/internal/constants"
	"github.com/Callymags/task-manager-api/internal/models"
	"github.com/Callymags/task-manager-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken        = errors.New("username already exists")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrUsernameRequired     = errors.New("username is required")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// AuthService handles registration, login, and profile lookups.
type AuthService struct {
	userRepo repository.UserRepository
	taskRepo repository.TaskRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, taskRepo repository.TaskRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		taskRepo: taskRepo,
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Username string
	Password string
}

// Register creates a new user. The username is trimmed and lowercased before
// the uniqueness check. The check-then-insert here is not atomic; the unique
// index on username closes the race by turning a concurrent duplicate insert
// into ErrUsernameTaken.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	username := strings.ToLower(strings.TrimSpace(input.Username))
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.userRepo.FindByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Username: username,
		Password: string(hashedPassword),
	}

	if err := s.userRepo.Insert(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Username string
	Password string
}

// Login verifies credentials and returns the authenticated user. A missing
// user and a wrong password both collapse to ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*models.User, error) {
	username := strings.ToLower(strings.TrimSpace(input.Username))

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// Profile returns a user together with the tasks they created.
func (s *AuthService) Profile(ctx context.Context, username string) (*models.User, []models.Task, error) {
	username = strings.ToLower(strings.TrimSpace(username))

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, fmt.Errorf("failed to find user: %w", err)
	}

	tasks, err := s.taskRepo.FindByCreator(ctx, username)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list user tasks: %w", err)
	}

	return user, tasks, nil
}
