package user

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	Register(name, password string) (User, error)
	Login(username, password string) (User, error)
	Logout() error
	Current() (User, error)
}

type Service struct {
	repo      Repository
	validator Validator
	log       *slog.Logger
}

func NewService(repo Repository, validator Validator, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		log:       log.With("component", "user_service"),
	}
}

// Register creates a local account. The username is derived from the display
// name plus a random four-digit suffix, regenerated on the off chance of a
// collision.
func (s *Service) Register(name, password string) (User, error) {
	if err := s.validator.ValidateRegister(name, password); err != nil {
		s.log.Debug("registration validation failed", "error", err)
		return User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	users, err := s.repo.List()
	if err != nil {
		return User{}, fmt.Errorf("register: %w", err)
	}

	username := generateUsername(name)
	for taken(users, username) {
		username = generateUsername(name)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	newUser := User{
		ID:           uuid.NewString(),
		Username:     username,
		Name:         name,
		PasswordHash: string(hash),
	}

	users = append(users, newUser)
	if err := s.repo.Save(users); err != nil {
		return User{}, fmt.Errorf("register: %w", err)
	}

	s.log.Info("user registered", "username", username)
	return newUser, nil
}

func (s *Service) Login(username, password string) (User, error) {
	if err := s.validator.ValidateLogin(username); err != nil {
		return User{}, ErrInvalidAuth
	}

	users, err := s.repo.List()
	if err != nil {
		return User{}, fmt.Errorf("login: %w", err)
	}

	for _, u := range users {
		if u.Username != username {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			return User{}, ErrInvalidAuth
		}
		if err := s.repo.SaveSession(u); err != nil {
			return User{}, fmt.Errorf("login: %w", err)
		}
		s.log.Info("user logged in", "username", username)
		return u, nil
	}

	return User{}, ErrInvalidAuth
}

func (s *Service) Logout() error {
	return s.repo.ClearSession()
}

// Current returns the logged-in user, or ErrNoSession.
func (s *Service) Current() (User, error) {
	return s.repo.Session()
}

func generateUsername(name string) string {
	var clean strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			clean.WriteRune(r)
		}
	}

	suffix := 1000 + rand.Intn(9000)
	return fmt.Sprintf("%s%d", clean.String(), suffix)
}

func taken(users []User, username string) bool {
	for _, u := range users {
		if u.Username == username {
			return true
		}
	}
	return false
}
