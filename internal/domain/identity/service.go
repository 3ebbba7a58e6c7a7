package identity

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalid marks input the caller can correct.
var ErrInvalid = errors.New("invalid input")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput carries the fields accepted when registering a user. The
// plaintext credential is hashed before it reaches the store.
type CreateInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*User, error) {
	if in.Username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrInvalid)
	}
	if in.Password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrInvalid)
	}
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if in.Email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalid)
	}
	role := in.Role
	if role == "" {
		role = DefaultRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &User{
		Username:     in.Username,
		PasswordHash: string(hash),
		Name:         in.Name,
		Email:        in.Email,
		Role:         role,
		Avatar:       in.Avatar,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByUsername(ctx context.Context, username string) (*User, error) {
	return s.repo.GetByUsername(ctx, username)
}

func (s *Service) List(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}
