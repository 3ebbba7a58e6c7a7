package resource

import (
	"context"
	"errors"
	"fmt"
)

// ErrInvalid marks input the caller can correct.
var ErrInvalid = errors.New("invalid input")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, r *Resource) error {
	if r.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalid)
	}
	if r.Description == "" {
		return fmt.Errorf("%w: description is required", ErrInvalid)
	}
	if r.ResourceType == "" {
		return fmt.Errorf("%w: resource_type is required", ErrInvalid)
	}
	if r.URL == "" {
		return fmt.Errorf("%w: url is required", ErrInvalid)
	}
	if r.Icon == "" {
		return fmt.Errorf("%w: icon is required", ErrInvalid)
	}
	return s.repo.Create(ctx, r)
}

func (s *Service) Get(ctx context.Context, id int64) (*Resource, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, f Filter) ([]*Resource, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return f.Apply(all), nil
}
