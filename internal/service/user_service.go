package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"userservice/internal/cache"
	"userservice/internal/handler/dto"
	"userservice/internal/mapper"
	"userservice/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UserService exposes domain operations.
// Store errors (not found, email conflict) are returned unchanged.
type UserService interface {
	ListUsers(ctx context.Context) ([]dto.User, error)
	GetUser(ctx context.Context, id uint) (*dto.User, error)
	CreateUser(ctx context.Context, in dto.UserInput) (*dto.User, error)
	UpdateUser(ctx context.Context, id uint, in dto.UserInput) (*dto.User, error)
	DeleteUser(ctx context.Context, id uint) error
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

func (s *userService) ListUsers(ctx context.Context) ([]dto.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.ToWireList(users), nil
}

func (s *userService) GetUser(ctx context.Context, id uint) (*dto.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached dto.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	out := mapper.ToWire(*user)
	if payload, err := json.Marshal(out); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return &out, nil
}

func (s *userService) CreateUser(ctx context.Context, in dto.UserInput) (*dto.User, error) {
	user := mapper.ToStored(in)
	if err := s.repo.Create(ctx, &user); err != nil {
		return nil, err
	}
	// ids can be reused after a reset; drop anything stale
	s.invalidate(ctx, user.ID)

	out := mapper.ToWire(user)
	return &out, nil
}

func (s *userService) UpdateUser(ctx context.Context, id uint, in dto.UserInput) (*dto.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	mapper.MergeUpdate(user, in)
	s.invalidate(ctx, id)
	if err := s.repo.Update(ctx, id, user); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)

	out := mapper.ToWire(*user)
	return &out, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	s.invalidate(ctx, id)
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

// invalidate drops the cached copy of a user. Writers call it both before
// and after the store write.
func (s *userService) invalidate(ctx context.Context, id uint) {
	_ = s.cache.Delete(ctx, s.cacheKey(id))
}
