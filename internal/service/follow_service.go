package service

import (
	"context"
	"errors"
	"photostream/internal/repository"
)

var ErrSelfFollow = errors.New("нельзя подписаться на самого себя")

type FollowService interface {
	Follow(ctx context.Context, followerID, followingID string) error
	Unfollow(ctx context.Context, followerID, followingID string) error
	Followers(ctx context.Context, userID string, limit, offset int) ([]string, error)
	CountFollowers(ctx context.Context, userID string) (int, error)
}

type followService struct {
	followRepo repository.FollowRepository
}

func NewFollowService(followRepo repository.FollowRepository) FollowService {
	return &followService{followRepo: followRepo}
}

func (s *followService) Follow(ctx context.Context, followerID, followingID string) error {
	if followerID == followingID {
		return ErrSelfFollow
	}
	return s.followRepo.Create(ctx, followerID, followingID)
}

func (s *followService) Unfollow(ctx context.Context, followerID, followingID string) error {
	return s.followRepo.Delete(ctx, followerID, followingID)
}

func (s *followService) Followers(ctx context.Context, userID string, limit, offset int) ([]string, error) {
	return s.followRepo.GetFollowers(ctx, userID, limit, offset)
}

func (s *followService) CountFollowers(ctx context.Context, userID string) (int, error) {
	return s.followRepo.CountFollowers(ctx, userID)
}
