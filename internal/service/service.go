package service

import (
	"photostream/internal/config"
	"photostream/internal/events"
	"photostream/internal/repository"
	"photostream/internal/storage"
)

type Service struct {
	Post   PostService
	Follow FollowService
	Feed   FeedService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage, publisher events.Publisher) *Service {
	return &Service{
		Post:   NewPostService(rep.Post, rep.Tag, storage, publisher, cfg),
		Follow: NewFollowService(rep.Follow),
		Feed:   NewFeedService(rep.Stream, rep.Post),
	}
}
