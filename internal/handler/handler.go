package handlers

import (
	"github.com/go-playground/validator/v10"
	"photostream/internal/config"
	"photostream/internal/repository"
	"photostream/internal/service"
)

type Handlers struct {
	PostService   service.PostService
	FollowService service.FollowService
	FeedService   service.FeedService
	PostRepo      repository.PostRepository
	StreamRepo    repository.StreamRepository
	Cfg           *config.Config
	Validate      *validator.Validate
}

func NewHandlers(repo *repository.Repository, service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		PostService:   service.Post,
		FollowService: service.Follow,
		FeedService:   service.Feed,
		PostRepo:      repo.Post,
		StreamRepo:    repo.Stream,
		Cfg:           config,
		Validate:      validator.New(),
	}
}
