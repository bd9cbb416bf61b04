package service

import (
	"context"
	"log"
	"photostream/internal/models"
	"photostream/internal/repository"
	"time"
)

// FeedItem - запись ленты вместе с постом, к которому она относится
type FeedItem struct {
	Post   models.Post `json:"post"`
	Author string      `json:"author"`
	Date   time.Time   `json:"date"`
}

type FeedService interface {
	GetFeed(ctx context.Context, userID string, limit, offset int) ([]FeedItem, error)
}

type feedService struct {
	streamRepo repository.StreamRepository
	postRepo   repository.PostRepository
}

func NewFeedService(streamRepo repository.StreamRepository, postRepo repository.PostRepository) FeedService {
	return &feedService{
		streamRepo: streamRepo,
		postRepo:   postRepo,
	}
}

// GetFeed читает материализованные записи ленты (date DESC) и подтягивает посты.
// Записи без поста пропускаются: пост мог быть удалён между выборками.
func (s *feedService) GetFeed(ctx context.Context, userID string, limit, offset int) ([]FeedItem, error) {
	entries, err := s.streamRepo.GetFeed(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	items := make([]FeedItem, 0, len(entries))
	for _, entry := range entries {
		post, err := s.postRepo.GetByID(ctx, entry.PostID)
		if err != nil {
			log.Printf("Запись ленты ссылается на недоступный пост %s: %v", entry.PostID, err)
			continue
		}

		items = append(items, FeedItem{
			Post:   *post,
			Author: entry.FollowingID,
			Date:   entry.Date,
		})
	}

	return items, nil
}
