package repository

import (
	"context"
	"errors"
	"photostream/internal/models"

	"github.com/jmoiron/sqlx"
)

var (
	// ErrDuplicateEntry - запись ленты для пары (user, post) уже существует
	ErrDuplicateEntry = errors.New("запись ленты уже существует")
	// ErrDuplicateFollow - подписка для пары (follower, following) уже существует
	ErrDuplicateFollow = errors.New("подписка уже существует")
	ErrNotFound        = errors.New("не найдено")
)

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Post, error)
	GetByTagSlug(ctx context.Context, slug string, limit, offset int) ([]models.Post, error)
	AttachTags(ctx context.Context, postID string, tagIDs []string) error
	SetPicture(ctx context.Context, postID, pictureURL string) error
	IncrementLikes(ctx context.Context, postID string, delta int) error
}

type TagRepository interface {
	GetOrCreate(ctx context.Context, title string) (*models.Tag, error)
	GetBySlug(ctx context.Context, slug string) (*models.Tag, error)
	ListForPost(ctx context.Context, postID string) ([]models.Tag, error)
}

type FollowRepository interface {
	Create(ctx context.Context, followerID, followingID string) error
	Delete(ctx context.Context, followerID, followingID string) error
	GetFollowers(ctx context.Context, userID string, limit, offset int) ([]string, error)
	CountFollowers(ctx context.Context, userID string) (int, error)
}

type StreamRepository interface {
	CreateEntry(ctx context.Context, entry *models.StreamEntry) error
	GetFeed(ctx context.Context, userID string, limit, offset int) ([]models.StreamEntry, error)
	CountByPost(ctx context.Context, postID string) (int, error)
}

type Repository struct {
	Post   PostRepository
	Tag    TagRepository
	Follow FollowRepository
	Stream StreamRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Post:   NewPostRepository(db),
		Tag:    NewTagRepository(db),
		Follow: NewFollowRepository(db),
		Stream: NewStreamRepository(db),
	}
}
