package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"photostream/internal/config"
	"photostream/internal/events"
	"photostream/internal/models"
	"photostream/internal/repository"
	"photostream/internal/storage"
	"unicode/utf8"
)

type CreatePostRequest struct {
	UserID  string   `json:"userId"`
	Caption string   `json:"caption"`
	Tags    []string `json:"tags"`
}

type PostService interface {
	CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error)
	GetPost(ctx context.Context, postID string) (*models.Post, error)
	GetUserPosts(ctx context.Context, userID string) ([]models.Post, error)
	GetPostsByTag(ctx context.Context, slug string, limit, offset int) ([]models.Post, error)
	AddedPicture(ctx context.Context, postID, userID, fileName string, file io.Reader, size int64) (string, error)
	Like(ctx context.Context, postID string) error
	Unlike(ctx context.Context, postID string) error
}

type postService struct {
	postRepo  repository.PostRepository
	tagRepo   repository.TagRepository
	storage   storage.Storage
	publisher events.Publisher
	cfg       *config.Config
}

func NewPostService(postRepo repository.PostRepository, tagRepo repository.TagRepository, storage storage.Storage, publisher events.Publisher, cfg *config.Config) PostService {
	return &postService{
		postRepo:  postRepo,
		tagRepo:   tagRepo,
		storage:   storage,
		publisher: publisher,
		cfg:       cfg,
	}
}

func (p *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error) {
	// лимит в символах, не в байтах: кириллица занимает два байта
	if utf8.RuneCountInString(req.Caption) > p.cfg.MaxCaptionLength {
		return nil, fmt.Errorf("подпись длиннее %d символов", p.cfg.MaxCaptionLength)
	}

	post := &models.Post{
		UserID:  req.UserID,
		Caption: req.Caption,
	}

	err := p.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	for _, title := range req.Tags {
		tag, err := p.tagRepo.GetOrCreate(ctx, title)
		if err != nil {
			return nil, err
		}

		err = p.postRepo.AttachTags(ctx, post.PostID, []string{tag.TagID})
		if err != nil {
			return nil, err
		}

		post.Tags = append(post.Tags, *tag)
	}

	// Пост уже закоммичен: ошибка публикации не откатывает создание поста,
	// fan-out можно повторить по тому же событию
	err = p.publisher.Publish(ctx, events.PostCreatedEvent{
		PostID:   post.PostID,
		UserID:   post.UserID,
		PostedAt: post.PostedAt,
	})
	if err != nil {
		log.Printf("Пост %s создан, но событие не опубликовано: %v", post.PostID, err)
	}

	return post, nil
}

func (p *postService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	tags, err := p.tagRepo.ListForPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	post.Tags = tags

	return post, nil
}

func (p *postService) GetUserPosts(ctx context.Context, userID string) ([]models.Post, error) {
	return p.postRepo.GetByUserID(ctx, userID)
}

func (p *postService) GetPostsByTag(ctx context.Context, slug string, limit, offset int) ([]models.Post, error) {
	return p.postRepo.GetByTagSlug(ctx, slug, limit, offset)
}

func (p *postService) AddedPicture(ctx context.Context, postID, userID, fileName string, file io.Reader, size int64) (string, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return "", err
	}

	if post.UserID != userID {
		return "", fmt.Errorf("пост принадлежит другому пользователю")
	}

	objectName, pictureURL, err := p.storage.UploadPicture(ctx, userID, fileName, file, size)
	if err != nil {
		return "", fmt.Errorf("ошибка загрузки фото в MinIO: %w", err)
	}

	err = p.postRepo.SetPicture(ctx, postID, pictureURL)
	if err != nil {
		p.storage.DeletePicture(ctx, objectName)
		return "", fmt.Errorf("ошибка сохранения фото в БД: %w", err)
	}

	return pictureURL, nil
}

func (p *postService) Like(ctx context.Context, postID string) error {
	return p.postRepo.IncrementLikes(ctx, postID, 1)
}

func (p *postService) Unlike(ctx context.Context, postID string) error {
	return p.postRepo.IncrementLikes(ctx, postID, -1)
}
