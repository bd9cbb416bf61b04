package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"photostream/internal/models"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type PostRepositoryImpl struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	query := `
        INSERT INTO posts
        (post_id, user_id, caption, picture_url, likes, posted_at)
        VALUES
        (:post_id, :user_id, :caption, :picture_url, :likes, :posted_at)
    `

	// uuid4: случайный 128-битный идентификатор поста
	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}

	if post.PostedAt.IsZero() {
		post.PostedAt = time.Now()
	}

	_, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("ошибка при создании поста: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	query := `
        SELECT * FROM posts
        WHERE post_id = $1
    `

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пост с ID %s не найден", postID)
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &post, nil
}

func (r *PostRepositoryImpl) GetByUserID(ctx context.Context, userID string) ([]models.Post, error) {
	query := `
        SELECT * FROM posts
        WHERE user_id = $1
        ORDER BY posted_at DESC
    `

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов пользователя: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) GetByTagSlug(ctx context.Context, slug string, limit, offset int) ([]models.Post, error) {
	query := `
        SELECT p.* FROM posts p
        JOIN post_tags pt ON pt.post_id = p.post_id
        JOIN tags t ON t.tag_id = pt.tag_id
        WHERE t.slug = $1
        ORDER BY p.posted_at DESC
        LIMIT $2 OFFSET $3
    `

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, slug, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов по тегу: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) AttachTags(ctx context.Context, postID string, tagIDs []string) error {
	query := `
        INSERT INTO post_tags (post_id, tag_id)
        VALUES ($1, $2)
        ON CONFLICT (post_id, tag_id) DO NOTHING
    `

	for _, tagID := range tagIDs {
		_, err := r.db.ExecContext(ctx, query, postID, tagID)
		if err != nil {
			return fmt.Errorf("ошибка при привязке тега к посту: %w", err)
		}
	}

	return nil
}

func (r *PostRepositoryImpl) SetPicture(ctx context.Context, postID, pictureURL string) error {
	query := `
        UPDATE posts SET picture_url = $2
        WHERE post_id = $1
    `

	result, err := r.db.ExecContext(ctx, query, postID, pictureURL)
	if err != nil {
		return fmt.Errorf("ошибка при сохранении ссылки на фото: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("пост не найден")
	}

	return nil
}

func (r *PostRepositoryImpl) IncrementLikes(ctx context.Context, postID string, delta int) error {
	query := `
        UPDATE posts SET likes = likes + $2
        WHERE post_id = $1
    `

	result, err := r.db.ExecContext(ctx, query, postID, delta)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении лайков: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("пост не найден")
	}

	return nil
}
