package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

type followRepository struct {
	db *sqlx.DB
}

func NewFollowRepository(db *sqlx.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Create(ctx context.Context, followerID, followingID string) error {
	query := `
		INSERT INTO follows (follower_id, following_id, created_at)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.ExecContext(ctx, query, followerID, followingID, time.Now())
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key value") {
			return ErrDuplicateFollow
		}
		return fmt.Errorf("ошибка при создании подписки: %w", err)
	}

	return nil
}

func (r *followRepository) Delete(ctx context.Context, followerID, followingID string) error {
	query := `
		DELETE FROM follows
		WHERE follower_id = $1 AND following_id = $2
	`

	result, err := r.db.ExecContext(ctx, query, followerID, followingID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении подписки: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("подписка не найдена")
	}

	return nil
}

// GetFollowers возвращает страницу подписчиков пользователя в стабильном
// порядке по follower_id. Пустая страница означает конец выборки.
func (r *followRepository) GetFollowers(ctx context.Context, userID string, limit, offset int) ([]string, error) {
	query := `
		SELECT follower_id FROM follows
		WHERE following_id = $1
		ORDER BY follower_id
		LIMIT $2 OFFSET $3
	`

	var followers []string
	err := r.db.SelectContext(ctx, &followers, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении подписчиков: %w", err)
	}

	return followers, nil
}

func (r *followRepository) CountFollowers(ctx context.Context, userID string) (int, error) {
	var count int

	query := `SELECT COUNT(*) FROM follows WHERE following_id = $1`

	err := r.db.GetContext(ctx, &count, query, userID)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте подписчиков: %w", err)
	}

	return count, nil
}
