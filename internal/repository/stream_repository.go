package repository

import (
	"context"
	"fmt"
	"photostream/internal/models"

	"github.com/jmoiron/sqlx"
)

type streamRepository struct {
	db *sqlx.DB
}

func NewStreamRepository(db *sqlx.DB) StreamRepository {
	return &streamRepository{db: db}
}

// CreateEntry вставляет запись ленты. Повторная вставка той же пары
// (user_id, post_id) возвращает ErrDuplicateEntry и ничего не меняет.
func (r *streamRepository) CreateEntry(ctx context.Context, entry *models.StreamEntry) error {
	query := `
		INSERT INTO stream (user_id, post_id, following_id, date)
		VALUES (:user_id, :post_id, :following_id, :date)
		ON CONFLICT (user_id, post_id) DO NOTHING
	`

	result, err := r.db.NamedExecContext(ctx, query, entry)
	if err != nil {
		return fmt.Errorf("ошибка при создании записи ленты: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке вставленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return ErrDuplicateEntry
	}

	return nil
}

func (r *streamRepository) GetFeed(ctx context.Context, userID string, limit, offset int) ([]models.StreamEntry, error) {
	query := `
		SELECT * FROM stream
		WHERE user_id = $1
		ORDER BY date DESC
		LIMIT $2 OFFSET $3
	`

	var entries []models.StreamEntry
	err := r.db.SelectContext(ctx, &entries, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении ленты: %w", err)
	}

	return entries, nil
}

func (r *streamRepository) CountByPost(ctx context.Context, postID string) (int, error) {
	var count int

	query := `SELECT COUNT(*) FROM stream WHERE post_id = $1`

	err := r.db.GetContext(ctx, &count, query, postID)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте записей ленты: %w", err)
	}

	return count, nil
}
