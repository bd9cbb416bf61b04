package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"photostream/internal/models"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type tagRepository struct {
	db *sqlx.DB
}

func NewTagRepository(db *sqlx.DB) TagRepository {
	return &tagRepository{db: db}
}

// Slugify приводит заголовок к уникальному слагу: строчные буквы и цифры,
// остальное заменяется на дефис
func Slugify(title string) string {
	var b strings.Builder
	lastDash := true

	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
		} else if !lastDash {
			b.WriteRune('-')
			lastDash = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

func (r *tagRepository) GetOrCreate(ctx context.Context, title string) (*models.Tag, error) {
	slug := Slugify(title)
	if slug == "" {
		return nil, errors.New("пустой заголовок тега")
	}

	tag, err := r.GetBySlug(ctx, slug)
	if err == nil {
		return tag, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	newTag := &models.Tag{
		TagID: uuid.New().String(),
		Title: title,
		Slug:  slug,
	}

	query := `
		INSERT INTO tags (tag_id, title, slug)
		VALUES (:tag_id, :title, :slug)
	`

	_, err = r.db.NamedExecContext(ctx, query, newTag)
	if err != nil {
		// параллельное создание того же тега: перечитываем по слагу
		if strings.Contains(err.Error(), "duplicate key value") {
			return r.GetBySlug(ctx, slug)
		}
		return nil, fmt.Errorf("ошибка при создании тега: %w", err)
	}

	return newTag, nil
}

func (r *tagRepository) GetBySlug(ctx context.Context, slug string) (*models.Tag, error) {
	var tag models.Tag

	query := `SELECT * FROM tags WHERE slug = $1`

	err := r.db.GetContext(ctx, &tag, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении тега: %w", err)
	}

	return &tag, nil
}

func (r *tagRepository) ListForPost(ctx context.Context, postID string) ([]models.Tag, error) {
	query := `
		SELECT t.* FROM tags t
		JOIN post_tags pt ON pt.tag_id = t.tag_id
		WHERE pt.post_id = $1
		ORDER BY t.slug
	`

	var tags []models.Tag
	err := r.db.SelectContext(ctx, &tags, query, postID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении тегов поста: %w", err)
	}

	return tags, nil
}
