package fanout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"photostream/internal/models"
	"photostream/internal/repository"
)

// FailedFollower - подписчик, для которого не удалось записать ленту
type FailedFollower struct {
	UserID string
	Err    error
}

// Result - итог fan-out по одному посту. Delivered и Duplicates вместе дают
// число подписчиков, у которых пост есть в ленте: повторный вызов для того же
// поста возвращает тот же Count без новых записей.
type Result struct {
	Delivered  int
	Duplicates int
	Failed     []FailedFollower
	Remaining  int
}

func (r *Result) Count() int {
	return r.Delivered + r.Duplicates
}

type Engine struct {
	followRepo repository.FollowRepository
	streamRepo repository.StreamRepository
	batchSize  int
}

func NewEngine(followRepo repository.FollowRepository, streamRepo repository.StreamRepository, batchSize int) *Engine {
	if batchSize <= 0 {
		batchSize = 500
	}
	return &Engine{
		followRepo: followRepo,
		streamRepo: streamRepo,
		batchSize:  batchSize,
	}
}

// FanOut записывает по одной записи ленты на каждого подписчика автора поста.
// Подписчики читаются страницами размера batchSize, весь список в память не
// загружается. Ошибка записи для одного подписчика не прерывает остальных.
// Пост должен быть уже сохранён: PostID и PostedAt финальные.
func (e *Engine) FanOut(ctx context.Context, post *models.Post) (*Result, error) {
	total, err := e.followRepo.CountFollowers(ctx, post.UserID)
	if err != nil {
		// граф подписок недоступен, ничего не записано: вызов можно повторить целиком
		return nil, fmt.Errorf("fan-out поста %s: %w", post.PostID, err)
	}

	result := &Result{}
	processed := 0

	for offset := 0; ; offset += e.batchSize {
		followers, err := e.followRepo.GetFollowers(ctx, post.UserID, e.batchSize, offset)
		if err != nil {
			if processed == 0 {
				return nil, fmt.Errorf("fan-out поста %s: %w", post.PostID, err)
			}
			result.Remaining = total - processed
			return result, fmt.Errorf("fan-out поста %s прерван: %w", post.PostID, err)
		}

		if len(followers) == 0 {
			break
		}

		for _, followerID := range followers {
			if ctx.Err() != nil {
				result.Remaining = total - processed
				return result, fmt.Errorf("fan-out поста %s отменён: %w", post.PostID, ctx.Err())
			}

			entry := &models.StreamEntry{
				UserID:      followerID,
				PostID:      post.PostID,
				FollowingID: post.UserID,
				Date:        post.PostedAt,
			}

			err := e.streamRepo.CreateEntry(ctx, entry)
			switch {
			case err == nil:
				result.Delivered++
				entriesDelivered.Inc()
			case errors.Is(err, repository.ErrDuplicateEntry):
				// повторный fan-out того же поста: запись уже есть
				result.Duplicates++
				entriesDuplicate.Inc()
			default:
				result.Failed = append(result.Failed, FailedFollower{UserID: followerID, Err: err})
				entriesFailed.Inc()
			}
			processed++
		}

		if len(followers) < e.batchSize {
			break
		}
	}

	if len(result.Failed) > 0 {
		log.Printf("Fan-out поста %s: %d записей не доставлено из %d", post.PostID, len(result.Failed), processed)
	}

	return result, nil
}
