package events

import (
	"context"
	"log"
	"photostream/internal/fanout"
	"photostream/internal/models"
)

// DirectPublisher запускает fan-out синхронно в том же процессе.
type DirectPublisher struct {
	engine *fanout.Engine
}

func NewDirectPublisher(engine *fanout.Engine) *DirectPublisher {
	return &DirectPublisher{engine: engine}
}

func (p *DirectPublisher) Publish(ctx context.Context, event PostCreatedEvent) error {
	post := &models.Post{
		PostID:   event.PostID,
		UserID:   event.UserID,
		PostedAt: event.PostedAt,
	}

	result, err := p.engine.FanOut(ctx, post)
	if err != nil {
		return err
	}

	log.Printf("Fan-out поста %s: доставлено %d, пропущено дублей %d, ошибок %d",
		event.PostID, result.Delivered, result.Duplicates, len(result.Failed))
	return nil
}

func (p *DirectPublisher) Close() error {
	return nil
}
