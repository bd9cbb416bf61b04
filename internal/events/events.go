package events

import (
	"context"
	"time"
)

// PostCreatedEvent публикуется жизненным циклом поста после коммита.
// Несёт всё, что нужно fan-out: дата берётся из поста, а не из момента доставки.
type PostCreatedEvent struct {
	PostID   string    `json:"postId"`
	UserID   string    `json:"userId"`
	PostedAt time.Time `json:"postedAt"`
}

// Publisher - явная граница диспетчеризации: сервис постов держит ссылку на
// publisher и вызывает его после сохранения поста, без глобальных хуков.
type Publisher interface {
	Publish(ctx context.Context, event PostCreatedEvent) error
	Close() error
}
