package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	kgo "github.com/segmentio/kafka-go"
)

type Handler func(ctx context.Context, event PostCreatedEvent) error

// Consumer читает события post-created из Kafka и передаёт их обработчику.
// Сообщение коммитится и после ошибки обработчика: fan-out идемпотентен,
// повторная доставка безопасна, а зависший оффсет заблокировал бы партицию.
type Consumer struct {
	reader *kgo.Reader
	handle Handler
}

func NewConsumer(brokers []string, groupID, topic string, h Handler) *Consumer {
	return &Consumer{
		reader: kgo.NewReader(kgo.ReaderConfig{
			Brokers:        brokers,
			GroupID:        groupID,
			Topic:          topic,
			MinBytes:       10e3,
			MaxBytes:       10e6,
			CommitInterval: time.Second,
		}),
		handle: h,
	}
}

func (c *Consumer) Run(ctx context.Context) error {
	defer func() {
		_ = c.reader.Close()
	}()

	log.Printf("Consumer запущен: group=%s topic=%s",
		c.reader.Config().GroupID, c.reader.Config().Topic)

	for {
		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("Consumer останавливается...")
				return nil
			}
			log.Printf("Ошибка чтения из Kafka: %v", err)
			time.Sleep(time.Second)
			continue
		}

		var event PostCreatedEvent
		if err := json.Unmarshal(m.Value, &event); err != nil {
			log.Printf("Некорректное событие, пропускаем: %v", err)
		} else if err := c.handle(ctx, event); err != nil {
			log.Printf("Ошибка обработки события %s: %v", event.PostID, err)
		}

		if err := c.reader.CommitMessages(ctx, m); err != nil {
			log.Printf("Ошибка коммита оффсета: %v", err)
		}
	}
}
