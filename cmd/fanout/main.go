package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"photostream/internal/config"
	"photostream/internal/database"
	"photostream/internal/events"
	"photostream/internal/fanout"
	"photostream/internal/repository"
)

// Воркер fan-out: читает события post-created из Kafka и материализует
// записи ленты. Повторная доставка события безопасна - fan-out идемпотентен.
func main() {
	cfg := config.LoadConfig()

	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}
	defer database.MethodsDB.CloseDB(db)

	repo := repository.NewRepository(db.DB)
	engine := fanout.NewEngine(repo.Follow, repo.Stream, cfg.Fanout.BatchSize)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	handler := func(ctx context.Context, event events.PostCreatedEvent) error {
		// Перечитываем пост: событие могло пережить сам пост, а дата должна
		// быть взята из закоммиченной строки
		post, err := repo.Post.GetByID(ctx, event.PostID)
		if err != nil {
			return err
		}

		result, err := engine.FanOut(ctx, post)
		if err != nil {
			return err
		}

		log.Printf("Fan-out поста %s: доставлено %d, пропущено дублей %d, ошибок %d",
			post.PostID, result.Delivered, result.Duplicates, len(result.Failed))
		return nil
	}

	consumer := events.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic, handler)

	// metrics endpoint: отдельный порт, чтобы не конфликтовать с API на одной машине
	go func() {
		metricsMux := http.NewServeMux()
		metricsMux.Handle("/metrics", promhttp.Handler())
		addr := fmt.Sprintf(":%d", cfg.Fanout.MetricsPort)
		if err := http.ListenAndServe(addr, metricsMux); err != nil {
			log.Printf("Ошибка запуска metrics-сервера: %v", err)
		}
	}()

	if err := consumer.Run(ctx); err != nil {
		log.Fatalf("Ошибка consumer: %v", err)
	}
}
