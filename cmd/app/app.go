package app

import (
	"log"
	"photostream/internal/config"
	"photostream/internal/database"
	"photostream/internal/events"
	"photostream/internal/fanout"
	"photostream/internal/repository"
	"photostream/internal/service"
	"photostream/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service, *fanout.Engine) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	// connection MinIO
	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Не удалось инициализировать MinIO: %v", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	engine := fanout.NewEngine(repo.Follow, repo.Stream, cfg.Fanout.BatchSize)

	// Жизненный цикл поста держит ссылку на publisher явно: fan-out вызывается
	// после коммита поста, а не через глобальный хук сохранения
	var publisher events.Publisher
	if cfg.Kafka.Enabled {
		publisher = events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		log.Printf("События post-created публикуются в Kafka: %s", cfg.Kafka.Topic)
	} else {
		publisher = events.NewDirectPublisher(engine)
		log.Println("Fan-out выполняется синхронно в процессе API")
	}

	services := service.NewService(repo, cfg, minioClient, publisher)

	return db, repo, services, engine
}
