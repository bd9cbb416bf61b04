package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"photostream/internal/config"
	"photostream/internal/database"
	"photostream/internal/fanout"
	"photostream/internal/models"
	"photostream/internal/repository"
)

func main() {
	users := flag.Int("users", 20, "сколько пользователей создать")
	posts := flag.Int("posts", 50, "сколько постов создать")
	flag.Parse()

	gofakeit.Seed(time.Now().UnixNano())

	cfg := config.LoadConfig()

	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}
	defer database.MethodsDB.CloseDB(db)

	repo := repository.NewRepository(db.DB)
	engine := fanout.NewEngine(repo.Follow, repo.Stream, cfg.Fanout.BatchSize)

	ctx := context.Background()

	// 1. Users
	userIDs := make([]string, 0, *users)
	for i := 0; i < *users; i++ {
		userID := uuid.New().String()
		_, err := db.ExecContext(ctx, `INSERT INTO users (user_id) VALUES ($1)`, userID)
		if err != nil {
			log.Fatalf("Ошибка при создании пользователя: %v", err)
		}
		userIDs = append(userIDs, userID)
	}
	log.Printf("Создано пользователей: %d", len(userIDs))

	// 2. Follows: каждый подписывается на несколько случайных пользователей
	followCount := 0
	for _, followerID := range userIDs {
		for i := 0; i < gofakeit.Number(1, 5); i++ {
			followingID := userIDs[gofakeit.Number(0, len(userIDs)-1)]
			if followingID == followerID {
				continue
			}
			err := repo.Follow.Create(ctx, followerID, followingID)
			if err != nil && !errors.Is(err, repository.ErrDuplicateFollow) {
				log.Fatalf("Ошибка при создании подписки: %v", err)
			}
			if err == nil {
				followCount++
			}
		}
	}
	log.Printf("Создано подписок: %d", followCount)

	// 3. Posts + fan-out
	delivered := 0
	for i := 0; i < *posts; i++ {
		authorID := userIDs[gofakeit.Number(0, len(userIDs)-1)]
		post := &models.Post{
			UserID:  authorID,
			Caption: gofakeit.Sentence(gofakeit.Number(3, 12)),
		}
		if err := repo.Post.Create(ctx, post); err != nil {
			log.Fatalf("Ошибка при создании поста: %v", err)
		}

		tag, err := repo.Tag.GetOrCreate(ctx, gofakeit.Hobby())
		if err != nil {
			log.Fatalf("Ошибка при создании тега: %v", err)
		}
		if err := repo.Post.AttachTags(ctx, post.PostID, []string{tag.TagID}); err != nil {
			log.Fatalf("Ошибка при привязке тега: %v", err)
		}

		result, err := engine.FanOut(ctx, post)
		if err != nil {
			log.Fatalf("Ошибка fan-out: %v", err)
		}
		delivered += result.Delivered
	}
	log.Printf("Создано постов: %d, записей ленты: %d", *posts, delivered)
}
