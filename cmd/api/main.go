package main

import (
	"fmt"
	"log"
	"net/http"
	"photostream/cmd/app"
	"photostream/internal/config"
	"photostream/internal/database"
	handlers "photostream/internal/handler"
	"photostream/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, repo, services, _ := app.App(cfg)
	defer database.MethodsDB.CloseDB(db)

	handler := handlers.NewHandlers(repo, services, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)
	router.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	router.HandleFunc("/api/posts", handler.CreatePost).Methods(http.MethodPost)
	router.HandleFunc("/api/posts/{id}", handler.GetPost).Methods(http.MethodGet)
	router.HandleFunc("/api/posts/{id}/like", handler.LikePost).Methods(http.MethodPost, http.MethodDelete)
	router.HandleFunc("/api/posts/{id}/picture", handler.AddedPicture).Methods(http.MethodPost)

	router.HandleFunc("/api/users/{id}/posts", handler.GetUserPosts).Methods(http.MethodGet)
	router.HandleFunc("/api/users/{id}/followers", handler.GetFollowers).Methods(http.MethodGet)

	router.HandleFunc("/api/follow/{id}", handler.Follow).Methods(http.MethodPost)
	router.HandleFunc("/api/follow/{id}", handler.Unfollow).Methods(http.MethodDelete)

	router.HandleFunc("/api/feed", handler.GetFeed).Methods(http.MethodGet)
	router.HandleFunc("/api/tags/{slug}/posts", handler.GetPostsByTag).Methods(http.MethodGet)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
		middleware.AuthMiddleware(cfg),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
