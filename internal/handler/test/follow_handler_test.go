package test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"photostream/internal/repository"
	"photostream/internal/service"
)

func TestFollow(t *testing.T) {
	t.Run("Успешная подписка - 201", func(t *testing.T) {
		followSvc := new(MockFollowService)
		h := newHandlers(new(MockPostService), followSvc, new(MockFeedService))

		followSvc.On("Follow", mock.Anything, "user-b", "author-a").Return(nil)

		router := mux.NewRouter()
		router.HandleFunc("/api/follow/{id}", h.Follow).Methods(http.MethodPost)

		req := withUser(httptest.NewRequest(http.MethodPost, "/api/follow/author-a", nil), "user-b")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Подписка на самого себя - 400", func(t *testing.T) {
		followSvc := new(MockFollowService)
		h := newHandlers(new(MockPostService), followSvc, new(MockFeedService))

		followSvc.On("Follow", mock.Anything, "user-b", "user-b").Return(service.ErrSelfFollow)

		router := mux.NewRouter()
		router.HandleFunc("/api/follow/{id}", h.Follow).Methods(http.MethodPost)

		req := withUser(httptest.NewRequest(http.MethodPost, "/api/follow/user-b", nil), "user-b")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Повторная подписка - 409", func(t *testing.T) {
		followSvc := new(MockFollowService)
		h := newHandlers(new(MockPostService), followSvc, new(MockFeedService))

		followSvc.On("Follow", mock.Anything, "user-b", "author-a").Return(repository.ErrDuplicateFollow)

		router := mux.NewRouter()
		router.HandleFunc("/api/follow/{id}", h.Follow).Methods(http.MethodPost)

		req := withUser(httptest.NewRequest(http.MethodPost, "/api/follow/author-a", nil), "user-b")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Отписка от несуществующей подписки - 404", func(t *testing.T) {
		followSvc := new(MockFollowService)
		h := newHandlers(new(MockPostService), followSvc, new(MockFeedService))

		followSvc.On("Unfollow", mock.Anything, "user-b", "author-a").
			Return(errors.New("подписка не найдена"))

		router := mux.NewRouter()
		router.HandleFunc("/api/follow/{id}", h.Unfollow).Methods(http.MethodDelete)

		req := withUser(httptest.NewRequest(http.MethodDelete, "/api/follow/author-a", nil), "user-b")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Без авторизации - 401", func(t *testing.T) {
		h := newHandlers(new(MockPostService), new(MockFollowService), new(MockFeedService))

		router := mux.NewRouter()
		router.HandleFunc("/api/follow/{id}", h.Follow).Methods(http.MethodPost)

		req := httptest.NewRequest(http.MethodPost, "/api/follow/author-a", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
