package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"photostream/internal/models"
	"photostream/internal/service"
)

func TestCreatePost(t *testing.T) {
	t.Run("Успешное создание поста", func(t *testing.T) {
		postSvc := new(MockPostService)
		h := newHandlers(postSvc, new(MockFollowService), new(MockFeedService))

		postedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		postSvc.On("CreatePost", mock.Anything, service.CreatePostRequest{
			UserID:  "author-a",
			Caption: "закат над морем",
			Tags:    []string{"Sunset"},
		}).Return(&models.Post{
			PostID:   "post-1",
			UserID:   "author-a",
			Caption:  "закат над морем",
			PostedAt: postedAt,
		}, nil)

		body, _ := json.Marshal(map[string]interface{}{
			"caption": "закат над морем",
			"tags":    []string{"Sunset"},
		})

		req := withUser(httptest.NewRequest(http.MethodPost, "/api/posts", bytes.NewReader(body)), "author-a")
		w := httptest.NewRecorder()

		h.CreatePost(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var post models.Post
		require.NoError(t, json.NewDecoder(w.Body).Decode(&post))
		assert.Equal(t, "post-1", post.PostID)
		postSvc.AssertExpectations(t)
	})

	t.Run("Подпись длиннее 1500 символов - 400", func(t *testing.T) {
		postSvc := new(MockPostService)
		h := newHandlers(postSvc, new(MockFollowService), new(MockFeedService))

		body, _ := json.Marshal(map[string]interface{}{
			"caption": strings.Repeat("a", 1501),
		})

		req := withUser(httptest.NewRequest(http.MethodPost, "/api/posts", bytes.NewReader(body)), "author-a")
		w := httptest.NewRecorder()

		h.CreatePost(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		postSvc.AssertNotCalled(t, "CreatePost", mock.Anything, mock.Anything)
	})

	t.Run("Пустая подпись - 400", func(t *testing.T) {
		postSvc := new(MockPostService)
		h := newHandlers(postSvc, new(MockFollowService), new(MockFeedService))

		req := withUser(httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader(`{"caption":""}`)), "author-a")
		w := httptest.NewRecorder()

		h.CreatePost(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Без авторизации - 401", func(t *testing.T) {
		h := newHandlers(new(MockPostService), new(MockFollowService), new(MockFeedService))

		req := httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader(`{"caption":"x"}`))
		w := httptest.NewRecorder()

		h.CreatePost(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
