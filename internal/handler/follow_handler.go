package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"photostream/internal/repository"
	"photostream/internal/service"
)

func (h *Handlers) Follow(w http.ResponseWriter, r *http.Request) {
	followerID, ok := r.Context().Value("userID").(string)
	if !ok || followerID == "" {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	followingID := mux.Vars(r)["id"]

	err := h.FollowService.Follow(r.Context(), followerID, followingID)
	if err != nil {
		if errors.Is(err, service.ErrSelfFollow) {
			WriteError(w, "Нельзя подписаться на самого себя", http.StatusBadRequest)
		} else if errors.Is(err, repository.ErrDuplicateFollow) {
			WriteError(w, "Подписка уже существует", http.StatusConflict)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, map[string]string{"status": "ok"}, http.StatusCreated)
}

func (h *Handlers) Unfollow(w http.ResponseWriter, r *http.Request) {
	followerID, ok := r.Context().Value("userID").(string)
	if !ok || followerID == "" {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	followingID := mux.Vars(r)["id"]

	err := h.FollowService.Unfollow(r.Context(), followerID, followingID)
	if err != nil {
		if strings.Contains(err.Error(), "не найдена") {
			WriteError(w, "Подписка не найдена", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, map[string]string{"status": "ok"}, http.StatusOK)
}

func (h *Handlers) GetFollowers(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	limit, offset := paginationParams(r, 50)

	followers, err := h.FollowService.Followers(r.Context(), userID, limit, offset)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	total, err := h.FollowService.CountFollowers(r.Context(), userID)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"followers": followers,
		"total":     total,
		"limit":     limit,
		"offset":    offset,
	}, http.StatusOK)
}

func paginationParams(r *http.Request, defaultLimit int) (int, int) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > 100 {
		limit = defaultLimit
	}
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
