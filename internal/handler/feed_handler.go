package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// GetFeed отдаёт материализованную ленту текущего пользователя, date DESC
func (h *Handlers) GetFeed(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok || userID == "" {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	limit, offset := paginationParams(r, 20)

	items, err := h.FeedService.GetFeed(r.Context(), userID, limit, offset)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"items":  items,
		"limit":  limit,
		"offset": offset,
	}, http.StatusOK)
}

func (h *Handlers) GetPostsByTag(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	limit, offset := paginationParams(r, 20)

	posts, err := h.PostService.GetPostsByTag(r.Context(), slug, limit, offset)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, map[string]interface{}{"posts": posts}, http.StatusOK)
}
