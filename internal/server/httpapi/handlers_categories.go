package httpapi

import (
	"net/http"
	"time"

	"github.com/mkravets/bookshelf/internal/server/models"
)

type categoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type categoryView struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

func toCategoryView(c *models.Category) categoryView {
	return categoryView{ID: c.ID, Name: c.Name, Description: c.Description, Timestamp: c.CreatedAt}
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	items, err := s.categories.List(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	views := make([]categoryView, 0, len(items))
	for _, c := range items {
		views = append(views, toCategoryView(c))
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		errorJSON(w, http.StatusBadRequest, "invalid id")
		return
	}

	category, err := s.categories.Get(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryView(category))
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var in categoryRequest
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}

	category, err := s.categories.Create(r.Context(), in.Name, in.Description)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCategoryView(category))
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		errorJSON(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := s.categories.Delete(r.Context(), id); err != nil {
		s.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
