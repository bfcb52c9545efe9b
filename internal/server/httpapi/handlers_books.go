package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mkravets/bookshelf/internal/server/models"
)

type bookRequest struct {
	Title string `json:"title"`
}

type bookView struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

func toBookView(b *models.Book) bookView {
	return bookView{ID: b.ID, Title: b.Title}
}

func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

func (s *Server) handleListBooks(w http.ResponseWriter, r *http.Request) {
	items, err := s.books.List(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	views := make([]bookView, 0, len(items))
	for _, b := range items {
		views = append(views, toBookView(b))
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleGetBook(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		errorJSON(w, http.StatusBadRequest, "invalid id")
		return
	}

	book, err := s.books.Get(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookView(book))
}

func (s *Server) handleCreateBook(w http.ResponseWriter, r *http.Request) {
	var in bookRequest
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}

	book, err := s.books.Create(r.Context(), in.Title)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	user := UserFromContext(r.Context())
	s.logger.Info(r.Context(), "Book created", "id", book.ID, "username", user.Username)
	writeJSON(w, http.StatusCreated, toBookView(book))
}

func (s *Server) handleUpdateBook(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		errorJSON(w, http.StatusBadRequest, "invalid id")
		return
	}

	var in bookRequest
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}

	book, err := s.books.Update(r.Context(), id, in.Title)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookView(book))
}

func (s *Server) handleDeleteBook(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		errorJSON(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := s.books.Delete(r.Context(), id); err != nil {
		s.respondError(w, r, err)
		return
	}

	user := UserFromContext(r.Context())
	s.logger.Info(r.Context(), "Book deleted", "id", id, "username", user.Username)
	w.WriteHeader(http.StatusNoContent)
}
