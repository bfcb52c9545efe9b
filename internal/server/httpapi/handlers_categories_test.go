package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/mkravets/bookshelf/internal/common"
	"github.com/mkravets/bookshelf/internal/server/models"
)

func TestListCategories(t *testing.T) {
	cs := &fakeCategories{listResp: []*models.Category{
		{ID: 1, Name: "fiction", Description: "novels", CreatedAt: time.Now()},
	}}
	s := authedServer(nil, cs)

	rr := doRequest(t, s, http.MethodGet, "/categories", "token123", "")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var out []categoryView
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].Name != "fiction" {
		t.Errorf("unexpected list: %+v", out)
	}
}

func TestCreateCategory(t *testing.T) {
	cs := &fakeCategories{createResp: &models.Category{ID: 1, Name: "fiction"}}
	s := authedServer(nil, cs)

	rr := doRequest(t, s, http.MethodPost, "/categories", "token123", `{"name":"fiction","description":"novels"}`)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rr.Code)
	}
}

func TestCreateCategoryErrors(t *testing.T) {
	tests := []struct {
		name      string
		createErr error
		wantCode  int
	}{
		{"name too long", fmt.Errorf("%w: name must be at most 30 characters", common.ErrValidation), http.StatusBadRequest},
		{"duplicate name", fmt.Errorf("%w: name", common.ErrAlreadyExists), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := authedServer(nil, &fakeCategories{createErr: tt.createErr})
			rr := doRequest(t, s, http.MethodPost, "/categories", "token123", `{"name":"x"}`)
			if rr.Code != tt.wantCode {
				t.Errorf("expected %d, got %d", tt.wantCode, rr.Code)
			}
		})
	}
}

func TestGetCategoryNotFound(t *testing.T) {
	s := authedServer(nil, &fakeCategories{getErr: common.ErrNotFound})

	rr := doRequest(t, s, http.MethodGet, "/categories/99", "token123", "")

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rr.Code)
	}
}

func TestDeleteCategory(t *testing.T) {
	s := authedServer(nil, &fakeCategories{})

	rr := doRequest(t, s, http.MethodDelete, "/categories/1", "token123", "")

	if rr.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rr.Code)
	}
}
