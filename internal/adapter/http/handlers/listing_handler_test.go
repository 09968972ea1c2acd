package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"unimarket/internal/adapter/http/handlers/mocks"
	"unimarket/internal/domain/entities"
	"unimarket/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestListingHandler_CreateListing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIListingUseCase(ctrl)
		h := NewListingHandler(uc)

		r := gin.New()
		r.POST("/v1/listings", h.CreateListing)

		req := httptest.NewRequest(http.MethodPost, "/v1/listings", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIListingUseCase(ctrl)
		h := NewListingHandler(uc)

		r := gin.New()
		r.POST("/v1/listings", h.CreateListing)

		req := httptest.NewRequest(http.MethodPost, "/v1/listings", bytes.NewBufferString(`{"title":"Lamp"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIListingUseCase(ctrl)
		h := NewListingHandler(uc)

		uc.EXPECT().CreateListing(gomock.Any(), gomock.AssignableToTypeOf(entities.Listing{})).DoAndReturn(
			func(_ interface{}, l entities.Listing) (entities.Listing, error) {
				if l.Title != "Lamp" || l.SellerEmail != "a@b.edu" {
					t.Fatalf("unexpected listing: %+v", l)
				}
				l.ID = "listing-1"
				l.Status = entities.ListingStatusAvailable
				return l, nil
			},
		)

		r := gin.New()
		r.POST("/v1/listings", h.CreateListing)

		body := `{"title":"Lamp","price":25,"category":"furniture","email":"a@b.edu"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/listings", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["id"] != "listing-1" {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})
}

func TestListingHandler_GetListing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIListingUseCase(ctrl)
		h := NewListingHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Listing{}, usecase.ErrListingNotFound)

		r := gin.New()
		r.GET("/v1/listings/:id", h.GetListing)

		req := httptest.NewRequest(http.MethodGet, "/v1/listings/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIListingUseCase(ctrl)
		h := NewListingHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "listing-1").Return(entities.Listing{ID: "listing-1", Title: "Lamp"}, nil)

		r := gin.New()
		r.GET("/v1/listings/:id", h.GetListing)

		req := httptest.NewRequest(http.MethodGet, "/v1/listings/listing-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestListingHandler_ListListings(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes filters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIListingUseCase(ctrl)
		h := NewListingHandler(uc)

		uc.EXPECT().ListListings(gomock.Any(), entities.ListingFilter{Category: "books", Search: "calculus"}).
			Return([]entities.Listing{{ID: "listing-1"}}, nil)

		r := gin.New()
		r.GET("/v1/listings", h.ListListings)

		req := httptest.NewRequest(http.MethodGet, "/v1/listings?category=books&search=calculus", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp []map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if len(resp) != 1 {
			t.Fatalf("expected 1 listing, got %d", len(resp))
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIListingUseCase(ctrl)
		h := NewListingHandler(uc)

		uc.EXPECT().ListListings(gomock.Any(), gomock.Any()).Return(nil, errors.New("db"))

		r := gin.New()
		r.GET("/v1/listings", h.ListListings)

		req := httptest.NewRequest(http.MethodGet, "/v1/listings", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestListingHandler_MarkListingSold(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIListingUseCase(ctrl)
	h := NewListingHandler(uc)

	uc.EXPECT().MarkSold(gomock.Any(), "listing-1").Return(nil)

	r := gin.New()
	r.POST("/v1/listings/:id/sold", h.MarkListingSold)

	req := httptest.NewRequest(http.MethodPost, "/v1/listings/listing-1/sold", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestListingHandler_DeleteListing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIListingUseCase(ctrl)
	h := NewListingHandler(uc)

	uc.EXPECT().DeleteListing(gomock.Any(), "listing-1").Return(nil)

	r := gin.New()
	r.DELETE("/v1/listings/:id", h.DeleteListing)

	req := httptest.NewRequest(http.MethodDelete, "/v1/listings/listing-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
