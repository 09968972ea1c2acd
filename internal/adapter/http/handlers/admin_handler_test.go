package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"unimarket/internal/adapter/http/handlers/mocks"
	"unimarket/internal/domain/entities"
	"unimarket/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAdminHandler_BackfillAccounts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	listings := mocks.NewMockIListingUseCase(ctrl)
	analytics := mocks.NewMockIAnalyticsUseCase(ctrl)
	h := NewAdminHandler(listings, analytics)

	listings.EXPECT().BackfillSellerAccounts(gomock.Any()).Return(7, nil)

	r := gin.New()
	r.POST("/v1/admin/backfill-accounts", h.BackfillAccounts)

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/backfill-accounts", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if resp["updated"] != float64(7) {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAdminHandler_LinkTransaction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing fields returns 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		listings := mocks.NewMockIListingUseCase(ctrl)
		analytics := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewAdminHandler(listings, analytics)

		r := gin.New()
		r.POST("/v1/admin/link-transaction", h.LinkTransaction)

		body := []byte(`{"transaction_id":"tx-1"}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/admin/link-transaction", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown transaction returns 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		listings := mocks.NewMockIListingUseCase(ctrl)
		analytics := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewAdminHandler(listings, analytics)

		analytics.EXPECT().LinkTransaction(gomock.Any(), "tx-missing", "listing-1").
			Return(entities.DirectCharge{}, usecase.ErrTransactionNotFound)

		r := gin.New()
		r.POST("/v1/admin/link-transaction", h.LinkTransaction)

		body := []byte(`{"transaction_id":"tx-missing","listing_id":"listing-1"}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/admin/link-transaction", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		listings := mocks.NewMockIListingUseCase(ctrl)
		analytics := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewAdminHandler(listings, analytics)

		listingID := "listing-1"
		analytics.EXPECT().LinkTransaction(gomock.Any(), "tx-1", "listing-1").
			Return(entities.DirectCharge{ID: "tx-1", ListingID: &listingID}, nil)

		r := gin.New()
		r.POST("/v1/admin/link-transaction", h.LinkTransaction)

		body := []byte(`{"transaction_id":"tx-1","listing_id":"listing-1"}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/admin/link-transaction", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["success"] != true || resp["transaction"] == nil {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})
}
