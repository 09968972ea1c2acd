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

func TestCheckoutHandler_CreateSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		r := gin.New()
		r.POST("/v1/checkout-session", h.CreateSession)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout-session", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("amount below minimum", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		uc.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(entities.CheckoutSession{}, usecase.ErrAmountBelowMinimum)

		r := gin.New()
		r.POST("/v1/checkout-session", h.CreateSession)

		body := `{"account_id":"acct_1","amount":10}`
		req := httptest.NewRequest(http.MethodPost, "/v1/checkout-session", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid connected account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		uc.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(entities.CheckoutSession{}, usecase.ErrInvalidConnectedAccount)

		r := gin.New()
		r.POST("/v1/checkout-session", h.CreateSession)

		body := `{"account_id":"acct_gone","amount":1000}`
		req := httptest.NewRequest(http.MethodPost, "/v1/checkout-session", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["message"] != "Seller account is not properly set up for payments" {
			t.Fatalf("unexpected message: %+v", resp)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		uc.EXPECT().CreateSession(gomock.Any(), gomock.AssignableToTypeOf(usecase.CheckoutInput{})).DoAndReturn(
			func(_ interface{}, in usecase.CheckoutInput) (entities.CheckoutSession, error) {
				if in.AccountID != "acct_1" || in.Amount != 10000 || in.PostID != "post-1" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.CheckoutSession{ID: "cs_1", URL: "https://checkout/cs_1"}, nil
			},
		)

		r := gin.New()
		r.POST("/v1/checkout-session", h.CreateSession)

		body := `{"account_id":"acct_1","amount":10000,"product_info":{"name":"Lamp","post_id":"post-1"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/checkout-session", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["session_id"] != "cs_1" || resp["url"] != "https://checkout/cs_1" {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})
}

func TestCheckoutHandler_GetSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		uc.EXPECT().CompleteSession(gomock.Any(), "cs_missing").Return(entities.CheckoutSession{}, usecase.ErrSessionNotFound)

		r := gin.New()
		r.GET("/v1/checkout-session/:sessionId", h.GetSession)

		req := httptest.NewRequest(http.MethodGet, "/v1/checkout-session/cs_missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		uc.EXPECT().CompleteSession(gomock.Any(), "cs_1").Return(entities.CheckoutSession{
			ID:            "cs_1",
			PaymentStatus: entities.PaymentStatusPaid,
		}, nil)

		r := gin.New()
		r.GET("/v1/checkout-session/:sessionId", h.GetSession)

		req := httptest.NewRequest(http.MethodGet, "/v1/checkout-session/cs_1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
