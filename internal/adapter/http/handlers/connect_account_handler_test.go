package handlers

import (
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

func TestConnectAccountHandler_CreateAccount(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not authenticated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConnectAccountUseCase(ctrl)
		h := NewConnectAccountHandler(uc)

		uc.EXPECT().CreateConnectAccount(gomock.Any(), "").Return(entities.OnboardingResult{}, usecase.ErrNotAuthenticated)

		r := gin.New()
		r.POST("/v1/connect/accounts", h.CreateAccount)

		req := httptest.NewRequest(http.MethodPost, "/v1/connect/accounts", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConnectAccountUseCase(ctrl)
		h := NewConnectAccountHandler(uc)

		uc.EXPECT().CreateConnectAccount(gomock.Any(), "user-1").Return(entities.OnboardingResult{
			URL:       "https://onboard/acct_new",
			AccountID: "acct_new",
		}, nil)

		r := gin.New()
		r.POST("/v1/connect/accounts", func(c *gin.Context) {
			c.Set("userID", "user-1")
			h.CreateAccount(c)
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/connect/accounts", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["success"] != true || resp["account_id"] != "acct_new" {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})
}

func TestConnectAccountHandler_GetStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("anonymous user gets not_connected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConnectAccountUseCase(ctrl)
		h := NewConnectAccountHandler(uc)

		uc.EXPECT().GetConnectStatus(gomock.Any(), "", "").Return(entities.ConnectStatus{
			Connected: false,
			Status:    entities.AccountStatusNotConnected,
			Capabilities: entities.AccountCapabilities{
				CardPayments: "inactive",
				Transfers:    "inactive",
			},
		}, nil)

		r := gin.New()
		r.GET("/v1/connect/accounts/status", h.GetStatus)

		req := httptest.NewRequest(http.MethodGet, "/v1/connect/accounts/status", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["connected"] != false || resp["status"] != "not_connected" {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("explicit account id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConnectAccountUseCase(ctrl)
		h := NewConnectAccountHandler(uc)

		uc.EXPECT().GetConnectStatus(gomock.Any(), "acct_live", "user-1").Return(entities.ConnectStatus{
			Connected: true,
			Status:    entities.AccountStatusActive,
			AccountID: "acct_live",
			Capabilities: entities.AccountCapabilities{
				CardPayments: "active",
				Transfers:    "active",
			},
		}, nil)

		r := gin.New()
		r.GET("/v1/connect/accounts/status", h.GetStatus)

		req := httptest.NewRequest(http.MethodGet, "/v1/connect/accounts/status?account_id=acct_live&user_id=user-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["status"] != "active" {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})
}

func TestConnectAccountHandler_Disconnect(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid account id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConnectAccountUseCase(ctrl)
		h := NewConnectAccountHandler(uc)

		uc.EXPECT().DisconnectAccount(gomock.Any(), "not-an-account").Return(usecase.ErrInvalidAccountID)

		r := gin.New()
		r.DELETE("/v1/connect/accounts/:accountId", h.Disconnect)

		req := httptest.NewRequest(http.MethodDelete, "/v1/connect/accounts/not-an-account", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConnectAccountUseCase(ctrl)
		h := NewConnectAccountHandler(uc)

		uc.EXPECT().DisconnectAccount(gomock.Any(), "acct_1").Return(nil)

		r := gin.New()
		r.DELETE("/v1/connect/accounts/:accountId", h.Disconnect)

		req := httptest.NewRequest(http.MethodDelete, "/v1/connect/accounts/acct_1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestConnectAccountHandler_RefreshLink(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIConnectAccountUseCase(ctrl)
	h := NewConnectAccountHandler(uc)

	uc.EXPECT().RefreshAccountLink(gomock.Any(), "acct_1").Return("https://onboard/acct_1", nil)

	r := gin.New()
	r.POST("/v1/connect/accounts/:accountId/link", h.RefreshLink)

	req := httptest.NewRequest(http.MethodPost, "/v1/connect/accounts/acct_1/link", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if resp["url"] != "https://onboard/acct_1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
