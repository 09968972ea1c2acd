package usecase

import (
	"context"
	"errors"
	"testing"

	"unimarket/internal/domain/entities"
	mock_interfaces "unimarket/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDeriveAccountStatus(t *testing.T) {
	cases := []struct {
		name             string
		detailsSubmitted bool
		chargesEnabled   bool
		want             entities.AccountStatus
	}{
		{name: "active", detailsSubmitted: true, chargesEnabled: true, want: entities.AccountStatusActive},
		{name: "restricted", detailsSubmitted: true, chargesEnabled: false, want: entities.AccountStatusRestricted},
		{name: "pending no details", detailsSubmitted: false, chargesEnabled: false, want: entities.AccountStatusPending},
		{name: "pending charges without details", detailsSubmitted: false, chargesEnabled: true, want: entities.AccountStatusPending},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DeriveAccountStatus(tc.detailsSubmitted, tc.chargesEnabled); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestNormalizeCapability(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want string
	}{
		{name: "string passes through", in: "pending", want: "pending"},
		{name: "active string", in: "active", want: "active"},
		{name: "true", in: true, want: "active"},
		{name: "false", in: false, want: "inactive"},
		{name: "nil", in: nil, want: "inactive"},
		{name: "other truthy value", in: 1, want: "active"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeCapability(tc.in); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestConnectAccountUseCase_CreateConnectAccount(t *testing.T) {
	t.Run("missing user", func(t *testing.T) {
		uc := NewConnectAccountUseCase(nil, nil, nil)
		_, err := uc.CreateConnectAccount(context.Background(), "  ")
		if !errors.Is(err, ErrNotAuthenticated) {
			t.Fatalf("expected ErrNotAuthenticated, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConnectedAccountRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewConnectAccountUseCase(repo, nil, gateway)

		gateway.EXPECT().CreateExpressAccount(gomock.Any()).Return("acct_new", nil)
		gateway.EXPECT().CreateAccountLink(gomock.Any(), "acct_new", gomock.Any(), gomock.Any()).Return("https://onboard/acct_new", nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ConnectedAccount{})).DoAndReturn(
			func(_ context.Context, a entities.ConnectedAccount) (entities.ConnectedAccount, error) {
				if a.UserID != "user-1" || a.StripeAccountID != "acct_new" || a.AccountType != "express" {
					t.Fatalf("unexpected record: %+v", a)
				}
				if a.ChargesEnabled || a.PayoutsEnabled || a.DetailsSubmitted {
					t.Fatalf("expected all capability flags off: %+v", a)
				}
				return a, nil
			},
		)

		res, err := uc.CreateConnectAccount(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.URL != "https://onboard/acct_new" || res.AccountID != "acct_new" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("local insert failure is non-fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConnectedAccountRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewConnectAccountUseCase(repo, nil, gateway)

		gateway.EXPECT().CreateExpressAccount(gomock.Any()).Return("acct_new", nil)
		gateway.EXPECT().CreateAccountLink(gomock.Any(), "acct_new", gomock.Any(), gomock.Any()).Return("https://onboard/acct_new", nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ConnectedAccount{}, errors.New("db down"))

		res, err := uc.CreateConnectAccount(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.URL == "" {
			t.Fatalf("expected onboarding url despite insert failure")
		}
	})

	t.Run("gateway error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewConnectAccountUseCase(nil, nil, gateway)

		gateway.EXPECT().CreateExpressAccount(gomock.Any()).Return("", errors.New("stripe down"))

		_, err := uc.CreateConnectAccount(context.Background(), "user-1")
		if err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestConnectAccountUseCase_GetConnectStatus(t *testing.T) {
	t.Run("missing user is valid empty state", func(t *testing.T) {
		uc := NewConnectAccountUseCase(nil, nil, nil)
		status, err := uc.GetConnectStatus(context.Background(), "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status.Connected || status.Status != entities.AccountStatusNotConnected {
			t.Fatalf("expected not_connected, got %+v", status)
		}
		if status.Capabilities.CardPayments != "inactive" || status.Capabilities.Transfers != "inactive" {
			t.Fatalf("expected inactive capabilities, got %+v", status.Capabilities)
		}
	})

	t.Run("no local record is valid empty state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConnectedAccountRepository(ctrl)
		uc := NewConnectAccountUseCase(repo, nil, nil)

		repo.EXPECT().GetLatestByUserID(gomock.Any(), "user-1").Return(entities.ConnectedAccount{}, nil)

		status, err := uc.GetConnectStatus(context.Background(), "", "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status.Status != entities.AccountStatusNotConnected {
			t.Fatalf("expected not_connected, got %+v", status)
		}
	})

	t.Run("reconciles provider state and upserts local record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConnectedAccountRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewConnectAccountUseCase(repo, nil, gateway)

		repo.EXPECT().GetLatestByUserID(gomock.Any(), "user-1").Return(entities.ConnectedAccount{
			UserID:          "user-1",
			StripeAccountID: "acct_live",
		}, nil)
		gateway.EXPECT().GetAccount(gomock.Any(), "acct_live").Return(entities.GatewayAccount{
			ID:               "acct_live",
			DetailsSubmitted: true,
			ChargesEnabled:   true,
			PayoutsEnabled:   true,
			Capabilities:     map[string]interface{}{"card_payments": "active", "transfers": true},
		}, nil)
		repo.EXPECT().Upsert(gomock.Any(), gomock.AssignableToTypeOf(entities.ConnectedAccount{})).DoAndReturn(
			func(_ context.Context, a entities.ConnectedAccount) error {
				if !a.ChargesEnabled || !a.DetailsSubmitted || !a.PayoutsEnabled {
					t.Fatalf("expected refreshed flags: %+v", a)
				}
				return nil
			},
		)

		status, err := uc.GetConnectStatus(context.Background(), "", "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !status.Connected || status.Status != entities.AccountStatusActive || status.AccountID != "acct_live" {
			t.Fatalf("unexpected status: %+v", status)
		}
		if status.Capabilities.CardPayments != "active" || status.Capabilities.Transfers != "active" {
			t.Fatalf("unexpected capabilities: %+v", status.Capabilities)
		}
	})

	t.Run("upsert failure does not block the response", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConnectedAccountRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewConnectAccountUseCase(repo, nil, gateway)

		gateway.EXPECT().GetAccount(gomock.Any(), "acct_r").Return(entities.GatewayAccount{
			ID:               "acct_r",
			DetailsSubmitted: true,
			ChargesEnabled:   false,
		}, nil)
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		status, err := uc.GetConnectStatus(context.Background(), "acct_r", "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status.Status != entities.AccountStatusRestricted || status.Connected {
			t.Fatalf("expected restricted, got %+v", status)
		}
	})

	t.Run("provider retrieve error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewConnectAccountUseCase(nil, nil, gateway)

		gateway.EXPECT().GetAccount(gomock.Any(), "acct_x").Return(entities.GatewayAccount{}, errors.New("stripe down"))

		_, err := uc.GetConnectStatus(context.Background(), "acct_x", "user-1")
		if err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestConnectAccountUseCase_DisconnectAccount(t *testing.T) {
	t.Run("missing account id", func(t *testing.T) {
		uc := NewConnectAccountUseCase(nil, nil, nil)
		if err := uc.DisconnectAccount(context.Background(), ""); !errors.Is(err, ErrInvalidAccountID) {
			t.Fatalf("expected ErrInvalidAccountID, got %v", err)
		}
	})

	t.Run("delete failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConnectedAccountRepository(ctrl)
		uc := NewConnectAccountUseCase(repo, nil, nil)

		repo.EXPECT().DeleteByAccountID(gomock.Any(), "acct_1").Return(errors.New("db"))

		if err := uc.DisconnectAccount(context.Background(), "acct_1"); !errors.Is(err, ErrDisconnectFailed) {
			t.Fatalf("expected ErrDisconnectFailed, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConnectedAccountRepository(ctrl)
		uc := NewConnectAccountUseCase(repo, nil, nil)

		repo.EXPECT().DeleteByAccountID(gomock.Any(), "acct_1").Return(nil)

		if err := uc.DisconnectAccount(context.Background(), "acct_1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestConnectAccountUseCase_RefreshAccountLink(t *testing.T) {
	t.Run("missing account id", func(t *testing.T) {
		uc := NewConnectAccountUseCase(nil, nil, nil)
		if _, err := uc.RefreshAccountLink(context.Background(), " "); !errors.Is(err, ErrInvalidAccountID) {
			t.Fatalf("expected ErrInvalidAccountID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewConnectAccountUseCase(nil, nil, gateway)

		gateway.EXPECT().CreateAccountLink(gomock.Any(), "acct_1", gomock.Any(), gomock.Any()).Return("https://onboard/acct_1", nil)

		url, err := uc.RefreshAccountLink(context.Background(), "acct_1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if url == "" {
			t.Fatalf("expected link url")
		}
	})
}
