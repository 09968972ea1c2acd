package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"unimarket/internal/domain/entities"
	mock_interfaces "unimarket/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestListingUseCase_CreateListing(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		uc := NewListingUseCase(nil)
		_, err := uc.CreateListing(context.Background(), entities.Listing{Title: "Lamp"})
		if !errors.Is(err, ErrMissingListingFields) {
			t.Fatalf("expected ErrMissingListingFields, got %v", err)
		}
	})

	t.Run("zero price", func(t *testing.T) {
		uc := NewListingUseCase(nil)
		_, err := uc.CreateListing(context.Background(), entities.Listing{
			Title: "Lamp", Category: "furniture", SellerEmail: "a@b.edu",
		})
		if !errors.Is(err, ErrMissingListingFields) {
			t.Fatalf("expected ErrMissingListingFields, got %v", err)
		}
	})

	t.Run("assigns test account and defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIListingRepository(ctrl)
		uc := NewListingUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Listing{})).DoAndReturn(
			func(_ context.Context, l entities.Listing) (entities.Listing, error) {
				if !strings.HasPrefix(l.SellerStripeAccountID, entities.TestAccountPrefix) {
					t.Fatalf("expected synthetic account id, got %q", l.SellerStripeAccountID)
				}
				if l.Status != entities.ListingStatusAvailable {
					t.Fatalf("expected available status, got %s", l.Status)
				}
				if l.Location == "" {
					t.Fatalf("expected default location")
				}
				l.ID = "listing-1"
				return l, nil
			},
		)

		created, err := uc.CreateListing(context.Background(), entities.Listing{
			Title: " Lamp ", Price: 25, Category: "furniture", SellerEmail: "a@b.edu",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Title != "Lamp" {
			t.Fatalf("expected trimmed title, got %q", created.Title)
		}
	})
}

func TestListingUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewListingUseCase(nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidListingID) {
			t.Fatalf("expected ErrInvalidListingID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIListingRepository(ctrl)
		uc := NewListingUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Listing{}, nil)

		_, err := uc.GetByID(context.Background(), "missing")
		if !errors.Is(err, ErrListingNotFound) {
			t.Fatalf("expected ErrListingNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIListingRepository(ctrl)
		uc := NewListingUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "listing-1").Return(entities.Listing{ID: "listing-1", Title: "Lamp"}, nil)

		l, err := uc.GetByID(context.Background(), "listing-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if l.Title != "Lamp" {
			t.Fatalf("unexpected listing: %+v", l)
		}
	})
}

func TestListingUseCase_UpdateListing(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		uc := NewListingUseCase(nil)
		_, err := uc.UpdateListing(context.Background(), entities.Listing{ID: "listing-1", Title: "", Price: 10})
		if !errors.Is(err, ErrInvalidListingPayload) {
			t.Fatalf("expected ErrInvalidListingPayload, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIListingRepository(ctrl)
		uc := NewListingUseCase(repo)

		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Listing{}, nil)

		_, err := uc.UpdateListing(context.Background(), entities.Listing{ID: "gone", Title: "Lamp", Price: 10})
		if !errors.Is(err, ErrListingNotFound) {
			t.Fatalf("expected ErrListingNotFound, got %v", err)
		}
	})
}

func TestListingUseCase_BackfillSellerAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIListingRepository(ctrl)
	uc := NewListingUseCase(repo)

	repo.EXPECT().BackfillSellerAccounts(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, assign func() string) (int, error) {
			id := assign()
			if !strings.HasPrefix(id, entities.TestAccountPrefix) {
				t.Fatalf("expected test account prefix, got %q", id)
			}
			return 3, nil
		},
	)

	updated, err := uc.BackfillSellerAccounts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated != 3 {
		t.Fatalf("expected 3 updated, got %d", updated)
	}
}

func TestNewTestAccountID(t *testing.T) {
	id := NewTestAccountID()
	if !strings.HasPrefix(id, entities.TestAccountPrefix) {
		t.Fatalf("expected prefix %q, got %q", entities.TestAccountPrefix, id)
	}
	if len(id) != len(entities.TestAccountPrefix)+10 {
		t.Fatalf("unexpected id length: %q", id)
	}
}
