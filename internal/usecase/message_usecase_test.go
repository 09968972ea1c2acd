package usecase

import (
	"context"
	"errors"
	"testing"

	"unimarket/internal/domain/entities"
	mock_interfaces "unimarket/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestMessageUseCase_SendMessage(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		uc := NewMessageUseCase(nil)
		_, err := uc.SendMessage(context.Background(), entities.Message{ListingID: "listing-1", BuyerEmail: "buyer@x.edu"})
		if !errors.Is(err, ErrMissingMessageFields) {
			t.Fatalf("expected ErrMissingMessageFields, got %v", err)
		}
	})

	t.Run("blank message body", func(t *testing.T) {
		uc := NewMessageUseCase(nil)
		_, err := uc.SendMessage(context.Background(), entities.Message{
			ListingID: "listing-1", BuyerEmail: "buyer@x.edu", SellerEmail: "seller@x.edu", Message: "   ",
		})
		if !errors.Is(err, ErrMissingMessageFields) {
			t.Fatalf("expected ErrMissingMessageFields, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMessageRepository(ctrl)
		uc := NewMessageUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Message{})).DoAndReturn(
			func(_ context.Context, m entities.Message) (entities.Message, error) {
				if m.BuyerEmail != "buyer@x.edu" || m.SellerEmail != "seller@x.edu" {
					t.Fatalf("unexpected message: %+v", m)
				}
				m.ID = "msg-1"
				return m, nil
			},
		)

		created, err := uc.SendMessage(context.Background(), entities.Message{
			ListingID: "listing-1", BuyerEmail: " buyer@x.edu ", SellerEmail: "seller@x.edu", Message: "Is this available?",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Fatalf("expected stored message id")
		}
	})
}

func TestMessageUseCase_ListForUser(t *testing.T) {
	t.Run("empty email is valid empty state", func(t *testing.T) {
		uc := NewMessageUseCase(nil)
		messages, err := uc.ListForUser(context.Background(), "  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(messages) != 0 {
			t.Fatalf("expected empty list, got %d", len(messages))
		}
	})

	t.Run("delegates to repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMessageRepository(ctrl)
		uc := NewMessageUseCase(repo)

		repo.EXPECT().ListByParticipant(gomock.Any(), "buyer@x.edu").Return([]entities.Message{{ID: "msg-1"}}, nil)

		messages, err := uc.ListForUser(context.Background(), "buyer@x.edu")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(messages) != 1 {
			t.Fatalf("expected 1 message, got %d", len(messages))
		}
	})
}
