package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"unimarket/internal/domain/entities"
	"unimarket/internal/usecase/interfaces"
)

var ErrMissingMessageFields = errors.New("missing required message fields")

// IMessageUseCase exposes buyer/seller messaging operations.

type IMessageUseCase interface {
	SendMessage(ctx context.Context, m entities.Message) (entities.Message, error)
	ListForUser(ctx context.Context, userEmail string) ([]entities.Message, error)
}

type MessageUseCase struct {
	repo interfaces.IMessageRepository
}

var _ IMessageUseCase = (*MessageUseCase)(nil)

func NewMessageUseCase(repo interfaces.IMessageRepository) *MessageUseCase {
	return &MessageUseCase{repo: repo}
}

func (u *MessageUseCase) SendMessage(ctx context.Context, m entities.Message) (entities.Message, error) {
	m.ListingID = strings.TrimSpace(m.ListingID)
	m.BuyerEmail = strings.TrimSpace(m.BuyerEmail)
	m.SellerEmail = strings.TrimSpace(m.SellerEmail)
	if m.ListingID == "" || m.BuyerEmail == "" || m.SellerEmail == "" || strings.TrimSpace(m.Message) == "" {
		return entities.Message{}, ErrMissingMessageFields
	}

	created, err := u.repo.Create(ctx, m)
	if err != nil {
		log.Printf("[message][usecase] create failed listing_id=%s err=%v", m.ListingID, err)
		return entities.Message{}, err
	}
	return created, nil
}

// ListForUser returns the conversation history for either side of a listing.
// An empty email is a valid empty state, not an error.
func (u *MessageUseCase) ListForUser(ctx context.Context, userEmail string) ([]entities.Message, error) {
	userEmail = strings.TrimSpace(userEmail)
	if userEmail == "" {
		return []entities.Message{}, nil
	}
	return u.repo.ListByParticipant(ctx, userEmail)
}
