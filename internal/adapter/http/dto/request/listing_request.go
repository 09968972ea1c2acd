package request

import (
	"strings"

	"unimarket/internal/domain/entities"
)

// CreateListingRequest is the payload for seller listing creation. The email
// field is mapped to seller_email on the entity.
type CreateListingRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Email       string  `json:"email" binding:"required"`
	ImageURL    string  `json:"image_url"`
	Location    string  `json:"location"`
}

func (r CreateListingRequest) ToEntity() entities.Listing {
	return entities.Listing{
		Title:       strings.TrimSpace(r.Title),
		Description: r.Description,
		Price:       r.Price,
		Category:    strings.TrimSpace(r.Category),
		SellerEmail: strings.TrimSpace(r.Email),
		ImageURL:    r.ImageURL,
		Location:    strings.TrimSpace(r.Location),
	}
}

// UpdateListingRequest is the payload for listing edits.
type UpdateListingRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url"`
	Location    string  `json:"location"`
	Status      string  `json:"status"`
}

func (r UpdateListingRequest) ToEntity(id string) entities.Listing {
	status := entities.ListingStatus(r.Status)
	switch status {
	case entities.ListingStatusAvailable, entities.ListingStatusPending, entities.ListingStatusSold:
	default:
		status = entities.ListingStatusAvailable
	}
	return entities.Listing{
		ID:          id,
		Title:       strings.TrimSpace(r.Title),
		Description: r.Description,
		Price:       r.Price,
		Category:    strings.TrimSpace(r.Category),
		ImageURL:    r.ImageURL,
		Location:    strings.TrimSpace(r.Location),
		Status:      status,
	}
}
