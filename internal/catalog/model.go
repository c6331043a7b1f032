package catalog

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("product not found")

const (
	EventsQueue  = "catalog.events"
	EventCreated = "product_created"
	EventUpdated = "product_updated"
	EventDeleted = "product_deleted"
)

// Product is a single catalog entry. IDs are server-assigned, monotonically
// increasing and never recycled; timestamps are managed server-side in UTC.
type Product struct {
	ID                 int64     `json:"id" example:"1"`
	Title              string    `json:"title" example:"Classic Denim Jacket"`
	Description        string    `json:"description" example:"Mid-wash denim jacket with brass buttons"`
	Price              float64   `json:"price" example:"49.99"`
	DiscountPercentage float64   `json:"discountPercentage" example:"12.5"`
	Rating             float64   `json:"rating" example:"4.2"`
	Stock              int       `json:"stock" example:"120"`
	Brand              string    `json:"brand" example:"Urban Thread"`
	Category           string    `json:"category" example:"jackets"`
	Thumbnail          string    `json:"thumbnail" example:"https://cdn.example.com/denim-jacket/thumb.jpg"`
	Images             []string  `json:"images"`
	CreatedAt          time.Time `json:"createdAt" example:"2026-01-15T09:00:00Z"`
	UpdatedAt          time.Time `json:"updatedAt" example:"2026-01-15T09:00:00Z"`
}

// NewProduct is a validated create payload with defaults already applied.
type NewProduct struct {
	Title              string
	Description        string
	Price              float64
	DiscountPercentage float64
	Rating             float64
	Stock              int
	Brand              string
	Category           string
	Thumbnail          string
	Images             []string
}

// ProductPatch carries only the fields present in an update payload.
// Nil means the field was absent and must be left untouched.
type ProductPatch struct {
	Title              *string
	Description        *string
	Price              *float64
	DiscountPercentage *float64
	Rating             *float64
	Stock              *int
	Brand              *string
	Category           *string
	Thumbnail          *string
	Images             *[]string
}

// Apply copies the fields present in the patch onto p. The id and createdAt
// are never touched; refreshing updatedAt is the store's job.
func (p *Product) Apply(patch ProductPatch) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.DiscountPercentage != nil {
		p.DiscountPercentage = *patch.DiscountPercentage
	}
	if patch.Rating != nil {
		p.Rating = *patch.Rating
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.Brand != nil {
		p.Brand = *patch.Brand
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Thumbnail != nil {
		p.Thumbnail = *patch.Thumbnail
	}
	if patch.Images != nil {
		p.Images = *patch.Images
	}
}

type ProductEvent struct {
	EventType string    `json:"event_type"`
	ProductID int64     `json:"product_id"`
	Title     string    `json:"title,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
