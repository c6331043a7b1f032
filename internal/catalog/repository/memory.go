package repository

import (
	"context"
	"slices"
	"sync"
	"time"

	"fashion-catalog/internal/catalog"
)

// MemoryRepository holds the authoritative product collection in process
// memory. The whole collection is lost on restart; that is the contract.
// A mutex keeps every operation atomic even though gin serves concurrently.
type MemoryRepository struct {
	mu     sync.Mutex
	items  []catalog.Product
	nextID int64
}

// NewMemory builds a repository preloaded with the given products. The id
// counter starts at max(seed ids)+1 and only ever moves forward, so deleted
// ids are never handed out again.
func NewMemory(seed []catalog.Product) *MemoryRepository {
	items := make([]catalog.Product, 0, len(seed))
	var next int64 = 1
	for _, p := range seed {
		items = append(items, cloneProduct(p))
		if p.ID >= next {
			next = p.ID + 1
		}
	}
	return &MemoryRepository{items: items, nextID: next}
}

var seededAt = time.Date(2026, time.January, 15, 9, 0, 0, 0, time.UTC)

// SeedProducts returns the fixed startup collection.
func SeedProducts() []catalog.Product {
	seed := []catalog.Product{
		{
			ID:                 1,
			Title:              "Classic Denim Jacket",
			Description:        "Mid-wash denim jacket with brass buttons and two chest pockets",
			Price:              49.99,
			DiscountPercentage: 12.5,
			Rating:             4.2,
			Stock:              120,
			Brand:              "Urban Thread",
			Category:           "jackets",
			Thumbnail:          "https://cdn.example.com/products/denim-jacket/thumb.jpg",
			Images: []string{
				"https://cdn.example.com/products/denim-jacket/1.jpg",
				"https://cdn.example.com/products/denim-jacket/2.jpg",
			},
		},
		{
			ID:                 2,
			Title:              "Slim Fit Chinos",
			Description:        "Stretch-cotton chinos in sand, tapered leg",
			Price:              34.5,
			DiscountPercentage: 5,
			Rating:             4.6,
			Stock:              85,
			Brand:              "Harbor & Co",
			Category:           "trousers",
			Thumbnail:          "https://cdn.example.com/products/slim-chinos/thumb.jpg",
			Images:             []string{"https://cdn.example.com/products/slim-chinos/1.jpg"},
		},
		{
			ID:                 3,
			Title:              "Merino Crewneck Sweater",
			Description:        "Lightweight merino wool crewneck in charcoal",
			Price:              72,
			Rating:             4.8,
			Stock:              40,
			Brand:              "Northmill",
			Category:           "knitwear",
			Thumbnail:          "https://cdn.example.com/products/merino-crewneck/thumb.jpg",
			Images:             []string{"https://cdn.example.com/products/merino-crewneck/1.jpg"},
		},
		{
			ID:                 4,
			Title:              "Canvas High-Top Sneakers",
			Description:        "Off-white canvas high-tops with vulcanized sole",
			Price:              59.95,
			DiscountPercentage: 20,
			Rating:             4.1,
			Stock:              200,
			Brand:              "Pavement",
			Category:           "shoes",
			Thumbnail:          "https://cdn.example.com/products/canvas-hightops/thumb.jpg",
			Images: []string{
				"https://cdn.example.com/products/canvas-hightops/1.jpg",
				"https://cdn.example.com/products/canvas-hightops/2.jpg",
				"https://cdn.example.com/products/canvas-hightops/3.jpg",
			},
		},
		{
			ID:          5,
			Title:       "Silk Patterned Scarf",
			Description: "Hand-rolled silk scarf with geometric print",
			Price:       28,
			Rating:      4.4,
			Stock:       60,
			Brand:       "Atelier Lune",
			Category:    "accessories",
			Thumbnail:   "https://cdn.example.com/products/silk-scarf/thumb.jpg",
			Images:      []string{"https://cdn.example.com/products/silk-scarf/1.jpg"},
		},
	}
	for i := range seed {
		seed[i].CreatedAt = seededAt
		seed[i].UpdatedAt = seededAt
	}
	return seed
}

// List returns the full collection in insertion order.
func (r *MemoryRepository) List(_ context.Context) ([]catalog.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := make([]catalog.Product, 0, len(r.items))
	for _, p := range r.items {
		list = append(list, cloneProduct(p))
	}
	return list, nil
}

func (r *MemoryRepository) Get(_ context.Context, id int64) (catalog.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return catalog.Product{}, catalog.ErrNotFound
	}
	return cloneProduct(r.items[idx]), nil
}

func (r *MemoryRepository) Create(_ context.Context, input catalog.NewProduct) (catalog.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	p := catalog.Product{
		ID:                 r.nextID,
		Title:              input.Title,
		Description:        input.Description,
		Price:              input.Price,
		DiscountPercentage: input.DiscountPercentage,
		Rating:             input.Rating,
		Stock:              input.Stock,
		Brand:              input.Brand,
		Category:           input.Category,
		Thumbnail:          input.Thumbnail,
		Images:             slices.Clone(input.Images),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	r.nextID++
	r.items = append(r.items, p)
	return cloneProduct(p), nil
}

// Update merges only the fields present in the patch onto the stored record
// and refreshes updatedAt. Id and createdAt are immutable.
func (r *MemoryRepository) Update(_ context.Context, id int64, patch catalog.ProductPatch) (catalog.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return catalog.Product{}, catalog.ErrNotFound
	}
	r.items[idx].Apply(patch)
	r.items[idx].UpdatedAt = time.Now().UTC()
	return cloneProduct(r.items[idx]), nil
}

// Delete removes the record permanently and returns its final snapshot plus
// the remaining collection size.
func (r *MemoryRepository) Delete(_ context.Context, id int64) (catalog.Product, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return catalog.Product{}, 0, catalog.ErrNotFound
	}
	removed := r.items[idx]
	r.items = slices.Delete(r.items, idx, idx+1)
	return cloneProduct(removed), len(r.items), nil
}

// IDs returns the ids of all live records in insertion order, for not-found
// responses.
func (r *MemoryRepository) IDs(_ context.Context) ([]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]int64, 0, len(r.items))
	for _, p := range r.items {
		ids = append(ids, p.ID)
	}
	return ids, nil
}

func (r *MemoryRepository) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items), nil
}

func (r *MemoryRepository) Health() error {
	return nil
}

func (r *MemoryRepository) indexOf(id int64) int {
	for i, p := range r.items {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func cloneProduct(p catalog.Product) catalog.Product {
	p.Images = slices.Clone(p.Images)
	if p.Images == nil {
		p.Images = []string{}
	}
	return p
}
