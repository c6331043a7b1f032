package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fashion-catalog/internal/catalog"

	"github.com/prometheus/client_golang/prometheus"
)

type Repository interface {
	List(ctx context.Context) ([]catalog.Product, error)
	Get(ctx context.Context, id int64) (catalog.Product, error)
	Create(ctx context.Context, input catalog.NewProduct) (catalog.Product, error)
	Update(ctx context.Context, id int64, patch catalog.ProductPatch) (catalog.Product, error)
	Delete(ctx context.Context, id int64) (catalog.Product, int, error)
	IDs(ctx context.Context) ([]int64, error)
}

type Publisher interface {
	Publish(ctx context.Context, event catalog.ProductEvent) error
}

// Service owns the catalog business operations: store access, mutation
// counters and best-effort event publishing. A publish failure is logged and
// never surfaced to the caller.
type Service struct {
	repo      Repository
	publisher Publisher
	logger    *slog.Logger
	created   prometheus.Counter
	updated   prometheus.Counter
	deleted   prometheus.Counter
}

func New(repo Repository, publisher Publisher, logger *slog.Logger, created, updated, deleted prometheus.Counter) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		created:   created,
		updated:   updated,
		deleted:   deleted,
	}
}

func (s *Service) ListProducts(ctx context.Context) ([]catalog.Product, int, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("repo list: %w", err)
	}
	return items, len(items), nil
}

func (s *Service) GetProduct(ctx context.Context, id int64) (catalog.Product, error) {
	product, err := s.repo.Get(ctx, id)
	if err != nil {
		return catalog.Product{}, fmt.Errorf("repo get: %w", err)
	}
	return product, nil
}

func (s *Service) CreateProduct(ctx context.Context, input catalog.NewProduct) (catalog.Product, error) {
	product, err := s.repo.Create(ctx, input)
	if err != nil {
		return catalog.Product{}, fmt.Errorf("repo create: %w", err)
	}

	s.publish(ctx, catalog.EventCreated, product.ID, product.Title)
	s.created.Inc()
	return product, nil
}

func (s *Service) UpdateProduct(ctx context.Context, id int64, patch catalog.ProductPatch) (catalog.Product, error) {
	product, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return catalog.Product{}, fmt.Errorf("repo update: %w", err)
	}

	s.publish(ctx, catalog.EventUpdated, product.ID, product.Title)
	s.updated.Inc()
	return product, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id int64) (catalog.Product, int, error) {
	product, remaining, err := s.repo.Delete(ctx, id)
	if err != nil {
		return catalog.Product{}, 0, fmt.Errorf("repo delete: %w", err)
	}

	s.publish(ctx, catalog.EventDeleted, product.ID, product.Title)
	s.deleted.Inc()
	return product, remaining, nil
}

func (s *Service) AvailableIDs(ctx context.Context) ([]int64, error) {
	ids, err := s.repo.IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo ids: %w", err)
	}
	return ids, nil
}

func (s *Service) publish(ctx context.Context, eventType string, id int64, title string) {
	err := s.publisher.Publish(ctx, catalog.ProductEvent{
		EventType: eventType,
		ProductID: id,
		Title:     title,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error("publish catalog event failed",
			"event_type", eventType,
			"product_id", id,
			"error", err,
		)
	}
}
