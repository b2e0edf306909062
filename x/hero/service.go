//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=mock/service.go
package hero

import (
	"context"
)

// Service is the interface for hero service
type Service interface {
	Create(ctx context.Context, hero Hero) (Hero, error)
	List(ctx context.Context, skip int64, limit int64) ([]Hero, error)
	Get(ctx context.Context, id string) (Hero, error)
	Update(ctx context.Context, id string, update Update) (Hero, error)
	Delete(ctx context.Context, id string) (Hero, error)
	Count(ctx context.Context) (int64, error)
}

type service struct {
	repo Repository
}

// NewService creates a new hero service
func NewService(repo Repository) Service {
	return &service{repo}
}

// Create creates a new hero
func (s *service) Create(ctx context.Context, hero Hero) (Hero, error) {
	ctx, span := tracer.Start(ctx, "Hero.Service.Create")
	defer span.End()

	return s.repo.Create(ctx, hero)
}

// List returns heroes with the given skip and limit
func (s *service) List(ctx context.Context, skip int64, limit int64) ([]Hero, error) {
	ctx, span := tracer.Start(ctx, "Hero.Service.List")
	defer span.End()

	return s.repo.List(ctx, skip, limit)
}

// Get returns a hero by id
func (s *service) Get(ctx context.Context, id string) (Hero, error) {
	ctx, span := tracer.Start(ctx, "Hero.Service.Get")
	defer span.End()

	return s.repo.Get(ctx, id)
}

// Update applies a partial update. An empty update returns the current hero.
func (s *service) Update(ctx context.Context, id string, update Update) (Hero, error) {
	ctx, span := tracer.Start(ctx, "Hero.Service.Update")
	defer span.End()

	if update.IsEmpty() {
		return s.repo.Get(ctx, id)
	}

	return s.repo.Update(ctx, id, update)
}

// Delete removes a hero by id
func (s *service) Delete(ctx context.Context, id string) (Hero, error) {
	ctx, span := tracer.Start(ctx, "Hero.Service.Delete")
	defer span.End()

	return s.repo.Delete(ctx, id)
}

// Count returns the total number of heroes
func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Hero.Service.Count")
	defer span.End()

	return s.repo.Count(ctx)
}
