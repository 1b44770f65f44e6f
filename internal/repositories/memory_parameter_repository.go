package repositories

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/promco/backend/internal/models"
)

type memoryParameterRepository struct {
	store  *memoryStore[models.Parameter, *models.Parameter]
	values *memoryStore[models.QualifiedValue, *models.QualifiedValue]
}

// NewMemoryParameterRepository creates an in-memory parameter repository.
// Qualified values refer to parameters by their position in seed, starting at 1.
func NewMemoryParameterRepository(seed []models.Parameter, values []models.QualifiedValue) *memoryParameterRepository {
	repo := &memoryParameterRepository{
		store:  newMemoryStore[models.Parameter](),
		values: newMemoryStore[models.QualifiedValue](),
	}
	for _, p := range seed {
		if p.CreatedAt.IsZero() {
			p.CreatedAt = time.Now().UTC()
		}
		repo.store.insert(p, nil)
	}
	for _, v := range values {
		repo.values.insert(v, nil)
	}
	return repo
}

func sameCode(code string) func(*models.Parameter) bool {
	return func(p *models.Parameter) bool { return p.Code == code }
}

func (r *memoryParameterRepository) GetAll(ctx context.Context) ([]models.Parameter, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to query parameters: %w", mapDBError(ctx, err))
	}
	return r.store.list(), nil
}

func (r *memoryParameterRepository) GetByID(ctx context.Context, id int) (*models.Parameter, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to get parameter by id: %w", mapDBError(ctx, err))
	}
	p, ok := r.store.get(id)
	if !ok {
		return nil, fmt.Errorf("parameter %d: %w", id, models.ErrNotFound)
	}
	return &p, nil
}

func (r *memoryParameterRepository) Create(ctx context.Context, p *models.Parameter) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to create parameter: %w", mapDBError(ctx, err))
	}
	candidate := *p
	candidate.CreatedAt = time.Now().UTC().Truncate(time.Second)
	stored, ok := r.store.insert(candidate, sameCode(candidate.Code))
	if !ok {
		return fmt.Errorf("parameter code %q: %w", candidate.Code, models.ErrAlreadyExists)
	}
	p.ID = stored.ID
	p.CreatedAt = stored.CreatedAt
	return nil
}

func (r *memoryParameterRepository) Update(ctx context.Context, p *models.Parameter) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to update parameter: %w", mapDBError(ctx, err))
	}
	existing, ok := r.store.get(p.ID)
	if !ok {
		return fmt.Errorf("parameter %d: %w", p.ID, models.ErrNotFound)
	}
	updated := *p
	updated.CreatedAt = existing.CreatedAt

	found, conflicted := r.store.replace(updated, sameCode(updated.Code))
	switch {
	case !found:
		return fmt.Errorf("parameter %d: %w", p.ID, models.ErrNotFound)
	case conflicted:
		return fmt.Errorf("parameter code %q: %w", updated.Code, models.ErrAlreadyExists)
	}
	return nil
}

func (r *memoryParameterRepository) Delete(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to delete parameter: %w", mapDBError(ctx, err))
	}
	if !r.store.remove(id) {
		return fmt.Errorf("parameter %d: %w", id, models.ErrNotFound)
	}
	for _, v := range r.values.filter(func(v *models.QualifiedValue) bool { return v.ParameterID == id }) {
		r.values.remove(v.ID)
	}
	return nil
}

func (r *memoryParameterRepository) GetQualifiedValues(ctx context.Context, parameterID int) ([]models.QualifiedValue, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to query qualified values: %w", mapDBError(ctx, err))
	}
	values := r.values.filter(func(v *models.QualifiedValue) bool { return v.ParameterID == parameterID })
	sort.SliceStable(values, func(i, j int) bool { return lessFloat(values[i].MinValue, values[j].MinValue) })
	return values, nil
}

// lessFloat orders nil first, like NULL in a MySQL ascending sort
func lessFloat(a, b *float64) bool {
	switch {
	case a == nil:
		return b != nil
	case b == nil:
		return false
	}
	return *a < *b
}
