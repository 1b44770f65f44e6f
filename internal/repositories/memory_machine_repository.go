package repositories

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/promco/backend/internal/models"
)

type memoryMachineRepository struct {
	store *memoryStore[models.Machine, *models.Machine]
}

// NewMemoryMachineRepository creates an in-memory machine repository seeded with machines
func NewMemoryMachineRepository(seed ...models.Machine) *memoryMachineRepository {
	repo := &memoryMachineRepository{store: newMemoryStore[models.Machine]()}
	for _, m := range seed {
		if m.CreatedAt.IsZero() {
			m.CreatedAt = time.Now().UTC()
		}
		repo.store.insert(m, nil)
	}
	return repo
}

func (r *memoryMachineRepository) GetAll(ctx context.Context) ([]models.Machine, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to query machines: %w", mapDBError(ctx, err))
	}
	machines := r.store.list()
	sort.SliceStable(machines, func(i, j int) bool { return machines[i].Name < machines[j].Name })
	return machines, nil
}

func (r *memoryMachineRepository) GetByID(ctx context.Context, id int) (*models.Machine, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to get machine by id: %w", mapDBError(ctx, err))
	}
	m, ok := r.store.get(id)
	if !ok {
		return nil, fmt.Errorf("machine %d: %w", id, models.ErrNotFound)
	}
	return &m, nil
}

func (r *memoryMachineRepository) Create(ctx context.Context, m *models.Machine) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to create machine: %w", mapDBError(ctx, err))
	}
	candidate := *m
	candidate.CreatedAt = time.Now().UTC().Truncate(time.Second)
	stored, _ := r.store.insert(candidate, nil)
	m.ID = stored.ID
	m.CreatedAt = stored.CreatedAt
	return nil
}

func (r *memoryMachineRepository) Update(ctx context.Context, m *models.Machine) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to update machine: %w", mapDBError(ctx, err))
	}
	existing, ok := r.store.get(m.ID)
	if !ok {
		return fmt.Errorf("machine %d: %w", m.ID, models.ErrNotFound)
	}
	updated := *m
	updated.CreatedAt = existing.CreatedAt
	if found, _ := r.store.replace(updated, nil); !found {
		return fmt.Errorf("machine %d: %w", m.ID, models.ErrNotFound)
	}
	return nil
}

func (r *memoryMachineRepository) Delete(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to delete machine: %w", mapDBError(ctx, err))
	}
	if !r.store.remove(id) {
		return fmt.Errorf("machine %d: %w", id, models.ErrNotFound)
	}
	return nil
}
