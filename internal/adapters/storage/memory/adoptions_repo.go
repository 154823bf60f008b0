package memory

import (
	"context"
	"sort"
	"sync"

	"pet-adoption/internal/domain/adoptions"
)

type adoptionRepo struct {
	mu      sync.RWMutex
	records []adoptions.Record
}

func NewAdoptionRepo() adoptions.Repository {
	return &adoptionRepo{}
}

func (r *adoptionRepo) FindConfirmedByAnimal(ctx context.Context, animalID int64) (adoptions.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if rec, ok := r.confirmedLocked(animalID); ok {
		return rec, nil
	}
	return adoptions.Record{}, adoptions.ErrNotFound
}

// Create: el chequeo de confirmada y el insert van bajo el mismo lock,
// equivalente al índice único parcial de los almacenes SQL.
func (r *adoptionRepo) Create(ctx context.Context, rec adoptions.Record) (adoptions.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rec.Status == "" {
		rec.Status = adoptions.StatusPending
	}
	if rec.Status == adoptions.StatusConfirmed {
		if _, exists := r.confirmedLocked(rec.AnimalID); exists {
			return adoptions.Record{}, adoptions.ErrAlreadyAdopted
		}
	}

	rec.ID = int64(len(r.records) + 1)
	r.records = append(r.records, rec)
	return rec, nil
}

func (r *adoptionRepo) List(ctx context.Context) ([]adoptions.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]adoptions.Record, len(r.records))
	copy(out, r.records)

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *adoptionRepo) confirmedLocked(animalID int64) (adoptions.Record, bool) {
	for _, rec := range r.records {
		if rec.AnimalID == animalID && rec.Status == adoptions.StatusConfirmed {
			return rec, true
		}
	}
	return adoptions.Record{}, false
}
