package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-adoption/internal/domain/animals"
)

type animalRepo struct {
	mu     sync.RWMutex
	byID   map[int64]animals.Animal
	nextID int64
}

func NewAnimalRepo() animals.Repository {
	return &animalRepo{
		byID: make(map[int64]animals.Animal),
	}
}

func (r *animalRepo) Create(ctx context.Context, a animals.Animal) (animals.Animal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.Name) == "" {
		return animals.Animal{}, errors.New("animal name required")
	}
	if a.Status == "" {
		a.Status = animals.StatusAvailable
	}

	r.nextID++
	a.ID = r.nextID
	r.byID[a.ID] = a
	return a, nil
}

func (r *animalRepo) GetByID(ctx context.Context, id int64) (animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return animals.Animal{}, animals.ErrNotFound
	}
	return a, nil
}

func (r *animalRepo) ListByStatus(ctx context.Context, status animals.Status) ([]animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animals.Animal, 0)
	for _, a := range r.byID {
		if a.Status == status {
			out = append(out, a)
		}
	}

	// Orden de inserción (id asc), igual que los almacenes SQL
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *animalRepo) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID), nil
}

func (r *animalRepo) MarkAdopted(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return animals.ErrNotFound
	}
	if a.Status != animals.StatusAvailable {
		return animals.ErrAlreadyAdopted
	}
	a.Status = animals.StatusAdopted
	r.byID[id] = a
	return nil
}
