package animals

import (
	"context"

	"pet-adoption/internal/contracts"
)

type Repository interface {
	Create(ctx context.Context, a Animal) (Animal, error)
	GetByID(ctx context.Context, id int64) (Animal, error)
	ListByStatus(ctx context.Context, status Status) ([]Animal, error)
	Count(ctx context.Context) (int, error)

	// MarkAdopted cambia available -> adopted.
	// ErrNotFound si no existe, ErrAlreadyAdopted si ya no estaba available.
	MarkAdopted(ctx context.Context, id int64) error
}

// AdoptionRecorder es el puerto hacia el servicio de registros de adopción.
type AdoptionRecorder interface {
	RecordAdoption(ctx context.Context, req contracts.CreateAdoptionRequest) (contracts.CreateAdoptionResponse, error)
}
