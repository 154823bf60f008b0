package adoptions

import "context"

type Repository interface {
	// FindConfirmedByAnimal devuelve ErrNotFound si no hay adopción confirmada.
	FindConfirmedByAnimal(ctx context.Context, animalID int64) (Record, error)

	// Create asigna ID. Con status confirmed, una segunda confirmación para el
	// mismo animal debe fallar con ErrAlreadyAdopted (constraint del almacén).
	Create(ctx context.Context, r Record) (Record, error)

	// List devuelve todo, más reciente primero.
	List(ctx context.Context) ([]Record, error)
}

// Notifier recibe adopciones confirmadas (p.ej. publicación en NATS).
type Notifier interface {
	AdoptionConfirmed(ctx context.Context, r Record) error
}
