package adoptions

import "time"

type Status string

const (
	// StatusPending existe en el esquema pero nunca se observa: se confirma directo.
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
)

// Record es una solicitud de adopción registrada. Append-only: no se modifica ni se borra.
type Record struct {
	ID int64

	// Copia desnormalizada; no es FK (el catálogo vive en otra base).
	AnimalID   int64
	AnimalName string

	AdopterName    string
	AdopterEmail   string
	AdopterPhone   string
	AdopterAddress string

	CreatedAt time.Time
	Status    Status
}
