package animals

// Status del animal en el catálogo.
// @Enum available, adopted
type Status string

const (
	StatusAvailable Status = "available"
	StatusAdopted   Status = "adopted"
)

// Animal representa un animal del catálogo de adopción.
type Animal struct {
	ID int64

	Name        string
	Type        string // dog, cat
	Age         int
	Breed       string
	Description string
	ImageURL    string

	// Solo available -> adopted, vía adopción confirmada.
	Status Status
}

// Applicant son los datos del solicitante de una adopción.
type Applicant struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// AdoptionResult es el resultado de una adopción confirmada.
type AdoptionResult struct {
	Animal     Animal
	AdoptionID int64
}
