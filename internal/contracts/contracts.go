package contracts

import "time"

// CreateAdoptionRequest is the body of POST /adoptions, sent by the catalog service.
type CreateAdoptionRequest struct {
	AnimalID       int64  `json:"animalId"`
	AnimalName     string `json:"animalName"`
	AdopterName    string `json:"adopterName"`
	AdopterEmail   string `json:"adopterEmail"`
	AdopterPhone   string `json:"adopterPhone,omitempty"`
	AdopterAddress string `json:"adopterAddress,omitempty"`
}

// CreateAdoptionResponse is returned by POST /adoptions. On failure only Success and Error are set.
type CreateAdoptionResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message,omitempty"`
	AdoptionID  int64  `json:"adoptionId,omitempty"`
	AnimalName  string `json:"animalName,omitempty"`
	AdopterName string `json:"adopterName,omitempty"`
	Error       string `json:"error,omitempty"`
}

// AdoptRequest is the body of POST /animals/{id}/adopt.
type AdoptRequest struct {
	AdopterName    string `json:"adopterName"`
	AdopterEmail   string `json:"adopterEmail"`
	AdopterPhone   string `json:"adopterPhone,omitempty"`
	AdopterAddress string `json:"adopterAddress,omitempty"`
}

// AdoptResponse is the success body of POST /animals/{id}/adopt.
type AdoptResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Animal     string `json:"animal"`
	AdoptionID int64  `json:"adoptionId"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

const SubjectAdoptionConfirmed = "adoptions.confirmed"

// AdoptionConfirmedEvent is published by the records service after a confirmed insert.
type AdoptionConfirmedEvent struct {
	EventID     string    `json:"event_id"`
	AdoptionID  int64     `json:"adoption_id"`
	AnimalID    int64     `json:"animal_id"`
	AnimalName  string    `json:"animal_name"`
	AdopterName string    `json:"adopter_name"`
	OccurredAt  time.Time `json:"occurred_at"`
}
