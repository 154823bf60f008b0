package adoptions

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"pet-adoption/internal/contracts"
	"pet-adoption/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
)

const metricsService = "records"

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/adoptions", func(ar chi.Router) {
		ar.Post("/", createAdoptionHandler(svc))
		ar.Get("/", listAdoptionsHandler(svc))
	})
}

type recordResponse struct {
	ID             int64     `json:"id"`
	AnimalID       int64     `json:"animal_id"`
	AnimalName     string    `json:"animal_name"`
	AdopterName    string    `json:"adopter_name"`
	AdopterEmail   string    `json:"adopter_email"`
	AdopterPhone   *string   `json:"adopter_phone"`
	AdopterAddress *string   `json:"adopter_address"`
	AdoptionDate   time.Time `json:"adoption_date"`
	Status         Status    `json:"status"`
}

func createAdoptionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req contracts.CreateAdoptionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			metrics.RecordAdoption(metricsService, metrics.OutcomeInvalid)
			writeFailure(w, http.StatusBadRequest, "invalid json")
			return
		}

		rec, err := svc.Create(r.Context(), CreateInput{
			AnimalID:       req.AnimalID,
			AnimalName:     req.AnimalName,
			AdopterName:    req.AdopterName,
			AdopterEmail:   req.AdopterEmail,
			AdopterPhone:   req.AdopterPhone,
			AdopterAddress: req.AdopterAddress,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				metrics.RecordAdoption(metricsService, metrics.OutcomeInvalid)
				writeFailure(w, http.StatusBadRequest, ErrInvalidInput.Error())
			case errors.Is(err, ErrAlreadyAdopted):
				metrics.RecordAdoption(metricsService, metrics.OutcomeConflict)
				writeFailure(w, http.StatusBadRequest, ErrAlreadyAdopted.Error())
			default:
				metrics.RecordAdoption(metricsService, metrics.OutcomeError)
				writeFailure(w, http.StatusInternalServerError, "failed to store adoption")
			}
			return
		}

		metrics.RecordAdoption(metricsService, metrics.OutcomeConfirmed)
		writeJSON(w, http.StatusOK, contracts.CreateAdoptionResponse{
			Success:     true,
			Message:     "Adoption application received and confirmed",
			AdoptionID:  rec.ID,
			AnimalName:  rec.AnimalName,
			AdopterName: rec.AdopterName,
		})
	}
}

func listAdoptionsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, contracts.ErrorResponse{Error: "failed to load adoptions"})
			return
		}

		out := make([]recordResponse, 0, len(items))
		for _, rec := range items {
			out = append(out, toRecordResponse(rec))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toRecordResponse(r Record) recordResponse {
	return recordResponse{
		ID:             r.ID,
		AnimalID:       r.AnimalID,
		AnimalName:     r.AnimalName,
		AdopterName:    r.AdopterName,
		AdopterEmail:   r.AdopterEmail,
		AdopterPhone:   nullable(r.AdopterPhone),
		AdopterAddress: nullable(r.AdopterAddress),
		AdoptionDate:   r.CreatedAt,
		Status:         r.Status,
	}
}

// opcionales vacíos salen como null
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func writeFailure(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, contracts.CreateAdoptionResponse{Success: false, Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
