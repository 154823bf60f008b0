package animals

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"pet-adoption/internal/contracts"
	"pet-adoption/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
)

const metricsService = "catalog"

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/animals", func(ar chi.Router) {
		ar.Get("/", listAnimalsHandler(svc))
		ar.Get("/{animalID}", getAnimalHandler(svc))

		// Solicitud de adopción (delegada al servicio de registros)
		ar.Post("/{animalID}/adopt", adoptHandler(svc))
	})
}

type animalResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Age         int    `json:"age"`
	Breed       string `json:"breed"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Status      Status `json:"status"`
}

func listAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAvailable(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to load animals", "")
			return
		}

		out := make([]animalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAnimalResponse(a))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := animalIDParam(r)
		if !ok {
			writeError(w, http.StatusNotFound, ErrNotFound.Error(), "")
			return
		}

		a, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, ErrNotFound.Error(), "")
				return
			}
			writeError(w, http.StatusInternalServerError, "failed to load animal", "")
			return
		}

		writeJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

func adoptHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := animalIDParam(r)
		if !ok {
			metrics.RecordAdoption(metricsService, metrics.OutcomeNotFound)
			writeError(w, http.StatusNotFound, ErrNotFound.Error(), "")
			return
		}

		var req contracts.AdoptRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			metrics.RecordAdoption(metricsService, metrics.OutcomeInvalid)
			writeError(w, http.StatusBadRequest, "invalid json", "")
			return
		}

		res, err := svc.Adopt(r.Context(), id, Applicant{
			Name:    req.AdopterName,
			Email:   req.AdopterEmail,
			Phone:   req.AdopterPhone,
			Address: req.AdopterAddress,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				metrics.RecordAdoption(metricsService, metrics.OutcomeNotFound)
				writeError(w, http.StatusNotFound, ErrNotFound.Error(), "")
			case errors.Is(err, ErrAlreadyAdopted):
				metrics.RecordAdoption(metricsService, metrics.OutcomeConflict)
				writeError(w, http.StatusBadRequest, ErrAlreadyAdopted.Error(), "")
			case errors.Is(err, ErrInvalidInput):
				metrics.RecordAdoption(metricsService, metrics.OutcomeInvalid)
				writeError(w, http.StatusBadRequest, "adopterName and adopterEmail are required", "")
			case errors.Is(err, ErrRecordRejected):
				metrics.RecordAdoption(metricsService, metrics.OutcomeConflict)
				writeError(w, http.StatusBadRequest, ErrRecordRejected.Error(), err.Error())
			case errors.Is(err, ErrUpstream):
				metrics.RecordAdoption(metricsService, metrics.OutcomeUpstream)
				writeError(w, http.StatusInternalServerError, "adoption process failed", err.Error())
			default:
				metrics.RecordAdoption(metricsService, metrics.OutcomeError)
				writeError(w, http.StatusInternalServerError, "adoption process failed", err.Error())
			}
			return
		}

		metrics.RecordAdoption(metricsService, metrics.OutcomeConfirmed)
		writeJSON(w, http.StatusOK, contracts.AdoptResponse{
			Success:    true,
			Message:    "Adoption application submitted successfully",
			Animal:     res.Animal.Name,
			AdoptionID: res.AdoptionID,
		})
	}
}

// animalIDParam: un id no numérico no puede existir, se trata como 404.
func animalIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "animalID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func toAnimalResponse(a Animal) animalResponse {
	return animalResponse{
		ID:          a.ID,
		Name:        a.Name,
		Type:        a.Type,
		Age:         a.Age,
		Breed:       a.Breed,
		Description: a.Description,
		ImageURL:    a.ImageURL,
		Status:      a.Status,
	}
}

func writeError(w http.ResponseWriter, status int, msg, details string) {
	writeJSON(w, status, contracts.ErrorResponse{Error: msg, Details: details})
}

// writeJSON está duplicado intencionalmente en handlers de animals/adoptions
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
