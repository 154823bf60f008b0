package animals

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pet-adoption/internal/contracts"
	"pet-adoption/internal/platform/logger"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("animal not found")
	ErrAlreadyAdopted = errors.New("animal already adopted")

	// ErrRecordRejected: el servicio de registros respondió 400 (p.ej. ya confirmada allá).
	ErrRecordRejected = errors.New("adoption rejected by records service")
	// ErrUpstream: servicio de registros caído, 5xx o respuesta sin success.
	ErrUpstream = errors.New("records service failure")
)

type Service struct {
	repo     Repository
	recorder AdoptionRecorder
	log      logger.Logger
}

func NewService(repo Repository, recorder AdoptionRecorder, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:     repo,
		recorder: recorder,
		log:      log,
	}
}

func (s *Service) ListAvailable(ctx context.Context) ([]Animal, error) {
	return s.repo.ListByStatus(ctx, StatusAvailable)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Animal, error) {
	if id <= 0 {
		return Animal{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// Adopt ejecuta el flujo de adopción:
// cargar animal -> validar estado local -> registrar en records (una sola llamada, sin reintento)
// -> solo si records confirma, marcar adopted.
//
// Si records falla, el estado local no cambia. Si records confirmó pero la respuesta se perdió,
// ambos lados quedan inconsistentes; no hay reconciliación.
func (s *Service) Adopt(ctx context.Context, animalID int64, in Applicant) (AdoptionResult, error) {
	a, err := s.GetByID(ctx, animalID)
	if err != nil {
		return AdoptionResult{}, err
	}
	if a.Status == StatusAdopted {
		return AdoptionResult{}, ErrAlreadyAdopted
	}

	in = normalizeApplicant(in)
	if in.Name == "" || in.Email == "" {
		return AdoptionResult{}, ErrInvalidInput
	}
	if s.recorder == nil {
		return AdoptionResult{}, fmt.Errorf("%w: recorder not configured", ErrUpstream)
	}

	// Desde aquí el flujo no se cancela si el cliente se desconecta:
	// un registro remoto confirmado debe reflejarse localmente.
	ctx = context.WithoutCancel(ctx)

	resp, err := s.recorder.RecordAdoption(ctx, contracts.CreateAdoptionRequest{
		AnimalID:       a.ID,
		AnimalName:     a.Name,
		AdopterName:    in.Name,
		AdopterEmail:   in.Email,
		AdopterPhone:   in.Phone,
		AdopterAddress: in.Address,
	})
	if err != nil {
		return AdoptionResult{}, err
	}
	if !resp.Success {
		return AdoptionResult{}, fmt.Errorf("%w: adoption not confirmed", ErrUpstream)
	}

	if err := s.repo.MarkAdopted(ctx, a.ID); err != nil {
		s.log.Error("adoption confirmed remotely but local update failed", map[string]any{
			"animal_id":   a.ID,
			"adoption_id": resp.AdoptionID,
			"err":         err,
		})
		return AdoptionResult{}, err
	}

	a.Status = StatusAdopted
	s.log.Info("animal adopted", map[string]any{
		"animal_id":   a.ID,
		"animal_name": a.Name,
		"adoption_id": resp.AdoptionID,
	})

	return AdoptionResult{Animal: a, AdoptionID: resp.AdoptionID}, nil
}

func normalizeApplicant(in Applicant) Applicant {
	return Applicant{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Phone:   strings.TrimSpace(in.Phone),
		Address: strings.TrimSpace(in.Address),
	}
}
