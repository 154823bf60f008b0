package adoptions

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-adoption/internal/platform/logger"
)

var (
	ErrInvalidInput   = errors.New("missing required fields (animalId, animalName, adopterName, adopterEmail)")
	ErrNotFound       = errors.New("adoption not found")
	ErrAlreadyAdopted = errors.New("animal already adopted")
)

type Service struct {
	repo     Repository
	notifier Notifier
	log      logger.Logger
	now      func() time.Time
}

// NewService: notifier puede ser nil.
func NewService(repo Repository, notifier Notifier, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:     repo,
		notifier: notifier,
		log:      log,
		now:      time.Now,
	}
}

type CreateInput struct {
	AnimalID       int64
	AnimalName     string
	AdopterName    string
	AdopterEmail   string
	AdopterPhone   string
	AdopterAddress string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Record, error) {
	r := Record{
		AnimalID:       in.AnimalID,
		AnimalName:     strings.TrimSpace(in.AnimalName),
		AdopterName:    strings.TrimSpace(in.AdopterName),
		AdopterEmail:   strings.TrimSpace(in.AdopterEmail),
		AdopterPhone:   strings.TrimSpace(in.AdopterPhone),
		AdopterAddress: strings.TrimSpace(in.AdopterAddress),
		Status:         StatusConfirmed,
	}
	if r.AnimalID <= 0 || r.AnimalName == "" || r.AdopterName == "" || r.AdopterEmail == "" {
		return Record{}, ErrInvalidInput
	}

	_, err := s.repo.FindConfirmedByAnimal(ctx, r.AnimalID)
	switch {
	case err == nil:
		return Record{}, ErrAlreadyAdopted
	case !errors.Is(err, ErrNotFound):
		return Record{}, err
	}

	// El check anterior no es atómico con el insert; el almacén cierra la carrera.
	r.CreatedAt = s.now().UTC()
	created, err := s.repo.Create(ctx, r)
	if err != nil {
		return Record{}, err
	}

	s.log.Info("adoption confirmed", map[string]any{
		"adoption_id": created.ID,
		"animal_id":   created.AnimalID,
		"animal_name": created.AnimalName,
	})

	if s.notifier != nil {
		if err := s.notifier.AdoptionConfirmed(ctx, created); err != nil {
			s.log.Warn("adoption notification failed", map[string]any{
				"adoption_id": created.ID,
				"err":         err,
			})
		}
	}

	return created, nil
}

func (s *Service) List(ctx context.Context) ([]Record, error) {
	return s.repo.List(ctx)
}
