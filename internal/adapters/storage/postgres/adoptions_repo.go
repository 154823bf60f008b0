package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"pet-adoption/internal/domain/adoptions"
)

type AdoptionsRepo struct {
	db *sql.DB
}

func NewAdoptionsRepo(db *sql.DB) *AdoptionsRepo {
	return &AdoptionsRepo{db: db}
}

func (r *AdoptionsRepo) FindConfirmedByAnimal(ctx context.Context, animalID int64) (adoptions.Record, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, animal_id, animal_name,
			adopter_name, adopter_email, adopter_phone, adopter_address,
			adoption_date, status
		FROM adoptions
		WHERE animal_id = $1 AND status = 'confirmed'
		LIMIT 1
	`, animalID)

	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return adoptions.Record{}, adoptions.ErrNotFound
		}
		return adoptions.Record{}, err
	}
	return rec, nil
}

// Create inserta el registro; el índice único parcial sobre confirmadas
// convierte la carrera entre dos confirmaciones en ErrAlreadyAdopted.
func (r *AdoptionsRepo) Create(ctx context.Context, rec adoptions.Record) (adoptions.Record, error) {
	if rec.Status == "" {
		rec.Status = adoptions.StatusPending
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO adoptions (
			animal_id, animal_name,
			adopter_name, adopter_email, adopter_phone, adopter_address,
			adoption_date, status
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id
	`,
		rec.AnimalID,
		rec.AnimalName,
		rec.AdopterName,
		rec.AdopterEmail,
		rec.AdopterPhone,
		rec.AdopterAddress,
		rec.CreatedAt,
		string(rec.Status),
	).Scan(&rec.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return adoptions.Record{}, adoptions.ErrAlreadyAdopted
		}
		return adoptions.Record{}, err
	}
	return rec, nil
}

func (r *AdoptionsRepo) List(ctx context.Context) ([]adoptions.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, animal_id, animal_name,
			adopter_name, adopter_email, adopter_phone, adopter_address,
			adoption_date, status
		FROM adoptions
		ORDER BY adoption_date DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]adoptions.Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	return out, rows.Err()
}

func scanRecord(s rowScanner) (adoptions.Record, error) {
	var rec adoptions.Record
	var status string
	if err := s.Scan(
		&rec.ID,
		&rec.AnimalID,
		&rec.AnimalName,
		&rec.AdopterName,
		&rec.AdopterEmail,
		&rec.AdopterPhone,
		&rec.AdopterAddress,
		&rec.CreatedAt,
		&status,
	); err != nil {
		return adoptions.Record{}, err
	}
	rec.CreatedAt = rec.CreatedAt.UTC()
	rec.Status = adoptions.Status(status)
	return rec, nil
}
