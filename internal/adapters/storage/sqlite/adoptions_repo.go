package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-adoption/internal/domain/adoptions"

	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// adoption_date se guarda como TEXT UTC de ancho fijo para que ORDER BY funcione.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type AdoptionsRepo struct {
	db *sql.DB
}

func NewAdoptionsRepo(db *sql.DB) *AdoptionsRepo {
	return &AdoptionsRepo{db: db}
}

const adoptionColumns = `id, animal_id, animal_name, adopter_name, adopter_email,
	adopter_phone, adopter_address, adoption_date, status`

func (r *AdoptionsRepo) FindConfirmedByAnimal(ctx context.Context, animalID int64) (adoptions.Record, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+adoptionColumns+`
		FROM adoptions
		WHERE animal_id = ? AND status = ?
		LIMIT 1
	`, animalID, string(adoptions.StatusConfirmed))

	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return adoptions.Record{}, adoptions.ErrNotFound
		}
		return adoptions.Record{}, err
	}
	return rec, nil
}

func (r *AdoptionsRepo) Create(ctx context.Context, rec adoptions.Record) (adoptions.Record, error) {
	if rec.Status == "" {
		rec.Status = adoptions.StatusPending
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	rec.CreatedAt = rec.CreatedAt.UTC()

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO adoptions (
			animal_id, animal_name,
			adopter_name, adopter_email, adopter_phone, adopter_address,
			adoption_date, status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		rec.AnimalID,
		rec.AnimalName,
		rec.AdopterName,
		rec.AdopterEmail,
		rec.AdopterPhone,
		rec.AdopterAddress,
		rec.CreatedAt.Format(timeLayout),
		string(rec.Status),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return adoptions.Record{}, adoptions.ErrAlreadyAdopted
		}
		return adoptions.Record{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return adoptions.Record{}, err
	}
	rec.ID = id
	return rec, nil
}

func (r *AdoptionsRepo) List(ctx context.Context) ([]adoptions.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+adoptionColumns+`
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
	var createdAt, status string
	if err := s.Scan(
		&rec.ID,
		&rec.AnimalID,
		&rec.AnimalName,
		&rec.AdopterName,
		&rec.AdopterEmail,
		&rec.AdopterPhone,
		&rec.AdopterAddress,
		&createdAt,
		&status,
	); err != nil {
		return adoptions.Record{}, err
	}

	t, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return adoptions.Record{}, fmt.Errorf("sqlite: parse adoption_date %q: %w", createdAt, err)
	}
	rec.CreatedAt = t
	rec.Status = adoptions.Status(status)
	return rec, nil
}

func isUniqueViolation(err error) bool {
	var se *msqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	if se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
		return true
	}
	// sin extended result codes solo llega SQLITE_CONSTRAINT
	return se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(se.Error(), "UNIQUE")
}
