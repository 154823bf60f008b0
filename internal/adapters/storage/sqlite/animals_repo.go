package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"pet-adoption/internal/domain/animals"
)

type AnimalsRepo struct {
	db *sql.DB
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

const animalColumns = `id, name, type, age, breed, description, image_url, status`

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) (animals.Animal, error) {
	if a.Status == "" {
		a.Status = animals.StatusAvailable
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO animals (name, type, age, breed, description, image_url, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		a.Name,
		a.Type,
		a.Age,
		a.Breed,
		a.Description,
		a.ImageURL,
		string(a.Status),
	)
	if err != nil {
		return animals.Animal{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return animals.Animal{}, err
	}
	a.ID = id
	return a, nil
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id int64) (animals.Animal, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+animalColumns+` FROM animals WHERE id = ?`, id)

	a, err := scanAnimal(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return animals.Animal{}, animals.ErrNotFound
		}
		return animals.Animal{}, err
	}
	return a, nil
}

func (r *AnimalsRepo) ListByStatus(ctx context.Context, status animals.Status) ([]animals.Animal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+animalColumns+`
		FROM animals
		WHERE status = ?
		ORDER BY id ASC
	`, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.Animal, 0)
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AnimalsRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM animals`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *AnimalsRepo) MarkAdopted(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE animals SET status = ? WHERE id = ? AND status = ?
	`, string(animals.StatusAdopted), id, string(animals.StatusAvailable))
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 1 {
		return nil
	}

	// 0 filas: o no existe o ya no estaba available
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return animals.ErrAlreadyAdopted
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnimal(s rowScanner) (animals.Animal, error) {
	var a animals.Animal
	var status string
	if err := s.Scan(
		&a.ID,
		&a.Name,
		&a.Type,
		&a.Age,
		&a.Breed,
		&a.Description,
		&a.ImageURL,
		&status,
	); err != nil {
		return animals.Animal{}, err
	}
	a.Status = animals.Status(status)
	return a, nil
}
