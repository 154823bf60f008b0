package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"pet-adoption/internal/domain/adoptions"
	"pet-adoption/internal/domain/animals"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

var animalCols = []string{"id", "name", "type", "age", "breed", "description", "image_url", "status"}

func TestAnimalsRepo_CreateReturnsID(t *testing.T) {
	db, mock := newMock(t)
	repo := NewAnimalsRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO animals")).
		WithArgs("Musti", "dog", 3, "Labrador", "", "", "available").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	a, err := repo.Create(context.Background(), animals.Animal{Name: "Musti", Type: "dog", Age: 3, Breed: "Labrador"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, animals.StatusAvailable, a.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnimalsRepo_GetByID(t *testing.T) {
	db, mock := newMock(t)
	repo := NewAnimalsRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM animals")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(animalCols).
			AddRow(1, "Musti", "dog", 3, "Labrador", "friendly", "https://img/1", "available"))
	mock.ExpectQuery(regexp.QuoteMeta("FROM animals")).
		WithArgs(int64(2)).
		WillReturnError(sql.ErrNoRows)

	a, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Musti", a.Name)
	assert.Equal(t, "https://img/1", a.ImageURL)

	_, err = repo.GetByID(context.Background(), 2)
	assert.ErrorIs(t, err, animals.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnimalsRepo_MarkAdopted(t *testing.T) {
	db, mock := newMock(t)
	repo := NewAnimalsRepo(db)
	ctx := context.Background()

	// ok
	mock.ExpectExec(regexp.QuoteMeta("UPDATE animals")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// ya adoptado: 0 filas y el animal existe
	mock.ExpectExec(regexp.QuoteMeta("UPDATE animals")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("FROM animals")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(animalCols).
			AddRow(1, "Musti", "dog", 3, "", "", "", "adopted"))

	// inexistente
	mock.ExpectExec(regexp.QuoteMeta("UPDATE animals")).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("FROM animals")).
		WithArgs(int64(9)).
		WillReturnError(sql.ErrNoRows)

	require.NoError(t, repo.MarkAdopted(ctx, 1))
	assert.ErrorIs(t, repo.MarkAdopted(ctx, 1), animals.ErrAlreadyAdopted)
	assert.ErrorIs(t, repo.MarkAdopted(ctx, 9), animals.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnimalsRepo_ListByStatus(t *testing.T) {
	db, mock := newMock(t)
	repo := NewAnimalsRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE status = $1")).
		WithArgs("available").
		WillReturnRows(sqlmock.NewRows(animalCols).
			AddRow(1, "Musti", "dog", 3, "", "", "", "available").
			AddRow(2, "Mirri", "cat", 2, "", "", "", "available"))

	items, err := repo.ListByStatus(context.Background(), animals.StatusAvailable)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Mirri", items[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdoptionsRepo_CreateMapsUniqueViolation(t *testing.T) {
	db, mock := newMock(t)
	repo := NewAdoptionsRepo(db)
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	rec := adoptions.Record{
		AnimalID:     1,
		AnimalName:   "Musti",
		AdopterName:  "Ada",
		AdopterEmail: "ada@example.com",
		CreatedAt:    at,
		Status:       adoptions.StatusConfirmed,
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO adoptions")).
		WithArgs(int64(1), "Musti", "Ada", "ada@example.com", "", "", at, "confirmed").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO adoptions")).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "ux_adoptions_confirmed_animal"})
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO adoptions")).
		WillReturnError(errors.New("connection reset"))

	got, err := repo.Create(context.Background(), rec)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)

	_, err = repo.Create(context.Background(), rec)
	assert.ErrorIs(t, err, adoptions.ErrAlreadyAdopted)

	_, err = repo.Create(context.Background(), rec)
	require.Error(t, err)
	assert.NotErrorIs(t, err, adoptions.ErrAlreadyAdopted)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdoptionsRepo_FindAndList(t *testing.T) {
	db, mock := newMock(t)
	repo := NewAdoptionsRepo(db)
	cols := []string{
		"id", "animal_id", "animal_name", "adopter_name", "adopter_email",
		"adopter_phone", "adopter_address", "adoption_date", "status",
	}
	newer := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	older := newer.Add(-24 * time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("status = 'confirmed'")).
		WithArgs(int64(5)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY adoption_date DESC")).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(2, 2, "Mirri", "Linus", "l@x.io", "", "", newer, "confirmed").
			AddRow(1, 1, "Musti", "Ada", "a@x.io", "040", "Main St", older, "confirmed"))

	_, err := repo.FindConfirmedByAnimal(context.Background(), 5)
	assert.ErrorIs(t, err, adoptions.ErrNotFound)

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Mirri", items[0].AnimalName)
	assert.Equal(t, "Main St", items[1].AdopterAddress)
	assert.True(t, older.Equal(items[1].CreatedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}
