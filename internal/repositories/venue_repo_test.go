package repositories

import (
	"context"
	"testing"

	intdb "campusbooking/internal/db"
	"campusbooking/internal/domain"
	"campusbooking/internal/domain/models"
	"campusbooking/internal/testutil"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestLockForAdmissionMySQLTakesRowLock(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT name FROM venues WHERE id = \? FOR UPDATE`).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Auditorium"))
	mock.ExpectQuery(`SELECT name FROM venues WHERE id = \? FOR UPDATE`).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"name"}))

	repo := VenueRepo{DB: db, Dialect: intdb.MySQL}
	name, err := repo.LockForAdmission(context.Background(), 2)
	if err != nil || name != "Auditorium" {
		t.Fatalf("LockForAdmission(2) = %q, %v", name, err)
	}
	if _, err := repo.LockForAdmission(context.Background(), 99); !domain.IsNotFound(err) {
		t.Fatalf("expected venue not found, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestVenueRepoSQLite(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewSQLite(t)
	repo := VenueRepo{DB: db, Dialect: intdb.SQLite}

	for _, v := range []models.Venue{
		{Name: "Study Room 101", Type: "Study Room", Capacity: 10},
		{Name: "Auditorium", Type: "Auditorium", Location: "Main Building"},
	} {
		if _, err := repo.Insert(ctx, v); err != nil {
			t.Fatalf("insert %s: %v", v.Name, err)
		}
	}

	venues, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(venues) != 2 || venues[0].Name != "Auditorium" || venues[1].Name != "Study Room 101" {
		t.Fatalf("expected venues ordered by name, got %+v", venues)
	}
	if venues[0].Capacity != models.DefaultVenueCapacity {
		t.Fatalf("expected default capacity %d, got %d", models.DefaultVenueCapacity, venues[0].Capacity)
	}

	if ok, err := repo.Exists(ctx, venues[0].ID); err != nil || !ok {
		t.Fatalf("Exists(%d) = %v, %v", venues[0].ID, ok, err)
	}
	if ok, err := repo.Exists(ctx, 12345); err != nil || ok {
		t.Fatalf("Exists(12345) = %v, %v", ok, err)
	}
	if name, err := repo.LockForAdmission(ctx, venues[1].ID); err != nil || name != "Study Room 101" {
		t.Fatalf("LockForAdmission = %q, %v", name, err)
	}
	if n, err := repo.Count(ctx); err != nil || n != 2 {
		t.Fatalf("Count = %d, %v", n, err)
	}
}
