package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-spool-sync/internal/logger"
	"github.com/MKhiriev/go-spool-sync/models"
)

func newTestSpoolRepo(t *testing.T) (*spoolRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &spoolRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func spoolRows(spools ...models.Spool) *sqlmock.Rows {
	rows := sqlmock.NewRows(spoolColumns)
	for _, s := range spools {
		var ownerID any
		if s.OwnerID != nil {
			ownerID = *s.OwnerID
		}
		var legacyID any
		if s.LegacyID != 0 {
			legacyID = s.LegacyID
		}
		rows.AddRow(s.Serial, ownerID, s.Visibility, s.Material, s.Color, s.RemainingQuantity, legacyID, s.LastUpdated, s.CreatedAt)
	}
	return rows
}

func TestGetSpool_Success(t *testing.T) {
	repo, mock, db := newTestSpoolRepo(t)
	defer db.Close()

	owner := int64(1)
	want := models.Spool{
		Serial:            "spool-1",
		OwnerID:           &owner,
		Visibility:        models.VisibilityPrivate,
		Material:          "PLA",
		Color:             "black",
		RemainingQuantity: 750,
		LastUpdated:       100,
		CreatedAt:         50,
	}

	mock.ExpectQuery("SELECT serial, owner_id").
		WithArgs("spool-1").
		WillReturnRows(spoolRows(want))

	got, err := repo.Get(context.Background(), "spool-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Serial != want.Serial || got.RemainingQuantity != want.RemainingQuantity {
		t.Errorf("expected %+v, got %+v", want, got)
	}
	if got.OwnerID == nil || *got.OwnerID != owner {
		t.Errorf("expected owner %d, got %v", owner, got.OwnerID)
	}
}

func TestGetSpool_NotFound(t *testing.T) {
	repo, mock, db := newTestSpoolRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT serial, owner_id").
		WithArgs("ghost").
		WillReturnRows(spoolRows())

	_, err := repo.Get(context.Background(), "ghost")
	if !errors.Is(err, ErrSpoolNotFound) {
		t.Errorf("expected ErrSpoolNotFound, got %v", err)
	}
}

func TestGetSpoolByLegacyID(t *testing.T) {
	repo, mock, db := newTestSpoolRepo(t)
	defer db.Close()

	want := models.Spool{Serial: "spool-1", Material: "PLA", LegacyID: 42, LastUpdated: 100}

	mock.ExpectQuery("SELECT serial, owner_id").
		WithArgs(int64(42)).
		WillReturnRows(spoolRows(want))

	got, err := repo.GetByLegacyID(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.LegacyID != 42 {
		t.Errorf("expected legacy id 42, got %d", got.LegacyID)
	}
}

func TestListChangedSince(t *testing.T) {
	repo, mock, db := newTestSpoolRepo(t)
	defer db.Close()

	first := models.Spool{Serial: "spool-1", Material: "PLA", LastUpdated: 110}
	second := models.Spool{Serial: "spool-2", Material: "PETG", LastUpdated: 120}

	mock.ExpectQuery("SELECT serial, owner_id").
		WithArgs(int64(100)).
		WillReturnRows(spoolRows(first, second))

	got, err := repo.ListChangedSince(context.Background(), 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 spools, got %d", len(got))
	}
	if got[0].Serial != "spool-1" || got[1].Serial != "spool-2" {
		t.Errorf("unexpected order: %s, %s", got[0].Serial, got[1].Serial)
	}
}

func TestCompareAndSave_CreatePath(t *testing.T) {
	repo, mock, db := newTestSpoolRepo(t)
	defer db.Close()

	spool := models.Spool{Serial: "spool-1", Material: "PLA", LastUpdated: 100, CreatedAt: 100}

	mock.ExpectExec("INSERT INTO spools").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.CompareAndSave(context.Background(), spool, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCompareAndSave_CreatePath_SerialTaken(t *testing.T) {
	repo, mock, db := newTestSpoolRepo(t)
	defer db.Close()

	spool := models.Spool{Serial: "spool-1", Material: "PLA", LastUpdated: 100}

	// ON CONFLICT DO NOTHING reports zero affected rows.
	mock.ExpectExec("INSERT INTO spools").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.CompareAndSave(context.Background(), spool, 0)
	if !errors.Is(err, ErrSyncConflict) {
		t.Errorf("expected ErrSyncConflict, got %v", err)
	}
}

func TestCompareAndSave_UpdatePath(t *testing.T) {
	repo, mock, db := newTestSpoolRepo(t)
	defer db.Close()

	spool := models.Spool{Serial: "spool-1", Material: "PLA", LastUpdated: 200}

	mock.ExpectExec("UPDATE spools").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.CompareAndSave(context.Background(), spool, 100); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCompareAndSave_UpdatePath_PreconditionFailed(t *testing.T) {
	repo, mock, db := newTestSpoolRepo(t)
	defer db.Close()

	spool := models.Spool{Serial: "spool-1", Material: "PLA", LastUpdated: 200}

	mock.ExpectExec("UPDATE spools").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.CompareAndSave(context.Background(), spool, 100)
	if !errors.Is(err, ErrSyncConflict) {
		t.Errorf("expected ErrSyncConflict, got %v", err)
	}
}

func TestDeleteSpool_NotFound(t *testing.T) {
	repo, mock, db := newTestSpoolRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM spools").
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "ghost")
	if !errors.Is(err, ErrSpoolNotFound) {
		t.Errorf("expected ErrSpoolNotFound, got %v", err)
	}
}

func TestSaveSpool(t *testing.T) {
	repo, mock, db := newTestSpoolRepo(t)
	defer db.Close()

	spool := models.Spool{Serial: "spool-1", Material: "PLA", LastUpdated: 100, CreatedAt: 50}

	mock.ExpectExec("INSERT INTO spools").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Save(context.Background(), spool); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
