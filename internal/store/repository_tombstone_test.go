package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-spool-sync/internal/logger"
	"github.com/MKhiriev/go-spool-sync/models"
)

func newTestTombstoneRepo(t *testing.T) (*tombstoneRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &tombstoneRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestCreateTombstone(t *testing.T) {
	repo, mock, db := newTestTombstoneRepo(t)
	defer db.Close()

	owner := int64(1)
	tombstone := models.Tombstone{
		Serial:          "spool-1",
		DeletedAt:       500,
		DeletedBy:       "printer-1",
		OriginalOwnerID: &owner,
	}
	recycle := models.Spool{Serial: "spool-1", Material: "PLA", RemainingQuantity: 480, Deleted: true}

	recycleJSON, err := json.Marshal(recycle)
	if err != nil {
		t.Fatalf("failed to marshal recycle copy: %v", err)
	}

	mock.ExpectExec("INSERT INTO tombstones").
		WithArgs("spool-1", int64(500), "printer-1", owner, recycleJSON).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), tombstone, recycle); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetTombstone_WithRecycleCopy(t *testing.T) {
	repo, mock, db := newTestTombstoneRepo(t)
	defer db.Close()

	recycle := models.Spool{Serial: "spool-1", Material: "PLA", RemainingQuantity: 480, Deleted: true}
	recycleJSON, err := json.Marshal(recycle)
	if err != nil {
		t.Fatalf("failed to marshal recycle copy: %v", err)
	}

	rows := sqlmock.
		NewRows([]string{"serial", "deleted_at", "deleted_by", "original_owner_id", "recycle"}).
		AddRow("spool-1", int64(500), "printer-1", int64(1), recycleJSON)

	mock.ExpectQuery("SELECT serial, deleted_at").
		WithArgs("spool-1").
		WillReturnRows(rows)

	tombstone, got, err := repo.Get(context.Background(), "spool-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tombstone.DeletedAt != 500 || tombstone.DeletedBy != "printer-1" {
		t.Errorf("unexpected tombstone: %+v", tombstone)
	}
	if tombstone.OriginalOwnerID == nil || *tombstone.OriginalOwnerID != 1 {
		t.Errorf("expected original owner 1, got %v", tombstone.OriginalOwnerID)
	}
	if got.RemainingQuantity != 480 || !got.Deleted {
		t.Errorf("unexpected recycle copy: %+v", got)
	}
}

func TestGetTombstone_NotFound(t *testing.T) {
	repo, mock, db := newTestTombstoneRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT serial, deleted_at").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"serial", "deleted_at", "deleted_by", "original_owner_id", "recycle"}))

	_, _, err := repo.Get(context.Background(), "ghost")
	if !errors.Is(err, ErrTombstoneNotFound) {
		t.Errorf("expected ErrTombstoneNotFound, got %v", err)
	}
}

func TestListTombstonesSince(t *testing.T) {
	repo, mock, db := newTestTombstoneRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"serial", "deleted_at", "deleted_by", "original_owner_id"}).
		AddRow("spool-1", int64(500), "printer-1", nil).
		AddRow("spool-2", int64(600), nil, int64(2))

	mock.ExpectQuery("SELECT serial, deleted_at").
		WithArgs(int64(400)).
		WillReturnRows(rows)

	got, err := repo.ListSince(context.Background(), 400)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 tombstones, got %d", len(got))
	}
	if got[0].Serial != "spool-1" || got[0].DeletedBy != "printer-1" {
		t.Errorf("unexpected first tombstone: %+v", got[0])
	}
	if got[1].DeletedBy != "" || got[1].OriginalOwnerID == nil {
		t.Errorf("unexpected second tombstone: %+v", got[1])
	}
}

func TestDeleteTombstone_NotFound(t *testing.T) {
	repo, mock, db := newTestTombstoneRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM tombstones").
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "ghost")
	if !errors.Is(err, ErrTombstoneNotFound) {
		t.Errorf("expected ErrTombstoneNotFound, got %v", err)
	}
}

func TestDeleteOlderThan(t *testing.T) {
	repo, mock, db := newTestTombstoneRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM tombstones").
		WithArgs(int64(1000)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	purged, err := repo.DeleteOlderThan(context.Background(), 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if purged != 3 {
		t.Errorf("expected 3 purged, got %d", purged)
	}
}
