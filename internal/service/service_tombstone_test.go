package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-spool-sync/internal/config"
	"github.com/MKhiriev/go-spool-sync/internal/logger"
	"github.com/MKhiriev/go-spool-sync/internal/mock"
	"github.com/MKhiriev/go-spool-sync/internal/store"
	"github.com/MKhiriev/go-spool-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestTombstoneService(ctrl *gomock.Controller, ttl time.Duration) (TombstoneService, *mock.MockTombstoneRepository, *mock.MockSpoolRepository) {
	tombstones := mock.NewMockTombstoneRepository(ctrl)
	spools := mock.NewMockSpoolRepository(ctrl)

	svc := NewTombstoneService(tombstones, spools, config.Sync{TombstoneTTL: ttl}, logger.Nop())
	return svc, tombstones, spools
}

func TestBury_MarkerWrittenBeforeRecordRemoval(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, tombstones, spools := newTestTombstoneService(ctrl, 30*24*time.Hour)
	ctx := context.Background()

	owner := int64(7)
	spool := spoolAt(150, 600)
	spool.OwnerID = &owner

	gomock.InOrder(
		tombstones.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tombstone models.Tombstone, recycle models.Spool) error {
				assert.Equal(t, spool.Serial, tombstone.Serial)
				assert.Equal(t, "printer-1", tombstone.DeletedBy)
				assert.Equal(t, &owner, tombstone.OriginalOwnerID)
				assert.True(t, recycle.Deleted)
				assert.Equal(t, spool.RemainingQuantity, recycle.RemainingQuantity)
				return nil
			}),
		spools.EXPECT().Delete(ctx, spool.Serial).Return(nil),
	)

	tombstone, err := svc.Bury(ctx, spool, "printer-1")

	require.NoError(t, err)
	assert.Equal(t, spool.Serial, tombstone.Serial)
	assert.Greater(t, tombstone.DeletedAt, int64(0))
}

func TestBury_RecordAlreadyGone_StillSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, tombstones, spools := newTestTombstoneService(ctrl, 30*24*time.Hour)
	ctx := context.Background()

	spool := spoolAt(150, 600)

	tombstones.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(nil)
	spools.EXPECT().Delete(ctx, spool.Serial).Return(store.ErrSpoolNotFound)

	_, err := svc.Bury(ctx, spool, "printer-1")

	require.NoError(t, err)
}

func TestBury_MarkerWriteFails_RecordUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, tombstones, _ := newTestTombstoneService(ctrl, 30*24*time.Hour)
	ctx := context.Background()

	spool := spoolAt(150, 600)

	// No Delete expectation: the active record must survive a failed
	// marker write.
	tombstones.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(store.ErrExecutingQuery)

	_, err := svc.Bury(ctx, spool, "printer-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestGetAll_PurgesExpiredMarkersFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, tombstones, _ := newTestTombstoneService(ctrl, 30*24*time.Hour)
	ctx := context.Background()

	retained := []models.Tombstone{{Serial: "spool-1", DeletedAt: time.Now().UnixMilli()}}

	gomock.InOrder(
		tombstones.EXPECT().DeleteOlderThan(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, cutoff int64) (int64, error) {
				expected := time.Now().Add(-30 * 24 * time.Hour).UnixMilli()
				assert.InDelta(t, expected, cutoff, float64(time.Second.Milliseconds()))
				return 3, nil
			}),
		tombstones.EXPECT().List(ctx).Return(retained, nil),
	)

	got, err := svc.GetAll(ctx)

	require.NoError(t, err)
	assert.Equal(t, retained, got)
}

func TestGetAll_RetentionBoundary(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, tombstones, _ := newTestTombstoneService(ctrl, 30*24*time.Hour)
	ctx := context.Background()

	now := time.Now()
	ledger := []models.Tombstone{
		{Serial: "spool-29d", DeletedAt: now.Add(-29 * 24 * time.Hour).UnixMilli()},
		{Serial: "spool-31d", DeletedAt: now.Add(-31 * 24 * time.Hour).UnixMilli()},
	}

	gomock.InOrder(
		tombstones.EXPECT().DeleteOlderThan(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, cutoff int64) (int64, error) {
				// Repository contract: markers with deleted_at < cutoff
				// are removed, everything at or past it is retained.
				var retained []models.Tombstone
				var purged int64
				for _, marker := range ledger {
					if marker.DeletedAt < cutoff {
						purged++
						continue
					}
					retained = append(retained, marker)
				}
				ledger = retained
				return purged, nil
			}),
		tombstones.EXPECT().List(ctx).
			DoAndReturn(func(context.Context) ([]models.Tombstone, error) {
				return ledger, nil
			}),
	)

	got, err := svc.GetAll(ctx)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "spool-29d", got[0].Serial)
}

func TestSince_ReturnsMarkersPastHighWaterMark(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, tombstones, _ := newTestTombstoneService(ctrl, 30*24*time.Hour)
	ctx := context.Background()

	retained := []models.Tombstone{{Serial: "spool-2", DeletedAt: 900}}

	gomock.InOrder(
		tombstones.EXPECT().DeleteOlderThan(ctx, gomock.Any()).Return(int64(0), nil),
		tombstones.EXPECT().ListSince(ctx, int64(800)).Return(retained, nil),
	)

	got, err := svc.Since(ctx, 800)

	require.NoError(t, err)
	assert.Equal(t, retained, got)
}

func TestRestore_ResurrectsRecycleCopyWithFreshTimestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, tombstones, spools := newTestTombstoneService(ctrl, 30*24*time.Hour)
	ctx := context.Background()

	recycle := spoolAt(150, 600)
	recycle.Deleted = true
	before := time.Now().UnixMilli()

	gomock.InOrder(
		tombstones.EXPECT().Get(ctx, recycle.Serial).
			Return(models.Tombstone{Serial: recycle.Serial, DeletedAt: 500}, recycle, nil),
		spools.EXPECT().Save(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, spool models.Spool) error {
				assert.False(t, spool.Deleted)
				assert.GreaterOrEqual(t, spool.LastUpdated, before)
				return nil
			}),
		tombstones.EXPECT().Delete(ctx, recycle.Serial).Return(nil),
	)

	restored, err := svc.Restore(ctx, recycle.Serial)

	require.NoError(t, err)
	assert.False(t, restored.Deleted)
	assert.Equal(t, recycle.RemainingQuantity, restored.RemainingQuantity)
	assert.GreaterOrEqual(t, restored.LastUpdated, before)
}

func TestRestore_NoRetainedMarker(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, tombstones, _ := newTestTombstoneService(ctrl, 30*24*time.Hour)
	ctx := context.Background()

	tombstones.EXPECT().Get(ctx, "ghost").
		Return(models.Tombstone{}, models.Spool{}, store.ErrTombstoneNotFound)

	_, err := svc.Restore(ctx, "ghost")

	assert.ErrorIs(t, err, ErrTombstoneNotFound)
}
