package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-spool-sync/internal/app"
	"github.com/MKhiriev/go-spool-sync/internal/logger"
	"github.com/MKhiriev/go-spool-sync/internal/service"
	"github.com/MKhiriev/go-spool-sync/internal/utils"
	"github.com/MKhiriev/go-spool-sync/models"
	"github.com/go-chi/chi/v5"
)

// listTombstones returns every deletion marker still inside the retention
// window. Expired markers are purged before listing, so the response never
// contains a marker a client must not act on.
func (h *Handler) listTombstones(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	tombstones, err := h.services.TombstoneService.GetAll(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listTombstones").Msg("tombstone listing failed")
		http.Error(w, app.MsgTombstoneListingFailed, statusFromError(err))
		return
	}

	response := models.TombstoneListResponse{
		Tombstones: tombstones,
		Count:      len(tombstones),
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

// restoreSpool resurrects a deleted record from its retained recycle copy
// and announces it to live observers as a fresh create.
func (h *Handler) restoreSpool(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	serial := chi.URLParam(r, "serial")
	if serial == "" {
		http.Error(w, app.MsgSerialRequired, http.StatusBadRequest)
		return
	}

	spool, err := h.services.TombstoneService.Restore(ctx, serial)
	if err != nil {
		if errors.Is(err, service.ErrTombstoneNotFound) {
			log.Warn().Str("serial", serial).Msg("no tombstone retained for restore")
			http.Error(w, app.MsgNoTombstoneRetained, http.StatusNotFound)
			return
		}
		log.Err(err).Str("func", "*Handler.restoreSpool").Str("serial", serial).Msg("restore failed")
		http.Error(w, app.MsgRestoreFailed, statusFromError(err))
		return
	}

	h.services.BroadcastHub.Broadcast(models.ChangeEvent{
		Type:      models.EventCreate,
		Serial:    spool.Serial,
		Timestamp: spool.LastUpdated,
	})

	utils.WriteJSON(w, spool, http.StatusOK)
}
