package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-spool-sync/internal/app"
	"github.com/MKhiriev/go-spool-sync/internal/logger"
	"github.com/MKhiriev/go-spool-sync/internal/utils"
	"github.com/MKhiriev/go-spool-sync/models"
)

// sync runs one full reconciliation session for the authenticated caller:
// the request carries the caller's dirty records, queued deletions and its
// high-water mark; the response carries the server's outcome.
func (h *Handler) sync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	caller, found := utils.GetCallerFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.sync").Msg("no caller in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var syncRequest models.SyncRequest
	if err := json.NewDecoder(r.Body).Decode(&syncRequest); err != nil {
		log.Err(err).Str("func", "*Handler.sync").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	response, err := h.services.SyncService.Sync(ctx, caller, syncRequest)
	if err != nil {
		log.Err(err).Str("func", "*Handler.sync").Msg("sync session failed")
		http.Error(w, app.MsgSyncFailed, statusFromError(err))
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
