package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-spool-sync/internal/app"
	"github.com/MKhiriev/go-spool-sync/internal/logger"
	"github.com/MKhiriev/go-spool-sync/internal/utils"
	"github.com/MKhiriev/go-spool-sync/models"
)

// streamEvents subscribes the caller to the live change feed and writes
// line-delimited event frames until the client disconnects.
//
// Change events go out as "data: <json>" frames; heartbeat ticks become
// bare comment frames that carry no content but keep idle connections from
// being reaped by intermediaries. A "connected" frame is sent first so the
// client knows the stream is live before any change happens.
func (h *Handler) streamEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	flusher, ok := w.(http.Flusher)
	if !ok {
		log.Error().Str("func", "*Handler.streamEvents").Msg("response writer does not support streaming")
		http.Error(w, app.MsgStreamingUnsupported, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	events := h.services.BroadcastHub.Subscribe()
	defer h.services.BroadcastHub.Unsubscribe(events)

	if _, err := utils.WriteEventFrame(w, models.ChangeEvent{
		Type:      models.EventConnected,
		Timestamp: time.Now().UnixMilli(),
	}); err != nil {
		log.Err(err).Msg("writing connected frame failed")
		return
	}
	flusher.Flush()

	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("event stream client disconnected")
			return

		case event, open := <-events:
			if !open {
				// Evicted by the hub or hub shutdown.
				log.Debug().Msg("event stream closed by hub")
				return
			}

			var err error
			if event.Type == models.EventHeartbeat {
				_, err = utils.WriteCommentFrame(w)
			} else {
				_, err = utils.WriteEventFrame(w, event)
			}
			if err != nil {
				log.Err(err).Msg("writing event frame failed")
				return
			}
			flusher.Flush()
		}
	}
}
