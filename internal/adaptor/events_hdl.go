package adaptor

import (
	"encoding/json"
	"fmt"
	"net/http"

	"rate-am/pkg/realtime"
	"rate-am/pkg/utils"

	"go.uber.org/zap"
)

// tables that clients may subscribe to
var subscribableTables = map[string]bool{
	"vendors":    true,
	"reviews":    true,
	"polls":      true,
	"poll_votes": true,
}

type EventsHandler struct {
	hub *realtime.Hub
	log *zap.Logger
}

func NewEventsHandler(hub *realtime.Hub, log *zap.Logger) *EventsHandler {
	return &EventsHandler{
		hub: hub,
		log: log.With(zap.String("handler", "events")),
	}
}

// Stream handles GET /api/events?table={table} as a server-sent event
// stream. Each mutation on the table arrives as one "data:" line; the
// client refetches on receipt.
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	table := r.URL.Query().Get("table")
	if !subscribableTables[table] {
		utils.ResponseBadRequest(w, "Unknown or missing table", nil)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.ResponseInternalError(w, "Streaming not supported")
		return
	}

	events, cancel := h.hub.Subscribe(table)
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	// initial comment so proxies flush the headers through
	fmt.Fprint(w, ": connected\n\n")
	flusher.Flush()

	h.log.Info("SSE subscriber connected", zap.String("table", table))

	for {
		select {
		case <-r.Context().Done():
			h.log.Info("SSE subscriber disconnected", zap.String("table", table))
			return
		case event, open := <-events:
			if !open {
				return
			}
			payload, err := json.Marshal(event)
			if err != nil {
				h.log.Error("Failed to marshal event", zap.Error(err))
				continue
			}
			fmt.Fprintf(w, "data: %s\n\n", payload)
			flusher.Flush()
		}
	}
}
