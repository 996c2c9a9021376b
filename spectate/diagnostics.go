package spectate

import (
	"encoding/json"
	"net/http"

	"github.com/semiguerra/lwip-pong/match"
)

// StatusSource is anything that can report the current match status.
// *match.Match satisfies it.
type StatusSource interface {
	Status() match.Status
}

// Routes builds the spectator mux: the websocket feed plus a plain
// HTTP liveness surface.
func Routes(hub *Hub, src StatusSource) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/watch", hub.HandleWatch)

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("ok"))
	})

	mux.HandleFunc("/diagnostics", func(w http.ResponseWriter, r *http.Request) {
		payload := struct {
			match.Status
			Watchers int `json:"watchers"`
		}{
			Status:   src.Status(),
			Watchers: hub.Watchers(),
		}

		data, err := json.Marshal(payload)
		if err != nil {
			http.Error(w, "failed to encode", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	})

	return mux
}
