package http

import (
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"
)

// listenToSessionUpdates streams every accepted new state of a
// session to the client as server-sent events, so all connected
// viewers converge on the authoritative record.
func (httpserver *HttpServer) listenToSessionUpdates(w http.ResponseWriter, r *http.Request) {
	id, r, ok := parseSessionIdParam(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported!", http.StatusInternalServerError)
		return
	}

	updates, unsubscribe := httpserver.sessionSrvc.Subscribe(id)
	defer unsubscribe()

	var writeMutex sync.Mutex

	safeWrite := func(data string) {
		writeMutex.Lock()
		defer writeMutex.Unlock()
		io.WriteString(w, data)
		flusher.Flush()
	}

	keepAliveTicker := time.NewTicker(15 * time.Second)
	defer keepAliveTicker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-keepAliveTicker.C:
			safeWrite(": keep-alive\n\n")
		case sess, ok := <-updates:
			if !ok {
				return
			}
			marshalled, err := json.Marshal(mapSession(sess))
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			safeWrite("data: " + string(marshalled) + "\n\n")
		}
	}
}
