package hello

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
)

// NewHTTPHandler serves h over plain HTTP for local runs. The request body is passed
// through as the event.
func NewHTTPHandler(h Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			slog.Error("reading request body", slog.Any("err", err))
			http.Error(w, "unable to read request body", http.StatusBadRequest)
			return
		}

		resp, err := h.Invoke(r.Context(), json.RawMessage(body))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}

		for k, v := range resp.Headers {
			w.Header().Set(k, v)
		}
		w.WriteHeader(resp.StatusCode)
		w.Write([]byte(resp.Body))
	})
}
