package idempotency

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// Header names
const (
	HeaderKey      = "Idempotency-Key"
	HeaderReplayed = "Idempotent-Replayed"
)

const maxKeyLength = 128

// Middleware makes POST requests carrying an Idempotency-Key replayable. A
// nil store, a missing header or any Redis failure lets the request through
// untouched.
func Middleware(store *Store, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if store == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(HeaderKey)
			if r.Method != http.MethodPost || key == "" {
				next.ServeHTTP(w, r)
				return
			}

			if len(key) > maxKeyLength {
				writeError(w, http.StatusBadRequest, "INVALID_INPUT", "Idempotency-Key must be at most 128 characters")
				return
			}

			scoped := "idem:" + r.Method + ":" + r.URL.Path + ":" + key

			outcome, stored, err := store.Begin(r.Context(), scoped)
			if err != nil {
				logger.Warn("idempotency store unavailable",
					slog.String("error", err.Error()),
				)
				next.ServeHTTP(w, r)
				return
			}

			switch outcome {
			case Completed:
				replay(w, stored)
				return
			case InProgress:
				writeError(w, http.StatusConflict, "CONFLICT", "A request with this Idempotency-Key is already in progress")
				return
			}

			// The outcome is recorded even if the client has gone away.
			ctx := context.WithoutCancel(r.Context())
			var body bytes.Buffer
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			ww.Tee(&body)

			finished := false
			defer func() {
				if finished {
					return
				}
				if err := store.Release(ctx, scoped); err != nil {
					logger.Warn("failed to release idempotency key", slog.String("error", err.Error()))
				}
			}()

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			if status < 200 || status >= 300 {
				return
			}

			err = store.Complete(ctx, scoped, Response{
				Status:      status,
				ContentType: ww.Header().Get("Content-Type"),
				Body:        body.Bytes(),
			})
			if err != nil {
				logger.Warn("failed to store idempotent response", slog.String("error", err.Error()))
				return
			}
			finished = true
		})
	}
}

func replay(w http.ResponseWriter, resp *Response) {
	if resp.ContentType != "" {
		w.Header().Set("Content-Type", resp.ContentType)
	}
	w.Header().Set(HeaderReplayed, "true")
	w.WriteHeader(resp.Status)
	_, _ = w.Write(resp.Body)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message, "code": code})
}
