package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"notable/notable/controllers"
	"notable/notable/utils/logging"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CreateNoteRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Category  string `json:"category"`
	Published *bool  `json:"published"`
}

type UpdateNoteRequest struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Category  *string `json:"category"`
	Published *bool   `json:"published"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeNote(w http.ResponseWriter, status int, note any) {
	writeJSON(w, status, map[string]any{
		"status": "success",
		"data":   map[string]any{"note": note},
	})
}

// writeFail reports an expected condition (bad input, not found, conflict).
func writeFail(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"status": "fail", "message": message})
}

// writeStoreError reports an unexpected store failure. The detail goes to the
// error log only; clients get a generic message. A request that ran out of
// time maps to 503 instead of 500.
func writeStoreError(w http.ResponseWriter, op string, err error) {
	logging.ErrorLogger.Error("store operation failed",
		zap.String("op", op),
		zap.Error(err),
	)
	status := http.StatusInternalServerError
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]any{
		"status":  "error",
		"message": "Something went wrong while processing the request",
	})
}

func notFoundMessage(id string) string {
	return "Note with ID: " + id + " not found"
}

func NotesRoutes(ctrl *controllers.NotesController) chi.Router {
	r := chi.NewRouter()

	// Create note
	r.Post("/", func(w http.ResponseWriter, r *http.Request) {
		var req CreateNoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeFail(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		if req.Title == "" || req.Content == "" {
			writeFail(w, http.StatusBadRequest, "Fields title and content are required")
			return
		}
		published := false
		if req.Published != nil {
			published = *req.Published
		}
		note, err := ctrl.CreateNote(r.Context(), req.Title, req.Content, req.Category, published)
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				writeFail(w, http.StatusConflict, "Note with that title already exists")
				return
			}
			writeStoreError(w, "create note", err)
			return
		}
		writeNote(w, http.StatusCreated, note)
	})

	// List notes, newest first
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		page := queryInt(r, "page", 1)
		limit := queryInt(r, "limit", 10)
		notes, err := ctrl.ListNotes(r.Context(), page, limit)
		if err != nil {
			writeStoreError(w, "list notes", err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"status":  "success",
			"results": len(notes),
			"notes":   notes,
		})
	})

	// Get single note
	r.Get("/{id}", func(w http.ResponseWriter, r *http.Request) {
		idStr := chi.URLParam(r, "id")
		id, err := uuid.Parse(idStr)
		if err != nil {
			// A malformed id can never match a row.
			writeFail(w, http.StatusNotFound, notFoundMessage(idStr))
			return
		}
		note, err := ctrl.GetNoteByID(r.Context(), id)
		if err != nil {
			writeStoreError(w, "get note", err)
			return
		}
		if note == nil {
			writeFail(w, http.StatusNotFound, notFoundMessage(idStr))
			return
		}
		writeNote(w, http.StatusOK, note)
	})

	// Partial update
	r.Patch("/{id}", func(w http.ResponseWriter, r *http.Request) {
		idStr := chi.URLParam(r, "id")
		id, err := uuid.Parse(idStr)
		if err != nil {
			writeFail(w, http.StatusNotFound, notFoundMessage(idStr))
			return
		}
		var req UpdateNoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeFail(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		updates := map[string]interface{}{}
		if req.Title != nil {
			updates["title"] = *req.Title
		}
		if req.Content != nil {
			updates["content"] = *req.Content
		}
		if req.Category != nil {
			updates["category"] = *req.Category
		}
		if req.Published != nil {
			updates["published"] = *req.Published
		}
		note, err := ctrl.UpdateNote(r.Context(), id, updates)
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				writeFail(w, http.StatusConflict, "Note with that title already exists")
				return
			}
			writeStoreError(w, "update note", err)
			return
		}
		if note == nil {
			writeFail(w, http.StatusNotFound, notFoundMessage(idStr))
			return
		}
		writeNote(w, http.StatusOK, note)
	})

	// Delete note
	r.Delete("/{id}", func(w http.ResponseWriter, r *http.Request) {
		idStr := chi.URLParam(r, "id")
		id, err := uuid.Parse(idStr)
		if err != nil {
			writeFail(w, http.StatusNotFound, notFoundMessage(idStr))
			return
		}
		deleted, err := ctrl.DeleteNote(r.Context(), id)
		if err != nil {
			writeStoreError(w, "delete note", err)
			return
		}
		if !deleted {
			writeFail(w, http.StatusNotFound, notFoundMessage(idStr))
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	return r
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
