package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/lumina-sync/models"
)

// ListNotes implements [ServerAdapter].
func (h *httpServerAdapter) ListNotes(ctx context.Context) ([]byte, error) {
	return h.getJSON(ctx, "/api/notes", nil)
}

// CreateNote implements [ServerAdapter].
func (h *httpServerAdapter) CreateNote(ctx context.Context, note models.NotePayload) ([]byte, error) {
	return h.sendJSON(ctx, http.MethodPost, "/api/notes", nil, note)
}

// UpdateNote implements [ServerAdapter].
func (h *httpServerAdapter) UpdateNote(ctx context.Context, id string, note models.NotePayload) ([]byte, error) {
	return h.sendJSON(ctx, http.MethodPut, "/api/notes/{id}", map[string]string{"id": id}, note)
}

// DeleteNote implements [ServerAdapter].
func (h *httpServerAdapter) DeleteNote(ctx context.Context, id string) error {
	req := h.authedRequest(ctx).SetPathParam("id", id)
	_, err := h.execute(req, http.MethodDelete, "/api/notes/{id}")
	return err
}
