package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Timurc390/Boardly/internal/domain"
	"github.com/Timurc390/Boardly/internal/service/attachment"
)

// multipartMemory is how much of an upload is kept in memory before the
// rest spills to a temp file.
const multipartMemory = 8 << 20

// multipartOverhead leaves room for the form framing around the file.
const multipartOverhead = 1 << 20

type attachmentService interface {
	ListAttachments(ctx context.Context, cardID uuid.UUID) ([]domain.Attachment, error)
	Upload(ctx context.Context, input attachment.UploadInput) (*domain.Attachment, error)
	DeleteAttachment(ctx context.Context, attachmentID uuid.UUID) error
	DownloadURL(ctx context.Context, attachmentID uuid.UUID) (string, error)
}

// AttachmentHandler serves card attachment endpoints.
type AttachmentHandler struct {
	svc      attachmentService
	maxBytes int64
	log      *slog.Logger
}

// NewAttachmentHandler creates an AttachmentHandler. maxBytes bounds the
// request body of an upload; the service applies the exact file limit.
func NewAttachmentHandler(svc attachmentService, maxBytes int64, logger *slog.Logger) *AttachmentHandler {
	return &AttachmentHandler{svc: svc, maxBytes: maxBytes, log: logger.With("handler", "attachment")}
}

// Register mounts the handler's routes.
func (h *AttachmentHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/cards/{id}/attachments", h.List)
	mux.HandleFunc("POST /api/v1/cards/{id}/attachments", h.Upload)
	mux.HandleFunc("GET /api/v1/attachments/{id}", h.Download)
	mux.HandleFunc("DELETE /api/v1/attachments/{id}", h.Delete)
}

func (h *AttachmentHandler) List(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	items, err := h.svc.ListAttachments(r.Context(), cardID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(items, toAttachmentResponse))
}

// Upload handles POST /api/v1/cards/{id}/attachments with a multipart form
// carrying the file in the "file" field.
func (h *AttachmentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	if h.maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+multipartOverhead)
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, r, h.log, domain.NewValidationError("file", "file is too large"))
			return
		}
		respondError(w, r, h.log, domain.NewValidationError("file", "expected multipart form"))
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, r, h.log, domain.NewValidationError("file", "required"))
		return
	}
	defer file.Close()

	created, err := h.svc.Upload(r.Context(), attachment.UploadInput{
		CardID:      cardID,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAttachmentResponse(*created))
}

// Download handles GET /api/v1/attachments/{id} by returning a short-lived
// presigned URL for the stored object.
func (h *AttachmentHandler) Download(w http.ResponseWriter, r *http.Request) {
	attachmentID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	url, err := h.svc.DownloadURL(r.Context(), attachmentID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

func (h *AttachmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	attachmentID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteAttachment(r.Context(), attachmentID); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
