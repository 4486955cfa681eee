package httpapi

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"signflow-server/internal/infra/httpserver"
	"signflow-server/internal/signing/domain"
	"signflow-server/internal/signing/httpapi/internal"
	"signflow-server/internal/signing/usecases"
)

const (
	maxUploadBytes = 32 << 20

	createDocumentErrMessage   = "failed to create document"
	documentNotFoundErrMessage = "document not found"
	documentDeletedErrMessage  = "document is deleted"
	documentNotDraftErrMessage = "document is not in draft"
	listDocumentsErrMessage    = "failed to list documents"
	getDocumentErrMessage      = "failed to get document"
	deleteDocumentErrMessage   = "failed to delete document"
	finalizeDocumentErrMessage = "failed to finalize document"
	downloadDocumentErrMessage = "failed to download document"
)

func NewDocumentController(service usecases.DocumentService) *DocumentController {
	return &DocumentController{
		service: service,
	}
}

var _ httpserver.Controller = &DocumentController{}

type DocumentController struct {
	service usecases.DocumentService
}

func (c *DocumentController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/documents", c.listDocuments())
	router.Handle("POST /v1/documents", c.createDocument())
	router.Handle("GET /v1/documents/{id}", c.getDocument())
	router.Handle("DELETE /v1/documents/{id}", c.softDeleteDocument())
	router.Handle("POST /v1/documents/{id}/finalize", c.finalizeDocument())
	router.Handle("GET /v1/documents/{id}/download", c.downloadDocument())
}

func ownerFromRequest(r *http.Request) (domain.ID, error) {
	userID := r.Header.Get("X-User-ID")
	if userID == "" {
		return "", errors.New("X-User-ID header is required")
	}
	return domain.ID(userID), nil
}

func (c *DocumentController) createDocument() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := ownerFromRequest(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			slog.Error("parsing upload form", slog.String("error", err.Error()))
			http.Error(w, "multipart form with a file part is required", http.StatusBadRequest)
			return
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "file part is required", http.StatusBadRequest)
			return
		}
		defer file.Close()

		title := r.FormValue("title")

		document, err := c.service.CreateDocument(r.Context(), ownerID, title, file)
		if errors.Is(err, domain.ErrDocumentTitleRequired) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err != nil {
			slog.Error("creating document", slog.String("error", err.Error()))
			http.Error(w, createDocumentErrMessage, http.StatusUnprocessableEntity)
			return
		}

		response := internal.ToDocumentResponse(document)
		httpserver.ReplyJSONResponse(w, http.StatusCreated, response)
	}
}

func (c *DocumentController) listDocuments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := ownerFromRequest(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		params := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{Limit: params.Limit, Offset: (params.Page - 1) * params.Limit}

		documents, total, err := c.service.ListDocuments(r.Context(), ownerID, pagination)
		if err != nil {
			slog.Error("listing documents", slog.String("error", err.Error()))
			http.Error(w, listDocumentsErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.DocumentResponse, len(documents))
		for i, document := range documents {
			responses[i] = internal.ToDocumentResponse(document)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, params)
	}
}

func (c *DocumentController) getDocument() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "document id is required", http.StatusBadRequest)
			return
		}

		document, err := c.service.GetDocument(r.Context(), domain.ID(id))
		if errors.Is(err, usecases.ErrDocumentNotFound) {
			http.Error(w, documentNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("getting document", slog.String("error", err.Error()))
			http.Error(w, getDocumentErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToDocumentResponse(document)
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func (c *DocumentController) softDeleteDocument() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "document id is required", http.StatusBadRequest)
			return
		}

		err := c.service.SoftDeleteDocument(r.Context(), domain.ID(id))
		if errors.Is(err, usecases.ErrDocumentNotFound) {
			http.Error(w, documentNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if errors.Is(err, usecases.ErrDocumentDeleted) {
			http.Error(w, documentDeletedErrMessage, http.StatusConflict)
			return
		}
		if err != nil {
			slog.Error("deleting document", slog.String("error", err.Error()))
			http.Error(w, deleteDocumentErrMessage, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *DocumentController) finalizeDocument() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "document id is required", http.StatusBadRequest)
			return
		}

		err := c.service.RequestFinalize(r.Context(), domain.ID(id))
		if errors.Is(err, usecases.ErrDocumentNotFound) {
			http.Error(w, documentNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if errors.Is(err, usecases.ErrDocumentDeleted) {
			http.Error(w, documentDeletedErrMessage, http.StatusConflict)
			return
		}
		if errors.Is(err, usecases.ErrDocumentNotDraft) {
			http.Error(w, documentNotDraftErrMessage, http.StatusConflict)
			return
		}
		if err != nil {
			slog.Error("requesting finalize", slog.String("error", err.Error()))
			http.Error(w, finalizeDocumentErrMessage, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusAccepted)
	}
}

func (c *DocumentController) downloadDocument() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "document id is required", http.StatusBadRequest)
			return
		}

		output, err := c.service.OpenFinalized(r.Context(), domain.ID(id))
		if errors.Is(err, usecases.ErrDocumentNotFound) {
			http.Error(w, documentNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if errors.Is(err, usecases.ErrDocumentNotFinalized) {
			http.Error(w, "document has no finalized output", http.StatusConflict)
			return
		}
		if err != nil {
			slog.Error("opening finalized document", slog.String("error", err.Error()))
			http.Error(w, downloadDocumentErrMessage, http.StatusInternalServerError)
			return
		}
		defer output.Close()

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", id+".pdf"))
		if _, err := io.Copy(w, output); err != nil {
			slog.Error("streaming finalized document", slog.String("error", err.Error()))
		}
	}
}
