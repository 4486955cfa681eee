package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"signflow-server/internal/infra/httpserver"
	"signflow-server/internal/signing/domain"
	"signflow-server/internal/signing/httpapi/internal"
	"signflow-server/internal/signing/usecases"
)

const (
	addSignerErrMessage        = "failed to add signer"
	signerNotFoundErrMessage   = "signer not found"
	signerHasFieldsErrMessage  = "signer still has placed fields"
	listSignersErrMessage      = "failed to list signers"
	removeSignerErrMessage     = "failed to remove signer"
	signerIDRequiredErrMessage = "signer id is required"
)

func NewSignerController(service usecases.SignerService) *SignerController {
	return &SignerController{
		service: service,
	}
}

var _ httpserver.Controller = &SignerController{}

type SignerController struct {
	service usecases.SignerService
}

func (c *SignerController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/documents/{id}/signers", c.listSigners())
	router.Handle("POST /v1/documents/{id}/signers", c.addSigner())
	router.Handle("GET /v1/documents/{id}/signers/{signerID}", c.getSigner())
	router.Handle("DELETE /v1/documents/{id}/signers/{signerID}", c.removeSigner())
}

func (c *SignerController) addSigner() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		documentID := r.PathValue("id")
		if documentID == "" {
			http.Error(w, "document id is required", http.StatusBadRequest)
			return
		}

		var body internal.SignerCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding add signer request", slog.String("error", err.Error()))
			http.Error(w, addSignerErrMessage, http.StatusBadRequest)
			return
		}

		signer, err := c.service.AddSigner(r.Context(), domain.ID(documentID), body.Name, body.Email)
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
		if errors.Is(err, domain.ErrSignerNameRequired) || errors.Is(err, domain.ErrSignerEmailInvalid) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err != nil {
			slog.Error("adding signer", slog.String("error", err.Error()))
			http.Error(w, addSignerErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToSignerResponse(signer)
		httpserver.ReplyJSONResponse(w, http.StatusCreated, response)
	}
}

func (c *SignerController) listSigners() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		documentID := r.PathValue("id")
		if documentID == "" {
			http.Error(w, "document id is required", http.StatusBadRequest)
			return
		}

		signers, err := c.service.ListSigners(r.Context(), domain.ID(documentID))
		if errors.Is(err, usecases.ErrDocumentNotFound) {
			http.Error(w, documentNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("listing signers", slog.String("error", err.Error()))
			http.Error(w, listSignersErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.SignerResponse, len(signers))
		for i, signer := range signers {
			responses[i] = internal.ToSignerResponse(signer)
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, responses)
	}
}

func (c *SignerController) getSigner() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		documentID := r.PathValue("id")
		signerID := r.PathValue("signerID")
		if documentID == "" || signerID == "" {
			http.Error(w, signerIDRequiredErrMessage, http.StatusBadRequest)
			return
		}

		signer, err := c.service.GetSigner(r.Context(), domain.ID(documentID), domain.ID(signerID))
		if errors.Is(err, usecases.ErrSignerNotFound) || errors.Is(err, usecases.ErrSignerNotInDocument) {
			http.Error(w, signerNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("getting signer", slog.String("error", err.Error()))
			http.Error(w, "failed to get signer", http.StatusInternalServerError)
			return
		}

		response := internal.ToSignerResponse(signer)
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func (c *SignerController) removeSigner() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		documentID := r.PathValue("id")
		signerID := r.PathValue("signerID")
		if documentID == "" || signerID == "" {
			http.Error(w, signerIDRequiredErrMessage, http.StatusBadRequest)
			return
		}

		err := c.service.RemoveSigner(r.Context(), domain.ID(documentID), domain.ID(signerID))
		if errors.Is(err, usecases.ErrSignerNotFound) || errors.Is(err, usecases.ErrSignerNotInDocument) {
			http.Error(w, signerNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if errors.Is(err, usecases.ErrSignerHasFields) {
			http.Error(w, signerHasFieldsErrMessage, http.StatusConflict)
			return
		}
		if errors.Is(err, usecases.ErrDocumentNotDraft) {
			http.Error(w, documentNotDraftErrMessage, http.StatusConflict)
			return
		}
		if err != nil {
			slog.Error("removing signer", slog.String("error", err.Error()))
			http.Error(w, removeSignerErrMessage, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
