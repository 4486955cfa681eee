package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"signflow-server/internal/infra/httpserver"
	"signflow-server/internal/signing/domain"
	"signflow-server/internal/signing/geometry"
	"signflow-server/internal/signing/httpapi/internal"
	"signflow-server/internal/signing/usecases"
)

const (
	createFieldErrMessage     = "failed to create field"
	fieldNotFoundErrMessage   = "field not found"
	listFieldsErrMessage      = "failed to list fields"
	updateFieldErrMessage     = "failed to update field position"
	deleteFieldErrMessage     = "failed to delete field"
	completeFieldErrMessage   = "failed to complete field"
	fieldIDRequiredErrMessage = "field id is required"
)

func NewFieldController(service usecases.FieldService) *FieldController {
	return &FieldController{
		service: service,
	}
}

var _ httpserver.Controller = &FieldController{}

type FieldController struct {
	service usecases.FieldService
}

func (c *FieldController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/documents/{id}/fields", c.listFields())
	router.Handle("POST /v1/documents/{id}/fields", c.createField())
	router.Handle("PATCH /v1/documents/{id}/fields/{fieldID}/position", c.updateFieldPosition())
	router.Handle("DELETE /v1/documents/{id}/fields/{fieldID}", c.deleteField())
	router.Handle("POST /v1/documents/{id}/fields/{fieldID}/complete", c.completeField())
}

// fieldValidationFailed reports whether the error is a placement invariant
// violation the client can correct, as opposed to an infrastructure failure.
func fieldValidationFailed(err error) bool {
	return errors.Is(err, domain.ErrUnknownFieldType) ||
		errors.Is(err, domain.ErrFieldSignerRequired) ||
		errors.Is(err, domain.ErrFieldPageInvalid) ||
		errors.Is(err, domain.ErrFieldRectDegenerate) ||
		errors.Is(err, domain.ErrFieldOutOfBounds) ||
		errors.Is(err, usecases.ErrPageOutOfRange)
}

func (c *FieldController) listFields() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		documentID := r.PathValue("id")
		if documentID == "" {
			http.Error(w, "document id is required", http.StatusBadRequest)
			return
		}

		rawPage := httpserver.GetQueryParam(r, "page")
		if rawPage == "" {
			fields, err := c.service.ListAllFields(r.Context(), domain.ID(documentID))
			if err != nil {
				slog.Error("listing all fields", slog.String("error", err.Error()))
				http.Error(w, listFieldsErrMessage, http.StatusInternalServerError)
				return
			}
			httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToFieldResponses(fields))
			return
		}

		pageNumber, err := strconv.Atoi(rawPage)
		if err != nil || pageNumber < 1 {
			http.Error(w, "page must be a positive integer", http.StatusBadRequest)
			return
		}

		fields, err := c.service.ListFields(r.Context(), domain.ID(documentID), pageNumber)
		if err != nil {
			slog.Error("listing fields", slog.String("error", err.Error()))
			http.Error(w, listFieldsErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToFieldResponses(fields))
	}
}

func (c *FieldController) createField() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		documentID := r.PathValue("id")
		if documentID == "" {
			http.Error(w, "document id is required", http.StatusBadRequest)
			return
		}

		var body internal.FieldCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding create field request", slog.String("error", err.Error()))
			http.Error(w, createFieldErrMessage, http.StatusBadRequest)
			return
		}

		required := true
		if body.Required != nil {
			required = *body.Required
		}

		draft := domain.FormField{
			FieldType:        domain.FieldType(body.FieldType),
			PageNumber:       body.PageNumber,
			AssignedSignerID: domain.ID(body.SignerID),
			Position: geometry.PercentRect{
				X:      body.XPosition,
				Y:      body.YPosition,
				Width:  body.Width,
				Height: body.Height,
			},
			Required: required,
		}

		field, err := c.service.CreateField(r.Context(), domain.ID(documentID), draft)
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
		if errors.Is(err, usecases.ErrSignerNotFound) || errors.Is(err, usecases.ErrSignerNotInDocument) {
			http.Error(w, signerNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if fieldValidationFailed(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err != nil {
			slog.Error("creating field", slog.String("error", err.Error()))
			http.Error(w, createFieldErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToFieldResponse(field)
		httpserver.ReplyJSONResponse(w, http.StatusCreated, response)
	}
}

func (c *FieldController) updateFieldPosition() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		documentID := r.PathValue("id")
		fieldID := r.PathValue("fieldID")
		if documentID == "" || fieldID == "" {
			http.Error(w, fieldIDRequiredErrMessage, http.StatusBadRequest)
			return
		}

		var body internal.FieldPositionRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding field position request", slog.String("error", err.Error()))
			http.Error(w, updateFieldErrMessage, http.StatusBadRequest)
			return
		}

		field, err := c.service.UpdateFieldPosition(r.Context(), domain.ID(documentID), fieldID, body.ToPercentRect())
		if errors.Is(err, usecases.ErrDocumentNotFound) {
			http.Error(w, documentNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if errors.Is(err, usecases.ErrFieldNotFound) {
			http.Error(w, fieldNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if errors.Is(err, usecases.ErrDocumentNotDraft) {
			http.Error(w, documentNotDraftErrMessage, http.StatusConflict)
			return
		}
		if fieldValidationFailed(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err != nil {
			slog.Error("updating field position", slog.String("error", err.Error()))
			http.Error(w, updateFieldErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToFieldResponse(field)
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func (c *FieldController) deleteField() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		documentID := r.PathValue("id")
		fieldID := r.PathValue("fieldID")
		if documentID == "" || fieldID == "" {
			http.Error(w, fieldIDRequiredErrMessage, http.StatusBadRequest)
			return
		}

		err := c.service.DeleteField(r.Context(), domain.ID(documentID), fieldID)
		if errors.Is(err, usecases.ErrDocumentNotFound) {
			http.Error(w, documentNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if errors.Is(err, usecases.ErrFieldNotFound) {
			http.Error(w, fieldNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if errors.Is(err, usecases.ErrDocumentNotDraft) {
			http.Error(w, documentNotDraftErrMessage, http.StatusConflict)
			return
		}
		if err != nil {
			slog.Error("deleting field", slog.String("error", err.Error()))
			http.Error(w, deleteFieldErrMessage, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *FieldController) completeField() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		documentID := r.PathValue("id")
		fieldID := r.PathValue("fieldID")
		if documentID == "" || fieldID == "" {
			http.Error(w, fieldIDRequiredErrMessage, http.StatusBadRequest)
			return
		}

		var body internal.FieldCompleteRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding complete field request", slog.String("error", err.Error()))
			http.Error(w, completeFieldErrMessage, http.StatusBadRequest)
			return
		}

		field, err := c.service.CompleteField(r.Context(), domain.ID(documentID), fieldID, domain.ID(body.SignerID), body.Value)
		if errors.Is(err, usecases.ErrDocumentNotFound) {
			http.Error(w, documentNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if errors.Is(err, usecases.ErrFieldNotFound) {
			http.Error(w, fieldNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if errors.Is(err, domain.ErrFieldAlreadyCompleted) || errors.Is(err, domain.ErrFieldWrongSigner) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		if errors.Is(err, domain.ErrFieldValueRequired) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err != nil {
			slog.Error("completing field", slog.String("error", err.Error()))
			http.Error(w, completeFieldErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToFieldResponse(field)
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}
