package domain

import "errors"

var (
	ErrDocumentTitleRequired = errors.New("document title is required")
	ErrDocumentHasNoPages    = errors.New("document must have at least one page")
	ErrSignerNameRequired    = errors.New("signer name is required")
	ErrSignerEmailInvalid    = errors.New("signer email is invalid")
	ErrFieldSignerRequired   = errors.New("field must be assigned to a signer")
	ErrFieldPageInvalid      = errors.New("field page number must be positive")
	ErrFieldRectDegenerate   = errors.New("field rectangle must have positive dimensions")
	ErrFieldOutOfBounds      = errors.New("field rectangle exceeds page bounds")
	ErrFieldValueRequired    = errors.New("field value is required for completion")
	ErrFieldAlreadyCompleted = errors.New("field is already completed")
	ErrFieldWrongSigner      = errors.New("field is assigned to a different signer")
	ErrUnknownFieldType      = errors.New("unknown field type")
)
