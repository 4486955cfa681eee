package domain

type ID string

func (vo ID) String() string {
	return string(vo)
}

type DocumentStatus string

const (
	DocumentStatusDraft      DocumentStatus = "draft"
	DocumentStatusPending    DocumentStatus = "pending"
	DocumentStatusCompleted  DocumentStatus = "completed"
	DocumentStatusFinalizing DocumentStatus = "finalizing"
)

type SignerStatus string

const (
	SignerStatusPending   SignerStatus = "pending"
	SignerStatusCompleted SignerStatus = "completed"
)
