package domain

import (
	"time"

	"signflow-server/internal/infra/utils"
)

// Signer is a participant who must complete fields on one document. The
// display index drives the color coding used by clients to tell signers
// apart; it is allocated sequentially per document.
type Signer struct {
	ID           ID
	DocumentID   ID
	Name         string
	Email        string
	DisplayIndex int
	Status       SignerStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (s *Signer) MarkCompleted() {
	s.Status = SignerStatusCompleted
	s.UpdatedAt = time.Now()
}

func NewSignerBuilder() *signerBuilder {
	return &signerBuilder{}
}

type signerBuilder struct {
	actions []signerHandler
}

type signerHandler func(s *Signer) error

func (b *signerBuilder) WithDocument(value ID) *signerBuilder {
	b.actions = append(b.actions, func(s *Signer) error {
		s.DocumentID = value
		return nil
	})
	return b
}

func (b *signerBuilder) WithName(value string) *signerBuilder {
	b.actions = append(b.actions, func(s *Signer) error {
		if value == "" {
			return ErrSignerNameRequired
		}
		s.Name = value
		return nil
	})
	return b
}

func (b *signerBuilder) WithEmail(value string) *signerBuilder {
	b.actions = append(b.actions, func(s *Signer) error {
		if !utils.IsValidEmail(value) {
			return ErrSignerEmailInvalid
		}
		s.Email = value
		return nil
	})
	return b
}

func (b *signerBuilder) WithDisplayIndex(value int) *signerBuilder {
	b.actions = append(b.actions, func(s *Signer) error {
		s.DisplayIndex = value
		return nil
	})
	return b
}

func (b *signerBuilder) Build() (Signer, error) {
	now := time.Now()
	result := Signer{
		ID:        ID(utils.GenerateUUID()),
		Status:    SignerStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Signer{}, err
		}
	}
	return result, nil
}
