package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"signflow-server/internal/infra/pubsub"
	"signflow-server/internal/infra/sql"
	"signflow-server/internal/signing/domain"
	"signflow-server/internal/signing/persistence/internal"
	"signflow-server/internal/signing/usecases"
)

func NewFieldRepository(publisherFactory pubsub.PublisherFactory, orm sql.ORM) (*SimpleFieldRepository, error) {
	publisher, err := publisherFactory.New("form_fields", internal.FormField{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	err = orm.AutoMigrate(&internal.FormField{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleFieldRepository{
		publisher: publisher,
		orm:       orm,
	}, nil
}

var _ usecases.FieldRepository = (*SimpleFieldRepository)(nil)

type SimpleFieldRepository struct {
	publisher pubsub.Publisher
	orm       sql.ORM
}

func (r *SimpleFieldRepository) Create(ctx context.Context, field domain.FormField) error {
	data := internal.FromFormField(field)

	err := r.orm.
		WithContext(ctx).
		Create(&data).
		Error()
	if err != nil {
		return fmt.Errorf("database insert: %w", err)
	}

	r.audit(ctx, pubsub.Key(data.ID), data)
	return nil
}

func (r *SimpleFieldRepository) GetByID(ctx context.Context, documentID domain.ID, fieldID string) (domain.FormField, error) {
	var entity internal.FormField
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ? AND document_id = ?", fieldID, documentID.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.FormField{}, usecases.ErrFieldNotFound
	}

	if err != nil {
		return domain.FormField{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleFieldRepository) Update(ctx context.Context, field domain.FormField) error {
	data := internal.FromFormField(field)

	err := r.orm.
		WithContext(ctx).
		Save(&data).
		Error()
	if err != nil {
		return fmt.Errorf("database update: %w", err)
	}

	r.audit(ctx, pubsub.Key(data.ID), data)
	return nil
}

func (r *SimpleFieldRepository) Delete(ctx context.Context, documentID domain.ID, fieldID string) error {
	err := r.orm.
		WithContext(ctx).
		Delete(&internal.FormField{}, "id = ? AND document_id = ?", fieldID, documentID.String()).
		Error()
	if err != nil {
		return fmt.Errorf("database delete: %w", err)
	}

	return nil
}

func (r *SimpleFieldRepository) FindAllByDocument(ctx context.Context, documentID domain.ID) ([]domain.FormField, error) {
	var entities []internal.FormField
	err := r.orm.
		WithContext(ctx).
		Where("document_id = ?", documentID.String()).
		Order("page_number ASC, created_at ASC").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	return toDomainFields(entities), nil
}

func (r *SimpleFieldRepository) FindAllByPage(ctx context.Context, documentID domain.ID, pageNumber int) ([]domain.FormField, error) {
	var entities []internal.FormField
	err := r.orm.
		WithContext(ctx).
		Where("document_id = ? AND page_number = ?", documentID.String(), pageNumber).
		Order("created_at ASC").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	return toDomainFields(entities), nil
}

func (r *SimpleFieldRepository) CountBySigner(ctx context.Context, signerID domain.ID) (int, error) {
	var total int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.FormField{}).
		Where("signer_id = ?", signerID.String()).
		Count(&total).
		Error()
	if err != nil {
		return 0, fmt.Errorf("count query: %w", err)
	}

	return int(total), nil
}

func (r *SimpleFieldRepository) CountIncompleteBySigner(ctx context.Context, signerID domain.ID) (int, error) {
	var total int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.FormField{}).
		Where("signer_id = ? AND required = ? AND completed = ?", signerID.String(), true, false).
		Count(&total).
		Error()
	if err != nil {
		return 0, fmt.Errorf("count query: %w", err)
	}

	return int(total), nil
}

func (r *SimpleFieldRepository) audit(ctx context.Context, key pubsub.Key, data internal.FormField) {
	if err := r.publisher.Publish(ctx, key, data); err != nil {
		slog.Warn("publishing form field audit event",
			slog.String("id", data.ID),
			slog.String("error", err.Error()))
	}
}

func toDomainFields(entities []internal.FormField) []domain.FormField {
	result := make([]domain.FormField, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}
	return result
}
