package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"signflow-server/internal/infra/pubsub"
	"signflow-server/internal/infra/sql"
	"signflow-server/internal/signing/domain"
	"signflow-server/internal/signing/persistence/internal"
	"signflow-server/internal/signing/usecases"
)

func NewDocumentRepository(publisherFactory pubsub.PublisherFactory, orm sql.ORM) (*SimpleDocumentRepository, error) {
	publisher, err := publisherFactory.New("documents", internal.Document{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	err = orm.AutoMigrate(&internal.Document{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleDocumentRepository{
		publisher: publisher,
		orm:       orm,
	}, nil
}

var _ usecases.DocumentRepository = (*SimpleDocumentRepository)(nil)

type SimpleDocumentRepository struct {
	publisher pubsub.Publisher
	orm       sql.ORM
}

func (r *SimpleDocumentRepository) Create(ctx context.Context, document domain.Document) error {
	data := internal.FromDocument(document)

	err := r.orm.
		WithContext(ctx).
		Create(&data).
		Error()
	if err != nil {
		return fmt.Errorf("database insert: %w", err)
	}

	r.audit(ctx, pubsub.Key(document.ID), data)
	return nil
}

func (r *SimpleDocumentRepository) GetByID(ctx context.Context, id domain.ID) (domain.Document, error) {
	var entity internal.Document
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Document{}, usecases.ErrDocumentNotFound
	}

	if err != nil {
		return domain.Document{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleDocumentRepository) Update(ctx context.Context, document domain.Document) error {
	data := internal.FromDocument(document)

	err := r.orm.
		WithContext(ctx).
		Save(&data).
		Error()
	if err != nil {
		return fmt.Errorf("database update: %w", err)
	}

	r.audit(ctx, pubsub.Key(document.ID), data)
	return nil
}

func (r *SimpleDocumentRepository) FindAllByOwner(ctx context.Context, ownerID domain.ID, pagination usecases.Pagination) ([]domain.Document, int, error) {
	var total int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.Document{}).
		Where("owner_id = ? AND deleted_at IS NULL", ownerID.String()).
		Count(&total).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("count query: %w", err)
	}

	var entities []internal.Document
	err = r.orm.
		WithContext(ctx).
		Where("owner_id = ? AND deleted_at IS NULL", ownerID.String()).
		Order("created_at DESC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.Document, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}

func (r *SimpleDocumentRepository) FindAllDeletedBefore(ctx context.Context, cutoff time.Time) ([]domain.Document, error) {
	var entities []internal.Document
	err := r.orm.
		WithContext(ctx).
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.Document, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}

func (r *SimpleDocumentRepository) HardDelete(ctx context.Context, id domain.ID) error {
	err := r.orm.
		WithContext(ctx).
		Delete(&internal.Document{}, "id = ?", id.String()).
		Error()
	if err != nil {
		return fmt.Errorf("database delete: %w", err)
	}

	return nil
}

// audit mirrors every write to the document stream. The database row is the
// source of truth; a failed publish is logged, not propagated.
func (r *SimpleDocumentRepository) audit(ctx context.Context, key pubsub.Key, data internal.Document) {
	if err := r.publisher.Publish(ctx, key, data); err != nil {
		slog.Warn("publishing document audit event",
			slog.String("id", data.ID),
			slog.String("error", err.Error()))
	}
}
