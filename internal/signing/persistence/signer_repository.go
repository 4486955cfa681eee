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

func NewSignerRepository(publisherFactory pubsub.PublisherFactory, orm sql.ORM) (*SimpleSignerRepository, error) {
	publisher, err := publisherFactory.New("signers", internal.Signer{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	err = orm.AutoMigrate(&internal.Signer{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleSignerRepository{
		publisher: publisher,
		orm:       orm,
	}, nil
}

var _ usecases.SignerRepository = (*SimpleSignerRepository)(nil)

type SimpleSignerRepository struct {
	publisher pubsub.Publisher
	orm       sql.ORM
}

func (r *SimpleSignerRepository) Create(ctx context.Context, signer domain.Signer) error {
	data := internal.FromSigner(signer)

	err := r.orm.
		WithContext(ctx).
		Create(&data).
		Error()
	if err != nil {
		return fmt.Errorf("database insert: %w", err)
	}

	r.audit(ctx, pubsub.Key(signer.ID), data)
	return nil
}

func (r *SimpleSignerRepository) GetByID(ctx context.Context, id domain.ID) (domain.Signer, error) {
	var entity internal.Signer
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Signer{}, usecases.ErrSignerNotFound
	}

	if err != nil {
		return domain.Signer{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleSignerRepository) Update(ctx context.Context, signer domain.Signer) error {
	data := internal.FromSigner(signer)

	err := r.orm.
		WithContext(ctx).
		Save(&data).
		Error()
	if err != nil {
		return fmt.Errorf("database update: %w", err)
	}

	r.audit(ctx, pubsub.Key(signer.ID), data)
	return nil
}

func (r *SimpleSignerRepository) Delete(ctx context.Context, id domain.ID) error {
	err := r.orm.
		WithContext(ctx).
		Delete(&internal.Signer{}, "id = ?", id.String()).
		Error()
	if err != nil {
		return fmt.Errorf("database delete: %w", err)
	}

	return nil
}

func (r *SimpleSignerRepository) FindAllByDocument(ctx context.Context, documentID domain.ID) ([]domain.Signer, error) {
	var entities []internal.Signer
	err := r.orm.
		WithContext(ctx).
		Where("document_id = ?", documentID.String()).
		Order("display_index ASC").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.Signer, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}

func (r *SimpleSignerRepository) CountByDocument(ctx context.Context, documentID domain.ID) (int, error) {
	var total int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.Signer{}).
		Where("document_id = ?", documentID.String()).
		Count(&total).
		Error()
	if err != nil {
		return 0, fmt.Errorf("count query: %w", err)
	}

	return int(total), nil
}

func (r *SimpleSignerRepository) audit(ctx context.Context, key pubsub.Key, data internal.Signer) {
	if err := r.publisher.Publish(ctx, key, data); err != nil {
		slog.Warn("publishing signer audit event",
			slog.String("id", data.ID),
			slog.String("error", err.Error()))
	}
}
