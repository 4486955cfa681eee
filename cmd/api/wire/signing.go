//go:build wireinject
// +build wireinject

package wire

import (
	"time"

	"signflow-server/internal/infra/async"
	"signflow-server/internal/signing/httpapi"
	"signflow-server/internal/signing/persistence"
	"signflow-server/internal/signing/usecases"

	"github.com/google/wire"
)

var documentServiceSet = wire.NewSet(
	provideAppConfig,
	provideDatabase,
	providePublisherFactory,
	provideFileStore,
	providePDFProcessor,
	persistence.NewDocumentRepository,
	wire.Bind(new(usecases.DocumentRepository), new(*persistence.SimpleDocumentRepository)),
	usecases.NewDocumentService,
	wire.Bind(new(usecases.DocumentService), new(*usecases.SimpleDocumentService)),
)

func InitializeDocumentController(broker async.InternalBroker) (*httpapi.DocumentController, error) {
	wire.Build(
		documentServiceSet,
		httpapi.NewDocumentController,
	)
	return nil, nil
}

func InitializeSignerController() (*httpapi.SignerController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		providePublisherFactory,
		persistence.NewDocumentRepository,
		wire.Bind(new(usecases.DocumentRepository), new(*persistence.SimpleDocumentRepository)),
		persistence.NewSignerRepository,
		wire.Bind(new(usecases.SignerRepository), new(*persistence.SimpleSignerRepository)),
		persistence.NewFieldRepository,
		wire.Bind(new(usecases.FieldRepository), new(*persistence.SimpleFieldRepository)),
		usecases.NewSignerService,
		wire.Bind(new(usecases.SignerService), new(*usecases.SimpleSignerService)),
		httpapi.NewSignerController,
	)
	return nil, nil
}

func InitializeFieldController(broker async.InternalBroker) (*httpapi.FieldController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		providePublisherFactory,
		provideCache,
		persistence.NewDocumentRepository,
		wire.Bind(new(usecases.DocumentRepository), new(*persistence.SimpleDocumentRepository)),
		persistence.NewSignerRepository,
		wire.Bind(new(usecases.SignerRepository), new(*persistence.SimpleSignerRepository)),
		persistence.NewFieldRepository,
		wire.Bind(new(usecases.FieldRepository), new(*persistence.SimpleFieldRepository)),
		usecases.NewFieldService,
		wire.Bind(new(usecases.FieldService), new(*usecases.SimpleFieldService)),
		httpapi.NewFieldController,
	)
	return nil, nil
}

func InitializeDocumentEventsWebSocketController(broker async.InternalBroker) (*httpapi.DocumentEventsWebSocketController, error) {
	wire.Build(
		httpapi.NewDocumentEventsWebSocketController,
	)
	return nil, nil
}

func InitializeFlattenWorker(broker async.InternalBroker) (*usecases.FlattenWorker, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		providePublisherFactory,
		provideFileStore,
		providePDFProcessor,
		provideFlattener,
		persistence.NewDocumentRepository,
		wire.Bind(new(usecases.DocumentRepository), new(*persistence.SimpleDocumentRepository)),
		persistence.NewFieldRepository,
		wire.Bind(new(usecases.FieldRepository), new(*persistence.SimpleFieldRepository)),
		usecases.NewFinalizationService,
		wire.Bind(new(usecases.FinalizationService), new(*usecases.SimpleFinalizationService)),
		usecases.NewFlattenWorker,
	)
	return nil, nil
}

func InitializeJanitorWorker(ticker *time.Ticker) (*usecases.JanitorWorker, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		providePublisherFactory,
		provideFileStore,
		provideJanitorSchedule,
		provideJanitorRetention,
		persistence.NewDocumentRepository,
		wire.Bind(new(usecases.DocumentRepository), new(*persistence.SimpleDocumentRepository)),
		usecases.NewJanitorWorker,
	)
	return nil, nil
}
