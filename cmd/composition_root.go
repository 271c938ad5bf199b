package cmd

import (
	"fmt"

	httpin "packing/internal/adapters/in/http"
	"packing/internal/adapters/out/cache"
	"packing/internal/adapters/out/catalog"
	"packing/internal/adapters/out/postgres"
	"packing/internal/core/application/usecases/commands"
	"packing/internal/core/application/usecases/queries"
	"packing/internal/core/ports"
	"packing/internal/jobs"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *zap.Logger

	ledgerCache      *cache.LedgerViewCache
	redisInvalidator *cache.RedisShipmentInvalidator
	invalidator      ports.CacheInvalidator
	boxCatalog  *catalog.BoxCatalog
	metrics     ports.PackingMetrics
}

// NewCompositionRoot wires the adapters shared by every handler. redisClient
// is optional: without it only the local ledger cache is invalidated.
func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	redisClient redis.UniversalClient,
	metrics ports.PackingMetrics,
	logger *zap.Logger,
) (CompositionRoot, error) {
	boxCatalog, err := catalog.Load(cfg.BoxCatalogPath)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to load box catalog: %w", err)
	}

	ledgerCache := cache.NewLedgerViewCache(
		cache.WithTTL(cfg.LedgerCacheTTL),
		cache.WithMaxEntries(cfg.LedgerCacheMaxEntries),
		cache.WithLogger(logger),
	)

	root := CompositionRoot{
		cfg:         cfg,
		gormDB:      gormDB,
		uowFactory:  postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:      logger,
		ledgerCache: ledgerCache,
		invalidator: cache.NewFanOut(ledgerCache),
		boxCatalog:  boxCatalog,
		metrics:     metrics,
	}
	if redisClient != nil {
		root.redisInvalidator = cache.NewRedisShipmentInvalidator(redisClient,
			cache.WithKeyPrefix(cfg.ShipmentCachePrefix),
			cache.WithChannel(cfg.ShipmentCacheChannel),
			cache.WithInvalidatorLogger(logger),
		)
		root.invalidator = cache.NewFanOut(ledgerCache, root.redisInvalidator)
	}
	return root, nil
}

// Close stops background workers owned by the root. It does not close the
// database or the redis client.
func (c *CompositionRoot) Close() {
	if c.redisInvalidator != nil {
		c.redisInvalidator.Close()
	}
}

func (c *CompositionRoot) CreateCreateSessionCommandHandler() commands.CreateSessionCommandHandler {
	return commands.NewCreateSessionCommandHandler(c.packingUoWFactory(), c.boxCatalog, c.invalidator, c.metrics)
}

func (c *CompositionRoot) CreateCompleteSessionCommandHandler() commands.CompleteSessionCommandHandler {
	return commands.NewCompleteSessionCommandHandler(c.sessionUoWFactory(), c.invalidator, c.metrics)
}

func (c *CompositionRoot) CreateDeleteSessionCommandHandler() commands.DeleteSessionCommandHandler {
	return commands.NewDeleteSessionCommandHandler(c.packingUoWFactory(), c.invalidator, c.metrics)
}

func (c *CompositionRoot) CreateRestoreDeletedOrderCommandHandler() commands.RestoreDeletedOrderCommandHandler {
	return commands.NewRestoreDeletedOrderCommandHandler(c.packingUoWFactory(), c.invalidator)
}

func (c *CompositionRoot) CreateAddCartonCommandHandler() commands.AddCartonCommandHandler {
	return commands.NewAddCartonCommandHandler(c.sessionUoWFactory(), c.boxCatalog, c.invalidator)
}

func (c *CompositionRoot) CreateOpenNextCartonCommandHandler() commands.OpenNextCartonCommandHandler {
	return commands.NewOpenNextCartonCommandHandler(c.sessionUoWFactory(), c.invalidator)
}

func (c *CompositionRoot) CreateDeleteCartonCommandHandler() commands.DeleteCartonCommandHandler {
	return commands.NewDeleteCartonCommandHandler(c.sessionUoWFactory(), c.invalidator)
}

func (c *CompositionRoot) CreateSealCartonCommandHandler() commands.SealCartonCommandHandler {
	return commands.NewSealCartonCommandHandler(c.sessionUoWFactory(), c.invalidator, c.metrics)
}

func (c *CompositionRoot) CreateReopenCartonCommandHandler() commands.ReopenCartonCommandHandler {
	return commands.NewReopenCartonCommandHandler(c.sessionUoWFactory(), c.invalidator)
}

func (c *CompositionRoot) CreateAddItemToCartonCommandHandler() commands.AddItemToCartonCommandHandler {
	return commands.NewAddItemToCartonCommandHandler(c.packingUoWFactory(), c.invalidator, c.metrics)
}

func (c *CompositionRoot) CreateRemoveItemFromCartonCommandHandler() commands.RemoveItemFromCartonCommandHandler {
	return commands.NewRemoveItemFromCartonCommandHandler(c.sessionUoWFactory(), c.invalidator)
}

func (c *CompositionRoot) CreateConsolidateShipmentCommandHandler() commands.ConsolidateShipmentCommandHandler {
	return commands.NewConsolidateShipmentCommandHandler(
		c.shipmentUoWFactory(), c.invalidator, c.metrics, c.cfg.ConsolidationTimeout)
}

func (c *CompositionRoot) CreateConfigureShipmentCommandHandler() commands.ConfigureShipmentCommandHandler {
	return commands.NewConfigureShipmentCommandHandler(c.shipmentUoWFactory(), c.invalidator)
}

func (c *CompositionRoot) CreateListIntakeOrdersQueryHandler() queries.ListIntakeOrdersQueryHandler {
	return queries.NewListIntakeOrdersQueryHandler(c.gormDB, c.logger)
}

func (c *CompositionRoot) CreateValidateScanQueryHandler() queries.ValidateScanQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewValidateScanQueryHandler(uow.OrderRepository(), uow.SessionRepository())
}

func (c *CompositionRoot) CreateGetLedgerViewQueryHandler() queries.GetLedgerViewQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewGetLedgerViewQueryHandler(uow.OrderRepository(), uow.SessionRepository(), c.ledgerCache)
}

func (c *CompositionRoot) CreateGetSessionQueryHandler() queries.GetSessionQueryHandler {
	return queries.NewGetSessionQueryHandler(c.uowFactory.Create().SessionRepository())
}

func (c *CompositionRoot) CreateGetAvailableSessionsQueryHandler() queries.GetAvailableSessionsQueryHandler {
	return queries.NewGetAvailableSessionsQueryHandler(c.gormDB, c.logger)
}

func (c *CompositionRoot) CreateListShipmentsQueryHandler() queries.ListShipmentsQueryHandler {
	return queries.NewListShipmentsQueryHandler(c.gormDB, c.logger)
}

func (c *CompositionRoot) CreateGetShipmentDetailsQueryHandler() queries.GetShipmentDetailsQueryHandler {
	return queries.NewGetShipmentDetailsQueryHandler(c.uowFactory.Create().ShipmentRepository())
}

// CreateHTTPServer assembles the API server from every handler.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		httpin.CommandHandlers{
			CreateSession:       c.CreateCreateSessionCommandHandler(),
			CompleteSession:     c.CreateCompleteSessionCommandHandler(),
			DeleteSession:       c.CreateDeleteSessionCommandHandler(),
			RestoreDeletedOrder: c.CreateRestoreDeletedOrderCommandHandler(),
			AddCarton:           c.CreateAddCartonCommandHandler(),
			OpenNextCarton:      c.CreateOpenNextCartonCommandHandler(),
			DeleteCarton:        c.CreateDeleteCartonCommandHandler(),
			SealCarton:          c.CreateSealCartonCommandHandler(),
			ReopenCarton:        c.CreateReopenCartonCommandHandler(),
			AddItemToCarton:     c.CreateAddItemToCartonCommandHandler(),
			RemoveItem:          c.CreateRemoveItemFromCartonCommandHandler(),
			ConsolidateShipment: c.CreateConsolidateShipmentCommandHandler(),
			ConfigureShipment:   c.CreateConfigureShipmentCommandHandler(),
		},
		httpin.QueryHandlers{
			ListIntakeOrders:     c.CreateListIntakeOrdersQueryHandler(),
			ValidateScan:         c.CreateValidateScanQueryHandler(),
			GetLedgerView:        c.CreateGetLedgerViewQueryHandler(),
			GetSession:           c.CreateGetSessionQueryHandler(),
			GetAvailableSessions: c.CreateGetAvailableSessionsQueryHandler(),
			ListShipments:        c.CreateListShipmentsQueryHandler(),
			GetShipmentDetails:   c.CreateGetShipmentDetailsQueryHandler(),
		},
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.ledgerCache, c.cfg.CacheSweepSchedule, c.logger)
}

func (c *CompositionRoot) sessionUoWFactory() commands.SessionUoWFactory {
	return FuncSessionUoWFactory(func() commands.SessionUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) packingUoWFactory() commands.PackingUoWFactory {
	return FuncPackingUoWFactory(func() commands.PackingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

type FuncSessionUoWFactory func() commands.SessionUoW

func (f FuncSessionUoWFactory) Create() commands.SessionUoW {
	return f()
}

type FuncPackingUoWFactory func() commands.PackingUoW

func (f FuncPackingUoWFactory) Create() commands.PackingUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}
