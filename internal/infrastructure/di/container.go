package di

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"nftmarket/internal/adapters/inbound/http/controllers"
	httpRouter "nftmarket/internal/adapters/inbound/http/router"
	"nftmarket/internal/adapters/inbound/ws"
	"nftmarket/internal/adapters/outbound/cache/rediscache"
	"nftmarket/internal/adapters/outbound/docs"
	postgresql "nftmarket/internal/adapters/outbound/persistence/postgresql"
	postgresqlcollectioncatalog "nftmarket/internal/adapters/outbound/persistence/postgresql/collectioncatalog"
	postgresqlmarketconfig "nftmarket/internal/adapters/outbound/persistence/postgresql/marketconfig"
	postgresqlorderledger "nftmarket/internal/adapters/outbound/persistence/postgresql/orderledger"
	postgresqlshared "nftmarket/internal/adapters/outbound/persistence/postgresql/shared"
	portsin "nftmarket/internal/application/ports/in"
	portsout "nftmarket/internal/application/ports/out"
	"nftmarket/internal/application/use_cases"
	"nftmarket/internal/infrastructure/config"
	"nftmarket/internal/infrastructure/httpserver"

	"github.com/redis/go-redis/v9"
)

type Container struct {
	Database                     *sql.DB
	Server                       *httpserver.Server
	EventHub                     *ws.Hub
	InitializePersistenceUseCase portsin.InitializePersistenceUseCase
}

func Build(cfg config.Config, logger *log.Logger) (Container, error) {
	persistenceGateway := postgresql.NewPersistenceBootstrapGateway(
		cfg.DatabaseURL,
		cfg.DatabaseTarget,
		cfg.MigrationsPath,
		logger,
	)
	initializePersistenceUseCase := use_cases.NewInitializePersistenceUseCase(persistenceGateway)
	databasePool := postgresqlshared.NewDatabasePool(cfg.DatabaseURL, logger)

	orderLedger := postgresqlorderledger.NewRepository(databasePool, logger)
	marketConfigStore := postgresqlmarketconfig.NewRepository(databasePool, logger)

	collectionCatalog, err := buildCollectionCatalog(cfg, databasePool, logger)
	if err != nil {
		return Container{}, err
	}

	eventHub := ws.NewHub(logger)
	clock := use_cases.NewSystemClock()

	setupMarketUseCase := use_cases.NewSetupMarketUseCase(marketConfigStore)
	updateMarketConfigUseCase := use_cases.NewUpdateMarketConfigUseCase(marketConfigStore)
	getMarketConfigUseCase := use_cases.NewGetMarketConfigUseCase(marketConfigStore)

	addCollectionUseCase := use_cases.NewAddCollectionUseCase(marketConfigStore, collectionCatalog)
	updateCollectionUseCase := use_cases.NewUpdateCollectionUseCase(marketConfigStore, collectionCatalog)
	getCollectionUseCase := use_cases.NewGetCollectionUseCase(collectionCatalog)
	listCollectionsUseCase := use_cases.NewListCollectionsUseCase(collectionCatalog)

	executeOrderUseCase := use_cases.NewExecuteOrderUseCase(orderLedger, collectionCatalog, eventHub, clock)
	executeAuctionUseCase := use_cases.NewExecuteAuctionUseCase(orderLedger, collectionCatalog, eventHub, clock)
	placeBidUseCase := use_cases.NewPlaceBidUseCase(orderLedger, marketConfigStore, eventHub, clock)
	cancelOrderUseCase := use_cases.NewCancelOrderUseCase(orderLedger, marketConfigStore, eventHub, clock)
	notifyItemDepositUseCase := use_cases.NewNotifyItemDepositUseCase(
		marketConfigStore,
		collectionCatalog,
		orderLedger,
		eventHub,
		clock,
	)
	notifyTokenDepositUseCase := use_cases.NewNotifyTokenDepositUseCase(
		executeOrderUseCase,
		placeBidUseCase,
		cancelOrderUseCase,
	)

	getOrderUseCase := use_cases.NewGetOrderUseCase(orderLedger)
	listOrdersUseCase := use_cases.NewListOrdersUseCase(orderLedger)
	getCancelFeeUseCase := use_cases.NewGetCancelFeeUseCase(orderLedger, marketConfigStore)

	healthUseCase := use_cases.NewGetHealthUseCase()
	openAPIReadModel := docs.NewFileOpenAPISpecReadModel(cfg.OpenAPISpecPath)
	openAPIUseCase := use_cases.NewGetOpenAPISpecUseCase(openAPIReadModel)

	healthController := controllers.NewHealthController(healthUseCase, logger)
	swaggerController := controllers.NewSwaggerController(openAPIUseCase, logger)
	marketController := controllers.NewMarketController(
		setupMarketUseCase,
		updateMarketConfigUseCase,
		getMarketConfigUseCase,
		logger,
	)
	collectionsController := controllers.NewCollectionsController(
		addCollectionUseCase,
		updateCollectionUseCase,
		getCollectionUseCase,
		listCollectionsUseCase,
		logger,
	)
	depositsController := controllers.NewDepositsController(
		notifyItemDepositUseCase,
		notifyTokenDepositUseCase,
		logger,
	)
	ordersController := controllers.NewOrdersController(
		executeOrderUseCase,
		executeAuctionUseCase,
		placeBidUseCase,
		cancelOrderUseCase,
		getOrderUseCase,
		listOrdersUseCase,
		getCancelFeeUseCase,
		logger,
	)

	mux := httpRouter.New(httpRouter.Dependencies{
		HealthController:      healthController,
		SwaggerController:     swaggerController,
		MarketController:      marketController,
		CollectionsController: collectionsController,
		DepositsController:    depositsController,
		OrdersController:      ordersController,
		EventStreamHandler:    eventHub.HandleSubscribe,
		AdminAPIKey:           cfg.AdminAPIKey,
	})

	var handler http.Handler = mux
	handler = httpRouter.WithRequestLogging(handler, logger)
	server := httpserver.New(cfg.Address(), handler, logger)

	return Container{
		Database:                     databasePool,
		Server:                       server,
		EventHub:                     eventHub,
		InitializePersistenceUseCase: initializePersistenceUseCase,
	}, nil
}

func buildCollectionCatalog(cfg config.Config, databasePool *sql.DB, logger *log.Logger) (portsout.CollectionCatalog, error) {
	repository := postgresqlcollectioncatalog.NewRepository(databasePool, logger)
	if cfg.RedisURL == "" {
		return repository, nil
	}

	options, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}

	client := redis.NewClient(options)
	logger.Printf("collection catalog cache enabled ttl=%s", cfg.CollectionCacheTTL)
	return rediscache.NewCollectionCatalogCache(repository, client, cfg.CollectionCacheTTL, logger), nil
}
