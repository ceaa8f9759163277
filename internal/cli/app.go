package cli

import (
	"context"

	"github.com/rs/zerolog/log"

	cacheadapter "github.com/Ivanvillan/front-820hd-sub000/internal/adapter/cache"
	"github.com/Ivanvillan/front-820hd-sub000/internal/adapter/export"
	"github.com/Ivanvillan/front-820hd-sub000/internal/adapter/persistence/repository"
	"github.com/Ivanvillan/front-820hd-sub000/internal/config"
	"github.com/Ivanvillan/front-820hd-sub000/internal/infrastructure/awsconfig"
	"github.com/Ivanvillan/front-820hd-sub000/internal/infrastructure/cache"
	"github.com/Ivanvillan/front-820hd-sub000/internal/infrastructure/database"
	"github.com/Ivanvillan/front-820hd-sub000/internal/infrastructure/storage"
	"github.com/Ivanvillan/front-820hd-sub000/internal/logger"
	"github.com/Ivanvillan/front-820hd-sub000/internal/usecase"
)

// app is everything the commands share once configuration is loaded.
type app struct {
	cfg       config.Config
	orders    *repository.OrderDynamoRepository
	cache     *cache.RedisCache
	orderUC   *usecase.OrderUseCase
	reference *usecase.ReferenceUseCase
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger.Setup(cfg.LogLevel, cfg.IsDevelopment())

	awsCfg, err := awsconfig.Load(ctx, cfg.AWS)
	if err != nil {
		return nil, err
	}
	ddb := database.NewDynamoDBClient(awsCfg, cfg.Dynamo)
	s3Client := storage.NewS3Client(awsCfg, cfg.Export)

	redisCache, err := cache.NewRedisCache(cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to initialize Redis cache, continuing without caching")
		redisCache, _ = cache.NewRedisCache(config.RedisConfig{Enabled: false})
	}

	orders := repository.NewOrderDynamoRepository(ddb, cfg.Dynamo.OrdersTable)
	catalog := cacheadapter.NewCachedCatalog(
		repository.NewMaterialDynamoRepository(ddb, cfg.Dynamo.MaterialsTable),
		redisCache, cfg.Redis.TTL)
	directory := cacheadapter.NewCachedDirectory(
		repository.NewDirectoryDynamoRepository(ddb, cfg.Dynamo.TechniciansTable, cfg.Dynamo.CustomersTable),
		redisCache, cfg.Redis.TTL)
	exporter := export.NewS3Exporter(s3Client, cfg.Export.Bucket, cfg.Export.Prefix)

	return &app{
		cfg:       cfg,
		orders:    orders,
		cache:     redisCache,
		orderUC:   usecase.NewOrderUseCase(orders, catalog, exporter),
		reference: usecase.NewReferenceUseCase(catalog, directory),
	}, nil
}

func (a *app) Close() {
	if err := a.cache.Close(); err != nil {
		log.Warn().Err(err).Msg("Failed to close Redis cache")
	}
}
