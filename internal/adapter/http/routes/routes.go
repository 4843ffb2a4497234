package routes

import (
	"context"
	"log"
	"strconv"

	_ "quote_service/docs" // generated by swag init
	"quote_service/internal/adapter/http/handlers"
	"quote_service/internal/adapter/persistence/postgres"
	"quote_service/internal/adapter/persistence/repository"
	"quote_service/internal/infrastructure/config"
	"quote_service/internal/infrastructure/database"
	"quote_service/internal/usecase"
	"quote_service/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Storage bundles the repositories for one backend.
type Storage struct {
	Quotes    interfaces.IQuoteRepository
	Sequences interfaces.IQuoteSequenceRepository
	Settings  interfaces.ISettingsRepository
	Close     func()
}

// Run will start the server
func Run() {
	cfg := config.MustLoad()

	storage, err := OpenStorage(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to open %s storage: %v", cfg.StorageDriver, err)
	}
	defer storage.Close()

	router := NewRouter(cfg, storage)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := router.Run(":" + strconv.Itoa(cfg.HTTPPort)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// OpenStorage connects to the backend selected by cfg.StorageDriver.
func OpenStorage(ctx context.Context, cfg config.Config) (Storage, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		pool, err := database.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return Storage{}, err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return Storage{}, err
		}
		return Storage{
			Quotes:    postgres.NewQuoteRepository(pool),
			Sequences: postgres.NewQuoteSequenceRepository(pool),
			Settings:  postgres.NewSettingsRepository(pool),
			Close:     pool.Close,
		}, nil
	default:
		ddb := database.ConnectDynamoDB(cfg)
		return Storage{
			Quotes:    repository.NewQuoteDynamoRepository(ddb),
			Sequences: repository.NewQuoteSequenceDynamoRepository(ddb),
			Settings:  repository.NewSettingsDynamoRepository(ddb),
			Close:     func() {},
		}, nil
	}
}

// NewRouter wires use cases and handlers on top of storage.
func NewRouter(cfg config.Config, storage Storage) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	quoteUseCase := usecase.NewQuoteUseCase(storage.Quotes, storage.Sequences, cfg.Now, usecase.QuoteDefaults{
		TaxRate:      cfg.DefaultTaxRate,
		ValidityDays: cfg.DefaultValidityDays,
	})
	settingsUseCase := usecase.NewSettingsUseCase(storage.Settings)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	settingsHandler := handlers.NewSettingsHandler(settingsUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler)
	addSettingsRoutes(v1, settingsHandler)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
