package routes

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	_ "nardoo_storefront/docs"
	"nardoo_storefront/internal/adapter/http/handlers"
	repository2 "nardoo_storefront/internal/adapter/persistence/repository"
	"nardoo_storefront/internal/infrastructure/database"
	"nardoo_storefront/internal/infrastructure/messaging"
	"nardoo_storefront/internal/infrastructure/payments"
	"nardoo_storefront/internal/usecase"
	"nardoo_storefront/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	cleanup := getRoutes(context.Background())
	defer cleanup()

	port := envInt("PORT", defaultPort)
	err := router.Run(":" + strconv.Itoa(port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(ctx context.Context) func() {
	store, closeStore, err := newKeyValueStore(ctx)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}

	publisher, closePublisher := newEventPublisher()

	ledger, err := usecase.NewOrderLedger(ctx, store, publisher, nil)
	if err != nil {
		log.Fatalf("Failed to load orders: %v", err)
	}
	aggregator, err := usecase.NewAnalyticsAggregator(ctx, store, publisher, nil)
	if err != nil {
		log.Fatalf("Failed to load analytics: %v", err)
	}
	paymentUseCase, err := usecase.NewOrderPaymentUseCase(ctx, store, ledger, newPaymentGateway(), nil)
	if err != nil {
		log.Fatalf("Failed to load payments: %v", err)
	}
	dashboardUseCase := usecase.NewDashboardUseCase(ledger, aggregator, nil)
	catalog, err := usecase.NewCatalogUseCase(ctx, store, aggregator, nil)
	if err != nil {
		log.Fatalf("Failed to load products: %v", err)
	}
	cartUseCase, err := usecase.NewCartUseCase(ctx, store, catalog, ledger, aggregator, nil)
	if err != nil {
		log.Fatalf("Failed to load carts: %v", err)
	}
	userUseCase, err := usecase.NewUserUseCase(ctx, store, aggregator, nil)
	if err != nil {
		log.Fatalf("Failed to load users: %v", err)
	}
	seedAdmin(ctx, userUseCase)

	h := storefrontHandlers{
		orders:    handlers.NewOrderHandler(ledger, envInt("ORDER_RETENTION_DAYS", usecase.DefaultOrderRetentionDays)),
		payments:  handlers.NewOrderPaymentHandler(paymentUseCase),
		analytics: handlers.NewAnalyticsHandler(aggregator, envInt("ANALYTICS_RETENTION_DAYS", usecase.DefaultAnalyticsRetentionDays)),
		dashboard: handlers.NewDashboardHandler(dashboardUseCase),
		catalog:   handlers.NewCatalogHandler(catalog),
		carts:     handlers.NewCartHandler(cartUseCase),
		users:     handlers.NewUserHandler(userUseCase),
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addStorefrontRoutes(v1, h)

	return func() {
		closePublisher()
		closeStore()
	}
}

// newKeyValueStore picks the collection store from STORAGE_DRIVER.
func newKeyValueStore(ctx context.Context) (interfaces.IKeyValueStore, func(), error) {
	driver := strings.ToLower(strings.TrimSpace(os.Getenv("STORAGE_DRIVER")))
	if driver == "" {
		driver = "dynamodb"
	}
	log.Printf("[storage][routes] driver=%s", driver)

	switch driver {
	case "dynamodb":
		ddb := database.ConnectDynamoDB()
		repo := repository2.NewKeyValueDynamoRepository(ddb)
		if err := database.EnsureKeyValueTable(ctx, ddb, repo.TableName()); err != nil {
			return nil, nil, err
		}
		return repo, func() {}, nil
	case "redis":
		rdb := database.ConnectRedis()
		return repository2.NewKeyValueRedisRepository(rdb), func() { _ = rdb.Close() }, nil
	case "sqlite":
		db, err := database.OpenSQLite(os.Getenv("SQLITE_PATH"))
		if err != nil {
			return nil, nil, err
		}
		repo, err := repository2.NewKeyValueSQLiteRepository(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return repo, closeDB(db), nil
	case "memory":
		return repository2.NewKeyValueMemoryRepository(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown STORAGE_DRIVER %q", driver)
	}
}

func closeDB(db *sql.DB) func() {
	return func() {
		if err := db.Close(); err != nil {
			log.Printf("[storage][routes] sqlite close failed err=%v", err)
		}
	}
}

// newEventPublisher returns a nil publisher when RABBITMQ_URL is unset.
func newEventPublisher() (interfaces.IEventPublisher, func()) {
	url := strings.TrimSpace(os.Getenv("RABBITMQ_URL"))
	if url == "" {
		log.Printf("[events][routes] RABBITMQ_URL not set; event publishing disabled")
		return nil, func() {}
	}
	publisher, err := messaging.NewRabbitMQPublisher(url, os.Getenv("RABBITMQ_EXCHANGE"))
	if err != nil {
		log.Printf("[events][routes] rabbitmq unavailable; event publishing disabled err=%v", err)
		return nil, func() {}
	}
	return publisher, publisher.Close
}

// seedAdmin creates the admin account from ADMIN_NAME, ADMIN_EMAIL and ADMIN_PASSWORD.
// Nothing is seeded without a password.
func seedAdmin(ctx context.Context, users *usecase.UserUseCase) {
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Printf("[user][routes] ADMIN_PASSWORD not set; admin account not seeded")
		return
	}
	name := envString("ADMIN_NAME", "azer")
	email := envString("ADMIN_EMAIL", "azer@admin.com")
	if err := users.EnsureAdmin(ctx, name, email, password); err != nil {
		log.Printf("[user][routes] admin seed failed err=%v", err)
	}
}

func newPaymentGateway() interfaces.IPaymentGateway {
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
		return nil
	}
	return mpGateway
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
