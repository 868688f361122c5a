package main

import (
	"context"
	"net/http"

	inventoryapp "github.com/heytrack/heytrack-backend/application/inventory"
	orderapp "github.com/heytrack/heytrack-backend/application/order"
	reservationapp "github.com/heytrack/heytrack-backend/application/reservation"
	userapp "github.com/heytrack/heytrack-backend/application/user"
	"github.com/heytrack/heytrack-backend/cmd/config"
	redisclient "github.com/heytrack/heytrack-backend/cmd/redis"
	_ "github.com/heytrack/heytrack-backend/docs"
	ingredientRepo "github.com/heytrack/heytrack-backend/repository/ingredient"
	orderRepo "github.com/heytrack/heytrack-backend/repository/order"
	recipeRepo "github.com/heytrack/heytrack-backend/repository/recipe"
	redisRepo "github.com/heytrack/heytrack-backend/repository/redis"
	reservationRepo "github.com/heytrack/heytrack-backend/repository/reservation"
	stockledgerRepo "github.com/heytrack/heytrack-backend/repository/stockledger"
	txRepo "github.com/heytrack/heytrack-backend/repository/tx"
	userRepo "github.com/heytrack/heytrack-backend/repository/user"
	"github.com/heytrack/heytrack-backend/thirdparty/rabbitmq"
	"github.com/heytrack/heytrack-backend/transport"
	"github.com/heytrack/heytrack-backend/utils/logger"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// @title HeyTrack API
// @version 1.0
// @description HeyTrack inventory and order API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("pgx", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	RedisRepo := redisRepo.NewRepository()
	IngredientRepo := ingredientRepo.NewIngredientRepository(db)
	ReservationRepo := reservationRepo.NewReservationRepository(db)
	StockLedgerRepo := stockledgerRepo.NewStockLedgerRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	RecipeRepo := recipeRepo.NewRecipeRepository(db)

	// Initialize RabbitMQ publisher for order expiration
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Fatal("err connect rabbitmq publisher", zap.Error(err))
	}
	defer func() {
		_ = publisher.Close()
	}()

	// Initialize RabbitMQ consumer that cancels expired orders
	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.Internal.APIURL, cfg.Internal.APIKey)
	if err != nil {
		logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
	}
	defer func() {
		_ = consumer.Close()
	}()
	if err := consumer.Start(context.Background()); err != nil {
		logger.Fatal("err start rabbitmq consumer", zap.Error(err))
	}

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)
	ReservationApp := reservationapp.NewReservationApp(TxRepo, IngredientRepo, ReservationRepo, StockLedgerRepo)
	InventoryApp := inventoryapp.NewInventoryApp(TxRepo, IngredientRepo, StockLedgerRepo)
	OrderApp := orderapp.NewOrderApp(cfg, TxRepo, OrderRepo, RecipeRepo, ReservationApp, publisher)

	httpTransport := transport.NewTransport(cfg, UserApp, InventoryApp, ReservationApp, OrderApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
