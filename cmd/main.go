package main

import (
	"net/http"

	packingapp "github.com/cisretail/receiving/application/packing"
	receivingapp "github.com/cisretail/receiving/application/receiving"
	"github.com/cisretail/receiving/cmd/config"
	redisclient "github.com/cisretail/receiving/cmd/redis"
	_ "github.com/cisretail/receiving/docs"
	claimRepo "github.com/cisretail/receiving/repository/claim"
	inventoryRepo "github.com/cisretail/receiving/repository/inventory"
	lineRepo "github.com/cisretail/receiving/repository/line"
	lockRepo "github.com/cisretail/receiving/repository/lock"
	shipmentRepo "github.com/cisretail/receiving/repository/shipment"
	txRepo "github.com/cisretail/receiving/repository/tx"
	"github.com/cisretail/receiving/thirdparty/vend"
	"github.com/cisretail/receiving/transport"
	"github.com/cisretail/receiving/utils/logger"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// @title RECEIVING API
// @version 1.0
// @description Shipment receiving and reconciliation API
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
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client (advisory edit locks)
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

	// Inventory sync publisher (post-commit POS updates)
	publisher, err := vend.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer func() {
		_ = publisher.Close()
	}()

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	ShipmentRepo := shipmentRepo.NewShipmentRepository(db)
	LineRepo := lineRepo.NewLineRepository(db)
	ClaimRepo := claimRepo.NewClaimRepository(db)
	InventoryRepo := inventoryRepo.NewInventoryRepository(db)
	LockRepo := lockRepo.NewLockRepository()

	// Initialize application layers
	ReceivingApp := receivingapp.NewReceivingApp(cfg, TxRepo, ShipmentRepo, LineRepo, ClaimRepo, InventoryRepo, LockRepo, publisher)
	PackingApp := packingapp.NewPackingApp(TxRepo, ShipmentRepo, LineRepo)

	httpTransport := transport.NewTransport(ReceivingApp, PackingApp, cfg.Receiving.JWTSecret, cfg.Receiving.InternalAPIKey)

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
