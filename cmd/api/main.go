package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	datasetsHttp "flare-frequency-service/internal/datasets/adapters/http/fiber"
	datasetsRepoPg "flare-frequency-service/internal/datasets/adapters/postgres"
	datasetsUsecase "flare-frequency-service/internal/datasets/core/usecase"

	ffdHttp "flare-frequency-service/internal/ffd/adapters/http/fiber"
	ffdRepoPg "flare-frequency-service/internal/ffd/adapters/postgres"
	ffdUsecase "flare-frequency-service/internal/ffd/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "flare-frequency-service/docs"
)

func main() {
	// Config (.env is optional, for local runs)
	_ = godotenv.Load()

	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		log.Fatal("POSTGRES_DSN is not set")
	}

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	// DB connection
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to open postgres: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping postgres: %v", err)
	}

	// Adapter-level DB wrappers
	datasetsDB := datasetsRepoPg.NewSQLDB(db)
	ffdDB := ffdRepoPg.NewSQLDB(db)

	// Repositories
	datasetRepository := datasetsRepoPg.NewDatasetRepository(datasetsDB)
	datasetReader := ffdRepoPg.NewDatasetReader(ffdDB)

	// Usecases
	storeDatasetUC := datasetsUsecase.NewStoreDatasetUseCase(datasetRepository)
	getDistributionUC := ffdUsecase.NewGetDistributionUseCase(datasetReader)

	// HTTP (Fiber) app + handlers
	app := fiber.New()

	// dataset endpoints
	datasetsHandler := datasetsHttp.NewDatasetHandler(storeDatasetUC)
	app.Post("/datasets", datasetsHandler.CreateDataset)
	app.Post("/datasets/bulk", datasetsHandler.BulkCreateDatasets)

	// distribution endpoints
	ffdHandler := ffdHttp.NewDistributionHandler(getDistributionUC)
	app.Get("/ffd", ffdHandler.GetDistribution)
	app.Get("/ffd/plot", ffdHandler.PlotDistribution)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(addr); err != nil {
			log.Printf("fiber stopped: %v", err)
		}
	}()

	log.Printf("server started on %s", addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("fiber shutdown error: %v", err)
	}

	log.Println("server exiting")
}
