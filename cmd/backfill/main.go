// Command backfill assigns tracking numbers to shipments created before
// tracking numbers existed. Safe to run repeatedly; rows that already have a
// tracking number are left untouched.
package main

import (
	"context"
	"os"

	"shiptrack/cmd"
	"shiptrack/internal/adapters/out/postgres/shipmentrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck // nothing to do with a failed flush on shutdown

	db, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := db.AutoMigrate(&shipmentrepo.ShipmentDTO{}, &shipmentrepo.ShipmentItemDTO{}); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, db, logger)
	handler := app.CreateBackfillTrackingNumbersCommandHandler()

	count, err := handler.Handle(context.Background())
	if err != nil {
		logger.Error("backfill failed", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("backfill complete", zap.Int("shipments_updated", count))
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}
