package main

import (
	"fmt"
	"os"

	"shiptrack/cmd"
	httpadapter "shiptrack/internal/adapters/in/http"
	"shiptrack/internal/adapters/out/postgres/productrepo"
	"shiptrack/internal/adapters/out/postgres/shipmentrepo"
	"shiptrack/internal/adapters/out/postgres/userrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
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

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)
	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
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

// mustConnectDB opens the database connection and applies schema migrations.
// TranslateError is required so constraint breaches surface as typed GORM
// errors the repositories can map.
func mustConnectDB(configs cmd.Config) *gorm.DB {
	db, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.ShipmentItemDTO{},
		&userrepo.UserDTO{},
		&productrepo.ProductDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.HideBanner = true

	e.Use(httpadapter.RequestLogger(app.Logger()))
	e.Use(httpadapter.PrincipalExtractor())

	server := httpadapter.NewServer(
		app.CreateCreateShipmentCommandHandler(),
		app.CreateUpdateShipmentCommandHandler(),
		app.CreateDeleteShipmentCommandHandler(),
		app.CreateGetShipmentByIDQueryHandler(),
		app.CreateGetShipmentByTrackingNumberQueryHandler(),
		app.CreateListShipmentsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
