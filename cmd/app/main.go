package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"restaurant/cmd"
	"restaurant/internal/adapters/out/postgres/menurepo"
	"restaurant/internal/adapters/out/postgres/orderrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultPendingOrderTTL = 30 * time.Minute

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := app.CreateJobManager(pendingOrderTTL(configs), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:        goDotEnvVariable("HTTP_PORT"),
		DBHost:          goDotEnvVariable("DB_HOST"),
		DBPort:          goDotEnvVariable("DB_PORT"),
		DBUser:          goDotEnvVariable("DB_USER"),
		DBPassword:      goDotEnvVariable("DB_PASSWORD"),
		DBName:          goDotEnvVariable("DB_NAME"),
		DBSslMode:       goDotEnvVariable("DB_SSLMODE"),
		PendingOrderTTL: goDotEnvVariable("PENDING_ORDER_TTL"),
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

func pendingOrderTTL(configs cmd.Config) time.Duration {
	if configs.PendingOrderTTL == "" {
		return defaultPendingOrderTTL
	}

	ttl, err := time.ParseDuration(configs.PendingOrderTTL)
	if err != nil {
		log.Fatalf("Error parsing PENDING_ORDER_TTL: %v", err)
	}
	return ttl
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	// TranslateError lets the repositories detect duplicate keys through
	// gorm.ErrDuplicatedKey instead of driver-specific error codes.
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&menurepo.CategoryDTO{},
		&menurepo.MenuItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
