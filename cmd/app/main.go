package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"lytefood/cmd"
	_ "lytefood/docs"
	"lytefood/internal/adapters/out/postgres/cartrepo"
	"lytefood/internal/adapters/out/postgres/sessionrepo"
	"lytefood/internal/generated/servers"
)

// @title Lytefood Client API
// @version 1.0
// @description Backend-for-frontend for the Lytefood food ordering platform.
// @BasePath /api/v1
func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		DBHost:            goDotEnvVariable("DB_HOST"),
		DBPort:            goDotEnvVariable("DB_PORT"),
		DBUser:            goDotEnvVariable("DB_USER"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD"),
		DBName:            goDotEnvVariable("DB_NAME"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE"),
		AuthServiceURL:    goDotEnvVariable("AUTH_SERVICE_URL"),
		MenuServiceURL:    goDotEnvVariable("MENU_SERVICE_URL"),
		OrderServiceURL:   goDotEnvVariable("ORDER_SERVICE_URL"),
		PaymentServiceURL: goDotEnvVariable("PAYMENT_SERVICE_URL"),
		UserServiceURL:    goDotEnvVariable("USER_SERVICE_URL"),
		ServiceToken:      goDotEnvVariable("SERVICE_TOKEN"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(&sessionrepo.SessionDTO{}, &cartrepo.CartDTO{}, &cartrepo.CartItemDTO{})
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Use(app.CreateGuardMiddleware().Middleware())
	servers.RegisterHandlers(e, app.CreateHTTPServer())

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
