package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"marketplace/cmd"
	httpserver "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/postgres/bookingrepo"
	"marketplace/internal/adapters/out/postgres/boxrepo"
	"marketplace/internal/adapters/out/postgres/contractrepo"
	"marketplace/internal/adapters/out/postgres/parcelrepo"
	"marketplace/internal/adapters/out/postgres/rentalrepo"
	"marketplace/internal/adapters/out/postgres/servicecatalog"
	"marketplace/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := openDatabase(configs)

	app := cmd.NewCompositionRoot(configs, db)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateExpireContractsCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		logger.Error("Failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

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

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&bookingrepo.BookingDTO{},
		&rentalrepo.RentalDTO{},
		&boxrepo.StorageBoxDTO{},
		&contractrepo.ContractDTO{},
		&parcelrepo.ParcelDTO{},
		&servicecatalog.ServiceDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpserver.NewServer(
		app.CreateCreateParcelCommandHandler(),
		app.CreateDeleteParcelCommandHandler(),
		app.CreateCreateBookingCommandHandler(),
		app.CreateTransitionBookingCommandHandler(),
		app.CreateRescheduleBookingCommandHandler(),
		app.CreateRateBookingCommandHandler(),
		app.CreateCreateRentalCommandHandler(),
		app.CreateTransitionRentalCommandHandler(),
		app.CreateDeleteRentalCommandHandler(),
		app.CreateCreateContractCommandHandler(),
		app.CreateUpdateContractDraftCommandHandler(),
		app.CreateDeleteContractDraftCommandHandler(),
		app.CreateTransitionContractCommandHandler(),
		app.CreateGetAvailableBoxesQueryHandler(),
		app.CreateGetProviderBookingsQueryHandler(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
