package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"

	"lifelink/cmd"
	lifelinkhttp "lifelink/internal/adapters/in/http"
	"lifelink/internal/adapters/out/postgres"
	"lifelink/internal/pkg/localtime"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	if configs.SeedDemoData {
		if err := postgres.SeedIfEmpty(context.Background(), gormDB, logger); err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
	}

	clock, err := localtime.NewConverter(configs.TimeZone)
	if err != nil {
		log.Fatalf("Time zone setup failed: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, clock)
	startWebServer(&app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	// Missing .env is fine; plain environment variables still apply.
	_ = godotenv.Load(".env")

	seed, _ := strconv.ParseBool(envOrDefault("LIFELINK_SEED", "true"))

	return cmd.Config{
		HTTPPort:     envOrDefault("HTTP_PORT", "8000"),
		DBHost:       envOrDefault("DB_HOST", "localhost"),
		DBPort:       envOrDefault("DB_PORT", "5432"),
		DBUser:       envOrDefault("DB_USER", "postgres"),
		DBPassword:   envOrDefault("DB_PASSWORD", "postgres"),
		DBName:       envOrDefault("DB_NAME", "lifelink"),
		DBSslMode:    envOrDefault("DB_SSLMODE", "disable"),
		TimeZone:     envOrDefault("LIFELINK_TZ", localtime.DefaultZone),
		SeedDemoData: seed,
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, preferredPort string, logger *slog.Logger) {
	server := lifelinkhttp.NewServer(
		app.CreateCreateTransportRequestCommandHandler(),
		app.CreateCreateEmergencyRequestCommandHandler(),
		app.CreateClaimOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateRegisterHospitalCommandHandler(),
		app.CreateCreateListingCommandHandler(),
		app.CreateApplyDriverCommandHandler(),
		app.CreateListListingsQueryHandler(),
		app.CreateGetOrderDetailsQueryHandler(),
		app.CreateGetHospitalBoardQueryHandler(),
		app.CreateGetDriverPortalQueryHandler(),
		app.CreateGetAllOrgansQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	port := freePort(preferredPort)
	logger.Info("starting http server", "port", port)
	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

// freePort returns the preferred port when it is free, otherwise scans the
// next nineteen, and finally falls back to an OS-assigned one.
func freePort(preferred string) string {
	base, err := strconv.Atoi(preferred)
	if err != nil {
		base = 8000
	}

	for port := base; port < base+20; port++ {
		l, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
		if err != nil {
			continue
		}
		_ = l.Close()
		return strconv.Itoa(port)
	}

	l, err := net.Listen("tcp", ":0")
	if err != nil {
		log.Fatalf("No free port available: %v", err)
	}
	port := l.Addr().(*net.TCPAddr).Port
	_ = l.Close()
	return strconv.Itoa(port)
}
