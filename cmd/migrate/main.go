package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"github.com/stockly/stock-management/pkg/database"
	"github.com/stockly/stock-management/pkg/logger"
)

func main() {
	logger.Init("migrate", true)

	if err := godotenv.Load(); err != nil {
		logger.Logger.Debug().Err(err).Msg("No .env file, using system environment")
	}

	var migrationsDir string
	flag.StringVar(&migrationsDir, "dir", "./migrations", "directory with migration files")
	flag.Parse()

	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "stockdb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	db, err := database.NewPostgresConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to set goose dialect")
	}

	arguments := flag.Args()
	if len(arguments) == 0 {
		arguments = []string{"up"}
	}

	command := arguments[0]
	var args []string
	if len(arguments) > 1 {
		args = arguments[1:]
	}

	if err := goose.Run(command, db, migrationsDir, args...); err != nil {
		logger.Logger.Fatal().Err(err).Str("command", command).Msg("Migration failed")
	}

	logger.Logger.Info().Str("command", command).Msg("Migration succeeded")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
