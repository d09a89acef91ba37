package main

import (
	"log"

	"lmsconnector/migrations"
	"lmsconnector/src/config"
	"lmsconnector/src/database"

	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/spf13/pflag"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	settings := pflag.String("settings", "./settings", "directory holding appsettings.yaml")
	pflag.Parse()

	command := "up"
	if pflag.NArg() > 0 {
		command = pflag.Arg(0)
	}

	_ = godotenv.Load()
	cfg, err := config.LoadConfig(*settings)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	db, err := gorm.Open(postgres.Open(database.DSN(&cfg.Databases.SQL)), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get SQL DB from GORM DB: %v", err)
	}
	defer sqlDB.Close()

	switch command {
	case "up":
		err = migrations.Up(sqlDB)
	default:
		goose.SetBaseFS(migrations.FS)
		if err = goose.SetDialect("postgres"); err == nil {
			err = goose.Run(command, sqlDB, ".")
		}
	}
	if err != nil {
		log.Fatalf("Failed to run migrations (%s): %v", command, err)
	}

	log.Printf("Database migration %q completed successfully", command)
}
