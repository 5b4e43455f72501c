package main

import (
	"log"
	"os"

	"strength-coach-be/internal/model"
	"strength-coach-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: no .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: failed to connect to database:", err)
	}

	log.Println("Step 1: setting up extensions...")
	// gen_random_uuid() defaults on the models need pgcrypto.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Printf("Warn: failed to create extension: %v. Continuing...", err)
	}

	log.Println("Step 2: running AutoMigrate...")
	models := []interface{}{
		&model.User{},
		&model.Answer{},
		&model.StrengthProfile{},
		&model.ReminderSetting{},
	}
	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	log.Println("Success: database migration completed.")
}
