package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config from .env
const (
	DB_HOST     = "localhost"
	DB_PORT     = "5432"
	DB_USER     = "postgres"
	DB_PASSWORD = "postgres"
	DB_NAME     = "jobupdate"

	// ARCHIVED jobs and automation logs older than this are removed
	PURGE_AFTER_DAYS = 180
)

func main() {
	fmt.Println("============================================")
	fmt.Println("  jobupdate - Purge Archived Data")
	fmt.Println("============================================")
	fmt.Println()

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}

	cutoff := time.Now().AddDate(0, 0, -PURGE_AFTER_DAYS)
	fmt.Printf("Purging records archived before %s\n\n", cutoff.Format("2006-01-02"))

	result := db.Exec(`DELETE FROM jobs WHERE status = 'ARCHIVED' AND updated_at < ?`, cutoff)
	if result.Error != nil {
		log.Fatalf("Failed to purge jobs: %v", result.Error)
	}
	fmt.Printf("  ✓ Removed %d archived jobs\n", result.RowsAffected)

	result = db.Exec(`DELETE FROM automation_logs WHERE created_at < ?`, cutoff)
	if result.Error != nil {
		log.Fatalf("Failed to purge automation logs: %v", result.Error)
	}
	fmt.Printf("  ✓ Removed %d automation logs\n", result.RowsAffected)

	fmt.Println()
	fmt.Println("Done.")
	os.Exit(0)
}
