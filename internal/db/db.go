package db

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"storyvault/internal/models"
)

// Init opens the Postgres connection and migrates the post table. The
// unique index on token and the email index come from the model tags.
func Init(dsn string) *gorm.DB {
	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Database connection established")

	if err := conn.AutoMigrate(&models.Post{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	return conn
}
