// database/connect.go
package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the platform database and configures the connection
// pool. The schema is owned and migrated by the web frontend service,
// so no AutoMigrate happens here. Callers are expected to treat an
// error as fatal: the process cannot serve rankings without the
// database.
func Connect(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	// Connections are recycled hourly so a dropped backend does not
	// leave the pool full of dead handles.
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("database connection established and connection pool configured")
	return db, nil
}
