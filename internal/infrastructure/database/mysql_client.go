package database

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jsau0309/altarflowdev-sub007/internal/domain/entities"
)

// ConnectMySQL opens the GORM connection using environment variables.
//
// Supported env vars (local-friendly):
//   - MYSQL_HOST (default: 127.0.0.1)
//   - MYSQL_PORT (default: 3306)
//   - MYSQL_USER (default: root)
//   - MYSQL_PASSWORD
//   - MYSQL_DATABASE (default: altarflow)
//   - APP_ENV (production lowers gorm logging to errors only)
func ConnectMySQL() *gorm.DB {
	db, err := newMySQLFromEnv()
	if err != nil {
		log.Fatalf("failed to connect to mysql: %v", err)
	}
	return db
}

func newMySQLFromEnv() (*gorm.DB, error) {
	host := getenvDefault("MYSQL_HOST", "127.0.0.1")
	user := getenvDefault("MYSQL_USER", "root")
	password := os.Getenv("MYSQL_PASSWORD")
	dbname := getenvDefault("MYSQL_DATABASE", "altarflow")
	port, err := strconv.Atoi(getenvDefault("MYSQL_PORT", "3306"))
	if err != nil {
		return nil, fmt.Errorf("invalid MYSQL_PORT: %w", err)
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		user, password, host, port, dbname)

	logLevel := logger.Info
	if os.Getenv("APP_ENV") == "production" {
		logLevel = logger.Error
	}
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{LogLevel: logLevel},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(60)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(30 * time.Minute)

	return db, nil
}

// Migrate creates or updates the service's tables.
func Migrate(db *gorm.DB) error {
	log.Printf("[database] running migrations")
	return db.AutoMigrate(
		&entities.Church{},
		&entities.DonationTransaction{},
		&entities.PayoutSummary{},
		&entities.IdempotencyRecord{},
	)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
