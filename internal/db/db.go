package db

import (
	"log"
	"os"
	"time"

	"github.com/PhishGuard/PG-Backend/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect opens the backing store. DATABASE_URL selects Postgres; without it
// the server runs on a local SQLite file, which is the default for the
// single-process demo deployment.
func Connect() {
	lg := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             100 * time.Millisecond, // log queries > 100ms
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	var (
		db      *gorm.DB
		err     error
		sqlite3 bool
	)
	cfg := &gorm.Config{
		Logger:         lg,
		TranslateError: true, // duplicate keys surface as gorm.ErrDuplicatedKey on either driver
	}
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err = gorm.Open(postgres.Open(dsn), cfg)
	} else {
		db, err = gorm.Open(sqlite.Open(config.App.SQLitePath), cfg)
		sqlite3 = true
	}
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("Failed to get sql.DB: ", err)
	}

	if sqlite3 {
		// One writer at a time keeps SQLite from returning "database is locked"
		// under concurrent transactions.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(20)
		sqlDB.SetMaxIdleConns(20)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	DB = db
	log.Println("Connected to database")
}
