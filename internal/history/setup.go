package history

import (
	"log"

	"github.com/PhishGuard/PG-Backend/internal/db"
)

func Init() {
	if err := db.DB.AutoMigrate(&Entry{}); err != nil {
		log.Fatal("Failed to auto-migrate history table: ", err)
	}
}
