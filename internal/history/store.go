package history

import (
	"github.com/PhishGuard/PG-Backend/internal/db"
	"gorm.io/gorm"
)

// DefaultLimit is how many entries the read path returns; the log itself is
// unbounded.
const DefaultLimit = 10

// AppendTx adds one entry inside the caller's transaction. The check flow
// passes the same transaction that carries the credit debit, so the log and
// the balance always move together.
func AppendTx(tx *gorm.DB, username, url, status string) error {
	entry := Entry{
		Username: username,
		URL:      url,
		Status:   status,
	}
	return tx.Create(&entry).Error
}

// Recent returns the user's newest entries, most recent first. limit <= 0
// falls back to DefaultLimit.
func Recent(username string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	var entries []Entry
	err := db.DB.
		Where("username = ?", username).
		Order("id DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Clear deletes every entry for the user. Other users' logs are untouched.
func Clear(username string) error {
	return db.DB.Where("username = ?", username).Delete(&Entry{}).Error
}
