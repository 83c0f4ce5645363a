package credits

import (
	"errors"

	"github.com/PhishGuard/PG-Backend/internal/auth"
	"github.com/PhishGuard/PG-Backend/internal/config"
	"github.com/PhishGuard/PG-Backend/internal/db"
	"gorm.io/gorm"
)

// ErrInsufficientCredits means the stored balance couldn't cover the debit.
// Nothing is mutated when it is returned.
var ErrInsufficientCredits = errors.New("insufficient credits")

// DebitTx decrements the stored balance inside the caller's transaction.
// The WHERE clause guards the balance: if it can't cover the amount, zero
// rows match and the balance never goes negative.
func DebitTx(tx *gorm.DB, username string, amount int) error {
	res := tx.Model(&auth.User{}).
		Where("username = ? AND credits >= ?", username, amount).
		UpdateColumn("credits", gorm.Expr("credits - ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientCredits
	}
	return nil
}

// TryDebit runs a standalone debit and refreshes the session's cached
// balance from the store afterwards. Callers that also need a history append
// should use DebitTx inside one transaction instead.
func TryDebit(sess *auth.Session, amount int) error {
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		return DebitTx(tx, sess.Username, amount)
	})
	if err != nil {
		return err
	}
	return RefreshCache(sess)
}

// TopUp adds the fixed grant to the stored balance and the session cache.
// Always succeeds for a logged-in session.
func TopUp(sess *auth.Session) (int, error) {
	err := db.DB.Model(&auth.User{}).
		Where("username = ?", sess.Username).
		UpdateColumn("credits", gorm.Expr("credits + ?", config.App.TopUpGrant)).Error
	if err != nil {
		return 0, err
	}
	if err := RefreshCache(sess); err != nil {
		return 0, err
	}
	return sess.Credits, nil
}

// Balance reads the stored balance.
func Balance(username string) (int, error) {
	user, err := auth.FindUser(username)
	if err != nil {
		return 0, err
	}
	return user.Credits, nil
}

// RefreshCache re-reads the stored balance into the session. The store is
// authoritative; the cache only exists so handlers can show the balance
// without another query.
func RefreshCache(sess *auth.Session) error {
	balance, err := Balance(sess.Username)
	if err != nil {
		return err
	}
	auth.Sessions.SetCredits(sess.SessionID, balance)
	sess.Credits = balance
	return nil
}
