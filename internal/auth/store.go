package auth

import (
	"errors"
	"strings"

	"github.com/PhishGuard/PG-Backend/internal/config"
	"github.com/PhishGuard/PG-Backend/internal/db"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/cases"
	"gorm.io/gorm"
)

// NormalizeUsername case-folds and trims a username. The same normalization
// runs before every existence check, insert, and lookup, so two names that
// differ only by case always resolve to the same account. The Caser is built
// per call; a shared one isn't safe for concurrent requests.
func NormalizeUsername(username string) string {
	return cases.Fold().String(strings.TrimSpace(username))
}

// Signup creates a new account with the default credit balance.
// Returns ErrEmptyField or ErrUsernameTaken on rejected input.
func Signup(username, password string) (*User, error) {
	username = NormalizeUsername(username)
	if username == "" || password == "" {
		return nil, ErrEmptyField
	}

	var existing User
	err := db.DB.First(&existing, "username = ?", username).Error
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := User{
		Username:       username,
		HashedPassword: string(hashed),
		Credits:        config.App.StartingCredits,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		// A concurrent signup can slip past the existence check; the primary
		// key keeps the store consistent either way.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return &user, nil
}

// Login verifies the credentials and opens a session seeded with the stored
// credit balance. Unknown user and wrong password both come back as
// ErrInvalidCredentials.
func Login(username, password string) (Session, error) {
	username = NormalizeUsername(username)
	if username == "" || password == "" {
		return Session{}, ErrEmptyField
	}

	var user User
	err := db.DB.First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return Session{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return Session{}, ErrInvalidCredentials
	}

	return Sessions.Create(user.Username, user.Credits), nil
}

// FindUser loads one account row by (normalized) username.
func FindUser(username string) (*User, error) {
	var user User
	err := db.DB.First(&user, "username = ?", NormalizeUsername(username)).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
