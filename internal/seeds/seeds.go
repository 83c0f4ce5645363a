package seeds

import (
	"fmt"
	"log"
	"os"

	"github.com/PhishGuard/PG-Backend/internal/auth"
	"github.com/PhishGuard/PG-Backend/internal/config"
	"github.com/PhishGuard/PG-Backend/internal/db"
	"github.com/goccy/go-yaml"
	"golang.org/x/crypto/bcrypt"
)

// seedUser is one entry of the demo-account YAML file.
type seedUser struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Credits  *int   `yaml:"credits"` // nil means the signup default
}

// SeedUsers loads demo accounts from a YAML file and inserts any that don't
// exist yet. Existing accounts are left alone so re-seeding is safe.
func SeedUsers(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var users []seedUser
	if err := yaml.Unmarshal(data, &users); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	for _, su := range users {
		username := auth.NormalizeUsername(su.Username)
		if username == "" || su.Password == "" {
			return fmt.Errorf("seed entry %q: username and password are required", su.Username)
		}

		var existing auth.User
		if err := db.DB.First(&existing, "username = ?", username).Error; err == nil {
			log.Printf("Skipping existing user %q", username)
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		credits := config.App.StartingCredits
		if su.Credits != nil {
			credits = *su.Credits
		}

		user := auth.User{
			Username:       username,
			HashedPassword: string(hashed),
			Credits:        credits,
		}
		if err := db.DB.Create(&user).Error; err != nil {
			return fmt.Errorf("create user %q: %w", username, err)
		}
		log.Printf("Seeded user %q with %d credits", username, credits)
	}

	return nil
}
