package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/goccy/go-yaml"
)

// Config holds every tunable the server reads at startup.
type Config struct {
	// Port the HTTP server listens on.
	Port string `yaml:"port"`

	// SQLitePath is the database file used when DATABASE_URL is not set.
	SQLitePath string `yaml:"sqlite_path"`

	// Paths to the pre-fitted vectorizer and pre-trained model artifacts.
	VectorizerPath string `yaml:"vectorizer_path"`
	ModelPath      string `yaml:"model_path"`

	// StartingCredits is the balance granted at signup.
	StartingCredits int `yaml:"starting_credits"`

	// TopUpGrant is the fixed amount added per top-up request.
	TopUpGrant int `yaml:"topup_grant"`

	// ClassifyTimeout bounds a single classification call.
	ClassifyTimeout time.Duration `yaml:"classify_timeout"`

	// Per-user rate limit on the check endpoint.
	CheckPerMinute int `yaml:"check_per_minute"`
	CheckBurst     int `yaml:"check_burst"`
}

func Defaults() Config {
	return Config{
		Port:            "5050",
		SQLitePath:      "phishguard.db",
		VectorizerPath:  "artifacts/vectorizer.json",
		ModelPath:       "artifacts/model.json",
		StartingCredits: 20,
		TopUpGrant:      10,
		ClassifyTimeout: 5 * time.Second,
		CheckPerMinute:  60,
		CheckBurst:      10,
	}
}

// App is the active configuration. Init replaces it; tests may set fields
// directly before calling the package Init()s that read them.
var App = Defaults()

// Init loads configuration in three layers: defaults, then the optional YAML
// file named by PG_CONFIG, then individual environment overrides.
//
// Environment variables:
//   - PORT: listen port
//   - PG_SQLITE_PATH: SQLite file when DATABASE_URL is unset
//   - PG_VECTORIZER_PATH, PG_MODEL_PATH: artifact locations
//   - PG_STARTING_CREDITS, PG_TOPUP_GRANT: credit tunables
//   - PG_CLASSIFY_TIMEOUT: Go duration string, e.g. "5s"
func Init() {
	cfg := Defaults()

	if path := os.Getenv("PG_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatal("Failed to read config file: ", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Fatal("Failed to parse config file: ", err)
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("PG_SQLITE_PATH"); v != "" {
		cfg.SQLitePath = v
	}
	if v := os.Getenv("PG_VECTORIZER_PATH"); v != "" {
		cfg.VectorizerPath = v
	}
	if v := os.Getenv("PG_MODEL_PATH"); v != "" {
		cfg.ModelPath = v
	}
	if v := os.Getenv("PG_STARTING_CREDITS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Fatal("Invalid PG_STARTING_CREDITS: ", err)
		}
		cfg.StartingCredits = n
	}
	if v := os.Getenv("PG_TOPUP_GRANT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Fatal("Invalid PG_TOPUP_GRANT: ", err)
		}
		cfg.TopUpGrant = n
	}
	if v := os.Getenv("PG_CLASSIFY_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Fatal("Invalid PG_CLASSIFY_TIMEOUT: ", err)
		}
		cfg.ClassifyTimeout = d
	}

	App = cfg
}
