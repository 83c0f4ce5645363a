package main

import (
	"flag"
	"log"

	"github.com/PhishGuard/PG-Backend/internal/auth"
	"github.com/PhishGuard/PG-Backend/internal/config"
	"github.com/PhishGuard/PG-Backend/internal/db"
	"github.com/PhishGuard/PG-Backend/internal/seeds"
	"github.com/joho/godotenv"
)

func main() {
	file := flag.String("file", "seeds/users.yaml", "YAML file of demo accounts")
	flag.Parse()

	_ = godotenv.Load(".env.local")
	config.Init()
	db.Connect()
	auth.Init()

	if err := seeds.SeedUsers(*file); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
