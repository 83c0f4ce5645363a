package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/PhishGuard/PG-Backend/internal/auth"
	"github.com/PhishGuard/PG-Backend/internal/classifier"
	"github.com/PhishGuard/PG-Backend/internal/config"
	"github.com/PhishGuard/PG-Backend/internal/credits"
	"github.com/PhishGuard/PG-Backend/internal/db"
	"github.com/PhishGuard/PG-Backend/internal/history"
	"github.com/PhishGuard/PG-Backend/internal/metrics"
	"github.com/PhishGuard/PG-Backend/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	response := "Server is up!"
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, response)
}

func main() {
	_ = godotenv.Load(".env.local")
	config.Init()
	db.Connect()

	auth.Init()
	history.Init()
	classifier.Init()

	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)
	r.Get("/", RootHandler)
	r.Handle("/metrics", metrics.Handler())

	r.Mount("/auth", auth.SetupRoutes())
	r.Mount("/credits", credits.SetupRoutes())
	r.Mount("/history", history.SetupRoutes())
	r.Mount("/check", classifier.SetupRoutes())

	fmt.Println("Server listening on port :" + config.App.Port + "...")

	log.Fatal(http.ListenAndServe("0.0.0.0:"+config.App.Port, r))
}
