package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/barbatjuan/ruteo/internal/adapters/cache"
	"github.com/barbatjuan/ruteo/internal/adapters/directions"
	"github.com/barbatjuan/ruteo/internal/adapters/repositories"
	"github.com/barbatjuan/ruteo/internal/api"
	"github.com/barbatjuan/ruteo/internal/platform/db"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis, Google Maps) behind ports
// and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := getEnv("PORT", "8080")
	language := getEnv("GOOGLE_MAPS_LANG", "es")
	region := getEnv("GOOGLE_MAPS_REGION", "UY")

	apiKey := os.Getenv("GOOGLE_MAPS_API_KEY")
	if strings.TrimSpace(apiKey) == "" {
		log.Fatal("GOOGLE_MAPS_API_KEY is required")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	database, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	if err := repositories.InitSchema(database); err != nil {
		log.Fatal(err)
	}

	// Geocode cache is optional; without Redis every lookup hits the API.
	var geocodeCache *cache.RedisGeocodeCache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		geocodeCache = cache.NewRedisGeocodeCache(client, 30*24*time.Hour)
		log.Printf("Geocode cache enabled addr=%s", addr)
	}

	provider, err := directions.NewGoogleProvider(apiKey, language, region, geocodeCache)
	if err != nil {
		log.Fatal(err)
	}

	repo := repositories.NewPostgresRouteRepository(database)
	router := api.NewRouter(provider, provider, provider, repo)

	// Timeouts are tuned for route planning against the external API.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
