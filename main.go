package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/cironunes/funretro-api/config"
	"github.com/cironunes/funretro-api/handlers"
	"github.com/cironunes/funretro-api/session"
	"github.com/cironunes/funretro-api/store"
)

func init() {
	// Load .env file if not in production environment
	if os.Getenv("APP_ENV") != "production" {
		err := godotenv.Load()
		if err != nil {
			log.Printf("Warning: .env file not found, environment variables might not be loaded: %v", err)
		}
	}
}

func main() {
	// Initialize database connection
	config.Connect()

	handler := &handlers.Handler{
		Store:    store.New(config.Database),
		Sessions: session.NewDBStore(config.Database),
	}

	// Configure CORS with credentials so the session cookie travels
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.Env.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "X-Requested-With", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(handler.Router())

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000" // fallback port for local development
	}
	serverAddr := "0.0.0.0:" + port

	log.Printf("Server ready at http://%s", serverAddr)
	http.ListenAndServe(serverAddr, corsHandler)
}
