package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/luispedrilho/genutra-backend/internal/ai"
	"github.com/luispedrilho/genutra-backend/internal/auth"
	"github.com/luispedrilho/genutra-backend/internal/config"
	"github.com/luispedrilho/genutra-backend/internal/database"
	"github.com/luispedrilho/genutra-backend/internal/handlers"
	"github.com/luispedrilho/genutra-backend/internal/identity"
	"github.com/luispedrilho/genutra-backend/internal/middleware"
	"github.com/luispedrilho/genutra-backend/internal/routes"
	"github.com/luispedrilho/genutra-backend/internal/store"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	if cfg.OpenAIKey == "" {
		log.Println("⚠️  WARNING: OPENAI_API_KEY not set. Plan generation will fail.")
	}
	if cfg.JWTSecret == "your-secret-key-change-in-production" {
		log.Println("⚠️  WARNING: JWT_SECRET is using the default value. Set it in production.")
	}

	// Connect to PostgreSQL
	log.Printf("Connecting to PostgreSQL...")
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL:", err)
	}
	defer db.Close()

	// Wire dependencies once; handlers receive them, no globals
	codec := auth.NewTokenCodec(cfg.JWTSecret)
	h := &handlers.Handler{
		DB:        db,
		Store:     store.New(db),
		Identity:  identity.NewProvider(db),
		Tokens:    codec,
		Generator: ai.NewGenerator(ai.NewClient(cfg.OpenAIKey, cfg.OpenAIModel)),
	}

	// Setup router
	r := chi.NewRouter()
	r.Use(middleware.Recover)
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	routes.Setup(r, h, codec)

	log.Println("📋 Registered routes:")
	log.Println("  POST /login")
	log.Println("  POST /register")
	log.Println("  GET  /ping")
	log.Println("  POST /gerar-plano")
	log.Println("  GET  /planos")
	log.Println("  GET  /planos/recentes")
	log.Println("  GET  /plano/{id}")
	log.Println("  GET  /dashboard")

	log.Printf("🚀 Genutra backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
