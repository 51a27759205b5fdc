package main

import (
	"log"

	"github.com/Arivumathi323/login/internal/auth"
	"github.com/Arivumathi323/login/internal/config"
	"github.com/Arivumathi323/login/internal/dashboard"
	"github.com/Arivumathi323/login/internal/database"
	"github.com/Arivumathi323/login/internal/handlers"
	"github.com/Arivumathi323/login/internal/register"
	"github.com/Arivumathi323/login/internal/routes"
	"github.com/Arivumathi323/login/internal/session"
	"github.com/Arivumathi323/login/internal/store"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	gateway := store.NewDB(db)
	provider := auth.NewLocalProvider(db, cfg.JWTSecret)
	sessions := session.New()
	flow := register.NewFlow(provider, sessions)
	aggregator := dashboard.New(gateway)

	sessions.OnChange(func(id session.Identity, signedIn bool) {
		if signedIn {
			log.Printf("session: signed in as %s", id.Email)
		} else {
			log.Println("session: signed out")
		}
	})

	app := fiber.New()
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	authHandler := handlers.NewAuthHandler(flow, provider, sessions, gateway)
	dashboardHandler := handlers.NewDashboardHandler(aggregator)
	routes.Setup(app, cfg.JWTSecret, authHandler, dashboardHandler)

	log.Printf("Listening on :%s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
