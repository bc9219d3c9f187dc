package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"redihair-backend/config"
	"redihair-backend/controllers"
	"redihair-backend/models"
	"redihair-backend/routes"
	"redihair-backend/services"
	"redihair-backend/utils"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := config.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Service{},
		&models.Appointment{},
		&models.ContactMessage{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if err := models.SeedServices(db); err != nil {
		log.Fatalf("seed: %v", err)
	}

	schedule, err := cfg.Schedule()
	if err != nil {
		log.Fatalf("schedule: %v", err)
	}

	store := services.NewGormStore(db)
	booking, err := services.NewBookingService(store, schedule)
	if err != nil {
		log.Fatalf("booking: %v", err)
	}
	contact := services.NewContactService(store)
	flash := utils.NewFlashStore([]byte(cfg.FlashHashKey))

	ctl := controllers.New(store, booking, contact, flash, cfg.Lang())

	r := routes.SetupRouter(ctl)
	printRoutes(r)
	r.Run(":" + cfg.Port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
