package main

import (
	"fmt"
	"log"

	"github.com/akber360/QA-Cinema/config"
	"github.com/akber360/QA-Cinema/models"
	"github.com/akber360/QA-Cinema/routes"
	"github.com/akber360/QA-Cinema/utils"

	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := config.Connect(cfg)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	if err := migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if err := utils.SeedCatalog(db); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	r := routes.SetupRouter(db, cfg)
	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("server running on %s", addr)
	r.Run(addr)
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Movie{}, &models.Screen{},
		&models.Screening{}, &models.Discussion{}, &models.Booking{}, &models.BookingDetail{})
}
