package main

import (
	"fmt"
	"log"

	"github.com/SerfiMolotov/MissDelice/configs"
	"github.com/SerfiMolotov/MissDelice/middlewares"
	"github.com/SerfiMolotov/MissDelice/repository"
	"github.com/SerfiMolotov/MissDelice/routes"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	db := configs.DB()
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedOpeningHours(); err != nil {
		log.Fatalf("seed opening hours failed: %v", err)
	}

	// Carts and cooldowns live in redis
	configs.ConnectRedis(cfg)

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.VisitsMiddleware(repository.NewVisitRepository(db)))

	r.Static("/uploads", "./"+cfg.UploadDir)

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
