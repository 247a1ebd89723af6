package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"bizworth/backend/benchmark"
	"bizworth/backend/config"
	"bizworth/backend/database"
	"bizworth/backend/routes"
	"bizworth/backend/storage"
)

func main() {
	cfg := config.Load()

	var st storage.Store
	if cfg.DatabaseURL != "" {
		database.Connect(cfg.DatabaseURL)
		database.EnsureSchema()
		st = storage.NewPostgresStore(database.Pool)
		log.Printf("storage: postgres")
	} else {
		st = storage.NewMemoryStore()
		log.Printf("storage: in-memory (ephemeral)")
	}

	hub := benchmark.NewHub(benchmark.NewService(), cfg.BenchmarkInterval)

	r := gin.Default()
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})
	routes.Register(r, cfg, st, hub)
	log.Printf("server on :%s", cfg.Port)
	r.Run(":" + cfg.Port)
}
