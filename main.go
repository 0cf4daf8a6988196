package main

import (
	"fmt"
	"log"

	"github.com/pathania28/s2y-taste-trail/configs"
	"github.com/pathania28/s2y-taste-trail/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	if err := configs.ConnectionDB(cfg.DBSource); err != nil {
		log.Fatalf("connect database failed: %v", err)
	}
	if err := configs.SetupDatabase(); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
	if cfg.SeedDemoData {
		if err := configs.SeedDemoData(); err != nil {
			log.Fatalf("seed demo data failed: %v", err)
		}
	}

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("listening on %s (checkout policy: %s)", addr, cfg.CheckoutPolicy)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
