package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/seogi1004/dental-al/internal/config"
	"github.com/seogi1004/dental-al/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	routes.Register(router, cfg)

	if err := router.Run(cfg.Addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
