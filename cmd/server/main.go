package main

import (
	"fmt"
	"log"

	"renobudget/internal/config"
	"renobudget/internal/database"
	"renobudget/internal/server"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	r := server.NewRouter(cfg, db)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
