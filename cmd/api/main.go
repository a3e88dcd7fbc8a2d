package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"chorepool/internal/app/bootstrap"
)

// API process entrypoint.
// Data flow:
// 1) Load config (.env is optional, real env wins).
// 2) Build app wiring (ports + adapters + use cases).
// 3) Start HTTP server.
func main() {
	_ = godotenv.Load()

	log.Println("chorepool api starting")
	app, err := bootstrap.BuildAPI()
	if err != nil {
		log.Fatalf("bootstrap api failed: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("api shutdown close failed: %v", err)
		}
	}()

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("chorepool api stopped with error: %v", err)
	}
}
