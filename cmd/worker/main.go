package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"chorepool/internal/app/bootstrap"
)

// Worker process entrypoint.
// Data flow:
// 1) Load config (.env is optional, real env wins).
// 2) Build app wiring.
// 3) Poll the request outbox and relay events onto the bus.
func main() {
	_ = godotenv.Load()

	log.Println("chorepool worker starting")
	app, err := bootstrap.BuildWorker()
	if err != nil {
		log.Fatalf("bootstrap worker failed: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("worker shutdown close failed: %v", err)
		}
	}()

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("chorepool worker stopped with error: %v", err)
	}
}
