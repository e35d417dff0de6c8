package main

import (
	"fmt"
	"log"

	"github.com/piwi3910/FurniLayout/internal/config"
	"github.com/piwi3910/FurniLayout/internal/predictor/stub"
)

// ============================================================
// Placement Stub Service
// ============================================================

func main() {
	cfg := config.Load()
	app := stub.NewApp(cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting placement stub on %s (env: %s)", addr, cfg.Environment)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
