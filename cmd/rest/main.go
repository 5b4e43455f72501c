package main

import (
	"context"
	"log"

	"strength-coach-be/internal/bootstrap"
	"strength-coach-be/internal/config"
	"strength-coach-be/internal/server"
	"strength-coach-be/internal/tracer"
	"strength-coach-be/pkg/database"
)

func main() {
	// 1. Tracing (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 2. Configuration
	cfg := config.Load()

	// 3. Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 4. Dependency container. This also starts the reminder scheduler and
	// restores its triggers from the store.
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.ReminderRegistry.Stop()

	// 5. Completion-event consumer
	go func() {
		log.Println("Background: starting consumer service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background consumer error: %v", err)
		}
	}()

	// 6. HTTP server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
