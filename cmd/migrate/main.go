package main

import (
	"context"
	"log"

	"talentia/internal/app/bootstrap"
)

// Migrate process entrypoint. Applies the schema and, with
// SEED_DEMO_DATA=true, inserts demo reference data.
func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("talentia migrate failed: %v", err)
	}
}

func run(ctx context.Context) error {
	app, err := bootstrap.BuildMigrate()
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("migrate close failed: %v", err)
		}
	}()
	return app.Run(ctx)
}
