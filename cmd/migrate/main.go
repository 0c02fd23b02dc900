package main

// Run database migrations:
//   go run ./cmd/migrate
//   go run ./cmd/migrate -down   # roll back the latest migration

import (
	"context"
	"flag"
	"os"

	"skincare-backend/internal/shared/config"
	"skincare-backend/internal/shared/storage/db"
	"skincare-backend/internal/shared/telemetry"
)

func main() {
	down := flag.Bool("down", false, "roll back the most recent migration")
	flag.Parse()
	defer telemetry.Sync()

	cfg := config.Load()
	ctx := context.Background()

	opts := db.OptionsFromEnv(db.DefaultMigrateOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		telemetry.Error("migrate.connect_failed", map[string]any{"error": err})
		os.Exit(1)
	}
	defer sqlDB.Close()

	run, action := db.RunMigrations, "up"
	if *down {
		run, action = db.RollbackMigration, "down"
	}
	if err := run(ctx, sqlDB); err != nil {
		telemetry.Error("migrate.failed", map[string]any{"action": action, "error": err})
		sqlDB.Close()
		os.Exit(1)
	}
	telemetry.Info("migrate.complete", map[string]any{"action": action})
}
