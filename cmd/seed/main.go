// Command seed applies the migrations and loads the initial ingredient
// catalog. It replaces whatever catalog rows exist, so it is safe to rerun.
package main

import (
	"context"
	"log"
	"time"

	"github.com/svyrydov-ihor/burger-joint-web-app/internal/config"
	"github.com/svyrydov-ihor/burger-joint-web-app/internal/infrastructure/persistence/postgres"
	"github.com/svyrydov-ihor/burger-joint-web-app/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	appLog, err := logger.NewZapLogger(cfg.App.Env)
	if err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer appLog.Sync()

	if err := postgres.Migrate(cfg.DB); err != nil {
		appLog.Fatal("run migrations failed", logger.Error(err))
	}

	pool, err := postgres.NewPool(cfg.DB)
	if err != nil {
		appLog.Fatal("postgres connection failed", logger.Error(err))
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := postgres.SeedIngredients(ctx, pool); err != nil {
		appLog.Fatal("seed ingredients failed", logger.Error(err))
	}
	appLog.Info("ingredient catalog seeded")
}
