package main

import (
	"context"
	"log/slog"

	"tracker/config"
	logs "tracker/internal/infra/log"
	"tracker/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(migrate),
	).Run()
}

func migrate(lc fx.Lifecycle, shutdowner fx.Shutdowner, db *gorm.DB, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				exitCode := 0
				if err := postgres.Migrate(context.Background(), db); err != nil {
					logger.Error("Migration failed", slog.Any("error", err))
					exitCode = 1
				} else {
					logger.Info("Migration completed", slog.Int("tables", len(postgres.Models())))
				}

				if err := shutdowner.Shutdown(fx.ExitCode(exitCode)); err != nil {
					logger.Error("Failed to shutdown", slog.Any("error", err))
				}
			}()

			return nil
		},
	})
}
