package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/yigit/unirecords/internal/app/migrations"
	"github.com/yigit/unirecords/internal/config"
	"github.com/yigit/unirecords/internal/db"
	"github.com/yigit/unirecords/internal/pkg/logger"
)

const usage = `usage: migrator [-config path] <command>

commands:
  up       apply all pending migrations
  down     roll back the most recent migration
  status   print the state of every migration
  version  print the current schema version`

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the YAML configuration")
	flag.Usage = func() { fmt.Fprintln(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*configPath, flag.Arg(0)); err != nil {
		cmdLogger := logger.WithField("command", flag.Arg(0))
		cmdLogger.Error().Err(err).Msg("Migration command failed")
		os.Exit(1)
	}
}

func run(configPath, command string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	lgr := logger.Configure(logger.Config{
		Level:  logger.ParseLevel(cfg.Logging.Level),
		Pretty: true,
	})

	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	migrator, err := migrations.NewMigrator(database.Pool, lgr)
	if err != nil {
		return err
	}
	defer migrator.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	switch command {
	case "up":
		return migrator.Up(ctx)
	case "down":
		return migrator.Down(ctx)
	case "status":
		return migrator.Status(ctx)
	case "version":
		version, err := migrator.Version(ctx)
		if err != nil {
			return err
		}
		lgr.Info().Int64("version", version).Msg("Current schema version")
		return nil
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}
