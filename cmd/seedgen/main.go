package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spotplatform/seedgen/internal/seed"
	"github.com/spotplatform/seedgen/internal/sink"
	"github.com/spotplatform/seedgen/pkg/config"
	"github.com/spotplatform/seedgen/pkg/db"
	"github.com/spotplatform/seedgen/pkg/logger"
	"github.com/spotplatform/seedgen/pkg/security"
)

func main() {
	ctx := context.Background()
	// bootstrap logger early (then re-init after config load)
	logg := logger.New(logger.Options{ServiceName: "seedgen"})

	_ = godotenv.Load()

	direct := flag.Bool("direct", false, "insert into the database instead of printing SQL")
	truncate := flag.Bool("truncate", false, "truncate all seeded tables before inserting (direct mode only)")
	seedFlag := flag.Int64("seed", 0, "random seed; 0 derives one from the wall clock")

	host := flag.String("host", "", "database host override")
	port := flag.Int("port", 0, "database port override")
	database := flag.String("database", "", "database name override")
	user := flag.String("user", "", "database user override")
	password := flag.String("password", "", "database password override")

	flag.Parse()

	cfg, err := config.Load()
	requireResource(ctx, logg, "config", err)

	logg = logger.New(logger.Options{
		ServiceName: "seedgen",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	// Flags win over environment.
	if *seedFlag != 0 {
		cfg.Seed.Seed = *seedFlag
	}
	if *host != "" {
		cfg.DB.Host = *host
		cfg.DB.DSN = ""
	}
	if *port != 0 {
		cfg.DB.Port = *port
		cfg.DB.DSN = ""
	}
	if *database != "" {
		cfg.DB.Name = *database
		cfg.DB.DSN = ""
	}
	if *user != "" {
		cfg.DB.User = *user
		cfg.DB.DSN = ""
	}
	if *password != "" {
		cfg.DB.Password = *password
		cfg.DB.DSN = ""
	}

	seedValue := cfg.Seed.Seed
	explicitSeed := seedValue != 0
	if !explicitSeed {
		seedValue = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seedValue))

	ctx = logg.WithFields(context.Background(), map[string]any{
		"seed":    seedValue,
		"direct":  *direct,
		"users":   cfg.Seed.Users,
		"stores":  cfg.Seed.Stores,
		"batch":   cfg.Seed.BatchSize,
	})
	logg.Info(ctx, "seed run starting")

	var hasher security.Hasher
	switch {
	case cfg.Password.Placeholder:
		hasher = security.PlaceholderHasher{}
	case explicitSeed:
		// Seeded salts keep repeated runs byte-identical.
		hasher = security.NewArgon2Hasher(cfg.Password, rng)
	default:
		hasher = security.NewArgon2Hasher(cfg.Password, nil)
	}

	var out sink.Sink
	if *direct {
		requireResource(ctx, logg, "database config", cfg.DB.EnsureDSN())

		dbClient, err := db.New(ctx, cfg.DB, logg)
		requireResource(ctx, logg, "database", err)
		defer dbClient.Close()

		dbSink, err := sink.NewDatabaseSink(dbClient, logg, cfg.Seed.BatchSize)
		requireResource(ctx, logg, "database sink", err)

		if *truncate {
			logg.Info(ctx, "truncating seeded tables")
			requireResource(ctx, logg, "truncate", dbSink.Truncate(ctx))
		}
		out = dbSink
	} else {
		if *truncate {
			logg.Warn(ctx, "-truncate has no effect without -direct")
		}
		out = sink.NewSQLWriter(os.Stdout)
	}

	pipeline, err := seed.New(seed.Params{
		Config: cfg.Seed,
		Sink:   out,
		Hasher: hasher,
		Logger: logg,
		Rand:   rng,
	})
	requireResource(ctx, logg, "pipeline", err)

	summary, err := pipeline.Run(ctx)
	requireResource(ctx, logg, "seed run", err)

	sctx := logg.WithFields(ctx, map[string]any{
		"users":        summary.Users,
		"owners":       summary.Owners,
		"categories":   summary.Categories,
		"stores":       summary.Stores,
		"menus":        summary.Menus,
		"menu_options": summary.MenuOptions,
		"orders":       summary.Orders,
		"reviews":      summary.Reviews,
	})
	logg.Info(sctx, "seed run completed")
}

func requireResource(ctx context.Context, logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logg.Error(ctx, fmt.Sprintf("resource not working: %s", resource), err)
	os.Exit(1)
}
