// Command testmap-reset deletes the example map database at a path and
// recreates it from the fixed test network.
//
// Usage:
//
//	testmap-reset [flags] [path]
//
// The path defaults to db.sqlite in the current working directory.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/lucasvillarinho/testmap"
	"github.com/lucasvillarinho/testmap/database"
	"github.com/lucasvillarinho/testmap/internal/config"
	"github.com/lucasvillarinho/testmap/internal/exitcodes"
	"github.com/lucasvillarinho/testmap/internal/helpers"
	"github.com/lucasvillarinho/testmap/internal/logging"
	"github.com/lucasvillarinho/testmap/schedule"
	"github.com/lucasvillarinho/testmap/testdb"
)

const resetAttempts = 3

func main() {
	configPath := flag.String("config", "", "Path to a YAML configuration file")
	driver := flag.String("driver", "", "SQLite driver: mattn or modernc")
	refresh := flag.String("refresh", "", "Cron spec for periodic resets (e.g. \"@hourly\"); keeps running until interrupted")
	flag.Parse()

	logger := logging.New()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Printf("ERROR: failed to load config: %v", err)
			os.Exit(exitcodes.InvalidConfig)
		}
		cfg = loaded
	}

	if *driver != "" {
		cfg.Driver = *driver
	}
	if *refresh != "" {
		cfg.Refresh = *refresh
	}
	if flag.NArg() > 0 {
		cfg.Path = flag.Arg(0)
	}
	if err := cfg.Validate(); err != nil {
		logger.Printf("ERROR: invalid configuration: %v", err)
		os.Exit(exitcodes.InvalidConfig)
	}

	drv, err := database.ParseDriver(cfg.Driver)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		os.Exit(exitcodes.InvalidConfig)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	reset := func(ctx context.Context) error {
		err := helpers.Retry(ctx, func() error {
			return testmap.Reset(ctx, cfg.Path, testdb.WithDriver(drv))
		}, resetAttempts)
		if err != nil {
			return err
		}

		if info, statErr := os.Stat(cfg.Path); statErr == nil {
			fmt.Printf("reset %s (%s)\n", cfg.Path, humanize.Bytes(uint64(info.Size())))
		}
		return nil
	}

	if err := reset(ctx); err != nil {
		logger.Printf("ERROR: failed to reset %s: %v", cfg.Path, err)
		os.Exit(exitcodes.RuntimeError)
	}

	if cfg.Refresh == "" {
		return
	}

	timezone, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Printf("ERROR: invalid timezone %q: %v", cfg.Timezone, err)
		os.Exit(exitcodes.InvalidConfig)
	}

	scheduler, err := schedule.NewScheduler(timezone)
	if err != nil {
		logger.Printf("ERROR: failed to start scheduler: %v", err)
		os.Exit(exitcodes.RuntimeError)
	}
	defer scheduler.Stop()

	task := func(ctx context.Context) error {
		if err := reset(ctx); err != nil {
			logger.Printf("ERROR: scheduled reset failed: %v", err)
			return err
		}
		return nil
	}
	if err := scheduler.Task(ctx, schedule.Interval(cfg.Refresh), task); err != nil {
		logger.Printf("ERROR: failed to schedule refresh: %v", err)
		os.Exit(exitcodes.InvalidConfig)
	}

	logger.Printf("refreshing %s on schedule %q, press Ctrl+C to stop", cfg.Path, cfg.Refresh)
	<-ctx.Done()
}
