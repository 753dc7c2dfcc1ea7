// One-shot no-show fee assessment for schedulers that run containers instead
// of calling the HTTP trigger. Exits non-zero when the run fails outright;
// per-booking failures are reported in the summary and do not fail the job.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"washbay/internal/handler/middleware"
	"washbay/internal/infra/db"
	"washbay/internal/infra/platform"
	"washbay/internal/infra/repository"
	"washbay/internal/pkg/clock"
	"washbay/internal/pkg/config"
	"washbay/internal/pkg/errs"
	"washbay/internal/usecase/commands"

	"github.com/joho/godotenv"
)

func main() {
	timeout := flag.Duration("timeout", 10*time.Minute, "overall run timeout")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err.Error())
		os.Exit(1)
	}

	logger := middleware.NewLogger(cfg.Log)
	slog.SetDefault(logger.GetSlogLogger())

	if !cfg.NoShowFee.Enabled {
		slog.Info("no-show fee assessment disabled, nothing to do")
		return
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		slog.Error("failed to connect to database", "error", err.Error())
		os.Exit(1)
	}
	defer cleanup()

	client := platform.NewClient(cfg.Platform)
	uc := commands.NewNoShowFeeCommands(
		client, client, client, client,
		repository.NewBillingRepository(pool),
		cfg, clock.NewRealClock(),
	)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	summary, err := uc.Run(ctx)
	if err != nil {
		for _, line := range errs.ExtractStackLines(err, 20) {
			slog.Error(line)
		}
		os.Exit(1)
	}

	if len(summary.Errors) > 0 {
		slog.Warn("run finished with per-booking failures", "failed", len(summary.Errors))
	}
}
