package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/meinhoongagan/handyhub/config"
	"github.com/meinhoongagan/handyhub/db"
	"github.com/meinhoongagan/handyhub/lifecycle"
	"github.com/meinhoongagan/handyhub/logger"
	"github.com/meinhoongagan/handyhub/payments"
	"github.com/meinhoongagan/handyhub/redis"
	"github.com/meinhoongagan/handyhub/repository"
	"github.com/meinhoongagan/handyhub/routes"
	"github.com/meinhoongagan/handyhub/utils"
)

var autoMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return serve(cmd.Context(), cfg)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&autoMigrate, "migrate", true, "run schema migrations before serving")
}

func serve(ctx context.Context, cfg *config.Config) error {
	log := logger.Setup(cfg.App.Environment, cfg.App.LogLevel)

	gdb, err := db.Open(cfg.Database)
	if err != nil {
		return err
	}
	if autoMigrate {
		if err := db.Migrate(gdb); err != nil {
			return err
		}
	}

	cache, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer cache.Close()

	var store repository.Store = repository.NewGormStore(gdb)
	if cache != nil {
		store = repository.NewCachedStore(store, cache)
		log.Info("service cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.TTL)
	}

	var notifier lifecycle.Notifier = lifecycle.NopNotifier{}
	if cfg.Mail.Enabled() {
		notifier = lifecycle.NewMailNotifier(utils.NewMailer(cfg.Mail), store, log)
	}

	var processor payments.Processor
	if cfg.Payment.Enabled() {
		processor = payments.NewStripeProcessor(cfg.Payment.StripeSecretKey)
	} else {
		log.Warn("STRIPE_SECRET_KEY not set, payment intents are disabled")
	}

	uploader, err := utils.NewUploader(cfg.Cloudinary)
	if err != nil {
		return fmt.Errorf("cloudinary: %w", err)
	}

	app := routes.NewApp(routes.Deps{
		Config:   cfg,
		Store:    store,
		Engine:   lifecycle.NewEngine(store, notifier),
		Bridge:   payments.NewBridge(store, processor, cfg.Payment.Currency),
		Uploader: uploader,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", "port", cfg.Server.Port, "env", cfg.App.Environment)
		errCh <- app.Listen(":" + cfg.Server.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return app.ShutdownWithContext(shutdownCtx)
}
