package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/jobboard/internal/api"
	"github.com/maxaizer/jobboard/internal/metrics"
	"github.com/maxaizer/jobboard/internal/repositories"
	"github.com/maxaizer/jobboard/internal/services"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API and the periodic snapshot sync",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port to listen on (overrides server.port)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := setup(os.Stdout)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Server.Port = servePort
	}

	metrics.Register()

	service, err := newJobsService(cfg, newStoreClient(cfg))
	if err != nil {
		return err
	}

	dbContext, err := openDb(cfg)
	if err != nil {
		return err
	}
	defer dbContext.Close()

	bus := EventBus.New()
	cached, err := services.NewCachedJobs(bus, service, cfg.Sync.CacheTTL)
	if err != nil {
		return errors.Wrap(err, "can't create jobs cache")
	}

	jobsRepo := repositories.NewJobsRepository(dbContext.DB)
	syncRunsRepo := repositories.NewSyncRunsRepository(dbContext.DB)

	if cfg.Sync.Enabled {
		syncer, err := services.NewJobsSyncer(bus, service, jobsRepo, syncRunsRepo, cfg.Sync.Schedule)
		if err != nil {
			return err
		}
		syncer.SyncInBackground(ctx)
		syncer.Start()
		// Stop joins the running syncs before the deferred db close.
		defer syncer.Stop()
	}

	server := api.NewServer(cfg.Server, cached)
	server.SetSnapshot(jobsRepo, syncRunsRepo)
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	select {
	case err = <-serverErr:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down services...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = server.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "server shutdown failed")
	}
	log.Info("Services stopped.")
	return nil
}
