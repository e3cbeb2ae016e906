package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpcadapter "github.com/simaogato/moneytransfer/internal/adapter/grpc"
	"github.com/simaogato/moneytransfer/internal/adapter/httpapi"
	"github.com/simaogato/moneytransfer/internal/config"
	"github.com/simaogato/moneytransfer/internal/logging"
	"github.com/simaogato/moneytransfer/internal/usecase/ledger"
	"github.com/simaogato/moneytransfer/internal/usecase/seeder"
)

func main() {
	// 1. Load configuration
	cfg, envLoaded := config.Load()

	logger, err := logging.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}

	if !envLoaded {
		logger.Debug("no .env file found, using process environment")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, logger)
	stop()

	if err != nil {
		logger.Error("server stopped with error", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	logger.Info("servers stopped")
	_ = logger.Sync()
}

// run seeds the ledger and serves HTTP and gRPC until ctx is done or a server fails
func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	// 2. Initialize the ledger and seed it
	accounts := ledger.New()

	seeds, err := seeder.ParseAccounts(cfg.SeedAccounts)
	if err != nil {
		return fmt.Errorf("invalid LEDGER_SEED_ACCOUNTS: %w", err)
	}
	created, err := seeder.NewSeeder(accounts).Seed(seeds)
	if err != nil {
		return fmt.Errorf("failed to seed ledger: %w", err)
	}
	logger.Info("ledger seeded", zap.Int("created", created), zap.Int("accounts", accounts.Accounts()))

	// 3. Build the HTTP app
	app := httpapi.NewApp(httpapi.NewHandler(accounts), httpapi.Options{
		Logger:       logger,
		MaxInflight:  cfg.MaxInflight,
		ReadTimeout:  cfg.RequestTimeout,
		WriteTimeout: cfg.RequestTimeout,
	})

	// 4. Build the gRPC server
	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			grpcadapter.LoggingInterceptor(logger),
			grpcadapter.RecoveryInterceptor(logger),
		),
	)
	grpcadapter.RegisterLedgerServiceServer(grpcServer, grpcadapter.NewServer(accounts))

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	grpcLis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.GRPCAddr, err)
	}

	// 5. Run both servers until ctx is done
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
		return app.Listen(cfg.HTTPAddr)
	})

	g.Go(func() error {
		logger.Info("grpc server listening", zap.String("addr", cfg.GRPCAddr))
		if err := grpcServer.Serve(grpcLis); err != nil && !errors.Is(err, grpclib.ErrServerStopped) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))

		healthServer.Shutdown()
		stopped := make(chan struct{})
		go func() {
			grpcServer.GracefulStop()
			close(stopped)
		}()

		err := app.ShutdownWithTimeout(cfg.ShutdownTimeout)

		select {
		case <-stopped:
		case <-time.After(cfg.ShutdownTimeout):
			grpcServer.Stop()
		}
		return err
	})

	return g.Wait()
}
