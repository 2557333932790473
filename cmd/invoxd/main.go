package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	invoicespb "github.com/invox/invox/gen/proto/invoices/v1"
	"github.com/invox/invox/internal/artifact"
	"github.com/invox/invox/internal/async"
	"github.com/invox/invox/internal/common"
	"github.com/invox/invox/internal/export"
	"github.com/invox/invox/internal/extract"
	"github.com/invox/invox/internal/fetch"
	"github.com/invox/invox/internal/invoices"
	"github.com/invox/invox/internal/llm/gemini"
	"github.com/invox/invox/internal/pipeline"
	repo "github.com/invox/invox/internal/repository"
	"github.com/invox/invox/internal/schema"
	svc "github.com/invox/invox/internal/server"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	artifacts, err := artifact.NewStore(cfg.Artifacts.Dir, logger)
	if err != nil {
		logger.Error("failed to create artifact store", "dir", cfg.Artifacts.Dir, "error", err)
		os.Exit(1)
	}

	fetcher := fetch.NewFetcher(fetch.Config{
		Timeout:      cfg.Fetch.Timeout,
		MaxRedirects: cfg.Fetch.MaxRedirects,
	}, artifacts, logger)
	extractor := extract.NewPDFExtractor(logger)
	generator := gemini.NewClient(gemini.Config{
		Model:   cfg.Inference.Model,
		APIKey:  cfg.Inference.APIKey,
		BaseURL: cfg.Inference.BaseURL,
		Timeout: cfg.Inference.Timeout,
	}, logger)
	validator, err := schema.NewValidator(logger)
	if err != nil {
		logger.Error("failed to compile record schema", "error", err)
		os.Exit(1)
	}

	pipe := pipeline.NewExtraction(fetcher, extractor, generator, validator, artifacts, logger)
	runner := async.NewRunner(pipe, logger,
		async.WithWorkers(cfg.Server.ExtractWorkers),
		async.WithRunTimeout(cfg.Server.ExtractTimeout),
	)

	gateway := repo.NewInvoiceRepository(entc, logger)
	invoiceSvc := invoices.NewService(gateway, validator, logger)
	exportSvc := export.NewService(gateway, logger)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	invoicespb.RegisterInvoicesServiceServer(grpcServer, svc.NewInvoicesService(invoiceSvc, runner, logger))
	invoicespb.RegisterExportServiceServer(grpcServer, svc.NewExportServer(exportSvc, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("invoxd listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	runner.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
