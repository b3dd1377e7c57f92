package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	pixpb "github.com/joseph-ayodele/pix-tracker/gen/proto/pix/v1"
	"github.com/joseph-ayodele/pix-tracker/internal/async"
	"github.com/joseph-ayodele/pix-tracker/internal/common"
	"github.com/joseph-ayodele/pix-tracker/internal/export"
	"github.com/joseph-ayodele/pix-tracker/internal/ingest"
	"github.com/joseph-ayodele/pix-tracker/internal/ocr"
	"github.com/joseph-ayodele/pix-tracker/internal/parser"
	processor "github.com/joseph-ayodele/pix-tracker/internal/pipeline"
	repo "github.com/joseph-ayodele/pix-tracker/internal/repository"
	svc "github.com/joseph-ayodele/pix-tracker/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
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

	entc, pool, err := svc.ConnectDB(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer svc.CloseDB(entc, pool, logger)

	if err := svc.PingDB(ctx, pool, logger, 5*time.Second); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	txRepo := repo.NewTransactionRepository(entc, logger)

	extractor := ocr.NewExtractor(ocr.Config{
		Pdftotext:     cfg.OCR.Pdftotext,
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.Lang,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
		TessdataDir:   cfg.OCR.TessdataDir,
		Timeout:       cfg.OCR.Timeout,
	}, logger)

	p := parser.NewParser(parser.GatePolicy{
		RequireAmount: cfg.Parser.RequireAmount,
		RequireBank:   cfg.Parser.RequireBank,
	}, logger)

	proc := processor.NewProcessor(processor.Config{
		ReprocessReview: cfg.Parser.ReprocessReview,
	}, extractor, p, txRepo, logger)

	transactionService := svc.NewTransactionService(txRepo, logger)
	pixpb.RegisterTransactionsServiceServer(grpcServer, transactionService)

	ingestionService := svc.NewIngestionService(proc, cfg.Ingest.Workers, logger)
	pixpb.RegisterIngestionServiceServer(grpcServer, ingestionService)

	exportService := export.NewService(txRepo, logger)
	pixpb.RegisterExportServiceServer(grpcServer, svc.NewExportServer(exportService, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	queue := async.NewProcessorQueue(proc, logger,
		async.WithWorkers(cfg.Ingest.Workers),
		async.WithQueueSize(512),
		async.WithProcessTimeout(3*time.Minute),
	)

	if cfg.Ingest.WatchDir != "" {
		files, watchErrs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
			Roots:       []string{cfg.Ingest.WatchDir},
			Debounce:    cfg.Ingest.Debounce,
			InitialScan: true,
		}, logger)
		if err != nil {
			logger.Error("failed to start watcher", "dir", cfg.Ingest.WatchDir, "error", err)
			os.Exit(1)
		}
		logger.Info("watching for documents", "dir", cfg.Ingest.WatchDir)
		go func() {
			for {
				select {
				case path, ok := <-files:
					if !ok {
						return
					}
					_ = queue.Enqueue(ctx, async.Job{
						Path:        path,
						SubmittedAt: time.Now(),
						TraceID:     uuid.NewString(),
					})
				case err, ok := <-watchErrs:
					if !ok {
						return
					}
					logger.Error("watcher error", "error", err)
				}
			}
		}()
	}

	logger.Info("pixd listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
