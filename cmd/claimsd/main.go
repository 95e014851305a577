package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/claimdesk/claims-intake/gen/proto/claims/v1"
	"github.com/claimdesk/claims-intake/internal/async"
	"github.com/claimdesk/claims-intake/internal/common"
	"github.com/claimdesk/claims-intake/internal/export"
	"github.com/claimdesk/claims-intake/internal/fraud"
	"github.com/claimdesk/claims-intake/internal/intake"
	"github.com/claimdesk/claims-intake/internal/llm/openai"
	"github.com/claimdesk/claims-intake/internal/ocr"
	repo "github.com/claimdesk/claims-intake/internal/repository"
	svc "github.com/claimdesk/claims-intake/internal/server"
	"github.com/claimdesk/claims-intake/internal/storage"
	"github.com/claimdesk/claims-intake/internal/verify"
)

func main() {
	// Setup structured logger that outputs messages with variables but no time/level
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Remove time and level attributes, keep message and other variables
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := svc.ConnectDB(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer svc.CloseDB(entc, pool, logger)

	// Ping DB to ensure connectivity
	if err := svc.PingDB(ctx, pool, logger, cfg.Database.DialTimeout); err != nil {
		os.Exit(1)
	}

	store, err := storage.NewObjectStore(storage.Config{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		UseSSL:    cfg.Storage.UseSSL,
		URLTTL:    cfg.Storage.URLTTL,
	}, logger)
	if err != nil {
		logger.Error("failed to build object store", "error", err)
		os.Exit(1)
	}
	if err := store.EnsureBucket(ctx); err != nil {
		logger.Error("failed to ensure storage bucket", "bucket", cfg.Storage.Bucket, "error", err)
		os.Exit(1)
	}

	claimsRepo := repo.NewClaimRepository(entc, logger)
	docsRepo := repo.NewDocumentRepository(entc, logger)
	verifRepo := repo.NewVerificationRepository(entc, logger)

	extractor := ocr.NewExtractor(ocr.Config{
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
	}, logger)

	openaiClient := openai.NewClient(openai.Config{
		Model:       cfg.LLM.Model,
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	analyzer := fraud.NewAnalyzer(openaiClient, logger)
	verifier := verify.NewVerifier(openaiClient, logger)

	intakeSvc := intake.NewService(claimsRepo, docsRepo, verifRepo, store, extractor, analyzer, verifier, logger)
	exporter := export.NewService(claimsRepo, logger)

	queue := async.NewVerifyQueue(intakeSvc, logger,
		async.WithWorkers(cfg.Verify.Workers),
		async.WithQueueSize(cfg.Verify.QueueSize),
		async.WithJobTimeout(cfg.Verify.JobTimeout),
	)

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(svc.RequestIDInterceptor(logger)))

	claimsServer := svc.NewClaimsServer(intakeSvc, claimsRepo, docsRepo, verifRepo, exporter, logger)
	claimsv1.RegisterClaimsServiceServer(grpcServer, claimsServer)
	documentsServer := svc.NewDocumentsServer(intakeSvc, queue, logger)
	claimsv1.RegisterDocumentsServiceServer(grpcServer, documentsServer)

	// Register gRPC health service
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	// Set the service as serving (empty string means overall server health)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	logger.Info("claims-intake listening", "addr", addr)
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
