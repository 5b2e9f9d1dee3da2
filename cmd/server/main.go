package main

import (
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	grpcadapter "github.com/simaogato/passbook-backend/internal/adapter/grpc"
	"github.com/simaogato/passbook-backend/internal/adapter/repository/memory"
	"github.com/simaogato/passbook-backend/internal/config"
	"github.com/simaogato/passbook-backend/internal/usecase/banking"
	"github.com/simaogato/passbook-backend/internal/usecase/dashboard"
	"github.com/simaogato/passbook-backend/internal/usecase/session"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// 2. Initialize Repositories (volatile, lost on exit)
	sessionRepo := memory.NewSessionRepository()

	// 3. Initialize Services (Use Cases)
	sessionService := session.NewSessionService(sessionRepo, logger.Named("session"))
	bankingService := banking.NewBankingService(sessionRepo, logger.Named("banking"))
	dashboardService := dashboard.NewDashboardService(sessionRepo)

	// 4. Start gRPC Server
	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			grpcadapter.LoggingInterceptor(logger.Named("grpc")),
			grpcadapter.SessionInterceptor(),
		),
	)

	grpcAdapter := grpcadapter.NewServer(sessionService, bankingService, dashboardService)
	grpcadapter.RegisterBankServiceServer(grpcServer, grpcAdapter)

	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Fatal("failed to listen", zap.String("addr", cfg.GRPCAddr), zap.Error(err))
	}

	go func() {
		logger.Info("gRPC server listening", zap.String("addr", cfg.GRPCAddr))
		if err := grpcServer.Serve(lis); err != nil {
			logger.Fatal("failed to serve gRPC server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	waitForShutdown(grpcServer, logger)
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(grpcServer *grpclib.Server, logger *zap.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	logger.Info("shutting down gracefully", zap.Stringer("signal", sig))

	grpcServer.GracefulStop()
	logger.Info("gRPC server stopped")
}
