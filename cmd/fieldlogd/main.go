package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	fieldlogpb "github.com/fieldlog/fieldlog/gen/proto/fieldlog/v1"
	"github.com/fieldlog/fieldlog/internal/common"
	"github.com/fieldlog/fieldlog/internal/export"
	"github.com/fieldlog/fieldlog/internal/localstore"
	"github.com/fieldlog/fieldlog/internal/lock"
	"github.com/fieldlog/fieldlog/internal/refine"
	"github.com/fieldlog/fieldlog/internal/remote"
	svc "github.com/fieldlog/fieldlog/internal/server"
	syncpkg "github.com/fieldlog/fieldlog/internal/sync"
)

func main() {
	// Structured logger without time/level noise; events carry their own names.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
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
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	local, err := localstore.Open(localstore.Config{
		Path:       cfg.Local.Path,
		SyncWrites: cfg.Local.SyncWrites,
		Logger:     logger,
	})
	if err != nil {
		logger.Error("failed to open local store", "path", cfg.Local.Path, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := local.Close(); err != nil {
			logger.Error("failed to close local store", "error", err)
		}
	}()

	device, err := local.DeviceIdentity()
	if err != nil {
		logger.Error("failed to load device identity", "error", err)
		os.Exit(1)
	}
	logger.Info("device identity loaded", "device_id", device.DeviceID, "display_name", device.DisplayName)

	entc, pool, err := remote.Open(ctx, remote.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open remote store", "error", err)
		os.Exit(1)
	}
	defer remote.Close(entc, pool, logger)

	// Startup connectivity probe; failure is a degraded start, not a fatal one.
	net0 := syncpkg.NewConnectivity(true)
	if err := remote.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Warn("remote store unreachable at startup, starting offline", "error", err)
		net0.SetOnline(false)
	}

	reportsRepo := remote.NewReportRepository(entc, logger)
	entriesRepo := remote.NewEntryRepository(entc, logger)
	rawRepo := remote.NewRawCaptureRepository(entc, logger)
	projectsRepo := remote.NewProjectRepository(entc, logger)
	locksRepo := remote.NewLockRepository(entc, logger)
	profilesRepo := remote.NewProfileRepository(entc, logger)
	photosRepo := remote.NewPhotoRepository(entc, logger)

	recon := syncpkg.NewReconciler(local, reportsRepo, entriesRepo, rawRepo, projectsRepo, net0, device, logger,
		syncpkg.WithMaxRetries(cfg.Sync.MaxRetries),
		syncpkg.WithPhotoRepository(photosRepo),
	)

	lockMgr := lock.NewManager(locksRepo, device, logger,
		lock.WithHeartbeatInterval(cfg.Lock.HeartbeatInterval),
		lock.WithStaleAfter(cfg.Lock.StaleAfter),
	)
	defer lockMgr.Close()

	refiner := refine.NewClient(refine.Config{
		WebhookURL: cfg.Refine.WebhookURL,
		Timeout:    cfg.Refine.Timeout,
	}, logger)

	exportSvc := export.NewService(reportsRepo, logger)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(svc.UnaryContextInterceptor(logger)))

	fieldlogpb.RegisterReportsServiceServer(grpcServer, svc.NewReportsServer(recon, local, refiner, logger))
	fieldlogpb.RegisterLocksServiceServer(grpcServer, svc.NewLocksServer(lockMgr, logger))
	fieldlogpb.RegisterProjectsServiceServer(grpcServer, svc.NewProjectsServer(recon, logger))
	fieldlogpb.RegisterExportServiceServer(grpcServer, svc.NewExportServer(exportSvc, logger))
	fieldlogpb.RegisterProfileServiceServer(grpcServer, svc.NewProfileServer(local, profilesRepo, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	// Drain anything queued from a previous run.
	if net0.Online() {
		go recon.Drain(context.Background())
	}

	logger.Info("fieldlogd listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	// Best effort: let go of any held lock so other devices are not stuck
	// behind the staleness window.
	if held := lockMgr.Held(); held != nil {
		releaseCtx, cancel := common.WithTimeout(context.Background(), 5*time.Second)
		if err := lockMgr.Release(releaseCtx, held.ProjectID, held.ReportDate); err != nil {
			logger.Warn("failed to release edit lock on shutdown", "error", err)
		}
		cancel()
	}
	grpcServer.GracefulStop()
}
