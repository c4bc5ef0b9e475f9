package main

import (
	"context"
	"fmt"
	"net"
	"time"

	storefrontv1 "github.com/dwikikusuma/storefront/api/storefront/v1"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	cartgrpc "github.com/dwikikusuma/storefront/internal/cart/grpc"
	cartadapter "github.com/dwikikusuma/storefront/internal/cart/infra/adapter"
	cartmem "github.com/dwikikusuma/storefront/internal/cart/infra/memory"
	"github.com/dwikikusuma/storefront/internal/cart/infra/rabbitmq"

	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	cgrpc "github.com/dwikikusuma/storefront/internal/catalog/grpc"
	catalogmem "github.com/dwikikusuma/storefront/internal/catalog/infra/memory"

	storefrontapp "github.com/dwikikusuma/storefront/internal/storefront/app"
	sfgrpc "github.com/dwikikusuma/storefront/internal/storefront/grpc"

	"github.com/dwikikusuma/storefront/pkg/config"
	"github.com/dwikikusuma/storefront/pkg/logger"
	"github.com/dwikikusuma/storefront/pkg/shutdown"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(logger.Options{Service: "api", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	// Catalog
	catalogRepo, err := catalogmem.Open(cfg.Catalog.File)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.Catalog.File).Msg("catalog load failed")
	}
	currency := catalogRepo.Currency()
	if currency != cfg.Catalog.Currency {
		log.Warn().Str("seed", currency).Str("configured", cfg.Catalog.Currency).Msg("catalog seed currency overrides configuration")
	}
	catalogSvc := catalogapp.NewService(catalogRepo)

	// Cart
	cartOpts := []cartapp.Option{cartapp.WithLogger(log)}
	if cfg.AMQP.Enabled() {
		pub, err := rabbitmq.Dial(rabbitmq.Config{
			URL:      cfg.AMQP.URL,
			Exchange: cfg.AMQP.Exchange,
			Queue:    cfg.AMQP.Queue,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("rabbitmq connect failed")
		}
		defer func() {
			if err := pub.Close(); err != nil {
				log.Warn().Err(err).Msg("rabbitmq close failed")
			}
		}()
		cartOpts = append(cartOpts, cartapp.WithEvents(pub))
		log.Info().Str("queue", cfg.AMQP.Queue).Msg("cart events enabled")
	}
	cartSvc := cartapp.NewService(cartmem.NewCartRepo(), cartadapter.NewCatalogServiceReader(catalogSvc), cartOpts...)

	// Storefront session
	session := storefrontapp.NewService(catalogSvc, cartSvc, currency, log)

	addr := fmt.Sprintf(":%d", cfg.GRPCPort)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal().Err(err).Str("addr", addr).Msg("listen failed")
	}

	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(accessLog(log)))
	storefrontv1.RegisterCatalogServiceServer(grpcServer, cgrpc.NewServer(catalogSvc, currency))
	storefrontv1.RegisterCartServiceServer(grpcServer, cartgrpc.NewServer(cartSvc, currency))
	storefrontv1.RegisterStorefrontServiceServer(grpcServer, sfgrpc.NewServer(session))

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", addr).Msg("grpc starting")
		if err := grpcServer.Serve(lis); err != nil {
			return fmt.Errorf("grpc serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutdown requested")
		healthServer.Shutdown()

		stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer stopCancel()

		stopped := make(chan struct{})
		go func() {
			grpcServer.GracefulStop()
			close(stopped)
		}()

		select {
		case <-stopCtx.Done():
			log.Warn().Msg("graceful stop timeout, forcing stop")
			grpcServer.Stop()
		case <-stopped:
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("api stopped with error")
	}
	log.Info().Msg("bye")
}
