package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/circulation-service/circulation/config"
	"github.com/Astemirdum/circulation-service/circulation/internal/handler"
	"github.com/Astemirdum/circulation-service/circulation/internal/repository"
	"github.com/Astemirdum/circulation-service/circulation/internal/server"
	"github.com/Astemirdum/circulation-service/circulation/internal/service"
	"github.com/Astemirdum/circulation-service/circulation/migrations"
	"github.com/Astemirdum/circulation-service/pkg/circuit_breaker"
	"github.com/Astemirdum/circulation-service/pkg/kafka"
	"github.com/Astemirdum/circulation-service/pkg/logger"
	"github.com/Astemirdum/circulation-service/pkg/postgres"
	"github.com/Astemirdum/circulation-service/pkg/tracing"
)

const shutdownTimeout = 5 * time.Second

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "circulation")
	defer log.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, cfg.Tracing)
	if err != nil {
		return errors.Wrap(err, "tracing init")
	}

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return errors.Wrap(err, "db init")
	}
	defer db.Close()

	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return errors.Wrap(err, "repo")
	}
	statuses := repository.NewStatusCatalog(repo, cfg.Policy.StatusCacheTTL)

	enq := kafka.NewNopEnqueuer()
	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			return errors.Wrap(err, "kafka.NewProducer")
		}
		defer producer.Close()
		cb := circuit_breaker.New(10, 10*time.Second, 0.5, 3)
		enq = kafka.NewEnqueuer(producer, cb)
	} else {
		log.Warn("KAFKA_ADDRS is empty, circulation events are not published")
	}

	svc := service.NewService(repo, statuses, enq, cfg.Policy, log)
	if err := svc.ValidateStatuses(ctx); err != nil {
		return errors.Wrap(err, "status policy")
	}
	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server start ON: ", zap.String("addr", srv.Addr()))
		return srv.Run()
	})
	if cfg.Kafka.Enabled() {
		group, err := kafka.NewConsumer(cfg.Kafka, kafka.ReturnsConsumerGroup)
		if err != nil {
			return errors.Wrap(err, "kafka.NewConsumer")
		}
		g.Go(func() error {
			return kafka.Consume(gCtx, group, handler.NewConsumer(svc.CheckIn, log), log, kafka.ReturnsTopic)
		})
		g.Go(func() error {
			<-gCtx.Done()
			return group.Close()
		})
	}
	g.Go(func() error {
		<-gCtx.Done()
		log.Debug("Graceful shutdown")

		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Stop(closeCtx); err != nil {
			log.Error("srv.Stop", zap.Error(err))
		}
		if err := shutdownTracing(closeCtx); err != nil {
			log.Error("tracing shutdown", zap.Error(err))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("Graceful shutdown finished")
	return nil
}
