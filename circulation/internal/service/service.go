package service

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/Astemirdum/circulation-service/circulation/config"
	"github.com/Astemirdum/circulation-service/circulation/internal/model"
	"github.com/Astemirdum/circulation-service/circulation/internal/repository"
	"github.com/Astemirdum/circulation-service/pkg/kafka"
)

type StatusResolver interface {
	Resolve(ctx context.Context, name model.StatusName) (model.Status, error)
}

// Service is the circulation core: the three components share one repository,
// and every mutation of an asset runs inside repository.WithinAssetTx.
type Service struct {
	*Tracker
	*CheckoutManager
	*HoldScheduler

	log *zap.Logger
}

func NewService(repo repository.Repository, statuses StatusResolver, enq kafka.Enqueuer, policy config.Policy, log *zap.Logger) *Service {
	log = log.Named("service")
	tracker := NewTracker(repo, statuses, policy, log)
	checkouts := NewCheckoutManager(repo, tracker, enq, policy, log)
	holds := NewHoldScheduler(repo, tracker, checkouts, enq, policy, log)
	return &Service{
		Tracker:         tracker,
		CheckoutManager: checkouts,
		HoldScheduler:   holds,
		log:             log,
	}
}

var tracer = otel.Tracer("circulation/service")

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func assetAttr(assetID int64) attribute.KeyValue {
	return attribute.Int64("asset.id", assetID)
}

func cardAttr(cardID int64) attribute.KeyValue {
	return attribute.Int64("card.id", cardID)
}

// publish runs after commit; a lost event never fails the operation that produced it.
func publish(enq kafka.Enqueuer, log *zap.Logger, events []kafka.Event) {
	for _, e := range events {
		if err := enq.Enqueue(kafka.CirculationTopic, e.AssetID, e); err != nil {
			log.Warn("enqueue event",
				zap.String("type", string(e.Type)),
				zap.Int64("asset_id", e.AssetID),
				zap.Stringer("event_uid", e.EventUid),
				zap.Error(err))
		}
	}
}
