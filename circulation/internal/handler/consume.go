package handler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/circulation-service/circulation/internal/errs"
	"github.com/Astemirdum/circulation-service/circulation/internal/model"
	"github.com/Astemirdum/circulation-service/pkg/kafka"
)

type checkIn func(ctx context.Context, assetID int64, now time.Time) (model.CheckInResult, error)

// Consumer processes drop-box returns read from kafka.ReturnsTopic.
type Consumer struct {
	checkInHandler checkIn
	now            func() time.Time
	log            *zap.Logger
}

func NewConsumer(checkIn checkIn, log *zap.Logger) *Consumer {
	return &Consumer{
		checkInHandler: checkIn,
		now:            time.Now,
		log:            log.Named("consumer"),
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited.
func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim stops at the first storage failure without marking the
// message. Marking a later one would commit past it, so the claim ends
// instead and the group resumes from the last marked offset.
func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			if err := consumer.handle(session.Context(), message); err != nil {
				return errors.Wrapf(err, "offset %d", message.Offset)
			}
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

// handle fails only when the return must be retried.
func (consumer *Consumer) handle(ctx context.Context, message *sarama.ConsumerMessage) error {
	var req kafka.ReturnRequest
	if err := json.Unmarshal(message.Value, &req); err != nil {
		consumer.log.Error("unmarshal return", zap.Error(err), zap.ByteString("value", message.Value))
		return nil
	}
	returnedAt := req.ReturnedAt
	if returnedAt.IsZero() {
		returnedAt = consumer.now()
	}

	res, err := consumer.checkInHandler(ctx, req.AssetID, returnedAt)
	switch {
	case err == nil:
		consumer.log.Debug("return processed",
			zap.Int64("asset_id", req.AssetID),
			zap.Bool("promoted_hold", res.PromotedHold),
			zap.Time("timestamp", message.Timestamp))
		return nil
	case errors.Is(err, errs.ErrNotFound):
		consumer.log.Warn("return of asset that is not checked out", zap.Int64("asset_id", req.AssetID), zap.Error(err))
		return nil
	default:
		consumer.log.Error("consumer.checkInHandler", zap.Int64("asset_id", req.AssetID), zap.Error(err))
		return err
	}
}
