package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/circulation-service/circulation/config"
	"github.com/Astemirdum/circulation-service/circulation/internal/errs"
	"github.com/Astemirdum/circulation-service/circulation/internal/model"
	"github.com/Astemirdum/circulation-service/circulation/internal/repository"
	"github.com/Astemirdum/circulation-service/pkg/kafka"
)

// HoldScheduler keeps the FIFO hold queue of every asset. The queue is ordered
// by placement time, ties broken by insertion order.
type HoldScheduler struct {
	repo      repository.Repository
	tracker   *Tracker
	checkouts *CheckoutManager
	enq       kafka.Enqueuer
	policy    config.Policy
	log       *zap.Logger
}

func NewHoldScheduler(repo repository.Repository, tracker *Tracker, checkouts *CheckoutManager, enq kafka.Enqueuer, policy config.Policy, log *zap.Logger) *HoldScheduler {
	return &HoldScheduler{
		repo:      repo,
		tracker:   tracker,
		checkouts: checkouts,
		enq:       enq,
		policy:    policy,
		log:       log.Named("holds"),
	}
}

func (s *HoldScheduler) PlaceHold(ctx context.Context, assetID, cardID int64, now time.Time) (h model.Hold, err error) {
	ctx, span := startSpan(ctx, "HoldScheduler.PlaceHold", assetAttr(assetID), cardAttr(cardID))
	defer func() { endSpan(span, err) }()

	known, err := s.tracker.resolveStatuses(ctx)
	if err != nil {
		return model.Hold{}, storeErr(s.log, "PlaceHold", err)
	}
	err = s.repo.WithinAssetTx(ctx, assetID, func(ctx context.Context, tx repository.Store) error {
		if _, err := tx.GetCard(ctx, cardID); err != nil {
			return err
		}
		if s.policy.RejectBorrowerHolds {
			if active, ok, err := activeCheckout(ctx, tx, assetID); err != nil {
				return err
			} else if ok && active.CardID == cardID {
				return errors.Wrapf(errs.ErrConflict, "card %d already has asset %d", cardID, assetID)
			}
		}
		if !s.policy.AllowDuplicateHolds {
			dup, err := tx.HasHold(ctx, assetID, cardID)
			if err != nil {
				return err
			}
			if dup {
				return errors.Wrapf(errs.ErrConflict, "card %d already holds asset %d", cardID, assetID)
			}
		}

		created, err := tx.CreateHold(ctx, model.Hold{
			AssetID:    assetID,
			CardID:     cardID,
			HoldPlaced: now,
		})
		if err != nil {
			return err
		}
		h = created
		_, err = s.tracker.sync(ctx, tx, known, assetID)
		return err
	})
	if err != nil {
		return model.Hold{}, storeErr(s.log, "PlaceHold", err)
	}

	publish(s.enq, s.log, []kafka.Event{kafka.NewEvent(kafka.EventHoldPlaced, assetID, cardID, now)})
	return h, nil
}

func (s *HoldScheduler) GetEarliestHold(ctx context.Context, assetID int64) (model.Hold, bool, error) {
	if _, err := s.repo.GetAsset(ctx, assetID); err != nil {
		return model.Hold{}, false, storeErr(s.log, "GetEarliestHold", err)
	}
	h, ok, err := earliestHold(ctx, s.repo, assetID)
	if err != nil {
		return model.Hold{}, false, storeErr(s.log, "GetEarliestHold", err)
	}
	return h, ok, nil
}

// PromoteEarliestHold turns the head of the queue into a checkout. It reports
// false when the queue is empty and fails with errs.ErrConflict while the
// asset is checked out.
func (s *HoldScheduler) PromoteEarliestHold(ctx context.Context, assetID int64, now time.Time) (promoted bool, err error) {
	ctx, span := startSpan(ctx, "HoldScheduler.PromoteEarliestHold", assetAttr(assetID))
	defer func() { endSpan(span, err) }()

	known, err := s.tracker.resolveStatuses(ctx)
	if err != nil {
		return false, storeErr(s.log, "PromoteEarliestHold", err)
	}
	var events []kafka.Event
	err = s.repo.WithinAssetTx(ctx, assetID, func(ctx context.Context, tx repository.Store) error {
		if _, ok, err := activeCheckout(ctx, tx, assetID); err != nil {
			return err
		} else if ok {
			return errors.Wrapf(errs.ErrConflict, "asset %d is checked out", assetID)
		}

		hold, ok, err := dequeueHold(ctx, tx, assetID)
		if err != nil || !ok {
			return err
		}
		if _, err := s.checkouts.open(ctx, tx, assetID, hold.CardID, now); err != nil {
			return err
		}
		promoted = true
		events = append(events,
			kafka.NewEvent(kafka.EventHoldPromoted, assetID, hold.CardID, now),
			kafka.NewEvent(kafka.EventCheckedOut, assetID, hold.CardID, now))

		_, err = s.tracker.sync(ctx, tx, known, assetID)
		return err
	})
	if err != nil {
		return false, storeErr(s.log, "PromoteEarliestHold", err)
	}

	publish(s.enq, s.log, events)
	return promoted, nil
}

func (s *HoldScheduler) GetCurrentHolds(ctx context.Context, assetID int64, p model.PageRequest) (model.Page[model.Hold], error) {
	if _, err := s.repo.GetAsset(ctx, assetID); err != nil {
		return model.Page[model.Hold]{}, storeErr(s.log, "GetCurrentHolds", err)
	}
	page, err := s.repo.ListHolds(ctx, assetID, p)
	if err != nil {
		return model.Page[model.Hold]{}, storeErr(s.log, "GetCurrentHolds", err)
	}
	return page, nil
}

func (s *HoldScheduler) GetCurrentHoldPatron(ctx context.Context, holdID int64) (model.Patron, error) {
	h, err := s.repo.GetHold(ctx, holdID)
	if err != nil {
		return model.Patron{}, storeErr(s.log, "GetCurrentHoldPatron", err)
	}
	p, err := s.repo.PatronByCard(ctx, h.CardID)
	if err != nil {
		return model.Patron{}, storeErr(s.log, "GetCurrentHoldPatron", err)
	}
	return p, nil
}

func (s *HoldScheduler) GetCurrentHoldPlaced(ctx context.Context, holdID int64) (time.Time, error) {
	h, err := s.repo.GetHold(ctx, holdID)
	if err != nil {
		return time.Time{}, storeErr(s.log, "GetCurrentHoldPlaced", err)
	}
	return h.HoldPlaced, nil
}
