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

// CheckoutManager keeps at most one active checkout per asset, together with
// its open history row.
type CheckoutManager struct {
	repo    repository.Repository
	tracker *Tracker
	enq     kafka.Enqueuer
	policy  config.Policy
	log     *zap.Logger
}

func NewCheckoutManager(repo repository.Repository, tracker *Tracker, enq kafka.Enqueuer, policy config.Policy, log *zap.Logger) *CheckoutManager {
	return &CheckoutManager{
		repo:    repo,
		tracker: tracker,
		enq:     enq,
		policy:  policy,
		log:     log.Named("checkouts"),
	}
}

func (m *CheckoutManager) IsCheckedOut(ctx context.Context, assetID int64) (_ bool, err error) {
	ctx, span := startSpan(ctx, "CheckoutManager.IsCheckedOut", assetAttr(assetID))
	defer func() { endSpan(span, err) }()

	if _, err := m.repo.GetAsset(ctx, assetID); err != nil {
		return false, storeErr(m.log, "IsCheckedOut", err)
	}
	_, ok, err := activeCheckout(ctx, m.repo, assetID)
	if err != nil {
		return false, storeErr(m.log, "IsCheckedOut", err)
	}
	return ok, nil
}

// CheckOut lends the asset to the card. An asset that is checked out is a
// conflict. With Policy.ReserveForHeadHold an asset on hold only goes to the
// card at the head of its queue, whose hold is consumed.
func (m *CheckoutManager) CheckOut(ctx context.Context, assetID, cardID int64, now time.Time) (c model.Checkout, err error) {
	ctx, span := startSpan(ctx, "CheckoutManager.CheckOut", assetAttr(assetID), cardAttr(cardID))
	defer func() { endSpan(span, err) }()

	known, err := m.tracker.resolveStatuses(ctx)
	if err != nil {
		return model.Checkout{}, storeErr(m.log, "CheckOut", err)
	}
	var events []kafka.Event
	err = m.repo.WithinAssetTx(ctx, assetID, func(ctx context.Context, tx repository.Store) error {
		if _, err := tx.GetCard(ctx, cardID); err != nil {
			return err
		}
		if active, ok, err := activeCheckout(ctx, tx, assetID); err != nil {
			return err
		} else if ok {
			return errors.Wrapf(errs.ErrConflict, "asset %d is checked out to card %d", assetID, active.CardID)
		}

		if m.policy.ReserveForHeadHold {
			head, queued, err := earliestHold(ctx, tx, assetID)
			if err != nil {
				return err
			}
			if queued {
				if head.CardID != cardID {
					return errors.Wrapf(errs.ErrConflict, "asset %d is on hold for card %d", assetID, head.CardID)
				}
				if err := tx.DeleteHold(ctx, head.ID); err != nil {
					return err
				}
				events = append(events, kafka.NewEvent(kafka.EventHoldPromoted, assetID, cardID, now))
			}
		}

		opened, err := m.open(ctx, tx, assetID, cardID, now)
		if err != nil {
			return err
		}
		c = opened
		events = append(events, kafka.NewEvent(kafka.EventCheckedOut, assetID, cardID, now))
		_, err = m.tracker.sync(ctx, tx, known, assetID)
		return err
	})
	if err != nil {
		return model.Checkout{}, storeErr(m.log, "CheckOut", err)
	}

	publish(m.enq, m.log, events)
	return c, nil
}

// open creates the checkout and its open history row.
func (m *CheckoutManager) open(ctx context.Context, tx repository.Store, assetID, cardID int64, now time.Time) (model.Checkout, error) {
	c, err := tx.CreateCheckout(ctx, model.Checkout{
		AssetID: assetID,
		CardID:  cardID,
		Since:   now,
		Until:   now.Add(m.policy.LoanPeriod),
	})
	if err != nil {
		return model.Checkout{}, err
	}
	if _, err := tx.CreateHistory(ctx, model.CheckoutHistory{
		AssetID:    assetID,
		CardID:     cardID,
		CheckedOut: now,
	}); err != nil {
		return model.Checkout{}, err
	}
	return c, nil
}

// CheckIn closes the active checkout and, in the same transaction, hands the
// asset to the earliest hold if there is one.
func (m *CheckoutManager) CheckIn(ctx context.Context, assetID int64, now time.Time) (res model.CheckInResult, err error) {
	ctx, span := startSpan(ctx, "CheckoutManager.CheckIn", assetAttr(assetID))
	defer func() { endSpan(span, err) }()

	known, err := m.tracker.resolveStatuses(ctx)
	if err != nil {
		return model.CheckInResult{}, storeErr(m.log, "CheckIn", err)
	}
	var events []kafka.Event
	err = m.repo.WithinAssetTx(ctx, assetID, func(ctx context.Context, tx repository.Store) error {
		active, ok, err := activeCheckout(ctx, tx, assetID)
		if err != nil {
			return err
		}
		if !ok {
			return errors.Wrapf(errs.ErrNotFound, "asset %d is not checked out", assetID)
		}

		// step 1: close
		if err := tx.DeleteCheckout(ctx, active.ID); err != nil {
			return err
		}
		if _, err := tx.CloseHistory(ctx, assetID, now); err != nil {
			return err
		}
		events = append(events, kafka.NewEvent(kafka.EventCheckedIn, assetID, active.CardID, now))

		// step 2: promote
		hold, promoted, err := dequeueHold(ctx, tx, assetID)
		if err != nil {
			return err
		}
		if promoted {
			c, err := m.open(ctx, tx, assetID, hold.CardID, now)
			if err != nil {
				return err
			}
			res = model.CheckInResult{PromotedHold: true, Hold: &hold, Checkout: &c}
			events = append(events,
				kafka.NewEvent(kafka.EventHoldPromoted, assetID, hold.CardID, now),
				kafka.NewEvent(kafka.EventCheckedOut, assetID, hold.CardID, now))
		}

		_, err = m.tracker.sync(ctx, tx, known, assetID)
		return err
	})
	if err != nil {
		return model.CheckInResult{}, storeErr(m.log, "CheckIn", err)
	}

	m.log.Info("checked in",
		zap.Int64("asset_id", assetID),
		zap.Bool("promoted_hold", res.PromotedHold))
	publish(m.enq, m.log, events)
	return res, nil
}

func (m *CheckoutManager) GetLatestCheckout(ctx context.Context, assetID int64) (model.Checkout, error) {
	if _, err := m.repo.GetAsset(ctx, assetID); err != nil {
		return model.Checkout{}, storeErr(m.log, "GetLatestCheckout", err)
	}
	c, err := m.repo.LatestCheckout(ctx, assetID)
	if err != nil {
		return model.Checkout{}, storeErr(m.log, "GetLatestCheckout", err)
	}
	return c, nil
}

func (m *CheckoutManager) GetCurrentPatron(ctx context.Context, assetID int64) (model.Patron, error) {
	c, err := m.repo.ActiveCheckout(ctx, assetID)
	if err != nil {
		return model.Patron{}, storeErr(m.log, "GetCurrentPatron", err)
	}
	p, err := m.repo.PatronByCard(ctx, c.CardID)
	if err != nil {
		return model.Patron{}, storeErr(m.log, "GetCurrentPatron", err)
	}
	return p, nil
}

func (m *CheckoutManager) GetCheckout(ctx context.Context, id int64) (model.Checkout, error) {
	c, err := m.repo.GetCheckout(ctx, id)
	if err != nil {
		return model.Checkout{}, storeErr(m.log, "GetCheckout", err)
	}
	return c, nil
}

func (m *CheckoutManager) ListCheckouts(ctx context.Context, p model.PageRequest) (model.Page[model.Checkout], error) {
	page, err := m.repo.ListCheckouts(ctx, p)
	if err != nil {
		return model.Page[model.Checkout]{}, storeErr(m.log, "ListCheckouts", err)
	}
	return page, nil
}

func (m *CheckoutManager) GetCheckoutHistory(ctx context.Context, assetID int64, p model.PageRequest) (model.Page[model.CheckoutHistory], error) {
	if _, err := m.repo.GetAsset(ctx, assetID); err != nil {
		return model.Page[model.CheckoutHistory]{}, storeErr(m.log, "GetCheckoutHistory", err)
	}
	page, err := m.repo.ListHistory(ctx, assetID, p)
	if err != nil {
		return model.Page[model.CheckoutHistory]{}, storeErr(m.log, "GetCheckoutHistory", err)
	}
	return page, nil
}
