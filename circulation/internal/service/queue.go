package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Astemirdum/circulation-service/circulation/internal/errs"
	"github.com/Astemirdum/circulation-service/circulation/internal/model"
	"github.com/Astemirdum/circulation-service/circulation/internal/repository"
)

func earliestHold(ctx context.Context, tx repository.Store, assetID int64) (model.Hold, bool, error) {
	h, err := tx.EarliestHold(ctx, assetID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Hold{}, false, nil
		}
		return model.Hold{}, false, err
	}
	return h, true, nil
}

// dequeueHold removes and returns the head of the asset's hold queue.
func dequeueHold(ctx context.Context, tx repository.Store, assetID int64) (model.Hold, bool, error) {
	h, ok, err := earliestHold(ctx, tx, assetID)
	if err != nil || !ok {
		return model.Hold{}, ok, err
	}
	if err := tx.DeleteHold(ctx, h.ID); err != nil {
		return model.Hold{}, false, err
	}
	return h, true, nil
}

func activeCheckout(ctx context.Context, tx repository.Store, assetID int64) (model.Checkout, bool, error) {
	c, err := tx.ActiveCheckout(ctx, assetID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Checkout{}, false, nil
		}
		return model.Checkout{}, false, err
	}
	return c, true, nil
}
