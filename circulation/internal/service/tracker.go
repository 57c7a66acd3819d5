package service

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/Astemirdum/circulation-service/circulation/config"
	"github.com/Astemirdum/circulation-service/circulation/internal/errs"
	"github.com/Astemirdum/circulation-service/circulation/internal/model"
	"github.com/Astemirdum/circulation-service/circulation/internal/repository"
)

// Tracker owns the asset status. The stored status is always derived from the
// checkout and hold records: CheckedOut with an active checkout, OnHold with a
// non-empty queue and no checkout, Available otherwise.
type Tracker struct {
	repo     repository.Repository
	statuses StatusResolver
	policy   config.Policy
	log      *zap.Logger
}

func NewTracker(repo repository.Repository, statuses StatusResolver, policy config.Policy, log *zap.Logger) *Tracker {
	return &Tracker{
		repo:     repo,
		statuses: statuses,
		policy:   policy,
		log:      log.Named("tracker"),
	}
}

func (t *Tracker) available() model.StatusName  { return model.StatusName(t.policy.StatusAvailable) }
func (t *Tracker) checkedOut() model.StatusName { return model.StatusName(t.policy.StatusCheckedOut) }
func (t *Tracker) onHold() model.StatusName     { return model.StatusName(t.policy.StatusOnHold) }

func (t *Tracker) CurrentStatus(ctx context.Context, assetID int64) (_ model.Status, err error) {
	ctx, span := startSpan(ctx, "Tracker.CurrentStatus", assetAttr(assetID))
	defer func() { endSpan(span, err) }()

	asset, err := t.repo.GetAsset(ctx, assetID)
	if err != nil {
		return model.Status{}, storeErr(t.log, "CurrentStatus", err)
	}
	return model.Status{ID: asset.StatusID, Name: asset.Status}, nil
}

// SetStatus is idempotent. A status that contradicts the asset's checkout and
// hold records is rejected with errs.ErrConflict.
func (t *Tracker) SetStatus(ctx context.Context, assetID int64, name model.StatusName) (err error) {
	ctx, span := startSpan(ctx, "Tracker.SetStatus", assetAttr(assetID), attribute.String("status", string(name)))
	defer func() { endSpan(span, err) }()

	if _, err := t.statuses.Resolve(ctx, name); err != nil {
		return storeErr(t.log, "SetStatus", err)
	}
	known, err := t.resolveStatuses(ctx)
	if err != nil {
		return storeErr(t.log, "SetStatus", err)
	}
	err = t.repo.WithinAssetTx(ctx, assetID, func(ctx context.Context, tx repository.Store) error {
		derived, err := t.derive(ctx, tx, assetID)
		if err != nil {
			return err
		}
		if derived != name {
			return errors.Wrapf(errs.ErrConflict, "asset %d records imply status %q, not %q", assetID, derived, name)
		}
		_, err = t.sync(ctx, tx, known, assetID)
		return err
	})
	return storeErr(t.log, "SetStatus", err)
}

func (t *Tracker) derive(ctx context.Context, tx repository.Store, assetID int64) (model.StatusName, error) {
	_, checkedOut, err := activeCheckout(ctx, tx, assetID)
	if err != nil {
		return "", err
	}
	if checkedOut {
		return t.checkedOut(), nil
	}
	n, err := tx.CountHolds(ctx, assetID)
	if err != nil {
		return "", err
	}
	if n > 0 {
		return t.onHold(), nil
	}
	return t.available(), nil
}

// statusSet maps the derivable status names to their stored rows.
type statusSet map[model.StatusName]model.Status

// resolveStatuses must run before a transaction opens: a catalog miss reads
// through the pool and would otherwise wait for a second connection.
func (t *Tracker) resolveStatuses(ctx context.Context) (statusSet, error) {
	set := make(statusSet, 3)
	for _, name := range []model.StatusName{t.available(), t.checkedOut(), t.onHold()} {
		st, err := t.statuses.Resolve(ctx, name)
		if err != nil {
			if errors.Is(err, errs.ErrUnknownStatus) {
				return nil, errors.Wrapf(errs.ErrStatusConfig, "%q", name)
			}
			return nil, err
		}
		set[name] = st
	}
	return set, nil
}

// ValidateStatuses fails with errs.ErrStatusConfig when a configured status
// name is missing from the taxonomy.
func (t *Tracker) ValidateStatuses(ctx context.Context) error {
	_, err := t.resolveStatuses(ctx)
	return err
}

// sync writes the derived status inside the caller's transaction.
func (t *Tracker) sync(ctx context.Context, tx repository.Store, known statusSet, assetID int64) (model.StatusName, error) {
	name, err := t.derive(ctx, tx, assetID)
	if err != nil {
		return "", err
	}
	st, ok := known[name]
	if !ok {
		return "", errors.Wrapf(errs.ErrStatusConfig, "%q", name)
	}
	asset, err := tx.GetAsset(ctx, assetID)
	if err != nil {
		return "", err
	}
	if asset.StatusID == st.ID {
		return name, nil
	}
	if err := tx.SetAssetStatus(ctx, assetID, st.ID); err != nil {
		return "", err
	}
	t.log.Debug("status changed",
		zap.Int64("asset_id", assetID),
		zap.String("from", asset.Status),
		zap.String("to", st.Name))
	return name, nil
}
