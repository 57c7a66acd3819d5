package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/Astemirdum/circulation-service/circulation/internal/errs"
	"github.com/Astemirdum/circulation-service/circulation/internal/model"
)

var (
	checkoutColumns = []string{"id", "asset_id", "card_id", "since", "until"}
	historyColumns  = []string{"id", "asset_id", "card_id", "checked_out", "checked_in"}
)

func (s *store) GetCheckout(ctx context.Context, id int64) (model.Checkout, error) {
	query, args, err := qb.Select(checkoutColumns...).
		From(checkoutsTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Checkout{}, err
	}
	return getOne[model.Checkout](ctx, s.db, query, args, fmt.Sprintf("checkout %d", id))
}

func (s *store) ActiveCheckout(ctx context.Context, assetID int64) (model.Checkout, error) {
	query, args, err := qb.Select(checkoutColumns...).
		From(checkoutsTableName).
		Where(sq.Eq{"asset_id": assetID}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Checkout{}, err
	}
	return getOne[model.Checkout](ctx, s.db, query, args, fmt.Sprintf("checkout of asset %d", assetID))
}

func (s *store) LatestCheckout(ctx context.Context, assetID int64) (model.Checkout, error) {
	query, args, err := qb.Select(checkoutColumns...).
		From(checkoutsTableName).
		Where(sq.Eq{"asset_id": assetID}).
		OrderBy("since desc", "id desc").
		Limit(1).
		ToSql()
	if err != nil {
		return model.Checkout{}, err
	}
	return getOne[model.Checkout](ctx, s.db, query, args, fmt.Sprintf("checkout of asset %d", assetID))
}

func (s *store) ListCheckouts(ctx context.Context, p model.PageRequest) (model.Page[model.Checkout], error) {
	return listPage[model.Checkout](ctx, s.db, listQuery{
		table:   checkoutsTableName,
		columns: checkoutColumns,
		orderBy: []string{"since", "id"},
	}, p)
}

func (s *store) CreateCheckout(ctx context.Context, c model.Checkout) (model.Checkout, error) {
	return insertOne[model.Checkout](ctx, s.db, qb.Insert(checkoutsTableName).
		Columns("asset_id", "card_id", "since", "until").
		Values(c.AssetID, c.CardID, c.Since, c.Until))
}

func (s *store) DeleteCheckout(ctx context.Context, id int64) error {
	return deleteByID(ctx, s.db, checkoutsTableName, id)
}

func (s *store) CreateHistory(ctx context.Context, h model.CheckoutHistory) (model.CheckoutHistory, error) {
	return insertOne[model.CheckoutHistory](ctx, s.db, qb.Insert(historyTableName).
		Columns("asset_id", "card_id", "checked_out", "checked_in").
		Values(h.AssetID, h.CardID, h.CheckedOut, h.CheckedIn))
}

func (s *store) CloseHistory(ctx context.Context, assetID int64, checkedIn time.Time) (model.CheckoutHistory, error) {
	query, args, err := qb.Update(historyTableName).
		Set("checked_in", checkedIn).
		Where(sq.Eq{"asset_id": assetID, "checked_in": nil}).
		Suffix("returning " + joinColumns(historyColumns)).
		ToSql()
	if err != nil {
		return model.CheckoutHistory{}, err
	}
	h, err := getOne[model.CheckoutHistory](ctx, s.db, query, args, fmt.Sprintf("open history of asset %d", assetID))
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		return model.CheckoutHistory{}, mapPgError(err)
	}
	return h, err
}

func (s *store) ListHistory(ctx context.Context, assetID int64, p model.PageRequest) (model.Page[model.CheckoutHistory], error) {
	return listPage[model.CheckoutHistory](ctx, s.db, listQuery{
		table:   historyTableName,
		columns: historyColumns,
		where:   sq.Eq{"asset_id": assetID},
		orderBy: []string{"checked_out desc", "id desc"},
	}, p)
}
