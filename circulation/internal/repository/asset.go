package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/Astemirdum/circulation-service/circulation/internal/errs"
	"github.com/Astemirdum/circulation-service/circulation/internal/model"
)

func (s *store) GetAsset(ctx context.Context, assetID int64) (model.Asset, error) {
	query, args, err := qb.Select("a.id", "a.title", "a.status_id", "s.name as status").
		From(assetsTableName + " a").
		Join(fmt.Sprintf("%s s on s.id = a.status_id", statusesTableName)).
		Where(sq.Eq{"a.id": assetID}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Asset{}, err
	}
	return getOne[model.Asset](ctx, s.db, query, args, fmt.Sprintf("asset %d", assetID))
}

func (s *store) SetAssetStatus(ctx context.Context, assetID int64, statusID int) error {
	query, args, err := qb.Update(assetsTableName).
		Set("status_id", statusID).
		Where(sq.Eq{"id": assetID}).
		ToSql()
	if err != nil {
		return err
	}
	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrapf(errs.ErrNotFound, "asset %d", assetID)
	}
	return nil
}

func (s *store) GetCard(ctx context.Context, cardID int64) (model.Card, error) {
	query, args, err := qb.Select("id", "created").
		From(cardsTableName).
		Where(sq.Eq{"id": cardID}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Card{}, err
	}
	return getOne[model.Card](ctx, s.db, query, args, fmt.Sprintf("card %d", cardID))
}

func (s *store) PatronByCard(ctx context.Context, cardID int64) (model.Patron, error) {
	query, args, err := qb.Select("id", "first_name", "last_name", "email", "card_id").
		From(patronsTableName).
		Where(sq.Eq{"card_id": cardID}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Patron{}, err
	}
	return getOne[model.Patron](ctx, s.db, query, args, fmt.Sprintf("patron of card %d", cardID))
}
