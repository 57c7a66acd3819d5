package repository

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/Astemirdum/circulation-service/circulation/internal/model"
)

var holdColumns = []string{"id", "asset_id", "card_id", "hold_placed"}

func (s *store) GetHold(ctx context.Context, id int64) (model.Hold, error) {
	query, args, err := qb.Select(holdColumns...).
		From(holdsTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Hold{}, err
	}
	return getOne[model.Hold](ctx, s.db, query, args, fmt.Sprintf("hold %d", id))
}

// EarliestHold is the head of the asset queue: minimum hold_placed, ties broken by id.
func (s *store) EarliestHold(ctx context.Context, assetID int64) (model.Hold, error) {
	query, args, err := qb.Select(holdColumns...).
		From(holdsTableName).
		Where(sq.Eq{"asset_id": assetID}).
		OrderBy("hold_placed", "id").
		Limit(1).
		ToSql()
	if err != nil {
		return model.Hold{}, err
	}
	return getOne[model.Hold](ctx, s.db, query, args, fmt.Sprintf("hold on asset %d", assetID))
}

func (s *store) CountHolds(ctx context.Context, assetID int64) (int, error) {
	query, args, err := qb.Select("count(*)").
		From(holdsTableName).
		Where(sq.Eq{"asset_id": assetID}).
		ToSql()
	if err != nil {
		return 0, err
	}
	var n int
	if err := s.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (s *store) HasHold(ctx context.Context, assetID, cardID int64) (bool, error) {
	query, args, err := qb.Select("1").
		Prefix("select exists (").
		From(holdsTableName).
		Where(sq.Eq{"asset_id": assetID, "card_id": cardID}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, err
	}
	var exists bool
	if err := s.db.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (s *store) ListHolds(ctx context.Context, assetID int64, p model.PageRequest) (model.Page[model.Hold], error) {
	return listPage[model.Hold](ctx, s.db, listQuery{
		table:   holdsTableName,
		columns: holdColumns,
		where:   sq.Eq{"asset_id": assetID},
		orderBy: []string{"hold_placed", "id"},
	}, p)
}

func (s *store) CreateHold(ctx context.Context, h model.Hold) (model.Hold, error) {
	return insertOne[model.Hold](ctx, s.db, qb.Insert(holdsTableName).
		Columns("asset_id", "card_id", "hold_placed").
		Values(h.AssetID, h.CardID, h.HoldPlaced))
}

func (s *store) DeleteHold(ctx context.Context, id int64) error {
	return deleteByID(ctx, s.db, holdsTableName, id)
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}
