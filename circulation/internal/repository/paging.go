package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/Astemirdum/circulation-service/circulation/internal/errs"
	"github.com/Astemirdum/circulation-service/circulation/internal/model"
)

type listQuery struct {
	table   string
	columns []string
	where   sq.Sqlizer
	// orderBy must end with a unique column so pages never overlap.
	orderBy []string
}

func listPage[T any](ctx context.Context, db querier, q listQuery, p model.PageRequest) (model.Page[T], error) {
	if !p.Valid() {
		return model.Page[T]{}, errs.ErrInvalidPage
	}

	countB := qb.Select("count(*)").From(q.table)
	selB := qb.Select(q.columns...).From(q.table).OrderBy(q.orderBy...)
	if q.where != nil {
		countB = countB.Where(q.where)
		selB = selB.Where(q.where)
	}
	if !p.All() {
		selB = selB.Limit(uint64(p.Size)).Offset(uint64((p.Page - 1) * p.Size))
	}

	countQuery, countArgs, err := countB.ToSql()
	if err != nil {
		return model.Page[T]{}, err
	}
	var total int
	if err := db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return model.Page[T]{}, errors.Wrap(err, "count "+q.table)
	}

	query, args, err := selB.ToSql()
	if err != nil {
		return model.Page[T]{}, err
	}
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return model.Page[T]{}, err
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return model.Page[T]{}, errors.Wrap(err, "pgx.CollectRows")
	}
	if items == nil {
		items = []T{}
	}

	return model.Page[T]{
		Paging: model.Paging{
			Page:          p.Page,
			PageSize:      p.Size,
			TotalElements: total,
		},
		Items: items,
	}, nil
}
