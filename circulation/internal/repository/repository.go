package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/circulation-service/circulation/internal/errs"
	"github.com/Astemirdum/circulation-service/circulation/internal/model"
)

// Store holds every read and write of the circulation records. It is served by the
// pool for standalone reads and by an asset transaction inside WithinAssetTx.
type Store interface {
	GetAsset(ctx context.Context, assetID int64) (model.Asset, error)
	SetAssetStatus(ctx context.Context, assetID int64, statusID int) error
	GetCard(ctx context.Context, cardID int64) (model.Card, error)
	PatronByCard(ctx context.Context, cardID int64) (model.Patron, error)

	GetCheckout(ctx context.Context, id int64) (model.Checkout, error)
	ActiveCheckout(ctx context.Context, assetID int64) (model.Checkout, error)
	LatestCheckout(ctx context.Context, assetID int64) (model.Checkout, error)
	ListCheckouts(ctx context.Context, p model.PageRequest) (model.Page[model.Checkout], error)
	CreateCheckout(ctx context.Context, c model.Checkout) (model.Checkout, error)
	DeleteCheckout(ctx context.Context, id int64) error

	CreateHistory(ctx context.Context, h model.CheckoutHistory) (model.CheckoutHistory, error)
	CloseHistory(ctx context.Context, assetID int64, checkedIn time.Time) (model.CheckoutHistory, error)
	ListHistory(ctx context.Context, assetID int64, p model.PageRequest) (model.Page[model.CheckoutHistory], error)

	GetHold(ctx context.Context, id int64) (model.Hold, error)
	EarliestHold(ctx context.Context, assetID int64) (model.Hold, error)
	CountHolds(ctx context.Context, assetID int64) (int, error)
	HasHold(ctx context.Context, assetID, cardID int64) (bool, error)
	ListHolds(ctx context.Context, assetID int64, p model.PageRequest) (model.Page[model.Hold], error)
	CreateHold(ctx context.Context, h model.Hold) (model.Hold, error)
	DeleteHold(ctx context.Context, id int64) error
}

type Repository interface {
	Store
	StatusByName(ctx context.Context, name string) (model.Status, error)
	// WithinAssetTx runs fn in one transaction holding the row lock of the asset.
	// Calls for the same asset are serialized; fn's error rolls everything back.
	WithinAssetTx(ctx context.Context, assetID int64, fn func(ctx context.Context, tx Store) error) error
}

type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type store struct {
	db  querier
	log *zap.Logger
}

type repository struct {
	*store
	pool *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	if db == nil {
		return nil, errors.New("nil pool")
	}
	log = log.Named("repo")
	return &repository{
		store: &store{db: db, log: log},
		pool:  db,
	}, nil
}

const (
	assetsTableName    = `assets`
	statusesTableName  = `asset_statuses`
	cardsTableName     = `cards`
	patronsTableName   = `patrons`
	checkoutsTableName = `checkouts`
	historyTableName   = `checkout_histories`
	holdsTableName     = `holds`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) WithinAssetTx(ctx context.Context, assetID int64, fn func(ctx context.Context, tx Store) error) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	defer func() {
		if err == nil {
			return
		}
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			r.log.Error("rollback", zap.Int64("asset_id", assetID), zap.Error(rbErr))
		}
	}()

	query, args, err := qb.Select("id").
		From(assetsTableName).
		Where(sq.Eq{"id": assetID}).
		Suffix("for update").
		ToSql()
	if err != nil {
		return err
	}
	var locked int64
	if err = tx.QueryRow(ctx, query, args...).Scan(&locked); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errors.Wrapf(errs.ErrNotFound, "asset %d", assetID)
		}
		return errors.Wrap(err, "lock asset")
	}

	if err = fn(ctx, &store{db: tx, log: r.log}); err != nil {
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.Wrap(mapPgError(err), "commit")
	}
	return nil
}

func (r *repository) StatusByName(ctx context.Context, name string) (model.Status, error) {
	query, args, err := qb.Select("id", "name").
		From(statusesTableName).
		Where(sq.Eq{"name": name}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Status{}, err
	}
	return getOne[model.Status](ctx, r.db, query, args, "status "+name)
}

// mapPgError turns constraint violations into domain errors.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return errors.Wrap(errs.ErrConflict, pgErr.ConstraintName)
	case pgerrcode.ForeignKeyViolation:
		return errors.Wrap(errs.ErrNotFound, pgErr.ConstraintName)
	}
	return err
}

func getOne[T any](ctx context.Context, db querier, query string, args []any, what string) (T, error) {
	var zero T
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return zero, err
	}
	defer rows.Close()

	v, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, errors.Wrap(errs.ErrNotFound, what)
		}
		return zero, errors.Wrap(err, "pgx.CollectOneRow")
	}
	return v, nil
}

func insertOne[T any](ctx context.Context, db querier, b sq.InsertBuilder) (T, error) {
	var zero T
	query, args, err := b.Suffix("returning *").ToSql()
	if err != nil {
		return zero, err
	}
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return zero, mapPgError(err)
	}
	defer rows.Close()

	v, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		return zero, mapPgError(err)
	}
	return v, nil
}

func deleteByID(ctx context.Context, db querier, table string, id int64) error {
	query, args, err := qb.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrapf(errs.ErrNotFound, "%s %d", table, id)
	}
	return nil
}
