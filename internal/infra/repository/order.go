package repository

import (
	"context"
	"time"

	"pickup-options-service/internal/infra"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OrderRepository reads the order facts resolution depends on.
type OrderRepository struct {
	db *pgxpool.Pool
	sq squirrel.StatementBuilderType
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{
		db: db,
		sq: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *OrderRepository) StoreID(ctx context.Context, orderID uuid.UUID) (uuid.UUID, error) {
	sql, args, err := r.sq.Select("store_id").
		From("orders").
		Where(squirrel.Eq{"id": orderID}).
		ToSql()
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr(infra.KindDBFailure, "building order store query", err)
	}

	var storeID uuid.UUID
	err = r.db.QueryRow(ctx, sql, args...).Scan(&storeID)
	if err == pgx.ErrNoRows {
		return uuid.Nil, infra.WrapRepoErr(infra.KindNotFound, "order not found", err)
	}
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr(infra.KindDBFailure, "querying order store", err)
	}
	return storeID, nil
}

func (r *OrderRepository) CartOrdersUpdatedSince(ctx context.Context, storeIDs []uuid.UUID, since time.Time) ([]uuid.UUID, error) {
	sql, args, err := r.sq.Select("id").
		From("orders").
		Where(squirrel.Eq{"cart": true}).
		Where("store_id = ANY(?)", storeIDs).
		Where(squirrel.Gt{"changed_at": since}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "building cart order query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "querying cart orders", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "scanning cart order id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "querying cart orders", err)
	}
	return ids, nil
}
