package repository

import (
	"context"

	"pickup-options-service/internal/infra"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PickupVendorRole is the role a user must hold to own pickup points.
const PickupVendorRole = "pickup_vendor"

// VendorRepository answers eligibility lookups against the user directory.
type VendorRepository struct {
	db *pgxpool.Pool
	sq squirrel.StatementBuilderType
}

func NewVendorRepository(db *pgxpool.Pool) *VendorRepository {
	return &VendorRepository{
		db: db,
		sq: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *VendorRepository) HasPickupRole(ctx context.Context, vendorID uuid.UUID) (bool, error) {
	sql, args, err := r.sq.Select("1").
		From("user_roles").
		Where(squirrel.Eq{"user_id": vendorID, "role": PickupVendorRole}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, infra.WrapRepoErr(infra.KindDBFailure, "building vendor role query", err)
	}

	var one int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&one)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, infra.WrapRepoErr(infra.KindDBFailure, "querying vendor role", err)
	}
	return true, nil
}

func (r *VendorRepository) IsBlocked(ctx context.Context, vendorID uuid.UUID) (bool, error) {
	sql, args, err := r.sq.Select("blocked").
		From("users").
		Where(squirrel.Eq{"id": vendorID}).
		ToSql()
	if err != nil {
		return false, infra.WrapRepoErr(infra.KindDBFailure, "building vendor status query", err)
	}

	var blocked bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&blocked)
	if err == pgx.ErrNoRows {
		// Unknown vendors are treated as blocked: they must not grant
		// access to any point.
		return true, nil
	}
	if err != nil {
		return false, infra.WrapRepoErr(infra.KindDBFailure, "querying vendor status", err)
	}
	return blocked, nil
}
