package repository

import (
	"context"

	"pickup-options-service/internal/domain/pickup"
	"pickup-options-service/internal/infra"
	"pickup-options-service/internal/infra/repository/converter"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PointRepository reads pickup-point profiles. Result order is fixed by
// (created_at, id) so identical inputs always resolve candidates in the
// same order.
type PointRepository struct {
	db *pgxpool.Pool
	sq squirrel.StatementBuilderType
}

func NewPointRepository(db *pgxpool.Pool) *PointRepository {
	return &PointRepository{
		db: db,
		sq: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *PointRepository) FindByIDsAndStores(ctx context.Context, ids []uuid.UUID, storeIDs []uuid.UUID) ([]pickup.PickupPoint, error) {
	query := r.baseQuery(storeIDs).Where("p.id = ANY(?)", ids)
	return r.queryPoints(ctx, query, "querying pickup points by ids")
}

func (r *PointRepository) FindByOwnersAndStores(ctx context.Context, ownerIDs []uuid.UUID, storeIDs []uuid.UUID) ([]pickup.PickupPoint, error) {
	query := r.baseQuery(storeIDs).Where("p.vendor_id = ANY(?)", ownerIDs)
	return r.queryPoints(ctx, query, "querying pickup points by owners")
}

func (r *PointRepository) baseQuery(storeIDs []uuid.UUID) squirrel.SelectBuilder {
	return r.sq.Select(
		"p.id",
		"p.vendor_id",
		"(SELECT array_agg(ps.store_id) FROM pickup_point_stores ps WHERE ps.point_id = p.id) AS store_ids",
		"p.organization",
		"p.line1",
		"p.locality",
		"p.postal_code",
		"p.country_code",
		"p.administrative_area",
		"p.additional_name",
		"p.sorting_code",
		"p.hours",
		"p.timezone",
		"p.is_default",
		"p.active",
	).
		From("pickup_points p").
		Where(squirrel.Eq{"p.active": true}).
		Where("EXISTS (SELECT 1 FROM pickup_point_stores m WHERE m.point_id = p.id AND m.store_id = ANY(?))", storeIDs).
		OrderBy("p.created_at", "p.id")
}

func (r *PointRepository) queryPoints(ctx context.Context, query squirrel.SelectBuilder, msg string) ([]pickup.PickupPoint, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "building pickup point query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, msg, err)
	}
	defer rows.Close()

	var points []pickup.PickupPoint
	for rows.Next() {
		var row converter.PointRow
		if err := rows.Scan(
			&row.ID,
			&row.VendorID,
			&row.StoreIDs,
			&row.Organization,
			&row.Line1,
			&row.Locality,
			&row.PostalCode,
			&row.CountryCode,
			&row.AdministrativeArea,
			&row.AdditionalName,
			&row.SortingCode,
			&row.Hours,
			&row.Timezone,
			&row.IsDefault,
			&row.Active,
		); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "scanning pickup point row", err)
		}
		point, err := converter.PointToDomain(row)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "converting pickup point row", err)
		}
		points = append(points, point)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, msg, err)
	}
	return points, nil
}
