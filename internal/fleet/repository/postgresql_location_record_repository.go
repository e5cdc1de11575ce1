package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mottuflow/fleetflow/internal/database"
	apperrors "github.com/mottuflow/fleetflow/internal/errors"
	"github.com/mottuflow/fleetflow/internal/fleet/domain"
	"github.com/mottuflow/fleetflow/internal/listing"
)

var locationRecordSortColumns = map[string]string{
	"recordedAt":     "recorded_at",
	"referencePoint": "reference_point",
}

var locationRecordFilterColumns = []filterColumn{
	{key: "referencePoint", column: "reference_point"},
}

// PostgreSQLLocationRecordRepository handles location record persistence for PostgreSQL.
type PostgreSQLLocationRecordRepository struct {
	db *sql.DB
}

// NewPostgreSQLLocationRecordRepository creates a new PostgreSQLLocationRecordRepository.
func NewPostgreSQLLocationRecordRepository(db *sql.DB) *PostgreSQLLocationRecordRepository {
	return &PostgreSQLLocationRecordRepository{db: db}
}

// Create inserts a new location record.
func (r *PostgreSQLLocationRecordRepository) Create(ctx context.Context, record *domain.LocationRecord) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO location_records
			  (id, recorded_at, reference_point, motorcycle_id, yard_id, camera_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())`

	_, err := querier.ExecContext(ctx, query,
		record.ID, record.RecordedAt, record.ReferencePoint,
		record.MotorcycleID, record.YardID, record.CameraID,
	)
	if err != nil {
		if isPostgreSQLForeignKeyViolation(err) {
			return domain.ErrReferencedRecordMissing
		}
		return apperrors.Wrap(err, "failed to create location record")
	}
	return nil
}

// GetByID retrieves a location record by ID.
func (r *PostgreSQLLocationRecordRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.LocationRecord, error) {
	var record domain.LocationRecord
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, recorded_at, reference_point, motorcycle_id, yard_id, camera_id, created_at, updated_at
			  FROM location_records WHERE id = $1`

	err := querier.QueryRowContext(ctx, query, id).Scan(
		&record.ID, &record.RecordedAt, &record.ReferencePoint,
		&record.MotorcycleID, &record.YardID, &record.CameraID,
		&record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLocationRecordNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get location record by id")
	}

	return &record, nil
}

// List retrieves a page of location records matching the listing params.
func (r *PostgreSQLLocationRecordRepository) List(ctx context.Context, params listing.Params) ([]*domain.LocationRecord, error) {
	querier := database.GetTx(ctx, r.db)

	where, args := buildSubstringFilters(params.Filters, locationRecordFilterColumns)
	orderBy := locationRecordSortColumns[params.SortKey]
	if orderBy == "" {
		orderBy = "recorded_at"
	}

	query := fmt.Sprintf(
		`SELECT id, recorded_at, reference_point, motorcycle_id, yard_id, camera_id, created_at, updated_at
		 FROM location_records%s ORDER BY %s LIMIT $%d OFFSET $%d`,
		where, orderBy, len(args)+1, len(args)+2,
	)
	args = append(args, params.Limit(), params.Offset())

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list location records")
	}
	defer func() { _ = rows.Close() }()

	var items []*domain.LocationRecord
	for rows.Next() {
		var record domain.LocationRecord
		if err := rows.Scan(
			&record.ID, &record.RecordedAt, &record.ReferencePoint,
			&record.MotorcycleID, &record.YardID, &record.CameraID,
			&record.CreatedAt, &record.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan location record")
		}
		items = append(items, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate location records")
	}

	return items, nil
}

// Count returns the number of location records matching the filters.
func (r *PostgreSQLLocationRecordRepository) Count(ctx context.Context, filters map[string]string) (int, error) {
	querier := database.GetTx(ctx, r.db)

	where, args := buildSubstringFilters(filters, locationRecordFilterColumns)

	var total int
	if err := querier.QueryRowContext(ctx, "SELECT COUNT(*) FROM location_records"+where, args...).Scan(&total); err != nil {
		return 0, apperrors.Wrap(err, "failed to count location records")
	}

	return total, nil
}

// Update modifies an existing location record.
func (r *PostgreSQLLocationRecordRepository) Update(ctx context.Context, record *domain.LocationRecord) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE location_records SET recorded_at = $2, reference_point = $3, motorcycle_id = $4,
			  yard_id = $5, camera_id = $6, updated_at = NOW() WHERE id = $1`

	result, err := querier.ExecContext(ctx, query,
		record.ID, record.RecordedAt, record.ReferencePoint,
		record.MotorcycleID, record.YardID, record.CameraID,
	)
	if err != nil {
		if isPostgreSQLForeignKeyViolation(err) {
			return domain.ErrReferencedRecordMissing
		}
		return apperrors.Wrap(err, "failed to update location record")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return domain.ErrLocationRecordNotFound
	}

	return nil
}

// Delete removes a location record by ID.
func (r *PostgreSQLLocationRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM location_records WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete location record")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return domain.ErrLocationRecordNotFound
	}

	return nil
}
