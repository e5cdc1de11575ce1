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

var statusRecordSortColumns = map[string]string{
	"recordedAt": "recorded_at",
	"statusType": "status_type",
}

var statusRecordFilterColumns = []filterColumn{
	{key: "statusType", column: "status_type"},
}

// PostgreSQLStatusRecordRepository handles status record persistence for PostgreSQL.
type PostgreSQLStatusRecordRepository struct {
	db *sql.DB
}

// NewPostgreSQLStatusRecordRepository creates a new PostgreSQLStatusRecordRepository.
func NewPostgreSQLStatusRecordRepository(db *sql.DB) *PostgreSQLStatusRecordRepository {
	return &PostgreSQLStatusRecordRepository{db: db}
}

// Create inserts a new status record.
func (r *PostgreSQLStatusRecordRepository) Create(ctx context.Context, record *domain.StatusRecord) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO status_records
			  (id, status_type, description, recorded_at, motorcycle_id, staff_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())`

	_, err := querier.ExecContext(ctx, query,
		record.ID, record.StatusType, record.Description, record.RecordedAt,
		record.MotorcycleID, record.StaffID,
	)
	if err != nil {
		if isPostgreSQLForeignKeyViolation(err) {
			return domain.ErrReferencedRecordMissing
		}
		return apperrors.Wrap(err, "failed to create status record")
	}
	return nil
}

// GetByID retrieves a status record by ID.
func (r *PostgreSQLStatusRecordRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.StatusRecord, error) {
	var record domain.StatusRecord
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, status_type, description, recorded_at, motorcycle_id, staff_id, created_at, updated_at
			  FROM status_records WHERE id = $1`

	err := querier.QueryRowContext(ctx, query, id).Scan(
		&record.ID, &record.StatusType, &record.Description, &record.RecordedAt,
		&record.MotorcycleID, &record.StaffID, &record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrStatusRecordNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get status record by id")
	}

	return &record, nil
}

// List retrieves a page of status records matching the listing params.
func (r *PostgreSQLStatusRecordRepository) List(ctx context.Context, params listing.Params) ([]*domain.StatusRecord, error) {
	querier := database.GetTx(ctx, r.db)

	where, args := buildSubstringFilters(params.Filters, statusRecordFilterColumns)
	orderBy := statusRecordSortColumns[params.SortKey]
	if orderBy == "" {
		orderBy = "recorded_at"
	}

	query := fmt.Sprintf(
		`SELECT id, status_type, description, recorded_at, motorcycle_id, staff_id, created_at, updated_at
		 FROM status_records%s ORDER BY %s LIMIT $%d OFFSET $%d`,
		where, orderBy, len(args)+1, len(args)+2,
	)
	args = append(args, params.Limit(), params.Offset())

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list status records")
	}
	defer func() { _ = rows.Close() }()

	var items []*domain.StatusRecord
	for rows.Next() {
		var record domain.StatusRecord
		if err := rows.Scan(
			&record.ID, &record.StatusType, &record.Description, &record.RecordedAt,
			&record.MotorcycleID, &record.StaffID, &record.CreatedAt, &record.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan status record")
		}
		items = append(items, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate status records")
	}

	return items, nil
}

// Count returns the number of status records matching the filters.
func (r *PostgreSQLStatusRecordRepository) Count(ctx context.Context, filters map[string]string) (int, error) {
	querier := database.GetTx(ctx, r.db)

	where, args := buildSubstringFilters(filters, statusRecordFilterColumns)

	var total int
	if err := querier.QueryRowContext(ctx, "SELECT COUNT(*) FROM status_records"+where, args...).Scan(&total); err != nil {
		return 0, apperrors.Wrap(err, "failed to count status records")
	}

	return total, nil
}

// Update modifies an existing status record.
func (r *PostgreSQLStatusRecordRepository) Update(ctx context.Context, record *domain.StatusRecord) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE status_records SET status_type = $2, description = $3, recorded_at = $4,
			  motorcycle_id = $5, staff_id = $6, updated_at = NOW() WHERE id = $1`

	result, err := querier.ExecContext(ctx, query,
		record.ID, record.StatusType, record.Description, record.RecordedAt,
		record.MotorcycleID, record.StaffID,
	)
	if err != nil {
		if isPostgreSQLForeignKeyViolation(err) {
			return domain.ErrReferencedRecordMissing
		}
		return apperrors.Wrap(err, "failed to update status record")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return domain.ErrStatusRecordNotFound
	}

	return nil
}

// Delete removes a status record by ID.
func (r *PostgreSQLStatusRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM status_records WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete status record")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return domain.ErrStatusRecordNotFound
	}

	return nil
}
