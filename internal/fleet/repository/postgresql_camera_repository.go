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

var cameraSortColumns = map[string]string{
	"physicalLocation":  "physical_location",
	"operationalStatus": "operational_status",
}

var cameraFilterColumns = []filterColumn{
	{key: "operationalStatus", column: "operational_status"},
}

// PostgreSQLCameraRepository handles camera persistence for PostgreSQL.
type PostgreSQLCameraRepository struct {
	db *sql.DB
}

// NewPostgreSQLCameraRepository creates a new PostgreSQLCameraRepository.
func NewPostgreSQLCameraRepository(db *sql.DB) *PostgreSQLCameraRepository {
	return &PostgreSQLCameraRepository{db: db}
}

// Create inserts a new camera.
func (r *PostgreSQLCameraRepository) Create(ctx context.Context, camera *domain.Camera) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO cameras (id, operational_status, physical_location, yard_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, NOW(), NOW())`

	_, err := querier.ExecContext(ctx, query,
		camera.ID, camera.OperationalStatus, camera.PhysicalLocation, camera.YardID,
	)
	if err != nil {
		if isPostgreSQLForeignKeyViolation(err) {
			return domain.ErrReferencedRecordMissing
		}
		return apperrors.Wrap(err, "failed to create camera")
	}
	return nil
}

// GetByID retrieves a camera by ID.
func (r *PostgreSQLCameraRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Camera, error) {
	var camera domain.Camera
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, operational_status, physical_location, yard_id, created_at, updated_at
			  FROM cameras WHERE id = $1`

	err := querier.QueryRowContext(ctx, query, id).Scan(
		&camera.ID, &camera.OperationalStatus, &camera.PhysicalLocation, &camera.YardID,
		&camera.CreatedAt, &camera.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCameraNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get camera by id")
	}

	return &camera, nil
}

// List retrieves a page of cameras matching the listing params.
func (r *PostgreSQLCameraRepository) List(ctx context.Context, params listing.Params) ([]*domain.Camera, error) {
	querier := database.GetTx(ctx, r.db)

	where, args := buildSubstringFilters(params.Filters, cameraFilterColumns)
	orderBy := cameraSortColumns[params.SortKey]
	if orderBy == "" {
		orderBy = "physical_location"
	}

	query := fmt.Sprintf(
		`SELECT id, operational_status, physical_location, yard_id, created_at, updated_at
		 FROM cameras%s ORDER BY %s LIMIT $%d OFFSET $%d`,
		where, orderBy, len(args)+1, len(args)+2,
	)
	args = append(args, params.Limit(), params.Offset())

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list cameras")
	}
	defer func() { _ = rows.Close() }()

	var items []*domain.Camera
	for rows.Next() {
		var camera domain.Camera
		if err := rows.Scan(
			&camera.ID, &camera.OperationalStatus, &camera.PhysicalLocation, &camera.YardID,
			&camera.CreatedAt, &camera.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan camera")
		}
		items = append(items, &camera)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate cameras")
	}

	return items, nil
}

// Count returns the number of cameras matching the filters.
func (r *PostgreSQLCameraRepository) Count(ctx context.Context, filters map[string]string) (int, error) {
	querier := database.GetTx(ctx, r.db)

	where, args := buildSubstringFilters(filters, cameraFilterColumns)

	var total int
	if err := querier.QueryRowContext(ctx, "SELECT COUNT(*) FROM cameras"+where, args...).Scan(&total); err != nil {
		return 0, apperrors.Wrap(err, "failed to count cameras")
	}

	return total, nil
}

// Update modifies an existing camera.
func (r *PostgreSQLCameraRepository) Update(ctx context.Context, camera *domain.Camera) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE cameras SET operational_status = $2, physical_location = $3, yard_id = $4,
			  updated_at = NOW() WHERE id = $1`

	result, err := querier.ExecContext(ctx, query,
		camera.ID, camera.OperationalStatus, camera.PhysicalLocation, camera.YardID,
	)
	if err != nil {
		if isPostgreSQLForeignKeyViolation(err) {
			return domain.ErrReferencedRecordMissing
		}
		return apperrors.Wrap(err, "failed to update camera")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return domain.ErrCameraNotFound
	}

	return nil
}

// Delete removes a camera by ID.
func (r *PostgreSQLCameraRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM cameras WHERE id = $1`, id)
	if err != nil {
		if isPostgreSQLForeignKeyViolation(err) {
			return apperrors.Wrap(apperrors.ErrConflict, "camera is still referenced")
		}
		return apperrors.Wrap(err, "failed to delete camera")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return domain.ErrCameraNotFound
	}

	return nil
}
