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

var arucoTagSortColumns = map[string]string{
	"code":   "code",
	"status": "status",
}

var arucoTagFilterColumns = []filterColumn{
	{key: "code", column: "code"},
	{key: "status", column: "status"},
}

// PostgreSQLArucoTagRepository handles ArUco tag persistence for PostgreSQL.
type PostgreSQLArucoTagRepository struct {
	db *sql.DB
}

// NewPostgreSQLArucoTagRepository creates a new PostgreSQLArucoTagRepository.
func NewPostgreSQLArucoTagRepository(db *sql.DB) *PostgreSQLArucoTagRepository {
	return &PostgreSQLArucoTagRepository{db: db}
}

// Create inserts a new tag.
func (r *PostgreSQLArucoTagRepository) Create(ctx context.Context, tag *domain.ArucoTag) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO aruco_tags (id, code, status, motorcycle_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, NOW(), NOW())`

	_, err := querier.ExecContext(ctx, query, tag.ID, tag.Code, tag.Status, tag.MotorcycleID)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrArucoTagAlreadyExists
		}
		if isPostgreSQLForeignKeyViolation(err) {
			return domain.ErrReferencedRecordMissing
		}
		return apperrors.Wrap(err, "failed to create aruco tag")
	}
	return nil
}

// GetByID retrieves a tag by ID.
func (r *PostgreSQLArucoTagRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ArucoTag, error) {
	var tag domain.ArucoTag
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, code, status, motorcycle_id, created_at, updated_at
			  FROM aruco_tags WHERE id = $1`

	err := querier.QueryRowContext(ctx, query, id).Scan(
		&tag.ID, &tag.Code, &tag.Status, &tag.MotorcycleID, &tag.CreatedAt, &tag.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrArucoTagNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get aruco tag by id")
	}

	return &tag, nil
}

// List retrieves a page of tags matching the listing params.
func (r *PostgreSQLArucoTagRepository) List(ctx context.Context, params listing.Params) ([]*domain.ArucoTag, error) {
	querier := database.GetTx(ctx, r.db)

	where, args := buildSubstringFilters(params.Filters, arucoTagFilterColumns)
	orderBy := arucoTagSortColumns[params.SortKey]
	if orderBy == "" {
		orderBy = "code"
	}

	query := fmt.Sprintf(
		`SELECT id, code, status, motorcycle_id, created_at, updated_at
		 FROM aruco_tags%s ORDER BY %s LIMIT $%d OFFSET $%d`,
		where, orderBy, len(args)+1, len(args)+2,
	)
	args = append(args, params.Limit(), params.Offset())

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list aruco tags")
	}
	defer func() { _ = rows.Close() }()

	var items []*domain.ArucoTag
	for rows.Next() {
		var tag domain.ArucoTag
		if err := rows.Scan(
			&tag.ID, &tag.Code, &tag.Status, &tag.MotorcycleID, &tag.CreatedAt, &tag.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan aruco tag")
		}
		items = append(items, &tag)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate aruco tags")
	}

	return items, nil
}

// Count returns the number of tags matching the filters.
func (r *PostgreSQLArucoTagRepository) Count(ctx context.Context, filters map[string]string) (int, error) {
	querier := database.GetTx(ctx, r.db)

	where, args := buildSubstringFilters(filters, arucoTagFilterColumns)

	var total int
	if err := querier.QueryRowContext(ctx, "SELECT COUNT(*) FROM aruco_tags"+where, args...).Scan(&total); err != nil {
		return 0, apperrors.Wrap(err, "failed to count aruco tags")
	}

	return total, nil
}

// Update modifies an existing tag.
func (r *PostgreSQLArucoTagRepository) Update(ctx context.Context, tag *domain.ArucoTag) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE aruco_tags SET code = $2, status = $3, motorcycle_id = $4, updated_at = NOW()
			  WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, tag.ID, tag.Code, tag.Status, tag.MotorcycleID)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrArucoTagAlreadyExists
		}
		if isPostgreSQLForeignKeyViolation(err) {
			return domain.ErrReferencedRecordMissing
		}
		return apperrors.Wrap(err, "failed to update aruco tag")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return domain.ErrArucoTagNotFound
	}

	return nil
}

// Delete removes a tag by ID.
func (r *PostgreSQLArucoTagRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM aruco_tags WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete aruco tag")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return domain.ErrArucoTagNotFound
	}

	return nil
}

// DeleteByMotorcycleID removes all tags attached to a motorcycle.
func (r *PostgreSQLArucoTagRepository) DeleteByMotorcycleID(ctx context.Context, motorcycleID uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	_, err := querier.ExecContext(ctx, `DELETE FROM aruco_tags WHERE motorcycle_id = $1`, motorcycleID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete aruco tags for motorcycle")
	}

	return nil
}
