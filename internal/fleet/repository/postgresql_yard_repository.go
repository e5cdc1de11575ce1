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

var yardSortColumns = map[string]string{
	"name":        "name",
	"address":     "address",
	"maxCapacity": "max_capacity",
}

var yardFilterColumns = []filterColumn{
	{key: "name", column: "name"},
	{key: "address", column: "address"},
}

// PostgreSQLYardRepository handles yard persistence for PostgreSQL.
type PostgreSQLYardRepository struct {
	db *sql.DB
}

// NewPostgreSQLYardRepository creates a new PostgreSQLYardRepository.
func NewPostgreSQLYardRepository(db *sql.DB) *PostgreSQLYardRepository {
	return &PostgreSQLYardRepository{db: db}
}

// Create inserts a new yard.
func (r *PostgreSQLYardRepository) Create(ctx context.Context, yard *domain.Yard) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO yards (id, name, address, max_capacity, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, NOW(), NOW())`

	_, err := querier.ExecContext(ctx, query, yard.ID, yard.Name, yard.Address, yard.MaxCapacity)
	if err != nil {
		return apperrors.Wrap(err, "failed to create yard")
	}
	return nil
}

// GetByID retrieves a yard by ID.
func (r *PostgreSQLYardRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Yard, error) {
	var yard domain.Yard
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, address, max_capacity, created_at, updated_at
			  FROM yards WHERE id = $1`

	err := querier.QueryRowContext(ctx, query, id).Scan(
		&yard.ID, &yard.Name, &yard.Address, &yard.MaxCapacity, &yard.CreatedAt, &yard.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrYardNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get yard by id")
	}

	return &yard, nil
}

// List retrieves a page of yards matching the listing params.
func (r *PostgreSQLYardRepository) List(ctx context.Context, params listing.Params) ([]*domain.Yard, error) {
	querier := database.GetTx(ctx, r.db)

	where, args := buildSubstringFilters(params.Filters, yardFilterColumns)
	orderBy := yardSortColumns[params.SortKey]
	if orderBy == "" {
		orderBy = "name"
	}

	query := fmt.Sprintf(
		`SELECT id, name, address, max_capacity, created_at, updated_at
		 FROM yards%s ORDER BY %s LIMIT $%d OFFSET $%d`,
		where, orderBy, len(args)+1, len(args)+2,
	)
	args = append(args, params.Limit(), params.Offset())

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list yards")
	}
	defer func() { _ = rows.Close() }()

	var items []*domain.Yard
	for rows.Next() {
		var yard domain.Yard
		if err := rows.Scan(
			&yard.ID, &yard.Name, &yard.Address, &yard.MaxCapacity, &yard.CreatedAt, &yard.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan yard")
		}
		items = append(items, &yard)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate yards")
	}

	return items, nil
}

// Count returns the number of yards matching the filters.
func (r *PostgreSQLYardRepository) Count(ctx context.Context, filters map[string]string) (int, error) {
	querier := database.GetTx(ctx, r.db)

	where, args := buildSubstringFilters(filters, yardFilterColumns)

	var total int
	if err := querier.QueryRowContext(ctx, "SELECT COUNT(*) FROM yards"+where, args...).Scan(&total); err != nil {
		return 0, apperrors.Wrap(err, "failed to count yards")
	}

	return total, nil
}

// Update modifies an existing yard.
func (r *PostgreSQLYardRepository) Update(ctx context.Context, yard *domain.Yard) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE yards SET name = $2, address = $3, max_capacity = $4, updated_at = NOW()
			  WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, yard.ID, yard.Name, yard.Address, yard.MaxCapacity)
	if err != nil {
		return apperrors.Wrap(err, "failed to update yard")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return domain.ErrYardNotFound
	}

	return nil
}

// Delete removes a yard by ID.
func (r *PostgreSQLYardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM yards WHERE id = $1`, id)
	if err != nil {
		if isPostgreSQLForeignKeyViolation(err) {
			return apperrors.Wrap(apperrors.ErrConflict, "yard is still referenced")
		}
		return apperrors.Wrap(err, "failed to delete yard")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return domain.ErrYardNotFound
	}

	return nil
}
