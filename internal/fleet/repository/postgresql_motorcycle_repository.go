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

var motorcycleSortColumns = map[string]string{
	"plate": "plate",
	"model": "model",
	"year":  "year",
}

var motorcycleFilterColumns = []filterColumn{
	{key: "plate", column: "plate"},
	{key: "model", column: "model"},
	{key: "manufacturer", column: "manufacturer"},
}

// PostgreSQLMotorcycleRepository handles motorcycle persistence for PostgreSQL.
type PostgreSQLMotorcycleRepository struct {
	db *sql.DB
}

// NewPostgreSQLMotorcycleRepository creates a new PostgreSQLMotorcycleRepository.
func NewPostgreSQLMotorcycleRepository(db *sql.DB) *PostgreSQLMotorcycleRepository {
	return &PostgreSQLMotorcycleRepository{db: db}
}

// Create inserts a new motorcycle.
func (r *PostgreSQLMotorcycleRepository) Create(ctx context.Context, motorcycle *domain.Motorcycle) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO motorcycles
			  (id, plate, model, manufacturer, year, yard_id, current_location, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())`

	_, err := querier.ExecContext(ctx, query,
		motorcycle.ID, motorcycle.Plate, motorcycle.Model, motorcycle.Manufacturer,
		motorcycle.Year, motorcycle.YardID, motorcycle.CurrentLocation,
	)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrMotorcycleAlreadyExists
		}
		if isPostgreSQLForeignKeyViolation(err) {
			return domain.ErrReferencedRecordMissing
		}
		return apperrors.Wrap(err, "failed to create motorcycle")
	}
	return nil
}

// GetByID retrieves a motorcycle by ID.
func (r *PostgreSQLMotorcycleRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Motorcycle, error) {
	var motorcycle domain.Motorcycle
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, plate, model, manufacturer, year, yard_id, current_location, created_at, updated_at
			  FROM motorcycles WHERE id = $1`

	err := querier.QueryRowContext(ctx, query, id).Scan(
		&motorcycle.ID, &motorcycle.Plate, &motorcycle.Model, &motorcycle.Manufacturer,
		&motorcycle.Year, &motorcycle.YardID, &motorcycle.CurrentLocation,
		&motorcycle.CreatedAt, &motorcycle.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMotorcycleNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get motorcycle by id")
	}

	return &motorcycle, nil
}

// List retrieves a page of motorcycles matching the listing params.
func (r *PostgreSQLMotorcycleRepository) List(ctx context.Context, params listing.Params) ([]*domain.Motorcycle, error) {
	querier := database.GetTx(ctx, r.db)

	where, args := buildSubstringFilters(params.Filters, motorcycleFilterColumns)
	orderBy := motorcycleSortColumns[params.SortKey]
	if orderBy == "" {
		orderBy = "plate"
	}

	query := fmt.Sprintf(
		`SELECT id, plate, model, manufacturer, year, yard_id, current_location, created_at, updated_at
		 FROM motorcycles%s ORDER BY %s LIMIT $%d OFFSET $%d`,
		where, orderBy, len(args)+1, len(args)+2,
	)
	args = append(args, params.Limit(), params.Offset())

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list motorcycles")
	}
	defer func() { _ = rows.Close() }()

	var items []*domain.Motorcycle
	for rows.Next() {
		var motorcycle domain.Motorcycle
		if err := rows.Scan(
			&motorcycle.ID, &motorcycle.Plate, &motorcycle.Model, &motorcycle.Manufacturer,
			&motorcycle.Year, &motorcycle.YardID, &motorcycle.CurrentLocation,
			&motorcycle.CreatedAt, &motorcycle.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan motorcycle")
		}
		items = append(items, &motorcycle)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate motorcycles")
	}

	return items, nil
}

// Count returns the number of motorcycles matching the filters.
func (r *PostgreSQLMotorcycleRepository) Count(ctx context.Context, filters map[string]string) (int, error) {
	querier := database.GetTx(ctx, r.db)

	where, args := buildSubstringFilters(filters, motorcycleFilterColumns)

	var total int
	if err := querier.QueryRowContext(ctx, "SELECT COUNT(*) FROM motorcycles"+where, args...).Scan(&total); err != nil {
		return 0, apperrors.Wrap(err, "failed to count motorcycles")
	}

	return total, nil
}

// Update modifies an existing motorcycle.
func (r *PostgreSQLMotorcycleRepository) Update(ctx context.Context, motorcycle *domain.Motorcycle) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE motorcycles SET plate = $2, model = $3, manufacturer = $4, year = $5,
			  yard_id = $6, current_location = $7, updated_at = NOW() WHERE id = $1`

	result, err := querier.ExecContext(ctx, query,
		motorcycle.ID, motorcycle.Plate, motorcycle.Model, motorcycle.Manufacturer,
		motorcycle.Year, motorcycle.YardID, motorcycle.CurrentLocation,
	)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrMotorcycleAlreadyExists
		}
		if isPostgreSQLForeignKeyViolation(err) {
			return domain.ErrReferencedRecordMissing
		}
		return apperrors.Wrap(err, "failed to update motorcycle")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return domain.ErrMotorcycleNotFound
	}

	return nil
}

// Delete removes a motorcycle by ID.
func (r *PostgreSQLMotorcycleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM motorcycles WHERE id = $1`, id)
	if err != nil {
		if isPostgreSQLForeignKeyViolation(err) {
			return apperrors.Wrap(apperrors.ErrConflict, "motorcycle is still referenced")
		}
		return apperrors.Wrap(err, "failed to delete motorcycle")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return domain.ErrMotorcycleNotFound
	}

	return nil
}
