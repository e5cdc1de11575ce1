// Package repository provides data persistence implementations for staff entities.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mottuflow/fleetflow/internal/database"
	apperrors "github.com/mottuflow/fleetflow/internal/errors"
	"github.com/mottuflow/fleetflow/internal/listing"
	"github.com/mottuflow/fleetflow/internal/staff/domain"
)

// staffSortColumns maps allowed sort keys to table columns.
var staffSortColumns = map[string]string{
	"name":  "name",
	"role":  "role",
	"email": "email",
}

// PostgreSQLStaffRepository handles staff persistence for PostgreSQL.
type PostgreSQLStaffRepository struct {
	db *sql.DB
}

// NewPostgreSQLStaffRepository creates a new PostgreSQLStaffRepository.
func NewPostgreSQLStaffRepository(db *sql.DB) *PostgreSQLStaffRepository {
	return &PostgreSQLStaffRepository{
		db: db,
	}
}

// Create inserts a new staff member.
func (r *PostgreSQLStaffRepository) Create(ctx context.Context, staff *domain.Staff) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO staff (id, name, cpf, role, phone, email, password, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())`

	_, err := querier.ExecContext(ctx, query,
		staff.ID, staff.Name, staff.CPF, staff.Role, staff.Phone, staff.Email, staff.Password,
	)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrStaffAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create staff member")
	}
	return nil
}

// GetByID retrieves a staff member by ID.
func (r *PostgreSQLStaffRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Staff, error) {
	var staff domain.Staff
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, cpf, role, phone, email, password, created_at, updated_at
			  FROM staff WHERE id = $1`

	err := querier.QueryRowContext(ctx, query, id).Scan(
		&staff.ID, &staff.Name, &staff.CPF, &staff.Role, &staff.Phone,
		&staff.Email, &staff.Password, &staff.CreatedAt, &staff.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrStaffNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get staff member by id")
	}

	return &staff, nil
}

// GetByEmail retrieves a staff member by email.
func (r *PostgreSQLStaffRepository) GetByEmail(ctx context.Context, email string) (*domain.Staff, error) {
	var staff domain.Staff
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, cpf, role, phone, email, password, created_at, updated_at
			  FROM staff WHERE email = $1`

	err := querier.QueryRowContext(ctx, query, email).Scan(
		&staff.ID, &staff.Name, &staff.CPF, &staff.Role, &staff.Phone,
		&staff.Email, &staff.Password, &staff.CreatedAt, &staff.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrStaffNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get staff member by email")
	}

	return &staff, nil
}

// List retrieves a page of staff members matching the listing params.
func (r *PostgreSQLStaffRepository) List(ctx context.Context, params listing.Params) ([]*domain.Staff, error) {
	querier := database.GetTx(ctx, r.db)

	where, args := buildStaffFilters(params.Filters)
	orderBy := staffSortColumns[params.SortKey]
	if orderBy == "" {
		orderBy = "name"
	}

	query := fmt.Sprintf(
		`SELECT id, name, cpf, role, phone, email, password, created_at, updated_at
		 FROM staff%s ORDER BY %s LIMIT $%d OFFSET $%d`,
		where, orderBy, len(args)+1, len(args)+2,
	)
	args = append(args, params.Limit(), params.Offset())

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list staff members")
	}
	defer func() { _ = rows.Close() }()

	var items []*domain.Staff
	for rows.Next() {
		var staff domain.Staff
		if err := rows.Scan(
			&staff.ID, &staff.Name, &staff.CPF, &staff.Role, &staff.Phone,
			&staff.Email, &staff.Password, &staff.CreatedAt, &staff.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan staff member")
		}
		items = append(items, &staff)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate staff members")
	}

	return items, nil
}

// Count returns the number of staff members matching the filters.
func (r *PostgreSQLStaffRepository) Count(ctx context.Context, filters map[string]string) (int, error) {
	querier := database.GetTx(ctx, r.db)

	where, args := buildStaffFilters(filters)
	query := "SELECT COUNT(*) FROM staff" + where

	var total int
	if err := querier.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, apperrors.Wrap(err, "failed to count staff members")
	}

	return total, nil
}

// Update modifies an existing staff member.
func (r *PostgreSQLStaffRepository) Update(ctx context.Context, staff *domain.Staff) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE staff SET name = $2, cpf = $3, role = $4, phone = $5, email = $6,
			  password = $7, updated_at = NOW() WHERE id = $1`

	result, err := querier.ExecContext(ctx, query,
		staff.ID, staff.Name, staff.CPF, staff.Role, staff.Phone, staff.Email, staff.Password,
	)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrStaffAlreadyExists
		}
		return apperrors.Wrap(err, "failed to update staff member")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return domain.ErrStaffNotFound
	}

	return nil
}

// Delete removes a staff member by ID.
func (r *PostgreSQLStaffRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete staff member")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return domain.ErrStaffNotFound
	}

	return nil
}

// likeEscaper neutralizes LIKE wildcards so filter values match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildStaffFilters builds a WHERE clause with case-insensitive substring
// matches for the supported filter keys. Values are escaped so "%" and "_"
// are plain characters.
func buildStaffFilters(filters map[string]string) (string, []any) {
	var clauses []string
	var args []any

	for _, key := range []string{"name", "role"} {
		value, ok := filters[key]
		if !ok || value == "" {
			continue
		}
		args = append(args, likeEscaper.Replace(value))
		clauses = append(clauses, fmt.Sprintf(`%s ILIKE '%%' || $%d || '%%' ESCAPE '\'`, key, len(args)))
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// isPostgreSQLUniqueViolation checks if the error is a PostgreSQL unique constraint violation.
func isPostgreSQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}
