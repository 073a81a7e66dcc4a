package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/muebleria/muebleria-api/internal/domain"
	"github.com/muebleria/muebleria-api/internal/domain/entity"
	"github.com/muebleria/muebleria-api/internal/domain/repository"
)

var _ repository.BranchRepository = (*BranchRepo)(nil)

// BranchRepo implementación del puerto BranchRepository sobre PostgreSQL.
type BranchRepo struct {
	pool *pgxpool.Pool
}

// NewBranchRepository construye el adaptador de persistencia para sucursales.
func NewBranchRepository(pool *pgxpool.Pool) *BranchRepo {
	return &BranchRepo{pool: pool}
}

const branchColumns = `id, name, address, phone, order_prefix, last_order_sequence, is_deleted,
		created_at, created_by, updated_at, updated_by, deleted_at, deleted_by`

func scanBranch(row pgx.Row) (*entity.Branch, error) {
	var b entity.Branch
	err := row.Scan(
		&b.ID, &b.Name, &b.Address, &b.Phone, &b.OrderPrefix, &b.LastOrderSequence, &b.Deleted,
		&b.CreatedAt, &b.CreatedByID, &b.UpdatedAt, &b.UpdatedByID, &b.DeletedAt, &b.DeletedByID,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Create persiste una sucursal nueva. Devuelve domain.ErrDuplicate si el nombre ya existe.
func (r *BranchRepo) Create(b *entity.Branch) error {
	query := `
		INSERT INTO branches (id, name, address, phone, order_prefix, last_order_sequence, is_deleted,
			created_at, created_by, updated_at, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(context.Background(), query,
		b.ID, b.Name, b.Address, b.Phone, b.OrderPrefix, b.LastOrderSequence, b.Deleted,
		b.CreatedAt, b.CreatedByID, b.UpdatedAt, b.UpdatedByID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert branch: %w", err)
	}
	return nil
}

// GetByID obtiene una sucursal por ID. Devuelve (nil, nil) si no existe.
func (r *BranchRepo) GetByID(id string) (*entity.Branch, error) {
	b, err := scanBranch(r.pool.QueryRow(context.Background(),
		`SELECT `+branchColumns+` FROM branches WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get branch: %w", err)
	}
	return b, nil
}

// GetByName obtiene una sucursal por nombre exacto.
func (r *BranchRepo) GetByName(name string) (*entity.Branch, error) {
	b, err := scanBranch(r.pool.QueryRow(context.Background(),
		`SELECT `+branchColumns+` FROM branches WHERE name = $1`, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get branch by name: %w", err)
	}
	return b, nil
}

// List lista sucursales con paginación; includeDeleted incluye las borradas lógicamente.
func (r *BranchRepo) List(includeDeleted bool, limit, offset int) ([]*entity.Branch, error) {
	query := `SELECT ` + branchColumns + ` FROM branches`
	if !includeDeleted {
		query += ` WHERE is_deleted = FALSE`
	}
	query += ` ORDER BY name LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	defer rows.Close()

	var list []*entity.Branch
	for rows.Next() {
		b, err := scanBranch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan branch: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// Update actualiza una sucursal (incluye borrado lógico y restauración).
func (r *BranchRepo) Update(b *entity.Branch) error {
	query := `
		UPDATE branches SET name = $2, address = $3, phone = $4, order_prefix = $5,
			last_order_sequence = $6, is_deleted = $7, updated_at = $8, updated_by = $9,
			deleted_at = $10, deleted_by = $11
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		b.ID, b.Name, b.Address, b.Phone, b.OrderPrefix,
		b.LastOrderSequence, b.Deleted, b.UpdatedAt, b.UpdatedByID,
		b.DeletedAt, b.DeletedByID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update branch: %w", err)
	}
	return nil
}
