package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/muebleria/muebleria-api/internal/domain/entity"
	"github.com/muebleria/muebleria-api/internal/domain/repository"
)

var _ repository.DriverRepository = (*DriverRepo)(nil)

// DriverRepo implementación del puerto DriverRepository sobre PostgreSQL.
type DriverRepo struct {
	pool *pgxpool.Pool
}

// NewDriverRepository construye el adaptador de persistencia para choferes.
func NewDriverRepository(pool *pgxpool.Pool) *DriverRepo {
	return &DriverRepo{pool: pool}
}

const driverColumns = `id, name, phone, license, is_active, is_deleted,
		created_at, created_by, updated_at, updated_by, deleted_at, deleted_by`

func scanDriver(row pgx.Row) (*entity.Driver, error) {
	var d entity.Driver
	err := row.Scan(
		&d.ID, &d.Name, &d.Phone, &d.License, &d.Active, &d.Deleted,
		&d.CreatedAt, &d.CreatedByID, &d.UpdatedAt, &d.UpdatedByID, &d.DeletedAt, &d.DeletedByID,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Create persiste un chofer nuevo.
func (r *DriverRepo) Create(d *entity.Driver) error {
	query := `
		INSERT INTO drivers (id, name, phone, license, is_active, is_deleted,
			created_at, created_by, updated_at, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(context.Background(), query,
		d.ID, d.Name, d.Phone, d.License, d.Active, d.Deleted,
		d.CreatedAt, d.CreatedByID, d.UpdatedAt, d.UpdatedByID,
	)
	if err != nil {
		return fmt.Errorf("insert driver: %w", err)
	}
	return nil
}

// GetByID obtiene un chofer por ID. Devuelve (nil, nil) si no existe.
func (r *DriverRepo) GetByID(id string) (*entity.Driver, error) {
	d, err := scanDriver(r.pool.QueryRow(context.Background(),
		`SELECT `+driverColumns+` FROM drivers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get driver: %w", err)
	}
	return d, nil
}

// List lista choferes con paginación.
func (r *DriverRepo) List(includeDeleted bool, limit, offset int) ([]*entity.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers`
	if !includeDeleted {
		query += ` WHERE is_deleted = FALSE`
	}
	query += ` ORDER BY name LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Driver
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, fmt.Errorf("scan driver: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// Update actualiza un chofer (incluye borrado lógico y restauración).
func (r *DriverRepo) Update(d *entity.Driver) error {
	query := `
		UPDATE drivers SET name = $2, phone = $3, license = $4, is_active = $5, is_deleted = $6,
			updated_at = $7, updated_by = $8, deleted_at = $9, deleted_by = $10
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		d.ID, d.Name, d.Phone, d.License, d.Active, d.Deleted,
		d.UpdatedAt, d.UpdatedByID, d.DeletedAt, d.DeletedByID,
	)
	if err != nil {
		return fmt.Errorf("update driver: %w", err)
	}
	return nil
}
