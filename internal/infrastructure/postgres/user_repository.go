package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/muebleria/muebleria-api/internal/domain"
	"github.com/muebleria/muebleria-api/internal/domain/entity"
	"github.com/muebleria/muebleria-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

const userColumns = `id, username, password_hash, role, active, bypass_access_rules, is_deleted,
		password_changed_at, managed_branch_id, created_at, created_by, updated_at, updated_by,
		deleted_at, deleted_by`

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	var role string
	err := row.Scan(
		&u.ID, &u.Username, &u.PasswordHash, &role, &u.Active, &u.BypassAccessRules, &u.Deleted,
		&u.PasswordChangedAt, &u.ManagedBranchID, &u.CreatedAt, &u.CreatedByID, &u.UpdatedAt, &u.UpdatedByID,
		&u.DeletedAt, &u.DeletedByID,
	)
	if err != nil {
		return nil, err
	}
	u.Role = entity.Role(role)
	return &u, nil
}

// Create persiste un nuevo usuario con su perfil, detalle de chofer y reglas
// en una transacción única.
func (r *UserRepo) Create(user *entity.User) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO users (id, username, password_hash, role, active, bypass_access_rules, is_deleted,
			password_changed_at, managed_branch_id, created_at, created_by, updated_at, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = tx.Exec(ctx, query,
		user.ID, user.Username, user.PasswordHash, string(user.Role), user.Active,
		user.BypassAccessRules, user.Deleted, user.PasswordChangedAt, user.ManagedBranchID,
		user.CreatedAt, user.CreatedByID, user.UpdatedAt, user.UpdatedByID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}

	if user.Profile != nil {
		p := user.Profile
		_, err = tx.Exec(ctx, `
			INSERT INTO user_profiles (id, user_id, first_name, last_name, email, phone, address,
				employee_number, hire_date, termination_date, created_at, created_by, updated_at, updated_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
			p.ID, user.ID, p.FirstName, p.LastName, p.Email, p.Phone, p.Address,
			p.EmployeeNumber, p.HireDate, p.TerminationDate, p.CreatedAt, p.CreatedByID, p.UpdatedAt, p.UpdatedByID,
		)
		if err != nil {
			return fmt.Errorf("insert user profile: %w", err)
		}
	}

	if user.DriverDetail != nil {
		d := user.DriverDetail
		_, err = tx.Exec(ctx, `
			INSERT INTO driver_details (id, user_id, license_number, license_expiration_date,
				created_at, created_by, updated_at, updated_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			d.ID, user.ID, d.LicenseNumber, d.LicenseExpirationDate,
			d.CreatedAt, d.CreatedByID, d.UpdatedAt, d.UpdatedByID,
		)
		if err != nil {
			return fmt.Errorf("insert driver detail: %w", err)
		}
	}

	for i := range user.AccessRules {
		if err := insertRule(ctx, tx, &user.AccessRules[i]); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID con perfil, detalle de chofer y reglas.
// Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.getBy(`WHERE id = $1`, id)
}

// GetByUsername obtiene un usuario por username con sus relaciones cargadas.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	return r.getBy(`WHERE username = $1`, username)
}

func (r *UserRepo) getBy(where string, arg any) (*entity.User, error) {
	ctx := context.Background()
	query := `SELECT ` + userColumns + ` FROM users ` + where
	u, err := scanUser(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if err := r.loadRelations(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// loadRelations carga perfil, detalle de chofer y reglas de acceso. Las reglas
// se cargan SIEMPRE: su ausencia significa "sin horario" para el control de acceso.
func (r *UserRepo) loadRelations(ctx context.Context, u *entity.User) error {
	var p entity.UserProfile
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, first_name, last_name, email, phone, address, employee_number,
			hire_date, termination_date, created_at, created_by, updated_at, updated_by
		FROM user_profiles WHERE user_id = $1`, u.ID).Scan(
		&p.ID, &p.UserID, &p.FirstName, &p.LastName, &p.Email, &p.Phone, &p.Address, &p.EmployeeNumber,
		&p.HireDate, &p.TerminationDate, &p.CreatedAt, &p.CreatedByID, &p.UpdatedAt, &p.UpdatedByID,
	)
	switch {
	case err == nil:
		u.Profile = &p
	case errors.Is(err, pgx.ErrNoRows):
		// usuario sin perfil: sólo posible en datos sembrados a mano
	default:
		return fmt.Errorf("get user profile: %w", err)
	}

	var d entity.DriverDetail
	err = r.pool.QueryRow(ctx, `
		SELECT id, user_id, license_number, license_expiration_date, created_at, created_by, updated_at, updated_by
		FROM driver_details WHERE user_id = $1`, u.ID).Scan(
		&d.ID, &d.UserID, &d.LicenseNumber, &d.LicenseExpirationDate,
		&d.CreatedAt, &d.CreatedByID, &d.UpdatedAt, &d.UpdatedByID,
	)
	switch {
	case err == nil:
		u.DriverDetail = &d
	case errors.Is(err, pgx.ErrNoRows):
	default:
		return fmt.Errorf("get driver detail: %w", err)
	}

	rules, err := queryRules(ctx, r.pool, `WHERE user_id = $1 ORDER BY day_of_week`, u.ID)
	if err != nil {
		return err
	}
	u.AccessRules = rules
	return nil
}

// ExistsByUsername indica si el username ya está registrado.
func (r *UserRepo) ExistsByUsername(username string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists by username: %w", err)
	}
	return exists, nil
}

// Update actualiza los campos mutables del usuario (incluye borrado lógico y
// restauración). Si el usuario activó bypass, las reglas se limpian aquí mismo
// para mantener el invariante en una sola transacción; lo mismo con el detalle
// de chofer cuando el rol dejó de ser DRIVER (DriverDetail en nil).
func (r *UserRepo) Update(user *entity.User) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE users SET password_hash = $2, role = $3, active = $4, bypass_access_rules = $5,
			is_deleted = $6, password_changed_at = $7, managed_branch_id = $8,
			updated_at = $9, updated_by = $10, deleted_at = $11, deleted_by = $12
		WHERE id = $1`
	_, err = tx.Exec(ctx, query,
		user.ID, user.PasswordHash, string(user.Role), user.Active, user.BypassAccessRules,
		user.Deleted, user.PasswordChangedAt, user.ManagedBranchID,
		user.UpdatedAt, user.UpdatedByID, user.DeletedAt, user.DeletedByID,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	if user.BypassAccessRules {
		if _, err := tx.Exec(ctx, `DELETE FROM user_access_rules WHERE user_id = $1`, user.ID); err != nil {
			return fmt.Errorf("clear access rules: %w", err)
		}
	}

	if user.DriverDetail == nil {
		if _, err := tx.Exec(ctx, `DELETE FROM driver_details WHERE user_id = $1`, user.ID); err != nil {
			return fmt.Errorf("clear driver detail: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit update user: %w", err)
	}
	return nil
}

// UpdateProfile actualiza el perfil de un usuario.
func (r *UserRepo) UpdateProfile(p *entity.UserProfile) error {
	query := `
		UPDATE user_profiles SET first_name = $2, last_name = $3, email = $4, phone = $5,
			address = $6, employee_number = $7, hire_date = $8, termination_date = $9,
			updated_at = $10, updated_by = $11
		WHERE user_id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		p.UserID, p.FirstName, p.LastName, p.Email, p.Phone,
		p.Address, p.EmployeeNumber, p.HireDate, p.TerminationDate,
		p.UpdatedAt, p.UpdatedByID,
	)
	if err != nil {
		return fmt.Errorf("update user profile: %w", err)
	}
	return nil
}

// UpdateDriverDetail actualiza el detalle de chofer de un usuario.
func (r *UserRepo) UpdateDriverDetail(d *entity.DriverDetail) error {
	query := `
		UPDATE driver_details SET license_number = $2, license_expiration_date = $3,
			updated_at = $4, updated_by = $5
		WHERE user_id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		d.UserID, d.LicenseNumber, d.LicenseExpirationDate, d.UpdatedAt, d.UpdatedByID,
	)
	if err != nil {
		return fmt.Errorf("update driver detail: %w", err)
	}
	return nil
}

// List lista usuarios según el filtro, con paginación. Los resúmenes incluyen
// el perfil (para nombre completo) pero no las reglas.
func (r *UserRepo) List(filter repository.UserFilter, limit, offset int) ([]*entity.User, error) {
	ctx := context.Background()

	var conds []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	switch filter.Status {
	case entity.StatusDeleted:
		conds = append(conds, "u.is_deleted = TRUE")
	case entity.StatusInactive:
		conds = append(conds, "u.is_deleted = FALSE", "u.active = FALSE")
	case entity.StatusAll:
		conds = append(conds, "u.is_deleted = FALSE")
	default: // ACTIVE
		conds = append(conds, "u.is_deleted = FALSE", "u.active = TRUE")
	}

	if filter.ExcludeID != "" {
		conds = append(conds, "u.id <> "+arg(filter.ExcludeID))
	}
	for _, role := range filter.ExcludeRoles {
		conds = append(conds, "u.role <> "+arg(string(role)))
	}
	if filter.Role != "" {
		conds = append(conds, "u.role = "+arg(string(filter.Role)))
	}
	if filter.BranchID != "" {
		conds = append(conds, "u.managed_branch_id = "+arg(filter.BranchID))
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		term := arg("%" + strings.ToLower(s) + "%")
		conds = append(conds, fmt.Sprintf(
			"(LOWER(u.username) LIKE %[1]s OR LOWER(p.first_name) LIKE %[1]s OR LOWER(p.last_name) LIKE %[1]s OR LOWER(p.email) LIKE %[1]s)",
			term))
	}

	query := `
		SELECT u.id, u.username, u.password_hash, u.role, u.active, u.bypass_access_rules, u.is_deleted,
			u.password_changed_at, u.managed_branch_id, u.created_at, u.created_by, u.updated_at, u.updated_by,
			u.deleted_at, u.deleted_by,
			p.first_name, p.last_name, p.email
		FROM users u
		LEFT JOIN user_profiles p ON p.user_id = u.id
		WHERE ` + strings.Join(conds, " AND ") + `
		ORDER BY u.created_at DESC LIMIT ` + arg(limit) + ` OFFSET ` + arg(offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var list []*entity.User
	for rows.Next() {
		var u entity.User
		var role string
		var firstName, lastName, email *string
		if err := rows.Scan(
			&u.ID, &u.Username, &u.PasswordHash, &role, &u.Active, &u.BypassAccessRules, &u.Deleted,
			&u.PasswordChangedAt, &u.ManagedBranchID, &u.CreatedAt, &u.CreatedByID, &u.UpdatedAt, &u.UpdatedByID,
			&u.DeletedAt, &u.DeletedByID,
			&firstName, &lastName, &email,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.Role = entity.Role(role)
		if firstName != nil || lastName != nil {
			u.Profile = &entity.UserProfile{UserID: u.ID}
			if firstName != nil {
				u.Profile.FirstName = *firstName
			}
			if lastName != nil {
				u.Profile.LastName = *lastName
			}
			if email != nil {
				u.Profile.Email = *email
			}
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
