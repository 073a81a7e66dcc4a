package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/muebleria/muebleria-api/internal/domain"
	"github.com/muebleria/muebleria-api/internal/domain/entity"
	"github.com/muebleria/muebleria-api/internal/domain/repository"
)

var _ repository.AccessRuleRepository = (*AccessRuleRepo)(nil)

// querier abstrae pool y transacción para reutilizar las consultas de reglas.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// AccessRuleRepo implementación del puerto AccessRuleRepository sobre PostgreSQL.
type AccessRuleRepo struct {
	pool *pgxpool.Pool
}

// NewAccessRuleRepository construye el adaptador de persistencia para reglas de horario.
func NewAccessRuleRepository(pool *pgxpool.Pool) *AccessRuleRepo {
	return &AccessRuleRepo{pool: pool}
}

const ruleColumns = `id, user_id, day_of_week, start_time, end_time, access_timezone, is_active,
		created_at, created_by, updated_at, updated_by`

func insertRule(ctx context.Context, q querier, rule *entity.AccessRule) error {
	query := `
		INSERT INTO user_access_rules (id, user_id, day_of_week, start_time, end_time,
			access_timezone, is_active, created_at, created_by, updated_at, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := q.Exec(ctx, query,
		rule.ID, rule.UserID, rule.DayOfWeek, rule.StartTime.String(), rule.EndTime.String(),
		rule.Timezone, rule.Active, rule.CreatedAt, rule.CreatedByID, rule.UpdatedAt, rule.UpdatedByID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrRuleDayExists
		}
		return fmt.Errorf("insert access rule: %w", err)
	}
	return nil
}

func scanRule(row pgx.Row) (*entity.AccessRule, error) {
	var rule entity.AccessRule
	var start, end string
	err := row.Scan(
		&rule.ID, &rule.UserID, &rule.DayOfWeek, &start, &end, &rule.Timezone, &rule.Active,
		&rule.CreatedAt, &rule.CreatedByID, &rule.UpdatedAt, &rule.UpdatedByID,
	)
	if err != nil {
		return nil, err
	}
	if rule.StartTime, err = entity.ParseClockTime(start); err != nil {
		return nil, fmt.Errorf("start_time corrupto en regla %s: %w", rule.ID, err)
	}
	if rule.EndTime, err = entity.ParseClockTime(end); err != nil {
		return nil, fmt.Errorf("end_time corrupto en regla %s: %w", rule.ID, err)
	}
	return &rule, nil
}

func queryRules(ctx context.Context, q querier, where string, args ...any) ([]entity.AccessRule, error) {
	rows, err := q.Query(ctx, `SELECT `+ruleColumns+` FROM user_access_rules `+where, args...)
	if err != nil {
		return nil, fmt.Errorf("list access rules: %w", err)
	}
	defer rows.Close()

	var rules []entity.AccessRule
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("scan access rule: %w", err)
		}
		rules = append(rules, *rule)
	}
	return rules, rows.Err()
}

// Create persiste una regla nueva. Devuelve domain.ErrRuleDayExists si el
// usuario ya tiene una regla para ese día.
func (r *AccessRuleRepo) Create(rule *entity.AccessRule) error {
	return insertRule(context.Background(), r.pool, rule)
}

// GetByID obtiene una regla por ID. Devuelve (nil, nil) si no existe.
func (r *AccessRuleRepo) GetByID(id string) (*entity.AccessRule, error) {
	rule, err := scanRule(r.pool.QueryRow(context.Background(),
		`SELECT `+ruleColumns+` FROM user_access_rules WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get access rule: %w", err)
	}
	return rule, nil
}

// GetByUserAndDay obtiene la regla de un usuario para un día concreto.
func (r *AccessRuleRepo) GetByUserAndDay(userID, dayOfWeek string) (*entity.AccessRule, error) {
	rule, err := scanRule(r.pool.QueryRow(context.Background(),
		`SELECT `+ruleColumns+` FROM user_access_rules WHERE user_id = $1 AND day_of_week = $2`,
		userID, dayOfWeek))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get access rule by day: %w", err)
	}
	return rule, nil
}

// ListByUser lista las reglas de un usuario.
func (r *AccessRuleRepo) ListByUser(userID string) ([]entity.AccessRule, error) {
	return queryRules(context.Background(), r.pool, `WHERE user_id = $1 ORDER BY day_of_week`, userID)
}

// Update actualiza una regla existente.
func (r *AccessRuleRepo) Update(rule *entity.AccessRule) error {
	query := `
		UPDATE user_access_rules SET day_of_week = $2, start_time = $3, end_time = $4,
			access_timezone = $5, is_active = $6, updated_at = $7, updated_by = $8
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		rule.ID, rule.DayOfWeek, rule.StartTime.String(), rule.EndTime.String(),
		rule.Timezone, rule.Active, rule.UpdatedAt, rule.UpdatedByID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrRuleDayExists
		}
		return fmt.Errorf("update access rule: %w", err)
	}
	return nil
}

// Delete elimina una regla por ID.
func (r *AccessRuleRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM user_access_rules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete access rule: %w", err)
	}
	return nil
}

// DeleteByUser elimina todas las reglas de un usuario (limpieza al activar bypass).
func (r *AccessRuleRepo) DeleteByUser(userID string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM user_access_rules WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete access rules by user: %w", err)
	}
	return nil
}
