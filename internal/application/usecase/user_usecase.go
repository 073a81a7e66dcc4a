package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/muebleria/muebleria-api/internal/application/dto"
	"github.com/muebleria/muebleria-api/internal/domain"
	"github.com/muebleria/muebleria-api/internal/domain/access"
	"github.com/muebleria/muebleria-api/internal/domain/entity"
	"github.com/muebleria/muebleria-api/internal/domain/repository"
	"github.com/muebleria/muebleria-api/pkg/logger"
)

// UserUseCase gestión de usuarios: alta, consulta, actualización, borrado
// lógico y restauración. Toda operación recibe al actor autenticado y aplica
// los predicados de jerarquía antes de tocar la persistencia.
type UserUseCase struct {
	users    repository.UserRepository
	branches repository.BranchRepository
	log      *logger.Logger
}

// NewUserUseCase construye el caso de uso de usuarios.
func NewUserUseCase(users repository.UserRepository, branches repository.BranchRepository, log *logger.Logger) *UserUseCase {
	return &UserUseCase{users: users, branches: branches, log: log}
}

// Create da de alta un usuario con perfil y, opcionalmente, detalle de chofer
// y reglas de horario iniciales.
func (uc *UserUseCase) Create(actor *entity.User, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	role, ok := entity.ParseRole(req.Role)
	if !ok {
		return nil, fmt.Errorf("%w: rol desconocido %q", domain.ErrInvalidInput, req.Role)
	}
	if !access.CanCreate(actor.Role, role) {
		return nil, domain.ErrForbidden
	}

	username := strings.TrimSpace(req.Username)
	if username == "" || len(req.Password) < 8 {
		return nil, fmt.Errorf("%w: username y password (mínimo 8 caracteres) son obligatorios", domain.ErrInvalidInput)
	}
	if req.Profile == nil || strings.TrimSpace(req.Profile.FirstName) == "" || strings.TrimSpace(req.Profile.LastName) == "" {
		return nil, fmt.Errorf("%w: el perfil con nombre y apellido es obligatorio", domain.ErrInvalidInput)
	}
	if role == entity.RoleDriver && (req.DriverDetails == nil || strings.TrimSpace(req.DriverDetails.LicenseNumber) == "") {
		return nil, fmt.Errorf("%w: los usuarios DRIVER requieren número de licencia", domain.ErrInvalidInput)
	}
	if role != entity.RoleDriver && req.DriverDetails != nil {
		return nil, fmt.Errorf("%w: sólo los usuarios DRIVER llevan detalle de chofer", domain.ErrInvalidInput)
	}
	if req.BypassAccessRules && len(req.AccessRules) > 0 {
		return nil, domain.ErrBypassWithRules
	}

	exists, err := uc.users.ExistsByUsername(username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUsernameTaken
	}

	if req.ManagedBranchID != nil && *req.ManagedBranchID != "" {
		branch, err := uc.branches.GetByID(*req.ManagedBranchID)
		if err != nil {
			return nil, err
		}
		if branch == nil || branch.Deleted {
			return nil, fmt.Errorf("%w: sucursal %q", domain.ErrNotFound, *req.ManagedBranchID)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &entity.User{
		ID:                uuid.NewString(),
		Username:          username,
		PasswordHash:      string(hash),
		Role:              role,
		Active:            req.Active,
		BypassAccessRules: req.BypassAccessRules,
		ManagedBranchID:   normalizeBranchID(req.ManagedBranchID),
		CreatedAt:         now,
		CreatedByID:       &actor.ID,
		UpdatedAt:         now,
		UpdatedByID:       &actor.ID,
	}
	user.Profile = &entity.UserProfile{
		ID:              uuid.NewString(),
		UserID:          user.ID,
		FirstName:       strings.TrimSpace(req.Profile.FirstName),
		LastName:        strings.TrimSpace(req.Profile.LastName),
		Email:           strings.TrimSpace(req.Profile.Email),
		Phone:           strings.TrimSpace(req.Profile.Phone),
		Address:         strings.TrimSpace(req.Profile.Address),
		EmployeeNumber:  strings.TrimSpace(req.Profile.EmployeeNumber),
		HireDate:        req.Profile.HireDate,
		TerminationDate: req.Profile.TerminationDate,
		CreatedAt:       now,
		CreatedByID:     &actor.ID,
		UpdatedAt:       now,
		UpdatedByID:     &actor.ID,
	}
	if req.DriverDetails != nil {
		user.DriverDetail = &entity.DriverDetail{
			ID:                    uuid.NewString(),
			UserID:                user.ID,
			LicenseNumber:         strings.TrimSpace(req.DriverDetails.LicenseNumber),
			LicenseExpirationDate: req.DriverDetails.LicenseExpirationDate,
			CreatedAt:             now,
			CreatedByID:           &actor.ID,
			UpdatedAt:             now,
			UpdatedByID:           &actor.ID,
		}
	}

	seenDays := make(map[string]bool, len(req.AccessRules))
	for _, rr := range req.AccessRules {
		rule, err := buildAccessRule(user.ID, rr, actor.ID, now)
		if err != nil {
			return nil, err
		}
		if seenDays[rule.DayOfWeek] {
			return nil, domain.ErrRuleDayExists
		}
		seenDays[rule.DayOfWeek] = true
		user.AccessRules = append(user.AccessRules, *rule)
	}

	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("user_id", user.ID).
		Str("username", user.Username).
		Str("role", string(user.Role)).
		Str("created_by", actor.ID).
		Msg("usuario creado")
	return toUserResponse(user), nil
}

// GetByID consulta un usuario. Las cuentas borradas sólo las ve DEVELOPER.
func (uc *UserUseCase) GetByID(actor *entity.User, id string) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.Deleted && actor.Role != entity.RoleDeveloper {
		return nil, domain.ErrUserNotFound
	}
	if !access.CanRead(actor, user) {
		return nil, domain.ErrForbidden
	}
	return toUserResponse(user), nil
}

// GetByUsername consulta un usuario por nombre de usuario, con la misma
// visibilidad que GetByID.
func (uc *UserUseCase) GetByUsername(actor *entity.User, username string) (*dto.UserResponse, error) {
	user, err := uc.users.GetByUsername(strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.Deleted && actor.Role != entity.RoleDeveloper {
		return nil, domain.ErrUserNotFound
	}
	if !access.CanRead(actor, user) {
		return nil, domain.ErrForbidden
	}
	return toUserResponse(user), nil
}

// MyProfile devuelve la cuenta del propio actor.
func (uc *UserUseCase) MyProfile(actor *entity.User) (*dto.UserResponse, error) {
	return toUserResponse(actor), nil
}

// List lista usuarios según jerarquía: el actor nunca se ve a sí mismo, los
// DEVELOPER son invisibles para todos, y ADMIN tampoco ve a otros ADMIN.
func (uc *UserUseCase) List(actor *entity.User, req dto.UserListRequest) ([]dto.UserSummaryResponse, error) {
	if actor.Role != entity.RoleDeveloper && actor.Role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	status := entity.StatusActive
	if req.Status != "" {
		switch entity.UserStatus(strings.ToUpper(req.Status)) {
		case entity.StatusActive:
			status = entity.StatusActive
		case entity.StatusInactive:
			status = entity.StatusInactive
		case entity.StatusDeleted:
			status = entity.StatusDeleted
		case entity.StatusAll:
			status = entity.StatusAll
		default:
			return nil, fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, req.Status)
		}
	}
	// ALL excluye cuentas borradas, así que no expone nada reservado; sólo el
	// listado de borrados queda restringido a DEVELOPER.
	if status == entity.StatusDeleted && actor.Role != entity.RoleDeveloper {
		return nil, domain.ErrForbidden
	}

	filter := repository.UserFilter{
		Status:       status,
		Search:       strings.TrimSpace(req.Search),
		BranchID:     req.BranchID,
		ExcludeID:    actor.ID,
		ExcludeRoles: []entity.Role{entity.RoleDeveloper},
	}
	if actor.Role == entity.RoleAdmin {
		filter.ExcludeRoles = append(filter.ExcludeRoles, entity.RoleAdmin)
	}
	if req.Role != "" {
		role, ok := entity.ParseRole(req.Role)
		if !ok {
			return nil, fmt.Errorf("%w: rol desconocido %q", domain.ErrInvalidInput, req.Role)
		}
		filter.Role = role
	}

	req.DefaultPage()
	users, err := uc.users.List(filter, req.Limit, req.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserSummaryResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserSummary(u))
	}
	return out, nil
}

// Update actualiza flags de cuenta, rol y sucursal gestionada.
//
// El cambio de rol está reservado a DEVELOPER. Activar bypass limpia las
// reglas de horario en la misma transacción; desactivarlo exige que el
// usuario tenga al menos una regla, porque quedaría bloqueado sin horario.
func (uc *UserUseCase) Update(actor *entity.User, id string, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.loadManageable(actor, id)
	if err != nil {
		return nil, err
	}
	if !access.CanUpdate(actor, user) {
		return nil, domain.ErrForbidden
	}

	if req.Role != nil {
		if actor.Role != entity.RoleDeveloper {
			return nil, domain.ErrForbidden
		}
		role, ok := entity.ParseRole(*req.Role)
		if !ok {
			return nil, fmt.Errorf("%w: rol desconocido %q", domain.ErrInvalidInput, *req.Role)
		}
		if !access.CanCreate(actor.Role, role) {
			return nil, domain.ErrForbidden
		}
		if role != entity.RoleDriver {
			user.DriverDetail = nil
		}
		user.Role = role
	}

	if req.BypassAccessRules != nil && *req.BypassAccessRules != user.BypassAccessRules {
		if *req.BypassAccessRules {
			// el repo borra las reglas en la misma transacción del update
			user.AccessRules = nil
		} else if len(user.AccessRules) == 0 {
			return nil, domain.ErrBypassOffNoRule
		}
		user.BypassAccessRules = *req.BypassAccessRules
	}

	if req.Active != nil {
		user.Active = *req.Active
	}

	if req.ManagedBranchID != nil {
		if *req.ManagedBranchID == "" {
			user.ManagedBranchID = nil
		} else {
			branch, err := uc.branches.GetByID(*req.ManagedBranchID)
			if err != nil {
				return nil, err
			}
			if branch == nil || branch.Deleted {
				return nil, fmt.Errorf("%w: sucursal %q", domain.ErrNotFound, *req.ManagedBranchID)
			}
			user.ManagedBranchID = req.ManagedBranchID
		}
	}

	user.UpdatedAt = time.Now().UTC()
	user.UpdatedByID = &actor.ID
	if err := uc.users.Update(user); err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("user_id", user.ID).
		Str("updated_by", actor.ID).
		Msg("usuario actualizado")
	return toUserResponse(user), nil
}

// UpdateOwnPassword cambia la contraseña del propio actor verificando la actual.
// Registra PasswordChangedAt, lo que invalida los tokens ya emitidos.
func (uc *UserUseCase) UpdateOwnPassword(actor *entity.User, req dto.PasswordUpdateRequest) error {
	if err := bcrypt.CompareHashAndPassword([]byte(actor.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return domain.ErrUnauthorized
	}
	if req.NewPassword == req.CurrentPassword {
		return fmt.Errorf("%w: la nueva contraseña debe ser distinta de la actual", domain.ErrInvalidInput)
	}
	return uc.setPassword(actor, actor, req.NewPassword)
}

// UpdateUserPassword cambia la contraseña de otro usuario (requiere jerarquía).
func (uc *UserUseCase) UpdateUserPassword(actor *entity.User, id string, req dto.AdminPasswordUpdateRequest) error {
	user, err := uc.loadManageable(actor, id)
	if err != nil {
		return err
	}
	if !access.CanUpdate(actor, user) {
		return domain.ErrForbidden
	}
	return uc.setPassword(actor, user, req.NewPassword)
}

func (uc *UserUseCase) setPassword(actor, user *entity.User, newPassword string) error {
	if len(newPassword) < 8 {
		return fmt.Errorf("%w: la contraseña debe tener al menos 8 caracteres", domain.ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	now := time.Now().UTC()
	user.PasswordHash = string(hash)
	user.PasswordChangedAt = &now
	user.UpdatedAt = now
	user.UpdatedByID = &actor.ID
	if err := uc.users.Update(user); err != nil {
		return err
	}
	uc.log.Info().
		Str("user_id", user.ID).
		Str("changed_by", actor.ID).
		Msg("contraseña actualizada")
	return nil
}

// UpdateOwnProfile actualiza el perfil del propio actor.
func (uc *UserUseCase) UpdateOwnProfile(actor *entity.User, req dto.ProfileUpdateRequest) (*dto.UserResponse, error) {
	return uc.applyProfileUpdate(actor, actor, req)
}

// UpdateUserProfile actualiza el perfil de otro usuario (requiere jerarquía).
func (uc *UserUseCase) UpdateUserProfile(actor *entity.User, id string, req dto.ProfileUpdateRequest) (*dto.UserResponse, error) {
	user, err := uc.loadManageable(actor, id)
	if err != nil {
		return nil, err
	}
	if !access.CanUpdate(actor, user) {
		return nil, domain.ErrForbidden
	}
	return uc.applyProfileUpdate(actor, user, req)
}

func (uc *UserUseCase) applyProfileUpdate(actor, user *entity.User, req dto.ProfileUpdateRequest) (*dto.UserResponse, error) {
	if user.Profile == nil {
		return nil, fmt.Errorf("%w: el usuario no tiene perfil", domain.ErrConflict)
	}
	p := user.Profile
	if req.FirstName != nil {
		p.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		p.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Email != nil {
		p.Email = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		p.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Address != nil {
		p.Address = strings.TrimSpace(*req.Address)
	}
	if req.EmployeeNumber != nil {
		p.EmployeeNumber = strings.TrimSpace(*req.EmployeeNumber)
	}
	if req.HireDate != nil {
		p.HireDate = req.HireDate
	}
	if req.TerminationDate != nil {
		p.TerminationDate = req.TerminationDate
	}
	if p.FirstName == "" || p.LastName == "" {
		return nil, fmt.Errorf("%w: nombre y apellido no pueden quedar vacíos", domain.ErrInvalidInput)
	}
	p.UpdatedAt = time.Now().UTC()
	p.UpdatedByID = &actor.ID
	if err := uc.users.UpdateProfile(p); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// UpdateDriverDetail actualiza el detalle de chofer de un usuario DRIVER.
func (uc *UserUseCase) UpdateDriverDetail(actor *entity.User, id string, req dto.DriverDetailUpdateRequest) (*dto.UserResponse, error) {
	user, err := uc.loadManageable(actor, id)
	if err != nil {
		return nil, err
	}
	if !access.CanUpdate(actor, user) {
		return nil, domain.ErrForbidden
	}
	if user.Role != entity.RoleDriver {
		return nil, fmt.Errorf("%w: el usuario no tiene rol DRIVER", domain.ErrConflict)
	}

	now := time.Now().UTC()
	if user.DriverDetail == nil {
		user.DriverDetail = &entity.DriverDetail{
			ID:          uuid.NewString(),
			UserID:      user.ID,
			CreatedAt:   now,
			CreatedByID: &actor.ID,
		}
	}
	d := user.DriverDetail
	if req.LicenseNumber != nil {
		d.LicenseNumber = strings.TrimSpace(*req.LicenseNumber)
	}
	if req.LicenseExpirationDate != nil {
		d.LicenseExpirationDate = req.LicenseExpirationDate
	}
	if d.LicenseNumber == "" {
		return nil, fmt.Errorf("%w: el número de licencia no puede quedar vacío", domain.ErrInvalidInput)
	}
	d.UpdatedAt = now
	d.UpdatedByID = &actor.ID
	if err := uc.users.UpdateDriverDetail(d); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete borra lógicamente un usuario y desactiva la cuenta.
func (uc *UserUseCase) Delete(actor *entity.User, id string) error {
	user, err := uc.loadManageable(actor, id)
	if err != nil {
		return err
	}
	if !access.CanDelete(actor, user) {
		return domain.ErrForbidden
	}

	now := time.Now().UTC()
	user.Deleted = true
	user.Active = false
	user.DeletedAt = &now
	user.DeletedByID = &actor.ID
	user.UpdatedAt = now
	user.UpdatedByID = &actor.ID
	if err := uc.users.Update(user); err != nil {
		return err
	}
	uc.log.Info().
		Str("user_id", user.ID).
		Str("deleted_by", actor.ID).
		Msg("usuario borrado lógicamente")
	return nil
}

// Restore revierte el borrado lógico. Sólo DEVELOPER, que es el único rol que
// puede ver cuentas borradas. La cuenta restaurada queda inactiva hasta que se
// reactive explícitamente.
func (uc *UserUseCase) Restore(actor *entity.User, id string) (*dto.UserResponse, error) {
	if actor.Role != entity.RoleDeveloper {
		return nil, domain.ErrForbidden
	}
	user, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if !user.Deleted {
		return nil, fmt.Errorf("%w: el usuario no está borrado", domain.ErrConflict)
	}

	user.Deleted = false
	user.DeletedAt = nil
	user.DeletedByID = nil
	user.UpdatedAt = time.Now().UTC()
	user.UpdatedByID = &actor.ID
	if err := uc.users.Update(user); err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("user_id", user.ID).
		Str("restored_by", actor.ID).
		Msg("usuario restaurado")
	return toUserResponse(user), nil
}

// loadManageable carga un usuario no borrado para operaciones de gestión
// (las cuentas borradas sólo admiten Restore).
func (uc *UserUseCase) loadManageable(actor *entity.User, id string) (*entity.User, error) {
	user, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.Deleted {
		if actor.Role != entity.RoleDeveloper {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: el usuario está borrado", domain.ErrConflict)
	}
	return user, nil
}

func normalizeBranchID(id *string) *string {
	if id == nil || *id == "" {
		return nil
	}
	return id
}

// buildAccessRule valida y construye una regla de horario a partir del DTO.
func buildAccessRule(userID string, req dto.AccessRuleRequest, actorID string, now time.Time) (*entity.AccessRule, error) {
	day, ok := entity.ParseDayOfWeek(req.DayOfWeek)
	if !ok {
		return nil, fmt.Errorf("%w: día de la semana inválido %q", domain.ErrInvalidInput, req.DayOfWeek)
	}
	start, err := entity.ParseClockTime(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	end, err := entity.ParseClockTime(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if start > end {
		return nil, fmt.Errorf("%w: la hora de inicio debe ser anterior o igual a la de fin", domain.ErrInvalidInput)
	}
	if _, err := time.LoadLocation(req.AccessTimezone); err != nil {
		return nil, fmt.Errorf("%w: zona horaria inválida %q", domain.ErrInvalidInput, req.AccessTimezone)
	}
	return &entity.AccessRule{
		ID:          uuid.NewString(),
		UserID:      userID,
		DayOfWeek:   day,
		StartTime:   start,
		EndTime:     end,
		Timezone:    req.AccessTimezone,
		Active:      req.Active,
		CreatedAt:   now,
		CreatedByID: &actorID,
		UpdatedAt:   now,
		UpdatedByID: &actorID,
	}, nil
}
