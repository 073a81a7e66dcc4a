package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/muebleria/muebleria-api/internal/application/dto"
	"github.com/muebleria/muebleria-api/internal/application/usecase"
	"github.com/muebleria/muebleria-api/internal/domain"
	"github.com/muebleria/muebleria-api/internal/domain/entity"
	"github.com/muebleria/muebleria-api/internal/domain/repository"
	"github.com/muebleria/muebleria-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeUserRepo guarda el detalle de chofer en su propio mapa, igual que la
// tabla driver_details: al cargar un usuario se reengancha, y Update lo borra
// cuando el usuario ya no lo lleva.
type fakeUserRepo struct {
	users      map[string]*entity.User
	details    map[string]*entity.DriverDetail
	lastFilter repository.UserFilter
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{
		users:   make(map[string]*entity.User),
		details: make(map[string]*entity.DriverDetail),
	}
	for _, u := range users {
		r.users[u.ID] = u
		if u.DriverDetail != nil {
			r.details[u.ID] = u.DriverDetail
		}
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return domain.ErrUsernameTaken
		}
	}
	r.users[u.ID] = u
	if u.DriverDetail != nil {
		r.details[u.ID] = u.DriverDetail
	}
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u := r.users[id]
	if u != nil {
		u.DriverDetail = r.details[u.ID]
	}
	return u, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			u.DriverDetail = r.details[u.ID]
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ExistsByUsername(username string) (bool, error) {
	u, _ := r.GetByUsername(username)
	return u != nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	r.users[u.ID] = u
	if u.DriverDetail == nil {
		delete(r.details, u.ID)
	} else {
		r.details[u.ID] = u.DriverDetail
	}
	return nil
}

func (r *fakeUserRepo) UpdateProfile(*entity.UserProfile) error { return nil }

func (r *fakeUserRepo) UpdateDriverDetail(d *entity.DriverDetail) error {
	r.details[d.UserID] = d
	return nil
}

func (r *fakeUserRepo) List(filter repository.UserFilter, limit, offset int) ([]*entity.User, error) {
	r.lastFilter = filter
	var out []*entity.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

type fakeBranchRepo struct {
	branches map[string]*entity.Branch
}

var _ repository.BranchRepository = (*fakeBranchRepo)(nil)

func newFakeBranchRepo(branches ...*entity.Branch) *fakeBranchRepo {
	r := &fakeBranchRepo{branches: make(map[string]*entity.Branch)}
	for _, b := range branches {
		r.branches[b.ID] = b
	}
	return r
}

func (r *fakeBranchRepo) Create(b *entity.Branch) error { r.branches[b.ID] = b; return nil }

func (r *fakeBranchRepo) GetByID(id string) (*entity.Branch, error) { return r.branches[id], nil }

func (r *fakeBranchRepo) GetByName(name string) (*entity.Branch, error) {
	for _, b := range r.branches {
		if b.Name == name {
			return b, nil
		}
	}
	return nil, nil
}

func (r *fakeBranchRepo) List(bool, int, int) ([]*entity.Branch, error) { return nil, nil }
func (r *fakeBranchRepo) Update(b *entity.Branch) error                 { r.branches[b.ID] = b; return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

func userWithRole(id string, role entity.Role) *entity.User {
	return &entity.User{
		ID:       id,
		Username: id,
		Role:     role,
		Active:   true,
		Profile:  &entity.UserProfile{UserID: id, FirstName: "Nombre", LastName: "Apellido"},
	}
}

func validCreateReq(role string) dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Username: "nuevo1",
		Password: "password123",
		Role:     role,
		Active:   true,
		Profile:  &dto.ProfileInfo{FirstName: "Juan", LastName: "Pérez"},
	}
}

func newUserUC(users *fakeUserRepo, branches *fakeBranchRepo) *usecase.UserUseCase {
	if branches == nil {
		branches = newFakeBranchRepo()
	}
	return usecase.NewUserUseCase(users, branches, testLogger())
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_AdminCreaVendedor(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUserUC(repo, nil)
	admin := userWithRole("admin-1", entity.RoleAdmin)

	out, err := uc.Create(admin, validCreateReq("VENDEDOR"))
	require.NoError(t, err)

	assert.Equal(t, "VENDEDOR", out.Role)
	assert.Equal(t, "nuevo1", out.Username)
	assert.NotEmpty(t, out.ID)

	stored, _ := repo.GetByID(out.ID)
	require.NotNil(t, stored)
	assert.NotEqual(t, "password123", stored.PasswordHash, "la contraseña debe guardarse hasheada")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")))
}

func TestCreate_NadiePuedeCrearDeveloper(t *testing.T) {
	uc := newUserUC(newFakeUserRepo(), nil)

	for _, role := range []entity.Role{entity.RoleDeveloper, entity.RoleAdmin} {
		actor := userWithRole("actor-"+string(role), role)
		_, err := uc.Create(actor, validCreateReq("DEVELOPER"))
		assert.ErrorIs(t, err, domain.ErrForbidden, "rol %s no debe poder crear DEVELOPER", role)
	}
}

func TestCreate_AdminNoCreaAdmin(t *testing.T) {
	uc := newUserUC(newFakeUserRepo(), nil)
	admin := userWithRole("admin-1", entity.RoleAdmin)

	_, err := uc.Create(admin, validCreateReq("ADMIN"))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreate_VendedorNoCreaNada(t *testing.T) {
	uc := newUserUC(newFakeUserRepo(), nil)
	vendedor := userWithRole("vend-1", entity.RoleVendedor)

	_, err := uc.Create(vendedor, validCreateReq("AGENT"))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreate_UsernameDuplicado(t *testing.T) {
	existing := userWithRole("otro", entity.RoleAgent)
	existing.Username = "nuevo1"
	uc := newUserUC(newFakeUserRepo(existing), nil)
	admin := userWithRole("admin-1", entity.RoleAdmin)

	_, err := uc.Create(admin, validCreateReq("VENDEDOR"))
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestCreate_DriverSinLicencia(t *testing.T) {
	uc := newUserUC(newFakeUserRepo(), nil)
	admin := userWithRole("admin-1", entity.RoleAdmin)

	_, err := uc.Create(admin, validCreateReq("DRIVER"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_DriverConLicencia(t *testing.T) {
	uc := newUserUC(newFakeUserRepo(), nil)
	admin := userWithRole("admin-1", entity.RoleAdmin)

	req := validCreateReq("DRIVER")
	req.DriverDetails = &dto.DriverInfo{LicenseNumber: "LIC-123"}
	out, err := uc.Create(admin, req)
	require.NoError(t, err)
	require.NotNil(t, out.DriverDetails)
	assert.Equal(t, "LIC-123", out.DriverDetails.LicenseNumber)
}

func TestCreate_BypassConReglasRechazado(t *testing.T) {
	uc := newUserUC(newFakeUserRepo(), nil)
	admin := userWithRole("admin-1", entity.RoleAdmin)

	req := validCreateReq("VENDEDOR")
	req.BypassAccessRules = true
	req.AccessRules = []dto.AccessRuleRequest{{
		DayOfWeek: "MONDAY", StartTime: "08:00", EndTime: "17:00",
		AccessTimezone: "America/Mexico_City", Active: true,
	}}
	_, err := uc.Create(admin, req)
	assert.ErrorIs(t, err, domain.ErrBypassWithRules)
}

func TestCreate_ReglasConDiaRepetidoRechazadas(t *testing.T) {
	uc := newUserUC(newFakeUserRepo(), nil)
	admin := userWithRole("admin-1", entity.RoleAdmin)

	req := validCreateReq("VENDEDOR")
	rule := dto.AccessRuleRequest{
		DayOfWeek: "MONDAY", StartTime: "08:00", EndTime: "17:00",
		AccessTimezone: "America/Mexico_City", Active: true,
	}
	req.AccessRules = []dto.AccessRuleRequest{rule, rule}
	_, err := uc.Create(admin, req)
	assert.ErrorIs(t, err, domain.ErrRuleDayExists)
}

func TestCreate_ZonaHorariaInvalidaRechazada(t *testing.T) {
	uc := newUserUC(newFakeUserRepo(), nil)
	admin := userWithRole("admin-1", entity.RoleAdmin)

	req := validCreateReq("VENDEDOR")
	req.AccessRules = []dto.AccessRuleRequest{{
		DayOfWeek: "MONDAY", StartTime: "08:00", EndTime: "17:00",
		AccessTimezone: "Marte/Cidonia", Active: true,
	}}
	_, err := uc.Create(admin, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetByID / List
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID_AutoLecturaPermitida(t *testing.T) {
	vendedor := userWithRole("vend-1", entity.RoleVendedor)
	uc := newUserUC(newFakeUserRepo(vendedor), nil)

	out, err := uc.GetByID(vendedor, "vend-1")
	require.NoError(t, err)
	assert.Equal(t, "vend-1", out.ID)
}

func TestGetByID_VendedorNoVeOtros(t *testing.T) {
	vendedor := userWithRole("vend-1", entity.RoleVendedor)
	otro := userWithRole("vend-2", entity.RoleVendedor)
	uc := newUserUC(newFakeUserRepo(vendedor, otro), nil)

	_, err := uc.GetByID(vendedor, "vend-2")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGetByID_DeveloperInvisibleParaAdmin(t *testing.T) {
	admin := userWithRole("admin-1", entity.RoleAdmin)
	dev := userWithRole("dev-1", entity.RoleDeveloper)
	uc := newUserUC(newFakeUserRepo(admin, dev), nil)

	_, err := uc.GetByID(admin, "dev-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGetByID_BorradoInvisibleParaAdmin(t *testing.T) {
	admin := userWithRole("admin-1", entity.RoleAdmin)
	borrado := userWithRole("vend-1", entity.RoleVendedor)
	borrado.Deleted = true
	uc := newUserUC(newFakeUserRepo(admin, borrado), nil)

	_, err := uc.GetByID(admin, "vend-1")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestGetByUsername_MismaVisibilidadQueGetByID(t *testing.T) {
	admin := userWithRole("admin-1", entity.RoleAdmin)
	vendedor := userWithRole("vend-1", entity.RoleVendedor)
	dev := userWithRole("dev-1", entity.RoleDeveloper)
	uc := newUserUC(newFakeUserRepo(admin, vendedor, dev), nil)

	out, err := uc.GetByUsername(admin, "vend-1")
	require.NoError(t, err)
	assert.Equal(t, "vend-1", out.ID)

	_, err = uc.GetByUsername(admin, "dev-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.GetByUsername(admin, "no-existe")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestList_AdminExcluyeDeveloperYAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUserUC(repo, nil)
	admin := userWithRole("admin-1", entity.RoleAdmin)

	_, err := uc.List(admin, dto.UserListRequest{})
	require.NoError(t, err)

	assert.Equal(t, "admin-1", repo.lastFilter.ExcludeID)
	assert.Contains(t, repo.lastFilter.ExcludeRoles, entity.RoleDeveloper)
	assert.Contains(t, repo.lastFilter.ExcludeRoles, entity.RoleAdmin)
}

func TestList_DeveloperSoloExcluyeDeveloper(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUserUC(repo, nil)
	dev := userWithRole("dev-1", entity.RoleDeveloper)

	_, err := uc.List(dev, dto.UserListRequest{})
	require.NoError(t, err)

	assert.Contains(t, repo.lastFilter.ExcludeRoles, entity.RoleDeveloper)
	assert.NotContains(t, repo.lastFilter.ExcludeRoles, entity.RoleAdmin)
}

func TestList_VendedorNoLista(t *testing.T) {
	uc := newUserUC(newFakeUserRepo(), nil)
	vendedor := userWithRole("vend-1", entity.RoleVendedor)

	_, err := uc.List(vendedor, dto.UserListRequest{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestList_BorradosSoloDeveloper(t *testing.T) {
	uc := newUserUC(newFakeUserRepo(), nil)
	admin := userWithRole("admin-1", entity.RoleAdmin)

	_, err := uc.List(admin, dto.UserListRequest{Status: "DELETED"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestList_AdminPuedePedirAll(t *testing.T) {
	// ALL devuelve activos e inactivos pero nunca borrados, así que ADMIN
	// puede usarlo; sólo DELETED está reservado a DEVELOPER.
	repo := newFakeUserRepo()
	uc := newUserUC(repo, nil)
	admin := userWithRole("admin-1", entity.RoleAdmin)

	_, err := uc.List(admin, dto.UserListRequest{Status: "ALL"})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusAll, repo.lastFilter.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update — toggle de bypass
// ──────────────────────────────────────────────────────────────────────────────

func boolPtr(b bool) *bool { return &b }

func TestUpdate_ActivarBypassLimpiaReglas(t *testing.T) {
	admin := userWithRole("admin-1", entity.RoleAdmin)
	vendedor := userWithRole("vend-1", entity.RoleVendedor)
	vendedor.AccessRules = []entity.AccessRule{{
		ID: "r1", UserID: "vend-1", DayOfWeek: "MONDAY",
		StartTime: entity.ClockTime(8 * 3600), EndTime: entity.ClockTime(17 * 3600),
		Timezone: "America/Mexico_City", Active: true,
	}}
	repo := newFakeUserRepo(admin, vendedor)
	uc := newUserUC(repo, nil)

	out, err := uc.Update(admin, "vend-1", dto.UpdateUserRequest{BypassAccessRules: boolPtr(true)})
	require.NoError(t, err)

	assert.True(t, out.BypassAccessRules)
	assert.Empty(t, out.AccessRules, "activar bypass debe limpiar las reglas")

	stored, _ := repo.GetByID("vend-1")
	assert.Empty(t, stored.AccessRules)
}

func TestUpdate_DesactivarBypassSinReglasRechazado(t *testing.T) {
	admin := userWithRole("admin-1", entity.RoleAdmin)
	vendedor := userWithRole("vend-1", entity.RoleVendedor)
	vendedor.BypassAccessRules = true
	uc := newUserUC(newFakeUserRepo(admin, vendedor), nil)

	_, err := uc.Update(admin, "vend-1", dto.UpdateUserRequest{BypassAccessRules: boolPtr(false)})
	assert.ErrorIs(t, err, domain.ErrBypassOffNoRule,
		"quitar bypass a un usuario sin reglas lo dejaría bloqueado")
}

func TestUpdate_AutoEdicionProhibida(t *testing.T) {
	admin := userWithRole("admin-1", entity.RoleAdmin)
	uc := newUserUC(newFakeUserRepo(admin), nil)

	_, err := uc.Update(admin, "admin-1", dto.UpdateUserRequest{Active: boolPtr(false)})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUpdate_CambioDeRolSoloDeveloper(t *testing.T) {
	admin := userWithRole("admin-1", entity.RoleAdmin)
	vendedor := userWithRole("vend-1", entity.RoleVendedor)
	uc := newUserUC(newFakeUserRepo(admin, vendedor), nil)

	role := "AGENT"
	_, err := uc.Update(admin, "vend-1", dto.UpdateUserRequest{Role: &role})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUpdate_DeveloperCambiaRol(t *testing.T) {
	dev := userWithRole("dev-1", entity.RoleDeveloper)
	vendedor := userWithRole("vend-1", entity.RoleVendedor)
	uc := newUserUC(newFakeUserRepo(dev, vendedor), nil)

	role := "GESTOR_SUCURSAL"
	out, err := uc.Update(dev, "vend-1", dto.UpdateUserRequest{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, "GESTOR_SUCURSAL", out.Role)
}

func TestUpdate_RolDejaDeSerDriverEliminaDetalle(t *testing.T) {
	dev := userWithRole("dev-1", entity.RoleDeveloper)
	chofer := userWithRole("driver-1", entity.RoleDriver)
	chofer.DriverDetail = &entity.DriverDetail{ID: "det-1", UserID: "driver-1", LicenseNumber: "LIC-123"}
	repo := newFakeUserRepo(dev, chofer)
	uc := newUserUC(repo, nil)

	role := "VENDEDOR"
	out, err := uc.Update(dev, "driver-1", dto.UpdateUserRequest{Role: &role})
	require.NoError(t, err)
	assert.Nil(t, out.DriverDetails)

	// Al recargar no debe reaparecer el detalle persistido.
	reloaded, err := repo.GetByID("driver-1")
	require.NoError(t, err)
	assert.Nil(t, reloaded.DriverDetail,
		"el detalle de chofer debe borrarse junto con el cambio de rol")
}

func TestUpdate_DesasignarSucursalConCadenaVacia(t *testing.T) {
	branch := &entity.Branch{ID: "branch-1", Name: "Centro"}
	admin := userWithRole("admin-1", entity.RoleAdmin)
	gestor := userWithRole("gestor-1", entity.RoleGestorSucursal)
	gestor.ManagedBranchID = &branch.ID
	uc := newUserUC(newFakeUserRepo(admin, gestor), newFakeBranchRepo(branch))

	empty := ""
	out, err := uc.Update(admin, "gestor-1", dto.UpdateUserRequest{ManagedBranchID: &empty})
	require.NoError(t, err)
	assert.Nil(t, out.ManagedBranchID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Contraseñas
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateOwnPassword_RegistraPasswordChangedAt(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("actual123"), bcrypt.MinCost)
	require.NoError(t, err)
	vendedor := userWithRole("vend-1", entity.RoleVendedor)
	vendedor.PasswordHash = string(hash)
	repo := newFakeUserRepo(vendedor)
	uc := newUserUC(repo, nil)

	before := time.Now().UTC().Add(-time.Second)
	err = uc.UpdateOwnPassword(vendedor, dto.PasswordUpdateRequest{
		CurrentPassword: "actual123",
		NewPassword:     "nueva-password-1",
	})
	require.NoError(t, err)

	stored, _ := repo.GetByID("vend-1")
	require.NotNil(t, stored.PasswordChangedAt)
	assert.True(t, stored.PasswordChangedAt.After(before),
		"el cambio debe registrar PasswordChangedAt para invalidar tokens previos")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("nueva-password-1")))
}

func TestUpdateOwnPassword_ActualIncorrecta(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("actual123"), bcrypt.MinCost)
	require.NoError(t, err)
	vendedor := userWithRole("vend-1", entity.RoleVendedor)
	vendedor.PasswordHash = string(hash)
	uc := newUserUC(newFakeUserRepo(vendedor), nil)

	err = uc.UpdateOwnPassword(vendedor, dto.PasswordUpdateRequest{
		CurrentPassword: "equivocada",
		NewPassword:     "nueva-password-1",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestUpdateOwnPassword_RepetidaRechazada(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("actual123"), bcrypt.MinCost)
	require.NoError(t, err)
	vendedor := userWithRole("vend-1", entity.RoleVendedor)
	vendedor.PasswordHash = string(hash)
	uc := newUserUC(newFakeUserRepo(vendedor), nil)

	err = uc.UpdateOwnPassword(vendedor, dto.PasswordUpdateRequest{
		CurrentPassword: "actual123",
		NewPassword:     "actual123",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"la nueva contraseña debe ser distinta de la actual")
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete / Restore
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_BorradoLogicoDesactivaCuenta(t *testing.T) {
	admin := userWithRole("admin-1", entity.RoleAdmin)
	vendedor := userWithRole("vend-1", entity.RoleVendedor)
	repo := newFakeUserRepo(admin, vendedor)
	uc := newUserUC(repo, nil)

	require.NoError(t, uc.Delete(admin, "vend-1"))

	stored, _ := repo.GetByID("vend-1")
	assert.True(t, stored.Deleted)
	assert.False(t, stored.Active)
	assert.NotNil(t, stored.DeletedAt)
}

func TestDelete_AutoBorradoProhibido(t *testing.T) {
	admin := userWithRole("admin-1", entity.RoleAdmin)
	uc := newUserUC(newFakeUserRepo(admin), nil)

	err := uc.Delete(admin, "admin-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRestore_SoloDeveloper(t *testing.T) {
	admin := userWithRole("admin-1", entity.RoleAdmin)
	borrado := userWithRole("vend-1", entity.RoleVendedor)
	borrado.Deleted = true
	uc := newUserUC(newFakeUserRepo(admin, borrado), nil)

	_, err := uc.Restore(admin, "vend-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRestore_DeveloperRestaura(t *testing.T) {
	dev := userWithRole("dev-1", entity.RoleDeveloper)
	borrado := userWithRole("vend-1", entity.RoleVendedor)
	borrado.Deleted = true
	now := time.Now().UTC()
	borrado.DeletedAt = &now
	repo := newFakeUserRepo(dev, borrado)
	uc := newUserUC(repo, nil)

	out, err := uc.Restore(dev, "vend-1")
	require.NoError(t, err)
	assert.False(t, out.Deleted)

	stored, _ := repo.GetByID("vend-1")
	assert.False(t, stored.Deleted)
	assert.Nil(t, stored.DeletedAt)
}

func TestRestore_NoBorradoEsConflicto(t *testing.T) {
	dev := userWithRole("dev-1", entity.RoleDeveloper)
	vendedor := userWithRole("vend-1", entity.RoleVendedor)
	uc := newUserUC(newFakeUserRepo(dev, vendedor), nil)

	_, err := uc.Restore(dev, "vend-1")
	assert.ErrorIs(t, err, domain.ErrConflict)
}
