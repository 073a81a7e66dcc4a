package entity

import "strings"

// Role identifica el rol de un usuario. El conjunto es cerrado y cada rol
// tiene un nivel numérico de privilegio; toda la lógica de permisos compara
// niveles, nunca jerarquías de tipos.
type Role string

// Roles válidos para User.
const (
	RoleDeveloper        Role = "DEVELOPER"
	RoleAdmin            Role = "ADMIN"
	RoleGestorSucursal   Role = "GESTOR_SUCURSAL"
	RoleGestorInventario Role = "GESTOR_INVENTARIO"
	RoleVendedor         Role = "VENDEDOR"
	RoleDriver           Role = "DRIVER"
	RoleAgent            Role = "AGENT"
)

// roleLevels niveles de privilegio. Mayor nivel = más privilegio.
// Roles con el mismo nivel no pueden gestionarse entre sí.
var roleLevels = map[Role]int{
	RoleDeveloper:        100,
	RoleAdmin:            90,
	RoleGestorSucursal:   50,
	RoleGestorInventario: 50,
	RoleVendedor:         20,
	RoleDriver:           20,
	RoleAgent:            10,
}

// Level devuelve el nivel de privilegio del rol (0 si el rol no es válido).
func (r Role) Level() int {
	return roleLevels[r]
}

// Valid indica si el rol pertenece al conjunto cerrado.
func (r Role) Valid() bool {
	_, ok := roleLevels[r]
	return ok
}

// ParseRole normaliza un nombre de rol (acepta minúsculas y el prefijo "ROLE_").
// Devuelve ok=false si el nombre no corresponde a ningún rol.
func ParseRole(s string) (Role, bool) {
	name := strings.ToUpper(strings.TrimSpace(s))
	name = strings.TrimPrefix(name, "ROLE_")
	r := Role(name)
	if !r.Valid() {
		return "", false
	}
	return r, true
}
