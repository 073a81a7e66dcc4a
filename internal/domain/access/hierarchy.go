package access

import "github.com/muebleria/muebleria-api/internal/domain/entity"

// Predicados puros de jerarquía de roles. Deciden quién puede gestionar a
// quién comparando niveles de privilegio; los callers traducen `false` en un
// error de autorización en la frontera HTTP.
//
// Reglas generales: DEVELOPER no es creable ni gestionable por nadie (ni por
// otros DEVELOPER); DEVELOPER gestiona a todos los demás; ADMIN gestiona sólo
// niveles estrictamente menores; el resto de roles no gestiona a nadie.

// CanCreate indica si actorRole puede crear un usuario con roleToAssign.
func CanCreate(actorRole, roleToAssign entity.Role) bool {
	if roleToAssign == entity.RoleDeveloper {
		return false
	}
	if actorRole == entity.RoleDeveloper {
		return true
	}
	if actorRole == entity.RoleAdmin {
		return roleToAssign.Level() < actorRole.Level()
	}
	return false
}

// CanRead indica si actor puede ver a subject. La lectura de uno mismo
// siempre está permitida; las cuentas DEVELOPER son invisibles para terceros.
func CanRead(actor, subject *entity.User) bool {
	if actor.ID == subject.ID {
		return true
	}
	return canManage(actor, subject)
}

// CanUpdate indica si actor puede modificar a subject. La auto-edición por
// esta vía está prohibida: los cambios sobre la propia cuenta van por las
// operaciones de perfil/contraseña propios.
func CanUpdate(actor, subject *entity.User) bool {
	if actor.ID == subject.ID {
		return false
	}
	return canManage(actor, subject)
}

// CanDelete indica si actor puede borrar (lógicamente) a subject.
func CanDelete(actor, subject *entity.User) bool {
	return CanUpdate(actor, subject)
}

// CanManageSchedules indica si actor puede gestionar las reglas de horario de subject.
func CanManageSchedules(actor, subject *entity.User) bool {
	return CanUpdate(actor, subject)
}

// canManage regla común de nivel: DEVELOPER intocable, DEVELOPER gestiona al
// resto, ADMIN sólo niveles estrictamente menores.
func canManage(actor, subject *entity.User) bool {
	if subject.Role == entity.RoleDeveloper {
		return false
	}
	if actor.Role == entity.RoleDeveloper {
		return true
	}
	if actor.Role == entity.RoleAdmin {
		return subject.Role.Level() < actor.Role.Level()
	}
	return false
}
