// Package policy concentra la única regla de autorización de la aplicación:
// qué rol puede acceder a las vistas administrativas. El chequeo estaba
// duplicado en dos vistas del sistema anterior; aquí es un solo predicado.
package policy

import "github.com/ecopack/ecopack-api/internal/domain/entity"

// Capability identifica una operación protegida por rol.
type Capability string

const (
	// CapViewUserList listado de usuarios del sistema.
	CapViewUserList Capability = "view_user_list"
	// CapViewFeedbackLog listado del registro de sugerencias/incidencias.
	CapViewFeedbackLog Capability = "view_feedback_log"
)

// Allowed decide si un usuario con el rol dado (y flag de superusuario) puede
// ejercer la capability. Solo admin o superuser acceden a las vistas gateadas;
// el resto de operaciones de la aplicación no pasan por aquí (solo requieren
// autenticación).
func Allowed(role string, superuser bool, cap Capability) bool {
	switch cap {
	case CapViewUserList, CapViewFeedbackLog:
		return superuser || role == entity.RoleAdmin
	}
	return false
}
