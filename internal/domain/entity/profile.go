package entity

import "time"

// Roles válidos para Profile.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

// Profile es la extensión uno-a-uno de User con el rol de la aplicación.
// Se crea siempre junto con el usuario, en la misma transacción de registro:
// todo usuario tiene exactamente un Profile y nunca se crea por separado.
type Profile struct {
	UserID    string
	Role      string // admin, manager, staff (default staff)
	CreatedAt time.Time
}

// ValidRole indica si r es un rol conocido.
func ValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleManager, RoleStaff:
		return true
	}
	return false
}
