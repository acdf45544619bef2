package entity

import "time"

// User representa una cuenta del sistema. El rol vive en Profile (uno a uno);
// IsSuperuser es un flag independiente del rol, al estilo del panel de administración.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	IsSuperuser  bool
	CreatedAt    time.Time
}
