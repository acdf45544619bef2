package entity

import "time"

// Feedback es una entrada del registro de sugerencias/incidencias (dev log),
// atribuida al usuario autenticado que la envió.
type Feedback struct {
	ID        string
	UserID    string
	Subject   string
	Message   string
	CreatedAt time.Time
}
