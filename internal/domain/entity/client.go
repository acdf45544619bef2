package entity

import "time"

// Client representa un cliente que compra bolsas terminadas.
// Email y Address son opcionales; CreatedAt se fija una sola vez al crear.
type Client struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	Address   string
	CreatedAt time.Time
}
