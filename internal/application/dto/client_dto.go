package dto

import "time"

// CreateClientRequest cuerpo de POST /api/clients. Email y Address son opcionales.
type CreateClientRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// UpdateClientRequest cuerpo de PUT /api/clients/:id.
type UpdateClientRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// ClientResponse representación HTTP de un Client.
type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
