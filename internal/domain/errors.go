package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrUserNotFound  = errors.New("usuario no encontrado")
	ErrUsernameTaken = errors.New("el nombre de usuario ya está registrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrDuplicate     = errors.New("recurso duplicado")
	ErrUnauthorized  = errors.New("no autorizado")
	ErrForbidden     = errors.New("acceso denegado")
	ErrConflict      = errors.New("conflicto con el estado actual")
)

// InsufficientStockError indica que un pedido excede el stock disponible del bag.
// Available lleva la cantidad exacta de fardos en stock al momento de la validación,
// para que la capa HTTP pueda reportarla al usuario.
type InsufficientStockError struct {
	BagID     string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: solo hay %d fardos de este bag en stock", e.Available)
}

// IsInsufficientStock devuelve el error tipado si err (o su cadena) es un InsufficientStockError.
func IsInsufficientStock(err error) (*InsufficientStockError, bool) {
	var ise *InsufficientStockError
	if errors.As(err, &ise) {
		return ise, true
	}
	return nil, false
}
