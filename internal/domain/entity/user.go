package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin   = "admin"
	RoleCliente = "cliente"
)

// User representa una cuenta de la tienda.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin | cliente
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin indica si el usuario tiene capacidad de administración.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
