package entity

import "time"

// User representa un operador del sistema. IsAdmin habilita la gestión de usuarios.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string // bcrypt o pbkdf2-sha256 heredado, nunca plano después de persistir
	IsAdmin      bool
	IsDeleted    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName devuelve nombre y apellido separados por un espacio.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
