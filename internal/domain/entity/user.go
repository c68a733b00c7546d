package entity

import "time"

// User representa un usuario con acceso a la API.
type User struct {
	ID           int64
	Username     string // único
	PasswordHash string // bcrypt hash, nunca plano
	CreatedAt    time.Time
}
