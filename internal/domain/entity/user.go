package entity

// User representa un usuario del sistema. Se provisiona fuera del flujo web (CLI `usuario criar`).
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string // bcrypt o hash werkzeug heredado; nunca la contraseña plana
}
