package dto

// LoginRequest formulario de POST /login.
type LoginRequest struct {
	Email    string `form:"email"`
	Password string `form:"senha"`
}

// UserIdentity identidad resuelta a partir de la sesión. Nunca incluye el hash.
type UserIdentity struct {
	ID    int64
	Name  string
	Email string
}

// LoginResult resultado de un login exitoso: identidad y token firmado para el cookie.
type LoginResult struct {
	User  UserIdentity
	Token string
}
