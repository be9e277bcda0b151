package auth

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/sistema-estoque/internal/application/dto"
	"github.com/jhoicas/sistema-estoque/internal/domain"
	"github.com/jhoicas/sistema-estoque/internal/domain/entity"
	"github.com/jhoicas/sistema-estoque/internal/domain/repository"
	"github.com/jhoicas/sistema-estoque/pkg/jwt"
	"github.com/jhoicas/sistema-estoque/pkg/password"
)

// SessionConfig configuración para la firma del token de sesión.
type SessionConfig struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

// AuthUseCase casos de uso de autenticación: login, resolución de sesión, logout y alta de usuarios.
type AuthUseCase struct {
	userRepo repository.UserRepository
	sessions repository.SessionStore
	cfg      SessionConfig
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, sessions repository.SessionStore, cfg SessionConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, sessions: sessions, cfg: cfg, now: time.Now}
}

// Authenticate verifica email/senha, crea la sesión y devuelve identidad + token firmado.
// Usuario inexistente y senha incorrecta devuelven el mismo ErrInvalidCredentials.
func (uc *AuthUseCase) Authenticate(ctx context.Context, email, plain string) (*dto.LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || plain == "" {
		return nil, domain.ErrInvalidCredentials
	}
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		password.DummyCompare(plain)
		return nil, domain.ErrInvalidCredentials
	}
	if !password.Verify(user.PasswordHash, plain) {
		return nil, domain.ErrInvalidCredentials
	}

	now := uc.now()
	session := &entity.Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(uc.cfg.TTL),
	}
	if err := uc.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.cfg.Secret, session.ID, user.ID, uc.cfg.Issuer, uc.cfg.TTL)
	if err != nil {
		_ = uc.sessions.Delete(ctx, session.ID)
		return nil, err
	}
	return &dto.LoginResult{User: toIdentity(user), Token: token}, nil
}

// LoadSessionUser resuelve la identidad del token del cookie. Token inválido, sesión ausente o
// usuario borrado devuelven (nil, nil): el request sigue como anónimo.
func (uc *AuthUseCase) LoadSessionUser(ctx context.Context, token string) (*dto.UserIdentity, error) {
	if token == "" {
		return nil, nil
	}
	sessionID, userID, err := jwt.Parse(uc.cfg.Secret, token)
	if err != nil {
		return nil, nil
	}
	session, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || session.UserID != userID || session.Expired(uc.now()) {
		return nil, nil
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	identity := toIdentity(user)
	return &identity, nil
}

// RequireAuthenticated devuelve ErrUnauthorized si no hay identidad.
func (uc *AuthUseCase) RequireAuthenticated(identity *dto.UserIdentity) error {
	if identity == nil || identity.ID <= 0 {
		return domain.ErrUnauthorized
	}
	return nil
}

// Logout elimina la sesión del token. Un token inválido no es error.
func (uc *AuthUseCase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	sessionID, _, err := jwt.Parse(uc.cfg.Secret, token)
	if err != nil {
		return nil
	}
	return uc.sessions.Delete(ctx, sessionID)
}

// ProvisionUser crea un usuario con la senha hasheada (bcrypt). ErrDuplicate si el email ya existe.
func (uc *AuthUseCase) ProvisionUser(ctx context.Context, name, email, plain string) (int64, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return 0, domain.NewValidationError("nome", "é obrigatório")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return 0, domain.NewValidationError("email", "endereço inválido")
	}
	if len(plain) < 6 {
		return 0, domain.NewValidationError("senha", "deve ter pelo menos 6 caracteres")
	}
	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, domain.ErrDuplicate
	}
	hash, err := password.Hash(plain)
	if err != nil {
		return 0, err
	}
	user := &entity.User{Name: name, Email: email, PasswordHash: hash}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return 0, err
	}
	return user.ID, nil
}

func toIdentity(u *entity.User) dto.UserIdentity {
	return dto.UserIdentity{ID: u.ID, Name: u.Name, Email: u.Email}
}
