package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sistema-estoque/internal/application/auth"
	"github.com/jhoicas/sistema-estoque/internal/domain"
	"github.com/jhoicas/sistema-estoque/internal/infrastructure/memory"
	"github.com/jhoicas/sistema-estoque/internal/testutil"
	"github.com/jhoicas/sistema-estoque/pkg/jwt"
	"github.com/jhoicas/sistema-estoque/pkg/password"
)

const testSecret = "segredo-de-teste"

func newAuth(t *testing.T) (*auth.AuthUseCase, *testutil.Store, *memory.SessionStore) {
	t.Helper()
	store := testutil.NewStore()
	hash, err := password.Hash("senha-correta")
	require.NoError(t, err)
	store.AddUser("Ana", "ana@example.com", hash)

	sessions := memory.NewSessionStore()
	uc := auth.NewAuthUseCase(store.UserRepository(), sessions, auth.SessionConfig{
		Secret: testSecret,
		TTL:    time.Hour,
		Issuer: "test",
	})
	return uc, store, sessions
}

func TestAuthenticate_Exitoso(t *testing.T) {
	uc, _, sessions := newAuth(t)
	ctx := context.Background()

	res, err := uc.Authenticate(ctx, " ana@example.com ", "senha-correta")
	require.NoError(t, err)
	assert.Equal(t, "Ana", res.User.Name)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, 1, sessions.Len())

	identity, err := uc.LoadSessionUser(ctx, res.Token)
	require.NoError(t, err)
	require.NotNil(t, identity)
	assert.Equal(t, res.User, *identity)
	assert.NoError(t, uc.RequireAuthenticated(identity))
}

func TestAuthenticate_SenhaIncorrectaNoCreaSesion(t *testing.T) {
	uc, _, sessions := newAuth(t)

	res, err := uc.Authenticate(context.Background(), "ana@example.com", "errada")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Equal(t, 0, sessions.Len())
}

func TestAuthenticate_EmailDesconocidoMismoError(t *testing.T) {
	uc, _, sessions := newAuth(t)

	_, err := uc.Authenticate(context.Background(), "ninguem@example.com", "senha-correta")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Authenticate(context.Background(), "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Equal(t, 0, sessions.Len())
}

func TestAuthenticate_HashWerkzeugHeredado(t *testing.T) {
	store := testutil.NewStore()
	store.AddUser("Legado", "legado@example.com",
		"pbkdf2:sha256:1000$abc123saltXYZ$e801ce271f381f17721700050c7821cb4147f847bca423395641ee0e2fccd78d")
	uc := auth.NewAuthUseCase(store.UserRepository(), memory.NewSessionStore(), auth.SessionConfig{Secret: testSecret, TTL: time.Hour})

	res, err := uc.Authenticate(context.Background(), "legado@example.com", "segredo123")
	require.NoError(t, err)
	assert.Equal(t, "Legado", res.User.Name)
}

func TestLoadSessionUser_Anonimo(t *testing.T) {
	uc, _, _ := newAuth(t)
	ctx := context.Background()

	identity, err := uc.LoadSessionUser(ctx, "")
	require.NoError(t, err)
	assert.Nil(t, identity)

	identity, err = uc.LoadSessionUser(ctx, "lixo")
	require.NoError(t, err)
	assert.Nil(t, identity)

	// token bem assinado mas sem sessão no servidor
	token, err := jwt.Generate(testSecret, "sessao-inexistente", 1, "test", time.Hour)
	require.NoError(t, err)
	identity, err = uc.LoadSessionUser(ctx, token)
	require.NoError(t, err)
	assert.Nil(t, identity)

	assert.ErrorIs(t, uc.RequireAuthenticated(nil), domain.ErrUnauthorized)
}

func TestLogout_InvalidaLaSesion(t *testing.T) {
	uc, _, sessions := newAuth(t)
	ctx := context.Background()

	res, err := uc.Authenticate(ctx, "ana@example.com", "senha-correta")
	require.NoError(t, err)

	require.NoError(t, uc.Logout(ctx, res.Token))
	assert.Equal(t, 0, sessions.Len())

	identity, err := uc.LoadSessionUser(ctx, res.Token)
	require.NoError(t, err)
	assert.Nil(t, identity)

	assert.NoError(t, uc.Logout(ctx, "token-invalido"))
	assert.NoError(t, uc.Logout(ctx, ""))
}

func TestProvisionUser_CreaUsuario(t *testing.T) {
	uc, _, _ := newAuth(t)
	ctx := context.Background()

	id, err := uc.ProvisionUser(ctx, "Bruno", "bruno@example.com", "123456")
	require.NoError(t, err)
	assert.Positive(t, id)

	res, err := uc.Authenticate(ctx, "bruno@example.com", "123456")
	require.NoError(t, err)
	assert.Equal(t, id, res.User.ID)

	_, err = uc.ProvisionUser(ctx, "Outro", "bruno@example.com", "abcdef")
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	var ve *domain.ValidationError
	_, err = uc.ProvisionUser(ctx, "", "x@example.com", "abcdef")
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "nome", ve.Field)

	_, err = uc.ProvisionUser(ctx, "X", "sem-arroba", "abcdef")
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "email", ve.Field)

	_, err = uc.ProvisionUser(ctx, "X", "x@example.com", "123")
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "senha", ve.Field)
}
