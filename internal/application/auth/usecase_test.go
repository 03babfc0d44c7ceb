package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/estoque-pro/estoque-api/internal/application/auth"
	"github.com/estoque-pro/estoque-api/internal/application/dto"
	"github.com/estoque-pro/estoque-api/internal/domain"
	"github.com/estoque-pro/estoque-api/internal/domain/entity"
	"github.com/estoque-pro/estoque-api/internal/infrastructure/memory"
	pkgjwt "github.com/estoque-pro/estoque-api/pkg/jwt"
)

const (
	testSecret   = "auth-test-secret"
	testIssuer   = "estoque-api-test"
	testPassword = "senha-forte-123"
)

// fakeUserRepo guarda usuários por email.
type fakeUserRepo struct {
	byEmail map[string]entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.byEmail[u.Email] = *u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	if u, ok := r.byEmail[email]; ok {
		out := u
		return &out, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	r.byEmail[u.Email] = *u
	return nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) Delete(id string) error                         { return nil }

func newAuthFixture(t *testing.T) (*auth.UseCase, *memory.Blacklist) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUserRepo{byEmail: map[string]entity.User{
		"maria@estoque.com.br": {
			ID:           "user-1",
			Name:         "Maria Silva",
			Email:        "maria@estoque.com.br",
			PasswordHash: string(hash),
			Role:         entity.RoleAdmin,
		},
	}}
	blacklist := memory.NewBlacklist()
	t.Cleanup(func() { _ = blacklist.Close() })

	return auth.NewUseCase(repo, blacklist, testSecret, testIssuer, 60), blacklist
}

func TestLogin_CredenciaisValidasEmitemToken(t *testing.T) {
	uc, _ := newAuthFixture(t)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "maria@estoque.com.br",
		Password: testPassword,
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "user-1", out.User.ID)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)

	claims, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

func TestLogin_SenhaErrada(t *testing.T) {
	uc, _ := newAuthFixture(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "maria@estoque.com.br",
		Password: "senha-errada",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistenteMesmoErro(t *testing.T) {
	uc, _ := newAuthFixture(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "ninguem@estoque.com.br",
		Password: testPassword,
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"usuário inexistente e senha errada devem produzir o mesmo erro")
}

func TestLogout_RevogaTokenPeloTempoRestante(t *testing.T) {
	uc, blacklist := newAuthFixture(t)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "maria@estoque.com.br",
		Password: testPassword,
	})
	require.NoError(t, err)

	revoked, err := uc.IsRevoked(context.Background(), out.Token)
	require.NoError(t, err)
	assert.False(t, revoked, "token recém emitido não pode estar revogado")

	require.NoError(t, uc.Logout(context.Background(), out.Token))

	revoked, err = blacklist.IsBlacklisted(context.Background(), out.Token)
	require.NoError(t, err)
	assert.True(t, revoked, "após o logout o token deve constar na blacklist")
}

func TestLogout_TokenExpiradoNaoPrecisaRevogar(t *testing.T) {
	uc, blacklist := newAuthFixture(t)

	tok, err := pkgjwt.Generate(testSecret, "user-1", entity.RoleAdmin, testIssuer, -1)
	require.NoError(t, err)

	// Parse falha em token expirado, então o logout responde ErrUnauthorized
	err = uc.Logout(context.Background(), tok)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	revoked, err := blacklist.IsBlacklisted(context.Background(), tok)
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestLogout_TokenIlegivel(t *testing.T) {
	uc, _ := newAuthFixture(t)

	err := uc.Logout(context.Background(), "nem.um.jwt")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestBlacklist_EntradaExpiraSozinha(t *testing.T) {
	blacklist := memory.NewBlacklist()
	defer blacklist.Close()

	require.NoError(t, blacklist.Add(context.Background(), "token-curto", 10*time.Millisecond))

	revoked, err := blacklist.IsBlacklisted(context.Background(), "token-curto")
	require.NoError(t, err)
	assert.True(t, revoked)

	time.Sleep(20 * time.Millisecond)

	revoked, err = blacklist.IsBlacklisted(context.Background(), "token-curto")
	require.NoError(t, err)
	assert.False(t, revoked, "entrada vencida não pode ser reportada como revogada")
}
