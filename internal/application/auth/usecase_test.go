package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/ronaldllamas12/carioca-Market/internal/application/auth"
	"github.com/ronaldllamas12/carioca-Market/internal/application/dto"
	"github.com/ronaldllamas12/carioca-Market/internal/domain"
	"github.com/ronaldllamas12/carioca-Market/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del puerto UserRepository
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if _, ok := r.byEmail[user.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	user.ID = primitive.NewObjectID()
	r.byEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

func (r *fakeUserRepo) GetAdminByEmail(_ context.Context, email string) (*entity.User, error) {
	u := r.byEmail[email]
	if u == nil || u.Role != entity.RoleAdmin {
		return nil, nil
	}
	return u, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.byEmail))
	for _, u := range r.byEmail {
		out = append(out, u)
	}
	return out, nil
}

const (
	testSuperadmin = "superadmin@marketiguazu.com"
	testJWT        = "test-secret"
)

func newUseCase(repo *fakeUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testJWT,
		ExpMinutes: 60,
		Issuer:     "market-iguazu-test",
	}, testSuperadmin)
}

func seedAdmin(t *testing.T, repo *fakeUserRepo, email, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), &entity.User{
		Nombre:       "Admin de prueba",
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
	}))
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaUsuarioConRolUser(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Nombre:   "Ana",
		Email:    "ana@example.com",
		Password: "secreto1",
		Telefono: "3757000000",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, out.Role, "el registro público siempre crea role=user")

	stored := repo.byEmail["ana@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto1", stored.PasswordHash, "la password nunca se guarda en texto plano")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto1")))
}

func TestRegister_EmailDuplicadoFalla(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)

	in := dto.RegisterRequest{Nombre: "Ana", Email: "ana@example.com", Password: "secreto1", Telefono: "3757000000"}
	_, err := uc.Register(context.Background(), in)
	require.NoError(t, err, "el primer registro debe funcionar")

	_, err = uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists, "el segundo registro con el mismo email debe fallar")
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_AdminConPasswordCorrecta(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)
	seedAdmin(t, repo, "admin@example.com", "clave-admin")

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "admin@example.com", Password: "clave-admin"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)
}

func TestLogin_UsuarioComunNoTieneLogin(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)

	// Un usuario con role=user existe pero el login busca email + role=admin
	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Nombre: "Ana", Email: "ana@example.com", Password: "secreto1", Telefono: "3757000000",
	})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "ana@example.com", Password: "secreto1"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)
	seedAdmin(t, repo, "admin@example.com", "clave-admin")

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "admin@example.com", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

// ──────────────────────────────────────────────────────────────────────────────
// IsAdmin (guard)
// ──────────────────────────────────────────────────────────────────────────────

func TestIsAdmin_ReconsultaLaBase(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)
	seedAdmin(t, repo, "admin@example.com", "clave")

	ok, err := uc.IsAdmin(context.Background(), "admin@example.com")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = uc.IsAdmin(context.Background(), "nadie@example.com")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = uc.IsAdmin(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, ok, "sin email de sesión nunca es admin")
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateAdmin (superadmin)
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateAdmin_SoloSuperadmin(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)

	in := dto.CreateAdminRequest{Nombre: "Nuevo", Email: "nuevo@example.com", Password: "secreto1", Telefono: "123"}

	_, err := uc.CreateAdmin(context.Background(), "cualquiera@example.com", in)
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "un email distinto al superadmin no puede crear admins")

	out, err := uc.CreateAdmin(context.Background(), testSuperadmin, in)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Role)

	stored := repo.byEmail["nuevo@example.com"]
	require.NotNil(t, stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto1")),
		"la password del admin también se guarda hasheada")
}

func TestCreateAdmin_EmailDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)
	seedAdmin(t, repo, "nuevo@example.com", "clave")

	_, err := uc.CreateAdmin(context.Background(), testSuperadmin, dto.CreateAdminRequest{
		Nombre: "Nuevo", Email: "nuevo@example.com", Password: "secreto1", Telefono: "123",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestCreateAdmin_SinSuperadminConfigurado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: testJWT, ExpMinutes: 60, Issuer: "test"}, "")

	_, err := uc.CreateAdmin(context.Background(), "", dto.CreateAdminRequest{
		Nombre: "Nuevo", Email: "nuevo@example.com", Password: "secreto1", Telefono: "123",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"sin SUPERADMIN_EMAIL configurado nadie puede crear admins")
}
