package auth

import (
	"context"
	"time"

	"github.com/ronaldllamas12/carioca-Market/internal/application/dto"
	"github.com/ronaldllamas12/carioca-Market/internal/domain"
	"github.com/ronaldllamas12/carioca-Market/internal/domain/entity"
	"github.com/ronaldllamas12/carioca-Market/internal/domain/repository"
	"github.com/ronaldllamas12/carioca-Market/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login, guard de admin
// y alta de admins por el superadmin.
type AuthUseCase struct {
	userRepo        repository.UserRepository
	jwtCfg          JWTConfig
	superadminEmail string
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, superadminEmail string) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, superadminEmail: superadminEmail}
}

// Register crea un usuario común: hashea password con bcrypt y persiste con
// role=user. Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Nombre:       in.Nombre,
		Email:        in.Email,
		PasswordHash: string(hash),
		Telefono:     in.Telefono,
		Role:         entity.RoleUser,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password contra un usuario con role=admin, genera JWT
// y retorna token + usuario. Los usuarios comunes no tienen flujo de login.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetAdminByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID.Hex(), user.Email, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// IsAdmin es el guard de autorización: consulta la base por email + role=admin
// en cada request privilegiado, sin confiar en el rol del token.
func (uc *AuthUseCase) IsAdmin(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, nil
	}
	user, err := uc.userRepo.GetAdminByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user != nil, nil
}

// CreateAdmin crea un usuario con role=admin. Solo el superadmin configurado
// puede invocarlo; cualquier otro email recibe ErrUnauthorized.
func (uc *AuthUseCase) CreateAdmin(ctx context.Context, requesterEmail string, in dto.CreateAdminRequest) (*dto.UserResponse, error) {
	if uc.superadminEmail == "" || requesterEmail != uc.superadminEmail {
		return nil, domain.ErrUnauthorized
	}
	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Nombre:       in.Nombre,
		Email:        in.Email,
		PasswordHash: string(hash),
		Telefono:     in.Telefono,
		Role:         entity.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// ListUsers devuelve todos los usuarios registrados (solo para admins; sin password).
func (uc *AuthUseCase) ListUsers(ctx context.Context) ([]*dto.UserResponse, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID.Hex(),
		Nombre:    u.Nombre,
		Email:     u.Email,
		Telefono:  u.Telefono,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
