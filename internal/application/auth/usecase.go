package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/usecase"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"github.com/jhoicas/estoque-api/pkg/jwt"
	"github.com/jhoicas/estoque-api/pkg/password"
)

// TokenType se devuelve junto al access token (OAuth2 password flow).
const TokenType = "bearer"

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login, primer acceso y usuario actual.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password y emite un JWT. Usuario inexistente y contraseña
// incorrecta devuelven el mismo ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, strings.TrimSpace(in.Login))
	if err != nil {
		return nil, err
	}
	if user == nil || user.IsDeleted {
		return nil, domain.ErrUnauthorized
	}
	if err := password.Verify(user.PasswordHash, in.Password); err != nil {
		if errors.Is(err, password.ErrMismatch) || errors.Is(err, password.ErrUnknownFormat) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	// hashes pbkdf2 heredados se migran a bcrypt en el primer login correcto
	if password.NeedsRehash(user.PasswordHash) {
		if hash, err := password.Hash(in.Password); err == nil {
			user.PasswordHash = hash
			_ = uc.userRepo.Update(ctx, user)
		}
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.IsAdmin, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{AccessToken: token, TokenType: TokenType}, nil
}

// FirstAccess crea el primer administrador. Si ya existe uno activo devuelve ErrAdminAlreadyExists.
func (uc *AuthUseCase) FirstAccess(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	exists, err := uc.userRepo.ExistsActiveAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAdminAlreadyExists
	}
	in.IsAdmin = true
	return usecase.NewUserUseCase(uc.userRepo).Create(ctx, in)
}

// CurrentUser carga el usuario del token; ErrUnauthorized si fue borrado.
func (uc *AuthUseCase) CurrentUser(ctx context.Context, userID int64) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.IsDeleted {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}
