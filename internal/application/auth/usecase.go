package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ecopack/ecopack-api/internal/application/dto"
	"github.com/ecopack/ecopack-api/internal/domain"
	"github.com/ecopack/ecopack-api/internal/domain/entity"
	"github.com/ecopack/ecopack-api/internal/domain/repository"
	"github.com/ecopack/ecopack-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	txRunner    AuthTxRunner
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	txRunner AuthTxRunner,
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{txRunner: txRunner, userRepo: userRepo, profileRepo: profileRepo, jwtCfg: jwtCfg}
}

// Register crea el usuario y su Profile con rol staff en la misma transacción,
// hasheando la contraseña con bcrypt. Devuelve token + usuario: la sesión queda
// iniciada inmediatamente después del alta.
// Retorna ErrUsernameTaken si el username ya existe.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		IsSuperuser:  false,
		CreatedAt:    now,
	}
	profile := &entity.Profile{
		UserID:    user.ID,
		Role:      entity.RoleStaff,
		CreatedAt: now,
	}

	// Invariante: todo usuario tiene exactamente un Profile; ambas inserciones
	// comparten transacción, así que no puede quedar un usuario sin rol.
	err = uc.txRunner.RunAuth(ctx, func(
		userRepo repository.UserRepository,
		profileRepo repository.ProfileRepository,
	) error {
		if err := userRepo.Create(user); err != nil {
			return err
		}
		return profileRepo.Create(profile)
	})
	if err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, profile.Role, user.IsSuperuser, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user, profile.Role)}, nil
}

// Login verifica username/password, genera JWT con rol y flag de superusuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	profile, err := uc.profileRepo.GetByUserID(user.ID)
	if err != nil {
		return nil, err
	}
	role := entity.RoleStaff
	if profile != nil {
		role = profile.Role
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, role, user.IsSuperuser, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user, role)}, nil
}

func toUserResponse(u *entity.User, role string) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		Role:        role,
		IsSuperuser: u.IsSuperuser,
		CreatedAt:   u.CreatedAt,
	}
}
