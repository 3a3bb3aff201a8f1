package auth

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mesharis-cell/platform-api/internal/application/dto"
	"github.com/mesharis-cell/platform-api/internal/domain"
	"github.com/mesharis-cell/platform-api/internal/domain/entity"
	"github.com/mesharis-cell/platform-api/internal/domain/repository"
	"github.com/mesharis-cell/platform-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login, acotados por
// plataforma (el email es único por tenant, no global).
type AuthUseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, companyRepo repository.CompanyRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, companyRepo: companyRepo, jwtCfg: jwtCfg}
}

// RegisterUser crea un usuario: hashea password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya existe en esa plataforma.
// Un CLIENT debe pertenecer a una empresa existente; el personal interno
// (ADMIN, STAFF, LOGISTICS) no lleva empresa.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.PlatformID == "" || in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: platform_id, email y password son obligatorios", domain.ErrInvalidInput)
	}
	role := in.Role
	if role == "" {
		role = entity.RoleClient
	}
	switch role {
	case entity.RoleAdmin, entity.RoleStaff, entity.RoleClient, entity.RoleLogistics:
	default:
		return nil, fmt.Errorf("%w: rol desconocido %q", domain.ErrInvalidInput, in.Role)
	}

	existing, _ := uc.userRepo.FindByEmail(in.Email, in.PlatformID)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	companyID := in.CompanyID
	if role == entity.RoleClient {
		if companyID == "" {
			return nil, fmt.Errorf("%w: un usuario CLIENT requiere company_id", domain.ErrInvalidInput)
		}
		company, err := uc.companyRepo.GetByID(companyID, in.PlatformID)
		if err != nil {
			return nil, err
		}
		if company == nil {
			return nil, fmt.Errorf("%w: empresa %s", domain.ErrNotFound, companyID)
		}
	} else {
		companyID = "" // personal interno: sin empresa
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		PlatformID:   in.PlatformID,
		CompanyID:    companyID,
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password dentro de la plataforma, genera JWT y retorna
// token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Email, in.PlatformID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.AuthContext{
		UserID:     user.ID,
		PlatformID: user.PlatformID,
		CompanyID:  user.CompanyID,
		Role:       user.Role,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:         u.ID,
		PlatformID: u.PlatformID,
		CompanyID:  u.CompanyID,
		Email:      u.Email,
		Name:       u.Name,
		Role:       u.Role,
		Status:     u.Status,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
