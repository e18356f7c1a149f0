package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/vitalseg/corretora-api/internal/application/dto"
	"github.com/vitalseg/corretora-api/internal/domain"
	"github.com/vitalseg/corretora-api/internal/domain/entity"
	"github.com/vitalseg/corretora-api/internal/domain/repository"
	"github.com/vitalseg/corretora-api/pkg/jwt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticação: registro e login.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	empresaRepo repository.EmpresaRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, empresaRepo repository.EmpresaRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, empresaRepo: empresaRepo, jwtCfg: jwtCfg}
}

// RegisterUser cria um usuário: hasheia o password com bcrypt e persiste.
// Usuários rh precisam apontar uma empresa existente; usuários corretor
// precisam de corretor_id. Devolve ErrEmailAlreadyExists se o email já existe.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	switch in.Role {
	case entity.RoleCorretor:
		if in.CorretorID == "" {
			return nil, domain.ErrInvalidInput
		}
	case entity.RoleRH:
		if in.EmpresaID == "" {
			return nil, domain.ErrInvalidInput
		}
		empresa, err := uc.empresaRepo.GetByID(ctx, in.EmpresaID)
		if err != nil {
			return nil, err
		}
		if empresa == nil {
			return nil, domain.ErrNotFound
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.userRepo.FindByEmail(ctx, in.Email)
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
	now := time.Now()
	nome := in.Nome
	if nome == "" {
		nome = in.Email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Nome:         nome,
		Role:         in.Role,
		CorretorID:   in.CorretorID,
		EmpresaID:    in.EmpresaID,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password, gera o JWT e retorna token + usuário.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(ctx, in.Email)
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
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.CorretorID, user.EmpresaID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
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
		Email:      u.Email,
		Nome:       u.Nome,
		Role:       u.Role,
		CorretorID: u.CorretorID,
		EmpresaID:  u.EmpresaID,
		Status:     u.Status,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
