package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/akashtandel42/Salesmanagement/internal/application/dto"
	"github.com/akashtandel42/Salesmanagement/internal/domain"
	"github.com/akashtandel42/Salesmanagement/internal/domain/entity"
	"github.com/akashtandel42/Salesmanagement/internal/domain/repository"
	"github.com/akashtandel42/Salesmanagement/pkg/jwt"
)

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	tokenCfg jwt.TokenConfig
	cost     int
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, tokenCfg jwt.TokenConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, tokenCfg: tokenCfg, cost: bcrypt.DefaultCost}
}

// WithBcryptCost ajusta el costo de bcrypt (los tests usan bcrypt.MinCost).
func (uc *AuthUseCase) WithBcryptCost(cost int) *AuthUseCase {
	uc.cost = cost
	return uc
}

// Register crea un usuario: hashea password con bcrypt y persiste.
// Devuelve ErrUserAlreadyExists si el username ya existe.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.cost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		// Carrera entre dos registros con el mismo username: el índice único decide.
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrUserAlreadyExists
		}
		return nil, err
	}
	return &dto.UserResponse{ID: user.ID, Username: user.Username, CreatedAt: user.CreatedAt}, nil
}

// Login verifica username/password y genera el JWT.
// Usuario inexistente y password incorrecta devuelven el mismo ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(ctx, strings.TrimSpace(in.Username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, expiresAt, err := jwt.Generate(uc.tokenCfg, user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}
