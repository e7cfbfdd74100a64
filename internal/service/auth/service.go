package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/hrcore/leave-backend-go/internal/domain/auth"
	"github.com/hrcore/leave-backend-go/internal/domain/user"
	"github.com/hrcore/leave-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo   user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (s *AuthService) Register(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		return auth.AuthResponse{}, user.ErrEmailExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	role := user.RoleEmployee
	if req.Role != "" {
		role = user.Role(req.Role)
	}

	created, err := s.userRepo.Create(ctx, user.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashed),
		Role:         role,
		EmployeeID:   req.EmployeeID,
	})
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return s.authResponse(created)
}

func (s *AuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.AuthResponse, error) {
	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.AuthResponse{}, auth.ErrInvalidCredentials
		}
		return auth.AuthResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.AuthResponse{}, auth.ErrInvalidCredentials
	}

	return s.authResponse(u)
}

func (s *AuthService) authResponse(u user.User) (auth.AuthResponse, error) {
	token, expiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.Role, u.EmployeeID)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.AuthResponse{
		User: auth.UserResponse{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
			Role:  u.Role,
		},
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}
