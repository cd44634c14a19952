package service

import (
	"context"

	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/dto"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/password"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/repository"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/token"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	usuarios repository.UsuarioRepository
	tokens   *token.Service
}

func NewAuthService(usuarios repository.UsuarioRepository, tokens *token.Service) AuthService {
	return &authService{usuarios: usuarios, tokens: tokens}
}

// Login authenticates by email + password and issues an access token.
// Every failure path returns the same generic error: an attacker learns
// nothing about which of email / password / activo was wrong.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.usuarios.FindByEmail(ctx, req.Email)
	if err != nil || !user.Activo {
		return nil, ErrCredencialesInvalidas
	}
	if !password.Verify(req.Password, user.PasswordHash) {
		return nil, ErrCredencialesInvalidas
	}

	accessToken, err := s.tokens.Issue(user.ID, user.Email, user.Rol)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		ExpiresIn:   int(s.tokens.TTL().Seconds()),
		Usuario:     mapUsuario(user),
	}, nil
}
