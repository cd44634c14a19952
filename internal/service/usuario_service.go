package service

import (
	"context"

	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/authz"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/dto"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/model"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/password"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/repository"
)

type UsuarioService interface {
	Crear(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error)
	Obtener(ctx context.Context, id uint) (*dto.UsuarioResponse, error)
	Listar(ctx context.Context, soloActivos bool, offset, limit int) ([]dto.UsuarioResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error)
	Desactivar(ctx context.Context, id uint) error
}

type usuarioService struct {
	repo repository.UsuarioRepository
}

func NewUsuarioService(repo repository.UsuarioRepository) UsuarioService {
	return &usuarioService{repo: repo}
}

func mapUsuario(u *model.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		ID:                 u.ID,
		Email:              u.Email,
		Nombre:             u.Nombre,
		Rol:                string(u.Rol),
		Activo:             u.Activo,
		FechaCreacion:      u.CreatedAt,
		FechaActualizacion: u.UpdatedAt,
	}
}

// Crear relies on the database unique index on email: concurrent creates
// with the same email race safely and the loser gets ErrDuplicado.
func (s *usuarioService) Crear(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}
	rol := authz.Rol(req.Rol)
	if req.Rol == "" {
		rol = authz.RolLectura
	}
	user := &model.Usuario{
		Email:        req.Email,
		Nombre:       req.Nombre,
		PasswordHash: hash,
		Rol:          rol,
		Activo:       true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	resp := mapUsuario(user)
	return &resp, nil
}

func (s *usuarioService) Obtener(ctx context.Context, id uint) (*dto.UsuarioResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapUsuario(user)
	return &resp, nil
}

func (s *usuarioService) Listar(ctx context.Context, soloActivos bool, offset, limit int) ([]dto.UsuarioResponse, error) {
	users, err := s.repo.List(ctx, soloActivos, offset, limit)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UsuarioResponse, len(users))
	for i := range users {
		resp[i] = mapUsuario(&users[i])
	}
	return resp, nil
}

func (s *usuarioService) Actualizar(ctx context.Context, id uint, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Nombre != nil {
		user.Nombre = *req.Nombre
	}
	if req.Rol != nil {
		user.Rol = authz.Rol(*req.Rol)
	}
	if req.Activo != nil {
		user.Activo = *req.Activo
	}
	if req.Password != nil {
		hash, err := password.Hash(*req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	resp := mapUsuario(user)
	return &resp, nil
}

func (s *usuarioService) Desactivar(ctx context.Context, id uint) error {
	ok, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return repository.ErrNoEncontrado
	}
	return nil
}
