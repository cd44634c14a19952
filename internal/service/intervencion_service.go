package service

import (
	"context"
	"errors"
	"time"

	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/dto"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/model"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/repository"
)

type IntervencionService interface {
	// Crear registers a new intervencion authored by autorID (taken from the
	// token subject, never from the request body).
	Crear(ctx context.Context, req dto.CrearIntervencionRequest, autorID uint) (*dto.IntervencionResponse, error)
	Obtener(ctx context.Context, id uint) (*dto.IntervencionDetalleResponse, error)
	Listar(ctx context.Context, f repository.IntervencionFiltro) ([]dto.IntervencionResponse, error)
	ListarPorUsuario(ctx context.Context, usuarioID uint, offset, limit int) ([]dto.IntervencionResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarIntervencionRequest) (*dto.IntervencionResponse, error)
	Completar(ctx context.Context, id uint, req dto.CompletarIntervencionRequest) (*dto.IntervencionResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type intervencionService struct {
	repo     repository.IntervencionRepository
	equipos  repository.EquipoRepository
	tipos    repository.TipoIntervencionRepository
	usuarios repository.UsuarioRepository
}

func NewIntervencionService(
	repo repository.IntervencionRepository,
	equipos repository.EquipoRepository,
	tipos repository.TipoIntervencionRepository,
	usuarios repository.UsuarioRepository,
) IntervencionService {
	return &intervencionService{repo: repo, equipos: equipos, tipos: tipos, usuarios: usuarios}
}

func mapIntervencion(i *model.Intervencion) dto.IntervencionResponse {
	return dto.IntervencionResponse{
		ID:                 i.ID,
		EquipoID:           i.EquipoID,
		UsuarioID:          i.UsuarioID,
		TipoID:             i.TipoID,
		Descripcion:        i.Descripcion,
		Observaciones:      i.Observaciones,
		TiempoDuracion:     i.TiempoDuracion,
		FechaInicio:        i.FechaInicio,
		FechaFin:           i.FechaFin,
		Completada:         i.Completada,
		FechaCreacion:      i.CreatedAt,
		FechaActualizacion: i.UpdatedAt,
	}
}

func (s *intervencionService) Crear(ctx context.Context, req dto.CrearIntervencionRequest, autorID uint) (*dto.IntervencionResponse, error) {
	// Pre-checks give the caller a precise failure; the database foreign keys
	// still back them against races.
	if _, err := s.equipos.FindByID(ctx, req.EquipoID); err != nil {
		if errors.Is(err, repository.ErrNoEncontrado) {
			return nil, repository.ErrReferenciaNoExiste
		}
		return nil, err
	}
	if _, err := s.tipos.FindByID(ctx, req.TipoID); err != nil {
		if errors.Is(err, repository.ErrNoEncontrado) {
			return nil, repository.ErrReferenciaNoExiste
		}
		return nil, err
	}

	i := &model.Intervencion{
		EquipoID:       req.EquipoID,
		UsuarioID:      autorID,
		TipoID:         req.TipoID,
		Descripcion:    req.Descripcion,
		Observaciones:  req.Observaciones,
		TiempoDuracion: req.TiempoDuracion,
		FechaInicio:    time.Now(),
	}
	if err := s.repo.Create(ctx, i); err != nil {
		return nil, err
	}
	resp := mapIntervencion(i)
	return &resp, nil
}

func (s *intervencionService) Obtener(ctx context.Context, id uint) (*dto.IntervencionDetalleResponse, error) {
	i, err := s.repo.FindByIDConRelaciones(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := &dto.IntervencionDetalleResponse{IntervencionResponse: mapIntervencion(i)}
	if i.Equipo != nil {
		e := mapEquipo(i.Equipo)
		resp.Equipo = &e
	}
	if i.Usuario != nil {
		u := mapUsuario(i.Usuario)
		resp.Usuario = &u
	}
	if i.Tipo != nil {
		t := mapTipo(i.Tipo)
		resp.Tipo = &t
	}
	return resp, nil
}

func (s *intervencionService) Listar(ctx context.Context, f repository.IntervencionFiltro) ([]dto.IntervencionResponse, error) {
	list, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.IntervencionResponse, len(list))
	for i := range list {
		resp[i] = mapIntervencion(&list[i])
	}
	return resp, nil
}

func (s *intervencionService) ListarPorUsuario(ctx context.Context, usuarioID uint, offset, limit int) ([]dto.IntervencionResponse, error) {
	if _, err := s.usuarios.FindByID(ctx, usuarioID); err != nil {
		return nil, err
	}
	return s.Listar(ctx, repository.IntervencionFiltro{
		UsuarioID: &usuarioID,
		Offset:    offset,
		Limit:     limit,
	})
}

func (s *intervencionService) Actualizar(ctx context.Context, id uint, req dto.ActualizarIntervencionRequest) (*dto.IntervencionResponse, error) {
	i, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Descripcion != nil {
		i.Descripcion = *req.Descripcion
	}
	if req.Observaciones != nil {
		i.Observaciones = req.Observaciones
	}
	if req.TiempoDuracion != nil {
		i.TiempoDuracion = req.TiempoDuracion
	}
	if err := s.repo.Update(ctx, i); err != nil {
		return nil, err
	}
	resp := mapIntervencion(i)
	return &resp, nil
}

// Completar is the only state transition in the system: it sets
// completada=true and stamps fecha_fin. Re-completing an already completed
// intervencion succeeds, keeps previously stored observaciones/duración
// unless new values arrive, and refreshes the update timestamp.
func (s *intervencionService) Completar(ctx context.Context, id uint, req dto.CompletarIntervencionRequest) (*dto.IntervencionResponse, error) {
	i, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	i.Completada = true
	i.FechaFin = &now
	if req.Observaciones != nil {
		i.Observaciones = req.Observaciones
	}
	if req.TiempoDuracion != nil {
		i.TiempoDuracion = req.TiempoDuracion
	}
	if err := s.repo.Update(ctx, i); err != nil {
		return nil, err
	}
	resp := mapIntervencion(i)
	return &resp, nil
}

func (s *intervencionService) Eliminar(ctx context.Context, id uint) error {
	ok, err := s.repo.HardDelete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return repository.ErrNoEncontrado
	}
	return nil
}
