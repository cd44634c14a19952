package service

import (
	"context"

	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/dto"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/model"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/repository"
)

type TipoIntervencionService interface {
	Crear(ctx context.Context, req dto.CrearTipoIntervencionRequest) (*dto.TipoIntervencionResponse, error)
	Obtener(ctx context.Context, id uint) (*dto.TipoIntervencionResponse, error)
	Listar(ctx context.Context, offset, limit int) ([]dto.TipoIntervencionResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarTipoIntervencionRequest) (*dto.TipoIntervencionResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type tipoIntervencionService struct {
	repo           repository.TipoIntervencionRepository
	intervenciones repository.IntervencionRepository
}

func NewTipoIntervencionService(repo repository.TipoIntervencionRepository, intervenciones repository.IntervencionRepository) TipoIntervencionService {
	return &tipoIntervencionService{repo: repo, intervenciones: intervenciones}
}

func mapTipo(t *model.TipoIntervencion) dto.TipoIntervencionResponse {
	return dto.TipoIntervencionResponse{
		ID:            t.ID,
		Nombre:        t.Nombre,
		Descripcion:   t.Descripcion,
		FechaCreacion: t.CreatedAt,
	}
}

func (s *tipoIntervencionService) Crear(ctx context.Context, req dto.CrearTipoIntervencionRequest) (*dto.TipoIntervencionResponse, error) {
	t := &model.TipoIntervencion{Nombre: req.Nombre, Descripcion: req.Descripcion}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	resp := mapTipo(t)
	return &resp, nil
}

func (s *tipoIntervencionService) Obtener(ctx context.Context, id uint) (*dto.TipoIntervencionResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapTipo(t)
	return &resp, nil
}

func (s *tipoIntervencionService) Listar(ctx context.Context, offset, limit int) ([]dto.TipoIntervencionResponse, error) {
	tipos, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.TipoIntervencionResponse, len(tipos))
	for i := range tipos {
		resp[i] = mapTipo(&tipos[i])
	}
	return resp, nil
}

func (s *tipoIntervencionService) Actualizar(ctx context.Context, id uint, req dto.ActualizarTipoIntervencionRequest) (*dto.TipoIntervencionResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Nombre != nil {
		t.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		t.Descripcion = req.Descripcion
	}
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	resp := mapTipo(t)
	return &resp, nil
}

// Eliminar hard-deletes a tipo, but only while nothing references it.
// Hard-deleting reference data with live intervenciones would break
// referential integrity, so the delete is restricted instead.
func (s *tipoIntervencionService) Eliminar(ctx context.Context, id uint) error {
	n, err := s.intervenciones.CountByTipo(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrTipoEnUso
	}
	ok, err := s.repo.HardDelete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return repository.ErrNoEncontrado
	}
	return nil
}
