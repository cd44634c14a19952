package service

import (
	"context"

	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/dto"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/repository"
)

type EstadisticasService interface {
	Obtener(ctx context.Context) (*dto.EstadisticasResponse, error)
}

type estadisticasService struct {
	equipos        repository.EquipoRepository
	intervenciones repository.IntervencionRepository
}

func NewEstadisticasService(equipos repository.EquipoRepository, intervenciones repository.IntervencionRepository) EstadisticasService {
	return &estadisticasService{equipos: equipos, intervenciones: intervenciones}
}

func (s *estadisticasService) Obtener(ctx context.Context) (*dto.EstadisticasResponse, error) {
	totalEquipos, err := s.equipos.CountActivos(ctx)
	if err != nil {
		return nil, err
	}
	total, err := s.intervenciones.Count(ctx, nil)
	if err != nil {
		return nil, err
	}
	completada := true
	completadas, err := s.intervenciones.Count(ctx, &completada)
	if err != nil {
		return nil, err
	}
	pendiente := false
	pendientes, err := s.intervenciones.Count(ctx, &pendiente)
	if err != nil {
		return nil, err
	}
	return &dto.EstadisticasResponse{
		TotalEquipos:              totalEquipos,
		TotalIntervenciones:       total,
		IntervencionesCompletadas: completadas,
		IntervencionesPendientes:  pendientes,
	}, nil
}
