package service

import (
	"context"

	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/dto"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/model"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/qr"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/repository"
)

type EquipoService interface {
	Crear(ctx context.Context, req dto.CrearEquipoRequest) (*dto.EquipoResponse, error)
	Obtener(ctx context.Context, id uint) (*dto.EquipoResponse, error)
	ObtenerPorCodigoQR(ctx context.Context, codigo string) (*dto.EquipoResponse, error)
	Listar(ctx context.Context, f repository.EquipoFiltro) ([]dto.EquipoResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarEquipoRequest) (*dto.EquipoResponse, error)
	Desactivar(ctx context.Context, id uint) error
	Historial(ctx context.Context, equipoID uint, offset, limit int) ([]dto.IntervencionResponse, error)
	QRImagen(ctx context.Context, codigo string) (*dto.QRImagenResponse, error)
	EtiquetaPDF(ctx context.Context, id uint) ([]byte, error)
}

type equipoService struct {
	repo           repository.EquipoRepository
	intervenciones repository.IntervencionRepository
}

func NewEquipoService(repo repository.EquipoRepository, intervenciones repository.IntervencionRepository) EquipoService {
	return &equipoService{repo: repo, intervenciones: intervenciones}
}

func mapEquipo(e *model.Equipo) dto.EquipoResponse {
	return dto.EquipoResponse{
		ID:                 e.ID,
		CodigoQR:           e.CodigoQR,
		Nombre:             e.Nombre,
		Descripcion:        e.Descripcion,
		Ubicacion:          e.Ubicacion,
		Tipo:               e.Tipo,
		Modelo:             e.Modelo,
		Serie:              e.Serie,
		Fabricante:         e.Fabricante,
		FechaInstalacion:   e.FechaInstalacion,
		Activo:             e.Activo,
		FechaCreacion:      e.CreatedAt,
		FechaActualizacion: e.UpdatedAt,
	}
}

func (s *equipoService) Crear(ctx context.Context, req dto.CrearEquipoRequest) (*dto.EquipoResponse, error) {
	e := &model.Equipo{
		CodigoQR:         req.CodigoQR,
		Nombre:           req.Nombre,
		Descripcion:      req.Descripcion,
		Ubicacion:        req.Ubicacion,
		Tipo:             req.Tipo,
		Modelo:           req.Modelo,
		Serie:            req.Serie,
		Fabricante:       req.Fabricante,
		FechaInstalacion: req.FechaInstalacion,
		Activo:           true,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	resp := mapEquipo(e)
	return &resp, nil
}

func (s *equipoService) Obtener(ctx context.Context, id uint) (*dto.EquipoResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapEquipo(e)
	return &resp, nil
}

func (s *equipoService) ObtenerPorCodigoQR(ctx context.Context, codigo string) (*dto.EquipoResponse, error) {
	e, err := s.repo.FindByCodigoQR(ctx, codigo)
	if err != nil {
		return nil, err
	}
	resp := mapEquipo(e)
	return &resp, nil
}

func (s *equipoService) Listar(ctx context.Context, f repository.EquipoFiltro) ([]dto.EquipoResponse, error) {
	equipos, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.EquipoResponse, len(equipos))
	for i := range equipos {
		resp[i] = mapEquipo(&equipos[i])
	}
	return resp, nil
}

func (s *equipoService) Actualizar(ctx context.Context, id uint, req dto.ActualizarEquipoRequest) (*dto.EquipoResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Nombre != nil {
		e.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		e.Descripcion = req.Descripcion
	}
	if req.Ubicacion != nil {
		e.Ubicacion = *req.Ubicacion
	}
	if req.Tipo != nil {
		e.Tipo = *req.Tipo
	}
	if req.Modelo != nil {
		e.Modelo = req.Modelo
	}
	if req.Serie != nil {
		e.Serie = req.Serie
	}
	if req.Fabricante != nil {
		e.Fabricante = req.Fabricante
	}
	if req.FechaInstalacion != nil {
		e.FechaInstalacion = req.FechaInstalacion
	}
	if req.Activo != nil {
		e.Activo = *req.Activo
	}
	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	resp := mapEquipo(e)
	return &resp, nil
}

func (s *equipoService) Desactivar(ctx context.Context, id uint) error {
	ok, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return repository.ErrNoEncontrado
	}
	return nil
}

// Historial returns intervenciones for an equipo, newest first. Soft-deleted
// equipos keep their history: the existence check ignores activo.
func (s *equipoService) Historial(ctx context.Context, equipoID uint, offset, limit int) ([]dto.IntervencionResponse, error) {
	if _, err := s.repo.FindByID(ctx, equipoID); err != nil {
		return nil, err
	}
	list, err := s.intervenciones.List(ctx, repository.IntervencionFiltro{
		EquipoID: &equipoID,
		Offset:   offset,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}
	resp := make([]dto.IntervencionResponse, len(list))
	for i := range list {
		resp[i] = mapIntervencion(&list[i])
	}
	return resp, nil
}

func (s *equipoService) QRImagen(ctx context.Context, codigo string) (*dto.QRImagenResponse, error) {
	e, err := s.repo.FindByCodigoQR(ctx, codigo)
	if err != nil {
		return nil, err
	}
	img, err := qr.Base64PNG(e.CodigoQR)
	if err != nil {
		return nil, err
	}
	return &dto.QRImagenResponse{EquipoID: e.ID, CodigoQR: e.CodigoQR, QRImagen: img}, nil
}

func (s *equipoService) EtiquetaPDF(ctx context.Context, id uint) ([]byte, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return qr.EtiquetaPDF(e.Nombre, e.CodigoQR)
}
