package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/model"
)

// IntervencionFiltro is the allow-listed filter set for listing
// intervenciones. SoloActivas keeps only pending (completada=false) rows.
type IntervencionFiltro struct {
	EquipoID    *uint
	UsuarioID   *uint
	SoloActivas bool
	Offset      int
	Limit       int
}

type IntervencionRepository interface {
	Create(ctx context.Context, i *model.Intervencion) error
	FindByID(ctx context.Context, id uint) (*model.Intervencion, error)
	// FindByIDConRelaciones eager-loads equipo, usuario and tipo explicitly;
	// relationship loading is never an implicit side effect elsewhere.
	FindByIDConRelaciones(ctx context.Context, id uint) (*model.Intervencion, error)
	List(ctx context.Context, f IntervencionFiltro) ([]model.Intervencion, error)
	Update(ctx context.Context, i *model.Intervencion) error
	HardDelete(ctx context.Context, id uint) (bool, error)
	CountByTipo(ctx context.Context, tipoID uint) (int64, error)
	Count(ctx context.Context, completada *bool) (int64, error)
}

type intervencionRepo struct{ db *gorm.DB }

func NewIntervencionRepository(db *gorm.DB) IntervencionRepository {
	return &intervencionRepo{db: db}
}

func (r *intervencionRepo) Create(ctx context.Context, i *model.Intervencion) error {
	return traducir(r.db.WithContext(ctx).Create(i).Error)
}

func (r *intervencionRepo) FindByID(ctx context.Context, id uint) (*model.Intervencion, error) {
	var i model.Intervencion
	if err := r.db.WithContext(ctx).First(&i, id).Error; err != nil {
		return nil, traducir(err)
	}
	return &i, nil
}

func (r *intervencionRepo) FindByIDConRelaciones(ctx context.Context, id uint) (*model.Intervencion, error) {
	var i model.Intervencion
	err := r.db.WithContext(ctx).
		Preload("Equipo").
		Preload("Usuario").
		Preload("Tipo").
		First(&i, id).Error
	if err != nil {
		return nil, traducir(err)
	}
	return &i, nil
}

func (r *intervencionRepo) List(ctx context.Context, f IntervencionFiltro) ([]model.Intervencion, error) {
	// History-style query: newest first by start timestamp.
	q := r.db.WithContext(ctx).Order("fecha_inicio desc").Offset(f.Offset).Limit(f.Limit)
	if f.EquipoID != nil {
		q = q.Where("equipo_id = ?", *f.EquipoID)
	}
	if f.UsuarioID != nil {
		q = q.Where("usuario_id = ?", *f.UsuarioID)
	}
	if f.SoloActivas {
		q = q.Where("completada = false")
	}
	var list []model.Intervencion
	err := q.Find(&list).Error
	return list, traducir(err)
}

func (r *intervencionRepo) Update(ctx context.Context, i *model.Intervencion) error {
	return traducir(r.db.WithContext(ctx).Save(i).Error)
}

func (r *intervencionRepo) HardDelete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Intervencion{}, id)
	if res.Error != nil {
		return false, traducir(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *intervencionRepo) CountByTipo(ctx context.Context, tipoID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Intervencion{}).Where("tipo_id = ?", tipoID).Count(&n).Error
	return n, traducir(err)
}

func (r *intervencionRepo) Count(ctx context.Context, completada *bool) (int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Intervencion{})
	if completada != nil {
		q = q.Where("completada = ?", *completada)
	}
	var n int64
	err := q.Count(&n).Error
	return n, traducir(err)
}
