package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/model"
)

// EquipoFiltro is the allow-listed set of equality predicates for listing
// equipos. Nil pointers mean "not filtered".
type EquipoFiltro struct {
	Tipo        *string
	Ubicacion   *string
	SoloActivos bool
	Offset      int
	Limit       int
}

type EquipoRepository interface {
	Create(ctx context.Context, e *model.Equipo) error
	FindByID(ctx context.Context, id uint) (*model.Equipo, error)
	FindByCodigoQR(ctx context.Context, codigo string) (*model.Equipo, error)
	List(ctx context.Context, f EquipoFiltro) ([]model.Equipo, error)
	Update(ctx context.Context, e *model.Equipo) error
	SoftDelete(ctx context.Context, id uint) (bool, error)
	CountActivos(ctx context.Context) (int64, error)
}

type equipoRepo struct{ db *gorm.DB }

func NewEquipoRepository(db *gorm.DB) EquipoRepository { return &equipoRepo{db: db} }

func (r *equipoRepo) Create(ctx context.Context, e *model.Equipo) error {
	return traducir(r.db.WithContext(ctx).Create(e).Error)
}

func (r *equipoRepo) FindByID(ctx context.Context, id uint) (*model.Equipo, error) {
	var e model.Equipo
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, traducir(err)
	}
	return &e, nil
}

func (r *equipoRepo) FindByCodigoQR(ctx context.Context, codigo string) (*model.Equipo, error) {
	var e model.Equipo
	if err := r.db.WithContext(ctx).Where("codigo_qr = ?", codigo).First(&e).Error; err != nil {
		return nil, traducir(err)
	}
	return &e, nil
}

func (r *equipoRepo) List(ctx context.Context, f EquipoFiltro) ([]model.Equipo, error) {
	q := r.db.WithContext(ctx).Order("id asc").Offset(f.Offset).Limit(f.Limit)
	if f.SoloActivos {
		q = q.Where("activo = true")
	}
	if f.Tipo != nil {
		q = q.Where("tipo = ?", *f.Tipo)
	}
	if f.Ubicacion != nil {
		q = q.Where("ubicacion = ?", *f.Ubicacion)
	}
	var equipos []model.Equipo
	err := q.Find(&equipos).Error
	return equipos, traducir(err)
}

func (r *equipoRepo) Update(ctx context.Context, e *model.Equipo) error {
	return traducir(r.db.WithContext(ctx).Save(e).Error)
}

func (r *equipoRepo) SoftDelete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Equipo{}).Where("id = ?", id).Update("activo", false)
	if res.Error != nil {
		return false, traducir(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *equipoRepo) CountActivos(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Equipo{}).Where("activo = true").Count(&n).Error
	return n, traducir(err)
}
