package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/model"
)

type TipoIntervencionRepository interface {
	Create(ctx context.Context, t *model.TipoIntervencion) error
	FindByID(ctx context.Context, id uint) (*model.TipoIntervencion, error)
	List(ctx context.Context, offset, limit int) ([]model.TipoIntervencion, error)
	Update(ctx context.Context, t *model.TipoIntervencion) error
	HardDelete(ctx context.Context, id uint) (bool, error)
}

type tipoIntervencionRepo struct{ db *gorm.DB }

func NewTipoIntervencionRepository(db *gorm.DB) TipoIntervencionRepository {
	return &tipoIntervencionRepo{db: db}
}

func (r *tipoIntervencionRepo) Create(ctx context.Context, t *model.TipoIntervencion) error {
	return traducir(r.db.WithContext(ctx).Create(t).Error)
}

func (r *tipoIntervencionRepo) FindByID(ctx context.Context, id uint) (*model.TipoIntervencion, error) {
	var t model.TipoIntervencion
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, traducir(err)
	}
	return &t, nil
}

func (r *tipoIntervencionRepo) List(ctx context.Context, offset, limit int) ([]model.TipoIntervencion, error) {
	var tipos []model.TipoIntervencion
	err := r.db.WithContext(ctx).Order("nombre asc").Offset(offset).Limit(limit).Find(&tipos).Error
	return tipos, traducir(err)
}

func (r *tipoIntervencionRepo) Update(ctx context.Context, t *model.TipoIntervencion) error {
	return traducir(r.db.WithContext(ctx).Save(t).Error)
}

func (r *tipoIntervencionRepo) HardDelete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.TipoIntervencion{}, id)
	if res.Error != nil {
		return false, traducir(res.Error)
	}
	return res.RowsAffected > 0, nil
}
