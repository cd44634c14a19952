package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/model"
)

type UsuarioRepository interface {
	Create(ctx context.Context, u *model.Usuario) error
	FindByID(ctx context.Context, id uint) (*model.Usuario, error)
	// FindByEmail matches the email exactly (case-sensitive natural key).
	FindByEmail(ctx context.Context, email string) (*model.Usuario, error)
	List(ctx context.Context, soloActivos bool, offset, limit int) ([]model.Usuario, error)
	Update(ctx context.Context, u *model.Usuario) error
	SoftDelete(ctx context.Context, id uint) (bool, error)
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) Create(ctx context.Context, u *model.Usuario) error {
	return traducir(r.db.WithContext(ctx).Create(u).Error)
}

func (r *usuarioRepo) FindByID(ctx context.Context, id uint) (*model.Usuario, error) {
	var u model.Usuario
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, traducir(err)
	}
	return &u, nil
}

func (r *usuarioRepo) FindByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	var u model.Usuario
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, traducir(err)
	}
	return &u, nil
}

func (r *usuarioRepo) List(ctx context.Context, soloActivos bool, offset, limit int) ([]model.Usuario, error) {
	q := r.db.WithContext(ctx).Order("id asc").Offset(offset).Limit(limit)
	if soloActivos {
		q = q.Where("activo = true")
	}
	var users []model.Usuario
	err := q.Find(&users).Error
	return users, traducir(err)
}

func (r *usuarioRepo) Update(ctx context.Context, u *model.Usuario) error {
	return traducir(r.db.WithContext(ctx).Save(u).Error)
}

func (r *usuarioRepo) SoftDelete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Usuario{}).Where("id = ?", id).Update("activo", false)
	if res.Error != nil {
		return false, traducir(res.Error)
	}
	return res.RowsAffected > 0, nil
}
