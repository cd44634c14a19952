package service

// In-memory repository stubs shared by the service tests. They implement just
// enough of the repository contracts to drive the services, including the
// sentinel errors the real implementations translate from the database.

import (
	"context"
	"time"

	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/model"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/repository"
)

type stubUsuarioRepo struct {
	usuarios map[uint]*model.Usuario
	nextID   uint
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: map[uint]*model.Usuario{}, nextID: 1}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	for _, existing := range r.usuarios {
		if existing.Email == u.Email {
			return repository.ErrDuplicado
		}
	}
	u.ID = r.nextID
	r.nextID++
	cp := *u
	r.usuarios[u.ID] = &cp
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uint) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, repository.ErrNoEncontrado
	}
	cp := *u
	return &cp, nil
}

func (r *stubUsuarioRepo) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNoEncontrado
}

func (r *stubUsuarioRepo) List(_ context.Context, soloActivos bool, offset, limit int) ([]model.Usuario, error) {
	var out []model.Usuario
	for id := uint(1); id < r.nextID; id++ {
		u, ok := r.usuarios[id]
		if !ok || (soloActivos && !u.Activo) {
			continue
		}
		out = append(out, *u)
	}
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	if _, ok := r.usuarios[u.ID]; !ok {
		return repository.ErrNoEncontrado
	}
	cp := *u
	r.usuarios[u.ID] = &cp
	return nil
}

func (r *stubUsuarioRepo) SoftDelete(_ context.Context, id uint) (bool, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return false, nil
	}
	u.Activo = false
	return true, nil
}

type stubEquipoRepo struct {
	equipos map[uint]*model.Equipo
	nextID  uint
}

func newStubEquipoRepo() *stubEquipoRepo {
	return &stubEquipoRepo{equipos: map[uint]*model.Equipo{}, nextID: 1}
}

func (r *stubEquipoRepo) Create(_ context.Context, e *model.Equipo) error {
	for _, existing := range r.equipos {
		if existing.CodigoQR == e.CodigoQR {
			return repository.ErrDuplicado
		}
	}
	e.ID = r.nextID
	r.nextID++
	cp := *e
	r.equipos[e.ID] = &cp
	return nil
}

func (r *stubEquipoRepo) FindByID(_ context.Context, id uint) (*model.Equipo, error) {
	e, ok := r.equipos[id]
	if !ok {
		return nil, repository.ErrNoEncontrado
	}
	cp := *e
	return &cp, nil
}

func (r *stubEquipoRepo) FindByCodigoQR(_ context.Context, codigo string) (*model.Equipo, error) {
	for _, e := range r.equipos {
		if e.CodigoQR == codigo {
			cp := *e
			return &cp, nil
		}
	}
	return nil, repository.ErrNoEncontrado
}

func (r *stubEquipoRepo) List(_ context.Context, f repository.EquipoFiltro) ([]model.Equipo, error) {
	var out []model.Equipo
	for id := uint(1); id < r.nextID; id++ {
		e, ok := r.equipos[id]
		if !ok {
			continue
		}
		if f.SoloActivos && !e.Activo {
			continue
		}
		if f.Tipo != nil && e.Tipo != *f.Tipo {
			continue
		}
		if f.Ubicacion != nil && e.Ubicacion != *f.Ubicacion {
			continue
		}
		out = append(out, *e)
	}
	return out, nil
}

func (r *stubEquipoRepo) Update(_ context.Context, e *model.Equipo) error {
	if _, ok := r.equipos[e.ID]; !ok {
		return repository.ErrNoEncontrado
	}
	cp := *e
	r.equipos[e.ID] = &cp
	return nil
}

func (r *stubEquipoRepo) SoftDelete(_ context.Context, id uint) (bool, error) {
	e, ok := r.equipos[id]
	if !ok {
		return false, nil
	}
	e.Activo = false
	return true, nil
}

func (r *stubEquipoRepo) CountActivos(_ context.Context) (int64, error) {
	var n int64
	for _, e := range r.equipos {
		if e.Activo {
			n++
		}
	}
	return n, nil
}

type stubTipoRepo struct {
	tipos  map[uint]*model.TipoIntervencion
	nextID uint
}

func newStubTipoRepo() *stubTipoRepo {
	return &stubTipoRepo{tipos: map[uint]*model.TipoIntervencion{}, nextID: 1}
}

func (r *stubTipoRepo) Create(_ context.Context, t *model.TipoIntervencion) error {
	for _, existing := range r.tipos {
		if existing.Nombre == t.Nombre {
			return repository.ErrDuplicado
		}
	}
	t.ID = r.nextID
	r.nextID++
	cp := *t
	r.tipos[t.ID] = &cp
	return nil
}

func (r *stubTipoRepo) FindByID(_ context.Context, id uint) (*model.TipoIntervencion, error) {
	t, ok := r.tipos[id]
	if !ok {
		return nil, repository.ErrNoEncontrado
	}
	cp := *t
	return &cp, nil
}

func (r *stubTipoRepo) List(_ context.Context, offset, limit int) ([]model.TipoIntervencion, error) {
	var out []model.TipoIntervencion
	for id := uint(1); id < r.nextID; id++ {
		if t, ok := r.tipos[id]; ok {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *stubTipoRepo) Update(_ context.Context, t *model.TipoIntervencion) error {
	if _, ok := r.tipos[t.ID]; !ok {
		return repository.ErrNoEncontrado
	}
	cp := *t
	r.tipos[t.ID] = &cp
	return nil
}

func (r *stubTipoRepo) HardDelete(_ context.Context, id uint) (bool, error) {
	if _, ok := r.tipos[id]; !ok {
		return false, nil
	}
	delete(r.tipos, id)
	return true, nil
}

type stubIntervencionRepo struct {
	intervenciones map[uint]*model.Intervencion
	nextID         uint
}

func newStubIntervencionRepo() *stubIntervencionRepo {
	return &stubIntervencionRepo{intervenciones: map[uint]*model.Intervencion{}, nextID: 1}
}

func (r *stubIntervencionRepo) Create(_ context.Context, i *model.Intervencion) error {
	i.ID = r.nextID
	r.nextID++
	i.CreatedAt = time.Now()
	i.UpdatedAt = i.CreatedAt
	cp := *i
	r.intervenciones[i.ID] = &cp
	return nil
}

func (r *stubIntervencionRepo) FindByID(_ context.Context, id uint) (*model.Intervencion, error) {
	i, ok := r.intervenciones[id]
	if !ok {
		return nil, repository.ErrNoEncontrado
	}
	cp := *i
	return &cp, nil
}

func (r *stubIntervencionRepo) FindByIDConRelaciones(ctx context.Context, id uint) (*model.Intervencion, error) {
	return r.FindByID(ctx, id)
}

func (r *stubIntervencionRepo) List(_ context.Context, f repository.IntervencionFiltro) ([]model.Intervencion, error) {
	var out []model.Intervencion
	for id := uint(1); id < r.nextID; id++ {
		i, ok := r.intervenciones[id]
		if !ok {
			continue
		}
		if f.EquipoID != nil && i.EquipoID != *f.EquipoID {
			continue
		}
		if f.UsuarioID != nil && i.UsuarioID != *f.UsuarioID {
			continue
		}
		if f.SoloActivas && i.Completada {
			continue
		}
		out = append(out, *i)
	}
	return out, nil
}

// Update stamps UpdatedAt like GORM's Save does, so services can be checked
// for timestamp refresh semantics.
func (r *stubIntervencionRepo) Update(_ context.Context, i *model.Intervencion) error {
	if _, ok := r.intervenciones[i.ID]; !ok {
		return repository.ErrNoEncontrado
	}
	i.UpdatedAt = time.Now()
	cp := *i
	r.intervenciones[i.ID] = &cp
	return nil
}

func (r *stubIntervencionRepo) HardDelete(_ context.Context, id uint) (bool, error) {
	if _, ok := r.intervenciones[id]; !ok {
		return false, nil
	}
	delete(r.intervenciones, id)
	return true, nil
}

func (r *stubIntervencionRepo) CountByTipo(_ context.Context, tipoID uint) (int64, error) {
	var n int64
	for _, i := range r.intervenciones {
		if i.TipoID == tipoID {
			n++
		}
	}
	return n, nil
}

func (r *stubIntervencionRepo) Count(_ context.Context, completada *bool) (int64, error) {
	var n int64
	for _, i := range r.intervenciones {
		if completada == nil || i.Completada == *completada {
			n++
		}
	}
	return n, nil
}
