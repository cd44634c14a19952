//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/authz"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/model"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("mantenimiento_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.Usuario{},
		&model.Equipo{},
		&model.TipoIntervencion{},
		&model.Intervencion{},
	))
	return db
}

func TestUsuarioEmailUnico(t *testing.T) {
	db := setupDB(t)
	repo := NewUsuarioRepository(db)
	ctx := context.Background()

	u := &model.Usuario{Email: "unico@taller.com", Nombre: "Uno", PasswordHash: "x", Rol: authz.RolLectura, Activo: true}
	require.NoError(t, repo.Create(ctx, u))

	dup := &model.Usuario{Email: "unico@taller.com", Nombre: "Dos", PasswordHash: "x", Rol: authz.RolLectura, Activo: true}
	assert.ErrorIs(t, repo.Create(ctx, dup), ErrDuplicado)
}

func TestIntervencionClavesForaneas(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	usuarios := NewUsuarioRepository(db)
	equipos := NewEquipoRepository(db)
	tipos := NewTipoIntervencionRepository(db)
	intervenciones := NewIntervencionRepository(db)

	u := &model.Usuario{Email: "fk@taller.com", Nombre: "FK", PasswordHash: "x", Rol: authz.RolTecnico, Activo: true}
	require.NoError(t, usuarios.Create(ctx, u))
	e := &model.Equipo{CodigoQR: "EQ-FK", Nombre: "Equipo", Ubicacion: "N1", Tipo: "T", Activo: true}
	require.NoError(t, equipos.Create(ctx, e))
	tp := &model.TipoIntervencion{Nombre: "Preventivo"}
	require.NoError(t, tipos.Create(ctx, tp))

	ok := &model.Intervencion{EquipoID: e.ID, UsuarioID: u.ID, TipoID: tp.ID, Descripcion: "ok", FechaInicio: time.Now()}
	require.NoError(t, intervenciones.Create(ctx, ok))

	// Dangling equipo reference is rejected by the database itself.
	bad := &model.Intervencion{EquipoID: 9999, UsuarioID: u.ID, TipoID: tp.ID, Descripcion: "bad", FechaInicio: time.Now()}
	assert.ErrorIs(t, intervenciones.Create(ctx, bad), ErrReferenciaNoExiste)
}

func TestEquipoSoftDelete(t *testing.T) {
	db := setupDB(t)
	repo := NewEquipoRepository(db)
	ctx := context.Background()

	e := &model.Equipo{CodigoQR: "EQ-SOFT", Nombre: "Equipo", Ubicacion: "N1", Tipo: "T", Activo: true}
	require.NoError(t, repo.Create(ctx, e))

	ok, err := repo.SoftDelete(ctx, e.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	// The row survives, inactive, and stays findable by id and codigo.
	tras, err := repo.FindByID(ctx, e.ID)
	require.NoError(t, err)
	assert.False(t, tras.Activo)

	activos, err := repo.List(ctx, EquipoFiltro{SoloActivos: true, Limit: 100})
	require.NoError(t, err)
	for _, a := range activos {
		assert.NotEqual(t, e.ID, a.ID)
	}

	ok, err = repo.SoftDelete(ctx, 9999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIntervencionListOrden(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	usuarios := NewUsuarioRepository(db)
	equipos := NewEquipoRepository(db)
	tipos := NewTipoIntervencionRepository(db)
	intervenciones := NewIntervencionRepository(db)

	u := &model.Usuario{Email: "orden@taller.com", Nombre: "O", PasswordHash: "x", Rol: authz.RolTecnico, Activo: true}
	require.NoError(t, usuarios.Create(ctx, u))
	e := &model.Equipo{CodigoQR: "EQ-ORDEN", Nombre: "Equipo", Ubicacion: "N1", Tipo: "T", Activo: true}
	require.NoError(t, equipos.Create(ctx, e))
	tp := &model.TipoIntervencion{Nombre: "Correctivo"}
	require.NoError(t, tipos.Create(ctx, tp))

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		iv := &model.Intervencion{
			EquipoID: e.ID, UsuarioID: u.ID, TipoID: tp.ID,
			Descripcion: "x", FechaInicio: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, intervenciones.Create(ctx, iv))
	}

	list, err := intervenciones.List(ctx, IntervencionFiltro{EquipoID: &e.ID, Limit: 10})
	require.NoError(t, err)
	require.Len(t, list, 3)
	// Newest first.
	assert.True(t, list[0].FechaInicio.After(list[1].FechaInicio))
	assert.True(t, list[1].FechaInicio.After(list[2].FechaInicio))
}

func TestFindNoEncontrado(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	_, err := NewUsuarioRepository(db).FindByID(ctx, 9999)
	assert.ErrorIs(t, err, ErrNoEncontrado)

	_, err = NewEquipoRepository(db).FindByCodigoQR(ctx, "NO-EXISTE")
	assert.ErrorIs(t, err, ErrNoEncontrado)
}
