package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/dto"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/model"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/repository"
)

func TestEliminarTipoEnUso(t *testing.T) {
	tipos := newStubTipoRepo()
	intervenciones := newStubIntervencionRepo()
	svc := NewTipoIntervencionService(tipos, intervenciones)

	resp, err := svc.Crear(context.Background(), dto.CrearTipoIntervencionRequest{Nombre: "Inspeccion"})
	require.NoError(t, err)

	require.NoError(t, intervenciones.Create(context.Background(), &model.Intervencion{
		EquipoID: 1, UsuarioID: 1, TipoID: resp.ID, Descripcion: "x",
	}))

	err = svc.Eliminar(context.Background(), resp.ID)
	assert.ErrorIs(t, err, ErrTipoEnUso)

	// The tipo survives the rejected delete.
	_, err = svc.Obtener(context.Background(), resp.ID)
	assert.NoError(t, err)
}

func TestEliminarTipoSinReferencias(t *testing.T) {
	tipos := newStubTipoRepo()
	svc := NewTipoIntervencionService(tipos, newStubIntervencionRepo())

	resp, err := svc.Crear(context.Background(), dto.CrearTipoIntervencionRequest{Nombre: "Limpieza"})
	require.NoError(t, err)

	require.NoError(t, svc.Eliminar(context.Background(), resp.ID))

	_, err = svc.Obtener(context.Background(), resp.ID)
	assert.ErrorIs(t, err, repository.ErrNoEncontrado)

	// A second delete reports not found.
	assert.ErrorIs(t, svc.Eliminar(context.Background(), resp.ID), repository.ErrNoEncontrado)
}

func TestCrearTipoDuplicado(t *testing.T) {
	tipos := newStubTipoRepo()
	svc := NewTipoIntervencionService(tipos, newStubIntervencionRepo())

	_, err := svc.Crear(context.Background(), dto.CrearTipoIntervencionRequest{Nombre: "Calibracion"})
	require.NoError(t, err)

	_, err = svc.Crear(context.Background(), dto.CrearTipoIntervencionRequest{Nombre: "Calibracion"})
	assert.ErrorIs(t, err, repository.ErrDuplicado)
}
