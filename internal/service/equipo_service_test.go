package service

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/dto"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/model"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/repository"
)

func TestEquipoQRRoundTrip(t *testing.T) {
	equipos := newStubEquipoRepo()
	svc := NewEquipoService(equipos, newStubIntervencionRepo())

	creado, err := svc.Crear(context.Background(), dto.CrearEquipoRequest{
		CodigoQR:  "EQ-BODEGA-001",
		Nombre:    "Compresor principal",
		Ubicacion: "Nave 1",
		Tipo:      "Compresor",
	})
	require.NoError(t, err)
	assert.True(t, creado.Activo)

	// Looking up by the code embedded in the QR yields the same equipo.
	porCodigo, err := svc.ObtenerPorCodigoQR(context.Background(), "EQ-BODEGA-001")
	require.NoError(t, err)
	assert.Equal(t, creado.ID, porCodigo.ID)

	img, err := svc.QRImagen(context.Background(), "EQ-BODEGA-001")
	require.NoError(t, err)
	assert.Equal(t, creado.ID, img.EquipoID)
	assert.Equal(t, "EQ-BODEGA-001", img.CodigoQR)
	_, err = base64.StdEncoding.DecodeString(img.QRImagen)
	assert.NoError(t, err)
}

func TestEquipoDesactivadoConservaHistorial(t *testing.T) {
	equipos := newStubEquipoRepo()
	intervenciones := newStubIntervencionRepo()
	svc := NewEquipoService(equipos, intervenciones)

	creado, err := svc.Crear(context.Background(), dto.CrearEquipoRequest{
		CodigoQR:  "EQ-002",
		Nombre:    "Montacargas",
		Ubicacion: "Nave 2",
		Tipo:      "Vehiculo",
	})
	require.NoError(t, err)

	require.NoError(t, intervenciones.Create(context.Background(), &model.Intervencion{
		EquipoID: creado.ID, UsuarioID: 1, TipoID: 1, Descripcion: "Cambio de aceite",
	}))

	require.NoError(t, svc.Desactivar(context.Background(), creado.ID))

	// History remains reachable after soft delete.
	historial, err := svc.Historial(context.Background(), creado.ID, 0, 20)
	require.NoError(t, err)
	require.Len(t, historial, 1)
	assert.Equal(t, "Cambio de aceite", historial[0].Descripcion)
}

func TestEquipoHistorialNoEncontrado(t *testing.T) {
	svc := NewEquipoService(newStubEquipoRepo(), newStubIntervencionRepo())
	_, err := svc.Historial(context.Background(), 99, 0, 20)
	assert.ErrorIs(t, err, repository.ErrNoEncontrado)
}

func TestEquipoEtiquetaPDF(t *testing.T) {
	equipos := newStubEquipoRepo()
	svc := NewEquipoService(equipos, newStubIntervencionRepo())

	creado, err := svc.Crear(context.Background(), dto.CrearEquipoRequest{
		CodigoQR:  "EQ-003",
		Nombre:    "Caldera",
		Ubicacion: "Sala tecnica",
		Tipo:      "Caldera",
	})
	require.NoError(t, err)

	pdf, err := svc.EtiquetaPDF(context.Background(), creado.ID)
	require.NoError(t, err)
	require.Greater(t, len(pdf), 4)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}
