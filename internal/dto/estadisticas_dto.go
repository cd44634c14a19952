package dto

// EstadisticasResponse aggregates simple system-wide counts.
type EstadisticasResponse struct {
	TotalEquipos              int64 `json:"total_equipos"`
	TotalIntervenciones       int64 `json:"total_intervenciones"`
	IntervencionesCompletadas int64 `json:"intervenciones_completadas"`
	IntervencionesPendientes  int64 `json:"intervenciones_pendientes"`
}
