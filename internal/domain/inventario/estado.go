package inventario

import (
	"time"

	"github.com/botica-dev/botica-api/internal/domain/entity"
)

// DerivarEstado calcula el estado de un inventario a partir de la cantidad disponible
// y el punto de reorden (servicio de dominio, función pura):
//
//	ROJO       si cantidad <= puntoReorden
//	AMARILLO   si puntoReorden < cantidad <= 2*puntoReorden
//	DISPONIBLE en cualquier otro caso
//
// VENCIDO tiene precedencia: si el estado actual es VENCIDO no se degrada,
// un recálculo por cantidad nunca revive un inventario de lote vencido.
func DerivarEstado(cantidad, puntoReorden int, estadoActual string) string {
	if estadoActual == entity.EstadoVencido {
		return entity.EstadoVencido
	}
	switch {
	case cantidad <= puntoReorden:
		return entity.EstadoRojo
	case cantidad <= 2*puntoReorden:
		return entity.EstadoAmarillo
	default:
		return entity.EstadoDisponible
	}
}

// EstadoPorVencimiento decide el estado por fecha de vencimiento del lote:
//
//	VENCIDO  si el lote vence hoy o ya venció
//	AMARILLO si vence dentro del horizonte (días) y el estado por cantidad era DISPONIBLE
//
// Devuelve el estado actual sin cambios cuando el vencimiento no aplica.
// El aviso de "por vencer" nunca enmascara un ROJO derivado por cantidad.
func EstadoPorVencimiento(estadoActual string, fechaVencimiento, hoy time.Time, horizonteDias int) string {
	dia := fechaVencimiento.Truncate(24 * time.Hour)
	hoyDia := hoy.Truncate(24 * time.Hour)

	if !dia.After(hoyDia) {
		return entity.EstadoVencido
	}
	limite := hoyDia.AddDate(0, 0, horizonteDias)
	if !dia.After(limite) && estadoActual == entity.EstadoDisponible {
		return entity.EstadoAmarillo
	}
	return estadoActual
}
