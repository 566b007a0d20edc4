package inventario_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/botica-dev/botica-api/internal/domain/entity"
	"github.com/botica-dev/botica-api/internal/domain/inventario"
)

// Propiedad: ROJO sii cantidad <= puntoReorden; AMARILLO sii reorden < cantidad <= 2*reorden.
func TestDerivarEstado_Umbrales(t *testing.T) {
	casos := []struct {
		nombre   string
		cantidad int
		reorden  int
		esperado string
	}{
		{"cantidad cero", 0, 10, entity.EstadoRojo},
		{"igual al punto de reorden", 10, 10, entity.EstadoRojo},
		{"justo sobre el reorden", 11, 10, entity.EstadoAmarillo},
		{"igual al doble del reorden", 20, 10, entity.EstadoAmarillo},
		{"sobre el doble del reorden", 21, 10, entity.EstadoDisponible},
		{"stock amplio", 100, 10, entity.EstadoDisponible},
		{"reorden cero con stock", 1, 0, entity.EstadoDisponible},
		{"reorden cero sin stock", 0, 0, entity.EstadoRojo},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			got := inventario.DerivarEstado(c.cantidad, c.reorden, entity.EstadoDisponible)
			assert.Equal(t, c.esperado, got)
		})
	}
}

// VENCIDO tiene precedencia: un recálculo por cantidad no degrada un inventario vencido.
func TestDerivarEstado_VencidoNoSeDegrada(t *testing.T) {
	got := inventario.DerivarEstado(500, 10, entity.EstadoVencido)
	assert.Equal(t, entity.EstadoVencido, got)
}

// Escenario del flujo completo: 100 -> SALIDA(85) -> AMARILLO; -> SALIDA(10) -> ROJO.
func TestDerivarEstado_EscenarioDescenso(t *testing.T) {
	assert.Equal(t, entity.EstadoDisponible, inventario.DerivarEstado(100, 10, entity.EstadoDisponible))
	assert.Equal(t, entity.EstadoAmarillo, inventario.DerivarEstado(15, 10, entity.EstadoDisponible))
	assert.Equal(t, entity.EstadoRojo, inventario.DerivarEstado(5, 10, entity.EstadoAmarillo))
}

func TestEstadoPorVencimiento(t *testing.T) {
	hoy := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("lote ya vencido", func(t *testing.T) {
		vence := hoy.AddDate(0, 0, -1)
		got := inventario.EstadoPorVencimiento(entity.EstadoDisponible, vence, hoy, 30)
		assert.Equal(t, entity.EstadoVencido, got)
	})

	t.Run("vence hoy cuenta como vencido", func(t *testing.T) {
		got := inventario.EstadoPorVencimiento(entity.EstadoDisponible, hoy, hoy, 30)
		assert.Equal(t, entity.EstadoVencido, got)
	})

	t.Run("por vencer dentro del horizonte", func(t *testing.T) {
		vence := hoy.AddDate(0, 0, 15)
		got := inventario.EstadoPorVencimiento(entity.EstadoDisponible, vence, hoy, 30)
		assert.Equal(t, entity.EstadoAmarillo, got)
	})

	t.Run("por vencer no enmascara ROJO por cantidad", func(t *testing.T) {
		vence := hoy.AddDate(0, 0, 15)
		got := inventario.EstadoPorVencimiento(entity.EstadoRojo, vence, hoy, 30)
		assert.Equal(t, entity.EstadoRojo, got)
	})

	t.Run("fuera del horizonte no cambia", func(t *testing.T) {
		vence := hoy.AddDate(0, 0, 90)
		got := inventario.EstadoPorVencimiento(entity.EstadoDisponible, vence, hoy, 30)
		assert.Equal(t, entity.EstadoDisponible, got)
	})
}
