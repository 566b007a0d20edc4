package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contadores de negocio expuestos en /metrics.
var (
	MovimientosRegistrados = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "botica_movimientos_registrados_total",
		Help: "Movimientos de inventario registrados, por tipo",
	}, []string{"tipo"})

	MovimientosRechazados = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "botica_movimientos_rechazados_total",
		Help: "Movimientos de inventario rechazados, por motivo",
	}, []string{"motivo"})

	PedidosCreados = promauto.NewCounter(prometheus.CounterOpts{
		Name: "botica_pedidos_creados_total",
		Help: "Pedidos creados",
	})

	TransicionesPedido = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "botica_pedido_transiciones_total",
		Help: "Transiciones de estado de pedido aplicadas, por estado destino",
	}, []string{"estado"})

	TransicionesRechazadas = promauto.NewCounter(prometheus.CounterOpts{
		Name: "botica_pedido_transiciones_rechazadas_total",
		Help: "Transiciones de estado de pedido rechazadas por la tabla de transiciones",
	})

	TokensRevocados = promauto.NewCounter(prometheus.CounterOpts{
		Name: "botica_tokens_revocados_total",
		Help: "Tokens JWT revocados vía logout",
	})

	TokensEnListaNegra = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "botica_tokens_en_lista_negra",
		Help: "Entradas vigentes en la lista negra de tokens (incluye expiradas aún no barridas)",
	})

	InventariosVencidos = promauto.NewCounter(prometheus.CounterOpts{
		Name: "botica_inventarios_vencidos_total",
		Help: "Inventarios marcados VENCIDO por el barrido de vencimientos",
	})
)
