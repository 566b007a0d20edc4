package pedido

import "github.com/botica-dev/botica-api/internal/domain/entity"

// transiciones tabla estática de transiciones válidas (origen -> destinos).
// COMPLETADO es terminal. RECHAZADO y CANCELADO pueden reabrirse a PENDIENTE.
var transiciones = map[string][]string{
	entity.PedidoPendiente:  {entity.PedidoAprobado, entity.PedidoRechazado, entity.PedidoCancelado},
	entity.PedidoAprobado:   {entity.PedidoEnProceso, entity.PedidoCancelado},
	entity.PedidoEnProceso:  {entity.PedidoCompletado, entity.PedidoCancelado},
	entity.PedidoRechazado:  {entity.PedidoPendiente},
	entity.PedidoCancelado:  {entity.PedidoPendiente},
	entity.PedidoCompletado: {},
}

// EsEstadoValido indica si el string corresponde a un estado de pedido conocido.
func EsEstadoValido(estado string) bool {
	_, ok := transiciones[estado]
	return ok
}

// PuedeTransicionar indica si la transición origen -> destino está permitida.
func PuedeTransicionar(origen, destino string) bool {
	for _, t := range transiciones[origen] {
		if t == destino {
			return true
		}
	}
	return false
}

// DestinosPermitidos devuelve los estados alcanzables desde el estado dado.
// Para COMPLETADO devuelve vacío.
func DestinosPermitidos(origen string) []string {
	dst := transiciones[origen]
	out := make([]string, len(dst))
	copy(out, dst)
	return out
}
