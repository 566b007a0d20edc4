package inventario

import (
	"context"
	"time"

	"github.com/botica-dev/botica-api/internal/application/dto"
	"github.com/botica-dev/botica-api/internal/domain/repository"
	"github.com/botica-dev/botica-api/pkg/metrics"
)

// VencimientosUseCase operación batch sobre los estados por vencimiento de lote:
// marca VENCIDO lo que venció y AMARILLO lo que vence dentro del horizonte.
// Son updates condicionales masivos; no recalcula los umbrales por cantidad de
// las filas que no toca.
type VencimientosUseCase struct {
	invRepo       repository.InventarioRepository
	horizonteDias int
}

// NewVencimientosUseCase construye el caso de uso. horizonteDias suele venir de configuración (default 30).
func NewVencimientosUseCase(invRepo repository.InventarioRepository, horizonteDias int) *VencimientosUseCase {
	if horizonteDias <= 0 {
		horizonteDias = 30
	}
	return &VencimientosUseCase{invRepo: invRepo, horizonteDias: horizonteDias}
}

// Actualizar ejecuta el barrido con la fecha actual.
func (uc *VencimientosUseCase) Actualizar(ctx context.Context) (*dto.VencimientosResponse, error) {
	return uc.ActualizarEn(ctx, time.Now())
}

// ActualizarEn ejecuta el barrido contra una fecha dada (inyectable para pruebas).
// Primero marca vencidos y después los por vencer, de modo que el aviso AMARILLO
// nunca pise un VENCIDO recién marcado.
func (uc *VencimientosUseCase) ActualizarEn(ctx context.Context, hoy time.Time) (*dto.VencimientosResponse, error) {
	vencidos, err := uc.invRepo.MarcarVencidos(hoy)
	if err != nil {
		return nil, err
	}
	porVencer, err := uc.invRepo.MarcarPorVencer(hoy, uc.horizonteDias)
	if err != nil {
		return nil, err
	}
	metrics.InventariosVencidos.Add(float64(vencidos))
	return &dto.VencimientosResponse{Vencidos: vencidos, PorVencer: porVencer}, nil
}
