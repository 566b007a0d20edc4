package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Distritos ────────────────────────────────────────────────────────────────

type CreateDistritoRequest struct {
	Nombre       string `json:"nombre"`
	Provincia    string `json:"provincia"`
	Departamento string `json:"departamento"`
}

type DistritoResponse struct {
	ID           string `json:"id"`
	Nombre       string `json:"nombre"`
	Provincia    string `json:"provincia"`
	Departamento string `json:"departamento"`
}

// ── Personas ─────────────────────────────────────────────────────────────────

type CreatePersonaRequest struct {
	DNI        string `json:"dni"`
	Nombres    string `json:"nombres"`
	Apellidos  string `json:"apellidos"`
	Telefono   string `json:"telefono,omitempty"`
	Direccion  string `json:"direccion,omitempty"`
	DistritoID string `json:"distrito_id,omitempty"`
}

type UpdatePersonaRequest struct {
	Nombres    *string `json:"nombres,omitempty"`
	Apellidos  *string `json:"apellidos,omitempty"`
	Telefono   *string `json:"telefono,omitempty"`
	Direccion  *string `json:"direccion,omitempty"`
	DistritoID *string `json:"distrito_id,omitempty"`
}

type PersonaResponse struct {
	ID         string    `json:"id"`
	DNI        string    `json:"dni"`
	Nombres    string    `json:"nombres"`
	Apellidos  string    `json:"apellidos"`
	Telefono   string    `json:"telefono,omitempty"`
	Direccion  string    `json:"direccion,omitempty"`
	DistritoID string    `json:"distrito_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ── Medicamentos ─────────────────────────────────────────────────────────────

type CreateMedicamentoRequest struct {
	Codigo         string          `json:"codigo"`
	Nombre         string          `json:"nombre"`
	Descripcion    string          `json:"descripcion,omitempty"`
	Presentacion   string          `json:"presentacion,omitempty"`
	Concentracion  string          `json:"concentracion,omitempty"`
	Precio         decimal.Decimal `json:"precio"`
	RequiereReceta bool            `json:"requiere_receta"`
}

type UpdateMedicamentoRequest struct {
	Nombre         *string          `json:"nombre,omitempty"`
	Descripcion    *string          `json:"descripcion,omitempty"`
	Presentacion   *string          `json:"presentacion,omitempty"`
	Concentracion  *string          `json:"concentracion,omitempty"`
	Precio         *decimal.Decimal `json:"precio,omitempty"`
	RequiereReceta *bool            `json:"requiere_receta,omitempty"`
}

type MedicamentoResponse struct {
	ID             string          `json:"id"`
	Codigo         string          `json:"codigo"`
	Nombre         string          `json:"nombre"`
	Descripcion    string          `json:"descripcion,omitempty"`
	Presentacion   string          `json:"presentacion,omitempty"`
	Concentracion  string          `json:"concentracion,omitempty"`
	Precio         decimal.Decimal `json:"precio"`
	RequiereReceta bool            `json:"requiere_receta"`
	CreatedAt      time.Time       `json:"created_at"`
}

// ── Lotes ────────────────────────────────────────────────────────────────────

type CreateLoteRequest struct {
	MedicamentoID    string    `json:"medicamento_id"`
	Codigo           string    `json:"codigo"`
	FechaFabricacion time.Time `json:"fecha_fabricacion"`
	FechaVencimiento time.Time `json:"fecha_vencimiento"`
}

type LoteResponse struct {
	ID               string    `json:"id"`
	MedicamentoID    string    `json:"medicamento_id"`
	Codigo           string    `json:"codigo"`
	FechaFabricacion time.Time `json:"fecha_fabricacion"`
	FechaVencimiento time.Time `json:"fecha_vencimiento"`
}
