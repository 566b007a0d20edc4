package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/botica-dev/botica-api/internal/application/dto"
	"github.com/botica-dev/botica-api/internal/domain"
)

func respuestaDe(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		return respondError(c, err)
	})
	resp, errReq := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil), -1)
	require.NoError(t, errReq)
	defer resp.Body.Close()

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

// Un error no clasificado responde un mensaje genérico: el texto del driver
// (SQL, conexión) no debe llegar al cliente.
func TestRespondError_InternoNoExponeDetalles(t *testing.T) {
	status, body := respuestaDe(t, errors.New(`ERROR: relation "inventarios" does not exist (SQLSTATE 42P01)`))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL", body.Code)
	assert.Equal(t, "error interno", body.Message)
	assert.NotContains(t, body.Message, "SQLSTATE")
}

func TestRespondError_SentinelasDelDominio(t *testing.T) {
	casos := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrInvalidInput, http.StatusBadRequest, "VALIDATION"},
		{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{domain.ErrDuplicate, http.StatusConflict, "CONFLICT"},
		{domain.ErrInvalidState, http.StatusConflict, "INVALID_STATE"},
		{domain.ErrInsufficientStock, http.StatusConflict, "INSUFFICIENT_STOCK"},
		{domain.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
	}
	for _, tc := range casos {
		status, body := respuestaDe(t, tc.err)
		assert.Equal(t, tc.status, status, tc.code)
		assert.Equal(t, tc.code, body.Code)
	}
}

// La transición inválida sí expone su mensaje: lo arma el dominio con los
// destinos permitidos, no un driver.
func TestRespondError_TransicionInvalidaEnumeraDestinos(t *testing.T) {
	err := fmt.Errorf("%w: desde PENDIENTE solo hacia APROBADO, RECHAZADO, CANCELADO", domain.ErrInvalidTransition)
	status, body := respuestaDe(t, err)

	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "INVALID_TRANSITION", body.Code)
	assert.Contains(t, body.Message, "APROBADO")
}
