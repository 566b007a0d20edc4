package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/botica-dev/botica-api/internal/application/auth"
	"github.com/botica-dev/botica-api/internal/application/dto"
	"github.com/botica-dev/botica-api/internal/domain"
	"github.com/botica-dev/botica-api/internal/domain/entity"
)

var errConsulta = errors.New("consulta fallida")

type fakeUsuarioRepo struct {
	items            map[string]*entity.Usuario
	errOnGetUsername error // si no es nil, GetByUsername falla con él
}

func (f *fakeUsuarioRepo) Create(u *entity.Usuario) error {
	cp := *u
	f.items[u.ID] = &cp
	return nil
}
func (f *fakeUsuarioRepo) GetByID(id string) (*entity.Usuario, error) { return f.items[id], nil }
func (f *fakeUsuarioRepo) GetByUsername(username string) (*entity.Usuario, error) {
	if f.errOnGetUsername != nil {
		return nil, f.errOnGetUsername
	}
	for _, u := range f.items {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}
func (f *fakeUsuarioRepo) List(int, int) ([]*entity.Usuario, error) { return nil, nil }
func (f *fakeUsuarioRepo) Update(*entity.Usuario) error             { return nil }
func (f *fakeUsuarioRepo) Delete(string) error                      { return nil }

type fakePersonaRepo struct{ items map[string]*entity.Persona }

func (f *fakePersonaRepo) Create(p *entity.Persona) error             { f.items[p.ID] = p; return nil }
func (f *fakePersonaRepo) GetByID(id string) (*entity.Persona, error) { return f.items[id], nil }
func (f *fakePersonaRepo) GetByDNI(string) (*entity.Persona, error)   { return nil, nil }
func (f *fakePersonaRepo) List(int, int) ([]*entity.Persona, error)   { return nil, nil }
func (f *fakePersonaRepo) Update(*entity.Persona) error               { return nil }
func (f *fakePersonaRepo) Delete(string) error                        { return nil }

func setupAuthUC(t *testing.T) (*auth.AuthUseCase, *fakeUsuarioRepo, *auth.TokenBlacklist) {
	t.Helper()
	usuarioRepo := &fakeUsuarioRepo{items: map[string]*entity.Usuario{}}
	personaRepo := &fakePersonaRepo{items: map[string]*entity.Persona{
		"per-1": {ID: "per-1", DNI: "45781236", Nombres: "Ana", Apellidos: "Quispe"},
	}}
	blacklist := auth.NewTokenBlacklist(time.Hour)
	uc := auth.NewAuthUseCase(usuarioRepo, personaRepo, blacklist, auth.JWTConfig{
		Secret:     "secret-de-test",
		ExpMinutes: 60,
		Issuer:     "botica-api-test",
	})
	return uc, usuarioRepo, blacklist
}

func TestRegister_CreaUsuarioConHash(t *testing.T) {
	uc, usuarioRepo, _ := setupAuthUC(t)

	resp, err := uc.Register(dto.RegisterRequest{
		PersonaID: "per-1", Username: "aquispe", Password: "clave-segura",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RolAlmacenero, resp.Rol, "rol por defecto")
	assert.Equal(t, "activo", resp.Estado)

	guardado := usuarioRepo.items[resp.ID]
	require.NotNil(t, guardado)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(guardado.PasswordHash), []byte("clave-segura")),
		"el password se persiste hasheado")
}

func TestRegister_UsernameDuplicado(t *testing.T) {
	uc, _, _ := setupAuthUC(t)

	_, err := uc.Register(dto.RegisterRequest{PersonaID: "per-1", Username: "aquispe", Password: "clave-segura"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{PersonaID: "per-1", Username: "aquispe", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Un fallo de consulta en el chequeo de username no debe leerse como "libre".
func TestRegister_ErrorDeConsultaSePropaga(t *testing.T) {
	uc, usuarioRepo, _ := setupAuthUC(t)
	usuarioRepo.errOnGetUsername = errConsulta

	_, err := uc.Register(dto.RegisterRequest{PersonaID: "per-1", Username: "aquispe", Password: "clave-segura"})
	assert.ErrorIs(t, err, errConsulta)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, _, _ := setupAuthUC(t)

	_, err := uc.Register(dto.RegisterRequest{PersonaID: "per-1", Username: "aquispe", Password: "clave-segura"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "aquispe", Password: "clave-equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Username: "no-existe", Password: "da-igual"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// Logout registra el token en la lista negra y el middleware lo verá revocado.
func TestLogout_RevocaElToken(t *testing.T) {
	uc, _, blacklist := setupAuthUC(t)

	_, err := uc.Register(dto.RegisterRequest{PersonaID: "per-1", Username: "aquispe", Password: "clave-segura"})
	require.NoError(t, err)
	out, err := uc.Login(dto.LoginRequest{Username: "aquispe", Password: "clave-segura"})
	require.NoError(t, err)

	assert.False(t, uc.IsBlacklisted(out.Token))
	require.NoError(t, uc.Logout(out.Token))
	assert.True(t, uc.IsBlacklisted(out.Token))
	assert.Equal(t, 1, blacklist.Len())
}
