package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/botica-dev/botica-api/internal/application/dto"
	"github.com/botica-dev/botica-api/internal/domain"
	"github.com/botica-dev/botica-api/internal/domain/entity"
	"github.com/botica-dev/botica-api/internal/domain/repository"
	"github.com/botica-dev/botica-api/pkg/jwt"
	"github.com/botica-dev/botica-api/pkg/metrics"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y logout.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	personaRepo repository.PersonaRepository
	blacklist   *TokenBlacklist
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	usuarioRepo repository.UsuarioRepository,
	personaRepo repository.PersonaRepository,
	blacklist *TokenBlacklist,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{
		usuarioRepo: usuarioRepo,
		personaRepo: personaRepo,
		blacklist:   blacklist,
		jwtCfg:      jwtCfg,
	}
}

// Register crea un usuario: hashea password con bcrypt y persiste.
// Devuelve ErrDuplicate si el username ya existe y ErrNotFound si la persona no existe.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UsuarioResponse, error) {
	if in.Username == "" || in.Password == "" || in.PersonaID == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.usuarioRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	persona, err := uc.personaRepo.GetByID(in.PersonaID)
	if err != nil {
		return nil, err
	}
	if persona == nil {
		return nil, domain.ErrNotFound
	}
	rol := in.Rol
	if rol == "" {
		rol = entity.RolAlmacenero
	}
	if rol != entity.RolAdmin && rol != entity.RolFarmaceutico && rol != entity.RolAlmacenero {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	usuario := &entity.Usuario{
		ID:           uuid.New().String(),
		PersonaID:    in.PersonaID,
		Username:     in.Username,
		PasswordHash: string(hash),
		Rol:          rol,
		Estado:       "activo",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.usuarioRepo.Create(usuario); err != nil {
		return nil, err
	}
	return ToUsuarioResponse(usuario), nil
}

// Login verifica username/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := uc.usuarioRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if usuario.Estado != "activo" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.Username, usuario.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Usuario: *ToUsuarioResponse(usuario),
	}, nil
}

// Logout revoca el token: lo registra en la lista negra hasta su expiración natural.
// El token debe ser válido todavía; un token ya inválido no necesita revocarse.
func (uc *AuthUseCase) Logout(tokenString string) error {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, tokenString)
	if err != nil {
		return domain.ErrUnauthorized
	}
	exp := time.Now().Add(time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute)
	if claims.ExpiresAt != nil {
		exp = claims.ExpiresAt.Time
	}
	uc.blacklist.Add(tokenString, exp.Unix())
	metrics.TokensRevocados.Inc()
	metrics.TokensEnListaNegra.Set(float64(uc.blacklist.Len()))
	return nil
}

// Perfil devuelve los datos del usuario autenticado.
func (uc *AuthUseCase) Perfil(usuarioID string) (*dto.UsuarioResponse, error) {
	usuario, err := uc.usuarioRepo.GetByID(usuarioID)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUserNotFound
	}
	return ToUsuarioResponse(usuario), nil
}

// IsBlacklisted consulta la lista negra (lo usa el middleware de auth).
func (uc *AuthUseCase) IsBlacklisted(tokenString string) bool {
	return uc.blacklist.Contains(tokenString)
}

// ToUsuarioResponse mapea la entidad al DTO sin exponer el hash.
func ToUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:        u.ID,
		PersonaID: u.PersonaID,
		Username:  u.Username,
		Rol:       u.Rol,
		Estado:    u.Estado,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
