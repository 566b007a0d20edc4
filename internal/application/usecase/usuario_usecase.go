package usecase

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/botica-dev/botica-api/internal/application/auth"
	"github.com/botica-dev/botica-api/internal/application/dto"
	"github.com/botica-dev/botica-api/internal/domain"
	"github.com/botica-dev/botica-api/internal/domain/entity"
	"github.com/botica-dev/botica-api/internal/domain/repository"
)

// UsuarioUseCase administración de cuentas. El alta pasa por auth.Register;
// aquí solo consulta, edición (rol, estado, password) y baja.
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
}

func NewUsuarioUseCase(repo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo}
}

func (uc *UsuarioUseCase) GetByID(id string) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return auth.ToUsuarioResponse(u), nil
}

func (uc *UsuarioUseCase) List(limit, offset int) ([]*dto.UsuarioResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UsuarioResponse, 0, len(list))
	for _, u := range list {
		out = append(out, auth.ToUsuarioResponse(u))
	}
	return out, nil
}

func (uc *UsuarioUseCase) Update(id string, in dto.UpdateUsuarioRequest) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	if in.Rol != nil {
		switch *in.Rol {
		case entity.RolAdmin, entity.RolFarmaceutico, entity.RolAlmacenero:
			u.Rol = *in.Rol
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if in.Estado != nil {
		switch *in.Estado {
		case "activo", "inactivo":
			u.Estado = *in.Estado
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if in.Password != nil {
		if *in.Password == "" {
			return nil, domain.ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}
	u.UpdatedAt = time.Now()
	if err := uc.repo.Update(u); err != nil {
		return nil, err
	}
	return auth.ToUsuarioResponse(u), nil
}

func (uc *UsuarioUseCase) Delete(id string) error {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}
