package repository

import "github.com/botica-dev/botica-api/internal/domain/entity"

// UsuarioRepository puerto de persistencia para usuarios.
type UsuarioRepository interface {
	Create(u *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	GetByUsername(username string) (*entity.Usuario, error)
	List(limit, offset int) ([]*entity.Usuario, error)
	Update(u *entity.Usuario) error
	Delete(id string) error
}
