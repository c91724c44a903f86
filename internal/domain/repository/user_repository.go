package repository

import "github.com/jhoicas/clientes-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// "No encontrado" se reporta como (nil, nil) / (false, nil), nunca como error.
type UserRepository interface {
	// Save inserta el usuario y devuelve el ID generado por la base.
	// Devuelve domain.ErrLoginAlreadyExists si el login ya está tomado.
	Save(user *entity.User) (int64, error)
	FindByID(id int64) (*entity.User, error)
	FindByLogin(login string) (*entity.User, error)
	// FindAll devuelve todos los usuarios ordenados por nombre ascendente.
	FindAll() ([]*entity.User, error)
	Update(user *entity.User) error
	// Delete reporta si existía una fila que borrar.
	Delete(id int64) (bool, error)
}
