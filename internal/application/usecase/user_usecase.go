package usecase

import (
	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
	"github.com/jhoicas/clientes-api/pkg/password"
)

// UserUseCase casos de uso CRUD de usuarios.
type UserUseCase struct {
	users repository.UserRepository
}

// NewUserUseCase construye el caso de uso de usuarios.
func NewUserUseCase(users repository.UserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

// Create hashea la password y persiste el usuario. La unicidad del login
// es reactiva: si el constraint salta, sube domain.ErrLoginAlreadyExists.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Name == "" || in.Login == "" || len(in.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}
	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	user := &entity.User{Name: in.Name, Login: in.Login, PasswordHash: hash}
	if _, err := uc.users.Save(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetByID devuelve el usuario o domain.ErrNotFound.
func (uc *UserUseCase) GetByID(id int64) (*dto.UserResponse, error) {
	user, err := uc.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return toUserResponse(user), nil
}

// List devuelve todos los usuarios ordenados por nombre.
func (uc *UserUseCase) List() ([]*dto.UserResponse, error) {
	users, err := uc.users.FindAll()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

// Update sobrescribe nombre y login; la password solo si viene no vacía.
func (uc *UserUseCase) Update(id int64, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if in.Name == "" || in.Login == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	user.Name = in.Name
	user.Login = in.Login
	if in.Password != "" {
		if len(in.Password) < 8 {
			return nil, domain.ErrInvalidInput
		}
		hash, err := password.Hash(in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if err := uc.users.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete borra el usuario; domain.ErrNotFound si no existía.
func (uc *UserUseCase) Delete(id int64) error {
	deleted, err := uc.users.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{ID: u.ID, Name: u.Name, Login: u.Login}
}
