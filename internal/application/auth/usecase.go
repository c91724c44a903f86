package auth

import (
	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
	"github.com/jhoicas/clientes-api/pkg/jwt"
	"github.com/jhoicas/clientes-api/pkg/password"
)

// UseCase caso de uso de autenticación: verifica credenciales y emite
// tokens. No distingue "login inexistente" de "password incorrecta" para
// impedir enumeración de logins.
type UseCase struct {
	users  repository.UserRepository
	tokens *jwt.Service
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(users repository.UserRepository, tokens *jwt.Service) *UseCase {
	return &UseCase{users: users, tokens: tokens}
}

// Authenticate busca el usuario por login y verifica la password.
// Devuelve (nil, nil) tanto si el login no existe como si la password no
// coincide; los errores del store se propagan sin tragar.
func (uc *UseCase) Authenticate(login, plain string) (*entity.User, error) {
	user, err := uc.users.FindByLogin(login)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if !password.Verify(plain, user.PasswordHash) {
		return nil, nil
	}
	return user, nil
}

// Login autentica y emite un token con el ID del usuario como subject.
// Credenciales que no autentican devuelven domain.ErrInvalidCredentials,
// idéntico en ambos casos.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Login == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.Authenticate(in.Login, in.Password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := uc.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  dto.UserResponse{ID: user.ID, Name: user.Name, Login: user.Login},
	}, nil
}

// Profile devuelve el usuario detrás de un subject ya autorizado por el
// guard; ErrNotFound si el usuario fue borrado después de emitir el token.
func (uc *UseCase) Profile(userID int64) (*dto.UserResponse, error) {
	user, err := uc.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.UserResponse{ID: user.ID, Name: user.Name, Login: user.Login}, nil
}
