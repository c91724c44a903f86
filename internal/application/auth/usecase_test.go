package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/clientes-api/internal/application/auth"
	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/pkg/jwt"
	"github.com/jhoicas/clientes-api/pkg/password"
)

// fakeUserRepo repositorio en memoria para aislar el caso de uso del store.
type fakeUserRepo struct {
	users map[string]*entity.User // por login
	err   error                   // si está seteado, toda operación falla con él
}

func (f *fakeUserRepo) Save(u *entity.User) (int64, error) { return 0, f.err }
func (f *fakeUserRepo) FindByID(id int64) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) FindByLogin(login string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[login], nil
}
func (f *fakeUserRepo) FindAll() ([]*entity.User, error) { return nil, f.err }
func (f *fakeUserRepo) Update(u *entity.User) error      { return f.err }
func (f *fakeUserRepo) Delete(id int64) (bool, error)    { return false, f.err }

func newTestUseCase(t *testing.T, repo *fakeUserRepo) (*auth.UseCase, *jwt.Service) {
	t.Helper()
	tokens, err := jwt.NewService("secret-de-test", time.Hour, "clientes-api-test")
	require.NoError(t, err)
	return auth.NewUseCase(repo, tokens), tokens
}

func repoWithUser(t *testing.T, login, plain string) *fakeUserRepo {
	t.Helper()
	hash, err := password.Hash(plain)
	require.NoError(t, err)
	return &fakeUserRepo{users: map[string]*entity.User{
		login: {ID: 42, Name: "María", Login: login, PasswordHash: hash},
	}}
}

func TestLogin_CredencialesCorrectas(t *testing.T) {
	repo := repoWithUser(t, "maria", "password-valida")
	uc, tokens := newTestUseCase(t, repo)

	out, err := uc.Login(dto.LoginRequest{Login: "maria", Password: "password-valida"})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, int64(42), out.User.ID)
	assert.Equal(t, "maria", out.User.Login)

	// El token emitido debe validar y llevar el ID del usuario como subject.
	subject, err := tokens.Validate(out.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), subject)
}

func TestLogin_FallasIndistinguibles(t *testing.T) {
	// Password incorrecta y login inexistente deben producir exactamente el
	// mismo resultado, sin pista de cuál fue el caso.
	repo := repoWithUser(t, "maria", "password-valida")
	uc, _ := newTestUseCase(t, repo)

	outWrongPass, errWrongPass := uc.Login(dto.LoginRequest{Login: "maria", Password: "incorrecta"})
	outNoUser, errNoUser := uc.Login(dto.LoginRequest{Login: "no-existe", Password: "incorrecta"})

	assert.Nil(t, outWrongPass)
	assert.Nil(t, outNoUser)
	assert.ErrorIs(t, errWrongPass, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errNoUser, domain.ErrInvalidCredentials)
	assert.Equal(t, errWrongPass, errNoUser, "ambas fallas deben ser idénticas")
}

func TestAuthenticate_SinPrincipalEnAmbosCasos(t *testing.T) {
	repo := repoWithUser(t, "maria", "password-valida")
	uc, _ := newTestUseCase(t, repo)

	u1, err1 := uc.Authenticate("maria", "incorrecta")
	u2, err2 := uc.Authenticate("no-existe", "lo-que-sea")

	assert.Nil(t, u1)
	assert.Nil(t, u2)
	assert.NoError(t, err1)
	assert.NoError(t, err2)
}

func TestAuthenticate_ErrorDelStoreSePropaga(t *testing.T) {
	storeErr := errors.New("conexión rechazada")
	uc, _ := newTestUseCase(t, &fakeUserRepo{err: storeErr})

	_, err := uc.Authenticate("maria", "password")
	assert.ErrorIs(t, err, storeErr, "las fallas del store no se tragan ni se disfrazan")
}

func TestLogin_EntradaIncompleta(t *testing.T) {
	uc, _ := newTestUseCase(t, &fakeUserRepo{})

	_, err := uc.Login(dto.LoginRequest{Login: "", Password: "algo"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Login(dto.LoginRequest{Login: "maria", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProfile_UsuarioBorrado(t *testing.T) {
	uc, _ := newTestUseCase(t, &fakeUserRepo{users: map[string]*entity.User{}})

	_, err := uc.Profile(99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
