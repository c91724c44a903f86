package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

func newUserMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestUserRepoSave_DevuelveIDGenerado(t *testing.T) {
	mock := newUserMock(t)
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("María", "maria", "hash-bcrypt").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(11)))

	repo := NewUserRepository(mock)
	user := &entity.User{Name: "María", Login: "maria", PasswordHash: "hash-bcrypt"}
	id, err := repo.Save(user)

	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
	assert.Equal(t, int64(11), user.ID, "el ID generado se estampa en la entidad")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepoSave_LoginDuplicado(t *testing.T) {
	// Estrategia reactiva: la violación del constraint UNIQUE se mapea al
	// error de dominio, sin pre-check.
	mock := newUserMock(t)
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Otra", "maria", "otro-hash").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	repo := NewUserRepository(mock)
	_, err := repo.Save(&entity.User{Name: "Otra", Login: "maria", PasswordHash: "otro-hash"})

	assert.ErrorIs(t, err, domain.ErrLoginAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepoSave_FallaDelStoreEnvuelta(t *testing.T) {
	mock := newUserMock(t)
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("María", "maria", "hash").
		WillReturnError(errors.New("conexión rechazada"))

	repo := NewUserRepository(mock)
	_, err := repo.Save(&entity.User{Name: "María", Login: "maria", PasswordHash: "hash"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "guardar usuario", "el error nombra la operación")
	assert.Contains(t, err.Error(), "conexión rechazada", "la causa original se preserva")
}

func TestUserRepoFindByLogin_NoExiste(t *testing.T) {
	mock := newUserMock(t)
	mock.ExpectQuery(`SELECT id, name, login, password_hash`).
		WithArgs("fantasma").
		WillReturnError(pgx.ErrNoRows)

	repo := NewUserRepository(mock)
	user, err := repo.FindByLogin("fantasma")

	require.NoError(t, err, "la ausencia no es un error")
	assert.Nil(t, user)
}

func TestUserRepoFindAll_OrdenPorNombre(t *testing.T) {
	mock := newUserMock(t)
	mock.ExpectQuery(`SELECT id, name, login, password_hash\s+FROM users ORDER BY name ASC`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "login", "password_hash"}).
			AddRow(int64(2), "Ana", "ana", "h1").
			AddRow(int64(1), "Bruno", "bruno", "h2"))

	repo := NewUserRepository(mock)
	list, err := repo.FindAll()

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Ana", list[0].Name)
	assert.Equal(t, "Bruno", list[1].Name)
}

func TestUserRepoDelete_ReportaExistencia(t *testing.T) {
	mock := newUserMock(t)
	mock.ExpectExec(`DELETE FROM users`).
		WithArgs(int64(5)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(`DELETE FROM users`).
		WithArgs(int64(99)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	repo := NewUserRepository(mock)

	deleted, err := repo.Delete(5)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(99)
	require.NoError(t, err)
	assert.False(t, deleted, "borrar un ID inexistente reporta false, no error")

	assert.NoError(t, mock.ExpectationsWereMet())
}
