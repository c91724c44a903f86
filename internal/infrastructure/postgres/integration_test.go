package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/infrastructure/postgres"
)

// setupPool levanta un PostgreSQL efímero, aplica el esquema y devuelve un
// pool listo para los repos.
func setupPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("test de integración: requiere Docker")
	}

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("clientes_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	schema, err := os.ReadFile("schema.sql")
	require.NoError(t, err)
	_, err = pool.Exec(ctx, string(schema))
	require.NoError(t, err)

	return pool
}

func birthDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func TestIntegracionCustomerRepo_CicloDeVidaDelAgregado(t *testing.T) {
	pool := setupPool(t)
	repo := postgres.NewCustomerRepository(pool)

	customer := &entity.Customer{
		Name:      "Bruno Costa",
		BirthDate: birthDate(t, "1985-11-02"),
		TaxID:     "987.654.321-00",
		Addresses: []entity.Address{
			{Street: "Rua A", Number: "100", City: "São Paulo", State: "SP", ZipCode: "01000-000"},
			{Street: "Rua B", City: "Campinas", State: "SP", ZipCode: "13000-000"},
		},
	}

	// Save con N direcciones: findById devuelve exactamente N, todas con el
	// customer_id generado.
	id, err := repo.Save(customer)
	require.NoError(t, err)
	require.Positive(t, id)

	got, err := repo.FindByID(id)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Addresses, 2)
	for _, a := range got.Addresses {
		assert.Equal(t, id, a.CustomerID)
	}
	assert.Equal(t, "Bruno Costa", got.Name)

	// Update full-replace: de 2 direcciones a 1, el resultado son
	// exactamente las del set nuevo.
	got.Addresses = []entity.Address{
		{Street: "Rua Nova", City: "Santos", State: "SP", ZipCode: "11000-000"},
	}
	got.Phone = "+55 13 98888-7777"
	require.NoError(t, repo.Update(got))

	updated, err := repo.FindByID(id)
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Len(t, updated.Addresses, 1)
	assert.Equal(t, "Rua Nova", updated.Addresses[0].Street)
	assert.Equal(t, "+55 13 98888-7777", updated.Phone)

	// Delete: true para existente, luego findById devuelve ausencia y las
	// direcciones quedaron borradas en la misma transacción.
	deleted, err := repo.Delete(id)
	require.NoError(t, err)
	assert.True(t, deleted)

	gone, err := repo.FindByID(id)
	require.NoError(t, err)
	assert.Nil(t, gone)

	var addressCount int
	require.NoError(t, pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM addresses WHERE customer_id = $1`, id).Scan(&addressCount))
	assert.Zero(t, addressCount, "la cascada corre en la misma unidad de trabajo")

	// Delete de un ID inexistente reporta false.
	deleted, err = repo.Delete(id)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestIntegracionCustomerRepo_FindAllOrdenadoPorNombre(t *testing.T) {
	pool := setupPool(t)
	repo := postgres.NewCustomerRepository(pool)

	for _, name := range []string{"Carla", "Ana", "Bruno"} {
		_, err := repo.Save(&entity.Customer{
			Name:      name,
			BirthDate: birthDate(t, "1990-01-01"),
			TaxID:     "111.222.333-44",
			Addresses: []entity.Address{
				{Street: "Rua de " + name, City: "São Paulo", State: "SP", ZipCode: "01000-000"},
			},
		})
		require.NoError(t, err)
	}

	list, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Ana", list[0].Name)
	assert.Equal(t, "Bruno", list[1].Name)
	assert.Equal(t, "Carla", list[2].Name)
	for _, c := range list {
		assert.Len(t, c.Addresses, 1)
	}
}

func TestIntegracionUserRepo_LoginUnico(t *testing.T) {
	pool := setupPool(t)
	repo := postgres.NewUserRepository(pool)

	_, err := repo.Save(&entity.User{Name: "María", Login: "maria", PasswordHash: "hash-1"})
	require.NoError(t, err)

	// Segundo save con el mismo login: el constraint dispara el error de
	// dominio y no queda fila nueva.
	_, err = repo.Save(&entity.User{Name: "Otra María", Login: "maria", PasswordHash: "hash-2"})
	assert.ErrorIs(t, err, domain.ErrLoginAlreadyExists)

	list, err := repo.FindAll()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestIntegracionUserRepo_CRUD(t *testing.T) {
	pool := setupPool(t)
	repo := postgres.NewUserRepository(pool)

	id, err := repo.Save(&entity.User{Name: "María", Login: "maria", PasswordHash: "hash"})
	require.NoError(t, err)

	byLogin, err := repo.FindByLogin("maria")
	require.NoError(t, err)
	require.NotNil(t, byLogin)
	assert.Equal(t, id, byLogin.ID)

	byLogin.Name = "María Eduarda"
	byLogin.Login = "meduarda"
	require.NoError(t, repo.Update(byLogin))

	updated, err := repo.FindByID(id)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "María Eduarda", updated.Name)
	assert.Equal(t, "meduarda", updated.Login)

	missing, err := repo.FindByLogin("maria")
	require.NoError(t, err)
	assert.Nil(t, missing)

	deleted, err := repo.Delete(id)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(id)
	require.NoError(t, err)
	assert.False(t, deleted)
}
