package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
// Tabla única; la unicidad del login la garantiza el constraint UNIQUE
// (estrategia reactiva, sin pre-check que abra ventana de carrera).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Save inserta el usuario y devuelve el ID generado por la base.
func (r *UserRepo) Save(user *entity.User) (int64, error) {
	query := `
		INSERT INTO users (name, login, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		user.Name, user.Login, user.PasswordHash,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrLoginAlreadyExists
		}
		return 0, fmt.Errorf("guardar usuario: %w", err)
	}
	user.ID = id
	return id, nil
}

// FindByID obtiene un usuario por ID; (nil, nil) si no existe.
func (r *UserRepo) FindByID(id int64) (*entity.User, error) {
	query := `
		SELECT id, name, login, password_hash
		FROM users WHERE id = $1`
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&u.ID, &u.Name, &u.Login, &u.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar usuario por id: %w", err)
	}
	return &u, nil
}

// FindByLogin obtiene un usuario por login; (nil, nil) si no existe.
func (r *UserRepo) FindByLogin(login string) (*entity.User, error) {
	query := `
		SELECT id, name, login, password_hash
		FROM users WHERE login = $1`
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, login).Scan(
		&u.ID, &u.Name, &u.Login, &u.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar usuario por login: %w", err)
	}
	return &u, nil
}

// FindAll lista todos los usuarios ordenados por nombre ascendente.
func (r *UserRepo) FindAll() ([]*entity.User, error) {
	query := `
		SELECT id, name, login, password_hash
		FROM users ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Login, &u.PasswordHash); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}
	return list, nil
}

// Update sobrescribe nombre, login y hash del usuario.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET name = $2, login = $3, password_hash = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Name, user.Login, user.PasswordHash,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrLoginAlreadyExists
		}
		return fmt.Errorf("actualizar usuario: %w", err)
	}
	return nil
}

// Delete borra un usuario por ID y reporta si existía.
func (r *UserRepo) Delete(id int64) (bool, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("borrar usuario: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
