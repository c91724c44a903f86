package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación del agregado Customer + Addresses sobre
// PostgreSQL. Toda escritura es una transacción: Begin, statements,
// Commit; el Rollback diferido limpia ante cualquier falla intermedia.
// Las lecturas van sin transacción (staleness entre las dos queries
// aceptada por contrato).
type CustomerRepo struct {
	db DB
}

// NewCustomerRepository construye el adaptador. Recibe el pool (o un mock
// que sepa abrir transacciones).
func NewCustomerRepository(db DB) *CustomerRepo {
	return &CustomerRepo{db: db}
}

// Save inserta cliente y direcciones en una sola transacción y devuelve el
// ID generado por la base. El ID se estampa en cada dirección antes de su
// insert; si cualquier statement falla, nada queda persistido.
func (r *CustomerRepo) Save(customer *entity.Customer) (int64, error) {
	ctx := context.Background()
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("guardar cliente: begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		INSERT INTO customers (name, birth_date, tax_id, id_document, phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	var id int64
	err = tx.QueryRow(ctx, query,
		customer.Name, customer.BirthDate, customer.TaxID, customer.IDDocument, customer.Phone,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("guardar cliente: %w", err)
	}

	for i := range customer.Addresses {
		customer.Addresses[i].CustomerID = id
		if err := insertAddress(ctx, tx, &customer.Addresses[i]); err != nil {
			return 0, fmt.Errorf("guardar cliente: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("guardar cliente: commit: %w", err)
	}
	customer.ID = id
	return id, nil
}

// FindByID carga el cliente y su colección completa de direcciones;
// (nil, nil) si no existe.
func (r *CustomerRepo) FindByID(id int64) (*entity.Customer, error) {
	ctx := context.Background()
	query := `
		SELECT id, name, birth_date, tax_id, id_document, phone
		FROM customers WHERE id = $1`
	var c entity.Customer
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.BirthDate, &c.TaxID, &c.IDDocument, &c.Phone,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar cliente: %w", err)
	}
	c.Addresses, err = findAddressesByCustomerID(ctx, r.db, c.ID)
	if err != nil {
		return nil, fmt.Errorf("buscar cliente: %w", err)
	}
	return &c, nil
}

// FindAll lista los clientes ordenados por nombre ascendente y carga las
// direcciones de cada uno.
func (r *CustomerRepo) FindAll() ([]*entity.Customer, error) {
	ctx := context.Background()
	query := `
		SELECT id, name, birth_date, tax_id, id_document, phone
		FROM customers ORDER BY name ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.BirthDate, &c.TaxID, &c.IDDocument, &c.Phone); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	// Las filas deben consumirse antes de reusar la conexión para las
	// queries de direcciones.
	for _, c := range list {
		c.Addresses, err = findAddressesByCustomerID(ctx, r.db, c.ID)
		if err != nil {
			return nil, fmt.Errorf("listar clientes: %w", err)
		}
	}
	return list, nil
}

// Update sobrescribe los campos del cliente y reemplaza el set completo de
// direcciones (full-replace: borra todas e inserta las provistas), en una
// sola transacción.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	ctx := context.Background()
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("actualizar cliente: begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		UPDATE customers SET name = $2, birth_date = $3, tax_id = $4, id_document = $5, phone = $6
		WHERE id = $1`
	_, err = tx.Exec(ctx, query,
		customer.ID, customer.Name, customer.BirthDate, customer.TaxID, customer.IDDocument, customer.Phone,
	)
	if err != nil {
		return fmt.Errorf("actualizar cliente: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM addresses WHERE customer_id = $1`, customer.ID); err != nil {
		return fmt.Errorf("actualizar cliente: borrar direcciones: %w", err)
	}
	for i := range customer.Addresses {
		customer.Addresses[i].CustomerID = customer.ID
		if err := insertAddress(ctx, tx, &customer.Addresses[i]); err != nil {
			return fmt.Errorf("actualizar cliente: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("actualizar cliente: commit: %w", err)
	}
	return nil
}

// Delete borra direcciones y cliente dentro de la misma transacción y
// reporta si existía la fila de cliente.
func (r *CustomerRepo) Delete(id int64) (bool, error) {
	ctx := context.Background()
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("borrar cliente: begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM addresses WHERE customer_id = $1`, id); err != nil {
		return false, fmt.Errorf("borrar cliente: direcciones: %w", err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("borrar cliente: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("borrar cliente: commit: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// insertAddress persiste una dirección con el Querier dado (tx en
// escrituras del agregado) y estampa el ID generado.
func insertAddress(ctx context.Context, q Querier, a *entity.Address) error {
	query := `
		INSERT INTO addresses (customer_id, street, number, city, state, zip_code)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	if err := q.QueryRow(ctx, query,
		a.CustomerID, a.Street, a.Number, a.City, a.State, a.ZipCode,
	).Scan(&a.ID); err != nil {
		return fmt.Errorf("insert dirección: %w", err)
	}
	return nil
}

// findAddressesByCustomerID carga las direcciones de un cliente, siempre
// en el mismo orden de inserción.
func findAddressesByCustomerID(ctx context.Context, q Querier, customerID int64) ([]entity.Address, error) {
	query := `
		SELECT id, customer_id, street, number, city, state, zip_code
		FROM addresses WHERE customer_id = $1 ORDER BY id ASC`
	rows, err := q.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("listar direcciones: %w", err)
	}
	defer rows.Close()

	var list []entity.Address
	for rows.Next() {
		var a entity.Address
		if err := rows.Scan(&a.ID, &a.CustomerID, &a.Street, &a.Number, &a.City, &a.State, &a.ZipCode); err != nil {
			return nil, fmt.Errorf("scan dirección: %w", err)
		}
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listar direcciones: %w", err)
	}
	return list, nil
}
