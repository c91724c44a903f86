package repository

import "github.com/jhoicas/clientes-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para el agregado
// Customer + Addresses. Las escrituras son unidades de trabajo atómicas:
// o persiste todo (cliente y direcciones) o no persiste nada.
type CustomerRepository interface {
	// Save inserta el cliente y sus direcciones en una sola transacción y
	// devuelve el ID generado. El CustomerID de cada dirección se estampa
	// con el ID recién generado.
	Save(customer *entity.Customer) (int64, error)
	// FindByID carga el cliente con su colección completa de direcciones;
	// (nil, nil) si no existe.
	FindByID(id int64) (*entity.Customer, error)
	// FindAll devuelve los clientes ordenados por nombre ascendente, cada
	// uno con sus direcciones cargadas.
	FindAll() ([]*entity.Customer, error)
	// Update sobrescribe los campos del cliente y reemplaza el set completo
	// de direcciones (borra todas e inserta las provistas), en una sola
	// transacción. Requiere customer.ID.
	Update(customer *entity.Customer) error
	// Delete borra direcciones y cliente en la misma transacción.
	// Reporta si existía una fila de cliente que borrar.
	Delete(id int64) (bool, error)
}
