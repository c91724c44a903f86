package entity

import "time"

// Customer representa un cliente con sus direcciones. El cliente es dueño
// exclusivo de la colección: una Address no existe fuera de su Customer.
type Customer struct {
	ID         int64
	Name       string
	BirthDate  time.Time
	TaxID      string // CPF
	IDDocument string // RG, opcional
	Phone      string // opcional
	Addresses  []Address
}
