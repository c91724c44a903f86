package dto

// AddressRequest dirección dentro de un create/update de cliente.
type AddressRequest struct {
	Street  string `json:"street"`
	Number  string `json:"number"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

// CustomerRequest entrada para crear o actualizar un cliente. En update,
// Addresses es el set deseado completo: se reemplaza todo, no se mezcla.
type CustomerRequest struct {
	Name       string           `json:"name"`
	BirthDate  string           `json:"birth_date"` // YYYY-MM-DD
	TaxID      string           `json:"tax_id"`
	IDDocument string           `json:"id_document"`
	Phone      string           `json:"phone"`
	Addresses  []AddressRequest `json:"addresses"`
}

// AddressResponse salida de una dirección.
type AddressResponse struct {
	ID         int64  `json:"id"`
	CustomerID int64  `json:"customer_id"`
	Street     string `json:"street"`
	Number     string `json:"number,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zip_code"`
}

// CustomerResponse salida de un cliente con sus direcciones.
type CustomerResponse struct {
	ID         int64             `json:"id"`
	Name       string            `json:"name"`
	BirthDate  string            `json:"birth_date"`
	TaxID      string            `json:"tax_id"`
	IDDocument string            `json:"id_document,omitempty"`
	Phone      string            `json:"phone,omitempty"`
	Addresses  []AddressResponse `json:"addresses"`
}
