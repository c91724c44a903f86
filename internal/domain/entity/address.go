package entity

// Address dirección de un cliente. CustomerID la estampa el repositorio
// dentro de la misma transacción que persiste al Customer.
type Address struct {
	ID         int64
	CustomerID int64
	Street     string
	Number     string // opcional
	City       string
	State      string
	ZipCode    string
}
