package usecase

import (
	"time"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

const birthDateLayout = "2006-01-02"

// CustomerUseCase casos de uso CRUD del agregado cliente + direcciones.
// La validación pasa acá: una entrada malformada nunca llega al store.
type CustomerUseCase struct {
	customers repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso de clientes.
func NewCustomerUseCase(customers repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{customers: customers}
}

// Create valida y persiste el cliente con sus direcciones (atómico).
func (uc *CustomerUseCase) Create(in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := toCustomerEntity(in)
	if err != nil {
		return nil, err
	}
	if _, err := uc.customers.Save(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID devuelve el cliente con direcciones o domain.ErrNotFound.
func (uc *CustomerUseCase) GetByID(id int64) (*dto.CustomerResponse, error) {
	customer, err := uc.customers.FindByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// List devuelve todos los clientes ordenados por nombre.
func (uc *CustomerUseCase) List() ([]*dto.CustomerResponse, error) {
	customers, err := uc.customers.FindAll()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Update reemplaza los campos del cliente y su set completo de direcciones.
// El caller debe mandar el set deseado entero; no hay merge parcial.
func (uc *CustomerUseCase) Update(id int64, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	existing, err := uc.customers.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	customer, err := toCustomerEntity(in)
	if err != nil {
		return nil, err
	}
	customer.ID = id
	if err := uc.customers.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete borra cliente y direcciones; domain.ErrNotFound si no existía.
func (uc *CustomerUseCase) Delete(id int64) error {
	deleted, err := uc.customers.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

// toCustomerEntity valida la entrada y la convierte a entidad de dominio.
func toCustomerEntity(in dto.CustomerRequest) (*entity.Customer, error) {
	if in.Name == "" || in.TaxID == "" {
		return nil, domain.ErrInvalidInput
	}
	birthDate, err := time.Parse(birthDateLayout, in.BirthDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	addresses := make([]entity.Address, 0, len(in.Addresses))
	for _, a := range in.Addresses {
		if a.Street == "" || a.City == "" || a.State == "" || a.ZipCode == "" {
			return nil, domain.ErrInvalidInput
		}
		addresses = append(addresses, entity.Address{
			Street:  a.Street,
			Number:  a.Number,
			City:    a.City,
			State:   a.State,
			ZipCode: a.ZipCode,
		})
	}
	return &entity.Customer{
		Name:       in.Name,
		BirthDate:  birthDate,
		TaxID:      in.TaxID,
		IDDocument: in.IDDocument,
		Phone:      in.Phone,
		Addresses:  addresses,
	}, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	addresses := make([]dto.AddressResponse, 0, len(c.Addresses))
	for _, a := range c.Addresses {
		addresses = append(addresses, dto.AddressResponse{
			ID:         a.ID,
			CustomerID: a.CustomerID,
			Street:     a.Street,
			Number:     a.Number,
			City:       a.City,
			State:      a.State,
			ZipCode:    a.ZipCode,
		})
	}
	return &dto.CustomerResponse{
		ID:         c.ID,
		Name:       c.Name,
		BirthDate:  c.BirthDate.Format(birthDateLayout),
		TaxID:      c.TaxID,
		IDDocument: c.IDDocument,
		Phone:      c.Phone,
		Addresses:  addresses,
	}
}
