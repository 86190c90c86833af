package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/omondig/pulseboard-api/internal/domain/entity"
	"github.com/omondig/pulseboard-api/internal/domain/enum"
	"github.com/omondig/pulseboard-api/internal/domain/repository"
	"github.com/omondig/pulseboard-api/pkg/apperror"
)

// CustomerService handles customer-related operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Name    string
	Email   string
	Phone   *string
	Company *string
	Status  *string
	Notes   *string
}

// CreateCustomer creates a new customer
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	existing, err := s.customerRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A customer with this email already exists")
	}

	status := enum.CustomerStatusActive
	if input.Status != nil {
		status = enum.CustomerStatus(*input.Status)
		if !status.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid customer status")
		}
	}

	customer := &entity.Customer{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Company: input.Company,
		Status:  status,
		Notes:   input.Notes,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers lists customers, optionally filtered by a name/email/company
// search and by status
func (s *CustomerService) ListCustomers(ctx context.Context, search string, status string) ([]entity.Customer, error) {
	var statusFilter *enum.CustomerStatus
	if status != "" {
		parsed := enum.CustomerStatus(status)
		if !parsed.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid customer status")
		}
		statusFilter = &parsed
	}

	return s.customerRepo.List(ctx, search, statusFilter)
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	ID      uuid.UUID
	Name    *string
	Email   *string
	Phone   *string
	Company *string
	Status  *string
	Notes   *string
}

// UpdateCustomer applies a partial update to a customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.Email != nil && *input.Email != customer.Email {
		existing, err := s.customerRepo.GetByEmail(ctx, *input.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != customer.ID {
			return nil, apperror.NewConflictError("A customer with this email already exists")
		}
		customer.Email = *input.Email
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Phone != nil {
		customer.Phone = input.Phone
	}
	if input.Company != nil {
		customer.Company = input.Company
	}
	if input.Status != nil {
		status := enum.CustomerStatus(*input.Status)
		if !status.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid customer status")
		}
		customer.Status = status
	}
	if input.Notes != nil {
		customer.Notes = input.Notes
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// DeleteCustomer deletes a customer
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}

	return s.customerRepo.Delete(ctx, id)
}
