package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shreya-jain12/JainTriad/internal/domain/entity"
	"github.com/shreya-jain12/JainTriad/internal/domain/repository"
	"github.com/shreya-jain12/JainTriad/internal/i18n"
	"github.com/shreya-jain12/JainTriad/pkg/apperror"
	"github.com/shreya-jain12/JainTriad/pkg/money"
)

// CustomerService handles customer directory operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
	billRepo     repository.BillRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository, billRepo repository.BillRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo, billRepo: billRepo}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

// CreateCustomer adds a customer. Name is required after trimming; the
// other fields are free-form, empty included.
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewFieldError("name", "Name is required")
	}

	customer := &entity.Customer{
		Name:    name,
		Phone:   input.Phone,
		Email:   input.Email,
		Address: input.Address,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// GetCustomer retrieves the customer at index
func (s *CustomerService) GetCustomer(ctx context.Context, index int) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByIndex(ctx, index)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers returns customers matching search (all of them when
// search is empty), in insertion order.
func (s *CustomerService) ListCustomers(ctx context.Context, search string) ([]entity.Customer, error) {
	customers := []entity.Customer{}
	for c := range s.customerRepo.Search(ctx, search) {
		customers = append(customers, c)
	}
	return customers, nil
}

// DeleteCustomer removes the customer at index along with every bill in
// their name, and reports how many bills went with them.
func (s *CustomerService) DeleteCustomer(ctx context.Context, index int) (int, error) {
	removed, err := s.customerRepo.DeleteWithBills(ctx, index)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, apperror.NewNotFoundError("Customer")
		}
		return 0, err
	}
	return removed, nil
}

// CustomerExport is a rendered per-customer document and its download name.
type CustomerExport struct {
	Filename string
	Body     string
}

// ExportDetails renders the customer's record plus a condensed list of
// their bills (date, total, status only) as plain text.
func (s *CustomerService) ExportDetails(ctx context.Context, index int, lang i18n.Lang) (*CustomerExport, error) {
	customer, err := s.GetCustomer(ctx, index)
	if err != nil {
		return nil, err
	}

	bills, err := s.billRepo.ListByCustomer(ctx, customer.Name)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s\n", lang.T("name"), customer.Name)
	fmt.Fprintf(&sb, "%s: %s\n", lang.T("phone"), customer.Phone)
	fmt.Fprintf(&sb, "%s: %s\n", lang.T("email"), customer.Email)
	fmt.Fprintf(&sb, "%s: %s\n", lang.T("address"), customer.Address)
	fmt.Fprintf(&sb, "\n%s:\n", lang.T("past_bills"))
	for _, b := range bills {
		fmt.Fprintf(&sb, "- %s | ₹%s | %s\n", b.Date, money.Format(b.Total), b.Paid)
	}

	return &CustomerExport{
		Filename: customer.Name + "_details.txt",
		Body:     sb.String(),
	}, nil
}
