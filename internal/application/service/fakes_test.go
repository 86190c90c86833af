package service_test

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/omondig/pulseboard-api/internal/domain/entity"
	"github.com/omondig/pulseboard-api/internal/domain/enum"
	"github.com/omondig/pulseboard-api/internal/domain/repository"
)

// In-memory stand-ins for the repositories, just enough behavior for the
// service tests. Setting err makes every call fail with it.

type fakeCustomerRepo struct {
	customers []entity.Customer
	err       error
}

func (f *fakeCustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	if f.err != nil {
		return f.err
	}
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	f.customers = append(f.customers, *customer)
	return nil
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.customers {
		if f.customers[i].ID == id {
			c := f.customers[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) GetByEmail(_ context.Context, email string) (*entity.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.customers {
		if f.customers[i].Email == email {
			c := f.customers[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) Update(_ context.Context, customer *entity.Customer) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.customers {
		if f.customers[i].ID == customer.ID {
			f.customers[i] = *customer
			return nil
		}
	}
	return nil
}

func (f *fakeCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.customers {
		if f.customers[i].ID == id {
			f.customers = append(f.customers[:i], f.customers[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeCustomerRepo) List(_ context.Context, _ string, _ *enum.CustomerStatus) ([]entity.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.customers, nil
}

type fakeProductRepo struct {
	products []entity.Product
	err      error
}

func (f *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	if f.err != nil {
		return f.err
	}
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	f.products = append(f.products, *product)
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.products {
		if f.products[i].ID == id {
			p := f.products[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	found := make([]entity.Product, 0, len(ids))
	for _, id := range ids {
		for i := range f.products {
			if f.products[i].ID == id {
				found = append(found, f.products[i])
				break
			}
		}
	}
	return found, nil
}

func (f *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.products {
		if f.products[i].ID == product.ID {
			f.products[i] = *product
			return nil
		}
	}
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.products {
		if f.products[i].ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeProductRepo) List(_ context.Context, _ string, _ string) ([]entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

type fakeOrderRepo struct {
	orders []entity.Order
	err    error

	lastUpdated *entity.Order
}

func (f *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	if f.err != nil {
		return f.err
	}
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	f.orders = append(f.orders, *order)
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.orders {
		if f.orders[i].ID == id {
			o := f.orders[i]
			return &o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderRepo) Update(_ context.Context, order *entity.Order) error {
	if f.err != nil {
		return f.err
	}
	clone := *order
	f.lastUpdated = &clone
	for i := range f.orders {
		if f.orders[i].ID == order.ID {
			items := f.orders[i].Items
			f.orders[i] = *order
			if order.Items == nil {
				f.orders[i].Items = items
			}
			return nil
		}
	}
	return nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders = append(f.orders[:i], f.orders[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeOrderRepo) List(_ context.Context, params *repository.OrderFilterParams) ([]entity.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	matches := make([]entity.Order, 0, len(f.orders))
	for _, order := range f.orders {
		if params.Status != nil && order.Status != *params.Status {
			continue
		}
		if params.CustomerID != nil && order.CustomerID != *params.CustomerID {
			continue
		}
		matches = append(matches, order)
	}
	return matches, nil
}

type fakeAnalyticsRepo struct {
	orders []entity.Order
	err    error

	gotStart *time.Time
	gotEnd   *time.Time
}

func (f *fakeAnalyticsRepo) ListOrdersBetween(_ context.Context, startDate, endDate *time.Time) ([]entity.Order, error) {
	f.gotStart = startDate
	f.gotEnd = endDate
	if f.err != nil {
		return nil, f.err
	}
	return f.orders, nil
}

type fakeUserRepo struct {
	users     []entity.User
	createErr error
	getErr    error
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}
