package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omondig/pulseboard-api/internal/application/service"
	"github.com/omondig/pulseboard-api/internal/domain/entity"
	"github.com/omondig/pulseboard-api/internal/domain/enum"
	"github.com/omondig/pulseboard-api/pkg/apperror"
)

func newOrderServiceFixture() (*service.OrderService, *fakeOrderRepo, *fakeCustomerRepo, *fakeProductRepo) {
	orderRepo := &fakeOrderRepo{}
	customerRepo := &fakeCustomerRepo{}
	productRepo := &fakeProductRepo{}
	svc := service.NewOrderService(orderRepo, customerRepo, productRepo)
	return svc, orderRepo, customerRepo, productRepo
}

func seedCustomer(repo *fakeCustomerRepo, name string) *entity.Customer {
	customer := &entity.Customer{
		ID:    uuid.New(),
		Name:  name,
		Email: name + "@example.com",
	}
	repo.customers = append(repo.customers, *customer)
	return customer
}

func seedProduct(repo *fakeProductRepo, name, category string, priceCents int64) *entity.Product {
	product := &entity.Product{
		ID:       uuid.New(),
		Name:     name,
		Category: category,
		Price:    priceCents,
	}
	repo.products = append(repo.products, *product)
	return product
}

func TestCreateOrderDenormalizesProductData(t *testing.T) {
	svc, _, customerRepo, productRepo := newOrderServiceFixture()
	customer := seedCustomer(customerRepo, "Alice Johnson")
	plan := seedProduct(productRepo, "Premium Plan", "subscriptions", 9900)
	dock := seedProduct(productRepo, "USB-C Dock", "hardware", 8550)

	order, err := svc.CreateOrder(context.Background(), &service.CreateOrderInput{
		CustomerID: customer.ID,
		Items: []service.OrderItemInput{
			{ProductID: plan.ID, Quantity: 2},
			{ProductID: dock.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Alice Johnson", order.CustomerName)
	assert.Equal(t, enum.OrderStatusPaid, order.Status)
	assert.False(t, order.OrderDate.IsZero())

	require.Len(t, order.Items, 2)
	assert.Equal(t, "Premium Plan", order.Items[0].ProductName)
	assert.Equal(t, "subscriptions", order.Items[0].Category)
	assert.Equal(t, int64(9900), order.Items[0].Price)
	assert.Equal(t, "hardware", order.Items[1].Category)

	// 2 * 99.00 + 1 * 85.50
	assert.Equal(t, int64(28350), order.Total)
}

func TestCreateOrderHonorsOverrides(t *testing.T) {
	svc, _, customerRepo, productRepo := newOrderServiceFixture()
	customer := seedCustomer(customerRepo, "Bob Stone")
	plan := seedProduct(productRepo, "Premium Plan", "subscriptions", 9900)

	price := 12.5
	category := "promotions"
	orderDate := time.Date(2025, 11, 3, 9, 30, 0, 0, time.UTC)
	status := "pending"

	order, err := svc.CreateOrder(context.Background(), &service.CreateOrderInput{
		CustomerID: customer.ID,
		Status:     &status,
		OrderDate:  &orderDate,
		Items: []service.OrderItemInput{
			{ProductID: plan.ID, Quantity: 3, Price: &price, Category: &category},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, enum.OrderStatusPending, order.Status)
	assert.Equal(t, orderDate, order.OrderDate)
	assert.Equal(t, int64(1250), order.Items[0].Price)
	assert.Equal(t, "promotions", order.Items[0].Category)
	assert.Equal(t, int64(3750), order.Total)
}

func TestCreateOrderUnknownCustomer(t *testing.T) {
	svc, _, _, productRepo := newOrderServiceFixture()
	plan := seedProduct(productRepo, "Premium Plan", "subscriptions", 9900)

	_, err := svc.CreateOrder(context.Background(), &service.CreateOrderInput{
		CustomerID: uuid.New(),
		Items:      []service.OrderItemInput{{ProductID: plan.ID, Quantity: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestCreateOrderUnknownProduct(t *testing.T) {
	svc, _, customerRepo, _ := newOrderServiceFixture()
	customer := seedCustomer(customerRepo, "Carol Mwangi")
	missing := uuid.New()

	_, err := svc.CreateOrder(context.Background(), &service.CreateOrderInput{
		CustomerID: customer.ID,
		Items:      []service.OrderItemInput{{ProductID: missing, Quantity: 1}},
	})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
	assert.Contains(t, appErr.Message, missing.String())
}

func TestCreateOrderRejectsInvalidStatus(t *testing.T) {
	svc, _, customerRepo, productRepo := newOrderServiceFixture()
	customer := seedCustomer(customerRepo, "Alice Johnson")
	plan := seedProduct(productRepo, "Premium Plan", "subscriptions", 9900)

	status := "delivered"
	_, err := svc.CreateOrder(context.Background(), &service.CreateOrderInput{
		CustomerID: customer.ID,
		Status:     &status,
		Items:      []service.OrderItemInput{{ProductID: plan.ID, Quantity: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestCreateOrderRejectsZeroQuantity(t *testing.T) {
	svc, _, customerRepo, productRepo := newOrderServiceFixture()
	customer := seedCustomer(customerRepo, "Alice Johnson")
	plan := seedProduct(productRepo, "Premium Plan", "subscriptions", 9900)

	_, err := svc.CreateOrder(context.Background(), &service.CreateOrderInput{
		CustomerID: customer.ID,
		Items:      []service.OrderItemInput{{ProductID: plan.ID, Quantity: 0}},
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestUpdateOrderReplacesItemsAndRecomputesTotal(t *testing.T) {
	svc, orderRepo, customerRepo, productRepo := newOrderServiceFixture()
	customer := seedCustomer(customerRepo, "Alice Johnson")
	plan := seedProduct(productRepo, "Premium Plan", "subscriptions", 9900)
	keyboard := seedProduct(productRepo, "Mechanical Keyboard", "hardware", 12000)

	order, err := svc.CreateOrder(context.Background(), &service.CreateOrderInput{
		CustomerID: customer.ID,
		Items:      []service.OrderItemInput{{ProductID: plan.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	require.Equal(t, int64(9900), order.Total)

	updated, err := svc.UpdateOrder(context.Background(), &service.UpdateOrderInput{
		ID:    order.ID,
		Items: []service.OrderItemInput{{ProductID: keyboard.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(24000), updated.Total)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, "Mechanical Keyboard", updated.Items[0].ProductName)

	require.NotNil(t, orderRepo.lastUpdated)
	assert.Len(t, orderRepo.lastUpdated.Items, 1)
}

func TestUpdateOrderWithoutItemsKeepsStoredLines(t *testing.T) {
	svc, orderRepo, customerRepo, productRepo := newOrderServiceFixture()
	customer := seedCustomer(customerRepo, "Alice Johnson")
	plan := seedProduct(productRepo, "Premium Plan", "subscriptions", 9900)

	order, err := svc.CreateOrder(context.Background(), &service.CreateOrderInput{
		CustomerID: customer.ID,
		Items:      []service.OrderItemInput{{ProductID: plan.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	status := "refunded"
	updated, err := svc.UpdateOrder(context.Background(), &service.UpdateOrderInput{
		ID:     order.ID,
		Status: &status,
	})
	require.NoError(t, err)

	assert.Equal(t, enum.OrderStatusRefunded, updated.Status)
	assert.Equal(t, int64(9900), updated.Total)
	require.Len(t, updated.Items, 1)

	// The repository saw a nil Items slice, the keep-existing signal
	require.NotNil(t, orderRepo.lastUpdated)
	assert.Nil(t, orderRepo.lastUpdated.Items)
}

func TestUpdateOrderReassignsCustomer(t *testing.T) {
	svc, _, customerRepo, productRepo := newOrderServiceFixture()
	alice := seedCustomer(customerRepo, "Alice Johnson")
	bob := seedCustomer(customerRepo, "Bob Stone")
	plan := seedProduct(productRepo, "Premium Plan", "subscriptions", 9900)

	order, err := svc.CreateOrder(context.Background(), &service.CreateOrderInput{
		CustomerID: alice.ID,
		Items:      []service.OrderItemInput{{ProductID: plan.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateOrder(context.Background(), &service.UpdateOrderInput{
		ID:         order.ID,
		CustomerID: &bob.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, bob.ID, updated.CustomerID)
	assert.Equal(t, "Bob Stone", updated.CustomerName)
}

func TestListOrdersValidatesStatus(t *testing.T) {
	svc, _, _, _ := newOrderServiceFixture()

	_, err := svc.ListOrders(context.Background(), "delivered", nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestListOrdersFillsMissingCustomerName(t *testing.T) {
	svc, orderRepo, _, _ := newOrderServiceFixture()
	orderRepo.orders = []entity.Order{
		{ID: uuid.New(), CustomerID: uuid.New(), Status: enum.OrderStatusPaid},
	}

	orders, err := svc.ListOrders(context.Background(), "", nil)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "—", orders[0].CustomerName)
}

func TestDeleteOrderNotFound(t *testing.T) {
	svc, _, _, _ := newOrderServiceFixture()

	err := svc.DeleteOrder(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}
