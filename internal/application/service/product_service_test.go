package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omondig/pulseboard-api/internal/application/service"
	"github.com/omondig/pulseboard-api/pkg/apperror"
)

func TestCreateProductStoresPriceInCents(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := service.NewProductService(repo)

	product, err := svc.CreateProduct(context.Background(), &service.CreateProductInput{
		Name:     "Mechanical Keyboard",
		Price:    19.99,
		Category: "hardware",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1999), product.Price)
	assert.Equal(t, 19.99, product.GetPriceDecimal())
	assert.True(t, product.InStock)
}

func TestCreateProductRejectsNegativePrice(t *testing.T) {
	svc := service.NewProductService(&fakeProductRepo{})

	_, err := svc.CreateProduct(context.Background(), &service.CreateProductInput{
		Name:  "Mechanical Keyboard",
		Price: -1,
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestCreateProductExplicitOutOfStock(t *testing.T) {
	svc := service.NewProductService(&fakeProductRepo{})

	inStock := false
	product, err := svc.CreateProduct(context.Background(), &service.CreateProductInput{
		Name:    "USB-C Dock",
		Price:   85.5,
		InStock: &inStock,
	})
	require.NoError(t, err)

	assert.False(t, product.InStock)
	assert.Equal(t, int64(8550), product.Price)
}

func TestUpdateProductPartial(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := service.NewProductService(repo)

	created, err := svc.CreateProduct(context.Background(), &service.CreateProductInput{
		Name:     "Starter Plan",
		Price:    29,
		Category: "subscriptions",
	})
	require.NoError(t, err)

	price := 34.5
	updated, err := svc.UpdateProduct(context.Background(), &service.UpdateProductInput{
		ID:    created.ID,
		Price: &price,
	})
	require.NoError(t, err)

	assert.Equal(t, "Starter Plan", updated.Name)
	assert.Equal(t, "subscriptions", updated.Category)
	assert.Equal(t, int64(3450), updated.Price)
}

func TestGetProductNotFound(t *testing.T) {
	svc := service.NewProductService(&fakeProductRepo{})

	_, err := svc.GetProduct(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestDeleteProductNotFound(t *testing.T) {
	svc := service.NewProductService(&fakeProductRepo{})

	err := svc.DeleteProduct(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}
