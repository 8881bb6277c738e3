// file: internals/features/sales/products/dto/product_sale_dto_test.go
package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "netku_backend/internals/features/sales/products/model"
)

func TestBuildInstallmentsSplitsEvenly(t *testing.T) {
	in := CreateProductSaleDTO{
		ProductSaleClientID:         uuid.New(),
		ProductSaleName:             "Router AX3000",
		ProductSaleTotalIDR:         900000,
		ProductSaleDate:             time.Date(2025, 10, 12, 0, 0, 0, 0, time.UTC),
		ProductSaleInstallmentCount: 3,
	}
	saleID := uuid.New()
	out := in.BuildInstallments(saleID)
	require.Len(t, out, 3)

	total := 0
	for i, ins := range out {
		assert.Equal(t, saleID, ins.ProductInstallmentSaleID)
		assert.Equal(t, in.ProductSaleClientID, ins.ProductInstallmentClientID)
		assert.Equal(t, i+1, ins.ProductInstallmentNo)
		assert.Equal(t, model.ProductInstallmentStatusPending, ins.ProductInstallmentStatus)
		total += ins.ProductInstallmentAmountIDR
	}
	assert.Equal(t, 900000, total)
	assert.Equal(t, 300000, out[0].ProductInstallmentAmountIDR)

	// default jatuh tempo: tanggal 5 bulan berikutnya, lalu bulanan
	assert.Equal(t, time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC), out[0].ProductInstallmentDueDate)
	assert.Equal(t, time.Date(2025, 12, 5, 0, 0, 0, 0, time.UTC), out[1].ProductInstallmentDueDate)
	assert.Equal(t, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), out[2].ProductInstallmentDueDate)
}

func TestBuildInstallmentsRemainderOnFirst(t *testing.T) {
	in := CreateProductSaleDTO{
		ProductSaleClientID:         uuid.New(),
		ProductSaleTotalIDR:         1000000,
		ProductSaleDate:             time.Date(2025, 10, 12, 0, 0, 0, 0, time.UTC),
		ProductSaleInstallmentCount: 3,
	}
	out := in.BuildInstallments(uuid.New())
	require.Len(t, out, 3)

	// 1000000 = 333334 + 333333 + 333333
	assert.Equal(t, 333334, out[0].ProductInstallmentAmountIDR)
	assert.Equal(t, 333333, out[1].ProductInstallmentAmountIDR)
	assert.Equal(t, 333333, out[2].ProductInstallmentAmountIDR)
}

func TestBuildInstallmentsExplicitFirstDue(t *testing.T) {
	firstDue := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	in := CreateProductSaleDTO{
		ProductSaleClientID:         uuid.New(),
		ProductSaleTotalIDR:         200000,
		ProductSaleDate:             time.Date(2025, 10, 12, 0, 0, 0, 0, time.UTC),
		ProductSaleInstallmentCount: 2,
		FirstDueDate:                &firstDue,
	}
	out := in.BuildInstallments(uuid.New())
	require.Len(t, out, 2)
	assert.Equal(t, firstDue, out[0].ProductInstallmentDueDate)
	assert.Equal(t, firstDue.AddDate(0, 1, 0), out[1].ProductInstallmentDueDate)
}
