// file: internals/features/finance/billing/service/aggregate_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateClientChargesFullMonth(t *testing.T) {
	p := mustPeriod(t, "oktober", 2025)

	out := AggregateClientCharges(p, ClientBillingInput{
		ClientID: uuid.New(),
		Installations: []InstallationInput{{
			InstalledAt:   date(2024, time.June, 1),
			MonthlyFeeIDR: 150000,
			ServiceActive: true,
		}},
	})

	assert.Equal(t, 150000, out.PlanAmountIDR)
	assert.False(t, out.Prorated)
	assert.Equal(t, DaysPerMonth, out.BilledDays)
	assert.Equal(t, DaysPerMonth, out.TotalDays)
	assert.Equal(t, 150000, out.SubtotalIDR())
}

func TestAggregateClientChargesProratedPlusAddOn(t *testing.T) {
	p := mustPeriod(t, "oktober", 2025)

	out := AggregateClientCharges(p, ClientBillingInput{
		Installations: []InstallationInput{{
			InstalledAt:   date(2025, time.October, 16),
			MonthlyFeeIDR: 45000,
			ServiceActive: true,
		}},
		AddOns: []AddOnInput{{
			Name:          "IP publik",
			MonthlyFeeIDR: 25000,
			Active:        true,
			StartDate:     date(2025, time.October, 20),
		}},
	})

	assert.True(t, out.Prorated)
	assert.Equal(t, 16, out.BilledDays)
	assert.Equal(t, 16*1500, out.PlanAmountIDR)
	// add-on tidak pernah prorata meski start di tengah bulan
	assert.Equal(t, 25000, out.AddOnAmountIDR)
}

func TestAggregateClientChargesAddOnOutsidePeriod(t *testing.T) {
	p := mustPeriod(t, "oktober", 2025)
	ended := date(2025, time.September, 15)

	out := AggregateClientCharges(p, ClientBillingInput{
		AddOns: []AddOnInput{
			{MonthlyFeeIDR: 25000, Active: true, StartDate: date(2025, time.November, 1)},
			{MonthlyFeeIDR: 30000, Active: true, StartDate: date(2025, time.January, 1), EndDate: &ended},
			{MonthlyFeeIDR: 40000, Active: false, StartDate: date(2025, time.January, 1)},
		},
	})

	assert.Zero(t, out.AddOnAmountIDR)
}

func TestAggregateClientChargesInstallmentPartition(t *testing.T) {
	p := mustPeriod(t, "oktober", 2025)
	saleDate := date(2025, time.August, 10)

	dueNow := InstallmentInput{
		ID: uuid.New(), SaleDate: saleDate,
		DueDate: date(2025, time.November, 5), AmountIDR: 50000, // tepat di grace boundary
	}
	future := InstallmentInput{
		ID: uuid.New(), SaleDate: saleDate,
		DueDate: date(2025, time.November, 6), AmountIDR: 50000,
	}
	fromFutureSale := InstallmentInput{
		ID: uuid.New(), SaleDate: date(2025, time.November, 10),
		DueDate: date(2025, time.December, 5), AmountIDR: 75000,
	}

	out := AggregateClientCharges(p, ClientBillingInput{
		PendingInstallments: []InstallmentInput{dueNow, future, fromFutureSale},
	})

	assert.Equal(t, 50000, out.InstallmentAmountIDR)
	require.Len(t, out.DueInstallmentIDs, 1)
	assert.Equal(t, dueNow.ID, out.DueInstallmentIDs[0])

	// termin selepas grace = provisioned, tampil di breakdown saja
	assert.Equal(t, 50000, out.FutureInstallmentAmountIDR)
	assert.Equal(t, 1, out.FutureInstallmentCount)

	// penjualan yang belum terjadi tidak diprovisikan sama sekali
	assert.NotContains(t, out.DueInstallmentIDs, fromFutureSale.ID)
}

func TestAggregateClientChargesTwoInstallationsMixed(t *testing.T) {
	p := mustPeriod(t, "oktober", 2025)

	out := AggregateClientCharges(p, ClientBillingInput{
		Installations: []InstallationInput{
			{InstalledAt: date(2024, time.January, 1), MonthlyFeeIDR: 150000, ServiceActive: true},
			{InstalledAt: date(2025, time.October, 16), MonthlyFeeIDR: 45000, ServiceActive: true},
		},
	})

	assert.Equal(t, 150000+16*1500, out.PlanAmountIDR)
	assert.True(t, out.Prorated)
	assert.Equal(t, 16, out.BilledDays)
}

func TestSumOutageCredits(t *testing.T) {
	discount, days := SumOutageCredits([]OutageCredit{
		{Days: 3, DiscountIDR: 4500},
		{Days: 2, DiscountIDR: 3000},
	})
	assert.Equal(t, 7500, discount)
	assert.Equal(t, 5, days)

	discount, days = SumOutageCredits(nil)
	assert.Zero(t, discount)
	assert.Zero(t, days)
}
