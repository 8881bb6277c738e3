// file: internals/features/finance/billing/service/aggregate.go
package service

import (
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   Input aggregates (lanjutan) — add-on, cicilan, outage
========================================================= */

type AddOnInput struct {
	ID            uuid.UUID
	Name          string
	MonthlyFeeIDR int
	Active        bool // additional_service_status == active
	StartDate     time.Time
	EndDate       *time.Time
}

type InstallmentInput struct {
	ID        uuid.UUID
	SaleID    uuid.UUID
	SaleDate  time.Time
	DueDate   time.Time
	AmountIDR int
}

type OutageCredit struct {
	ID               uuid.UUID
	Days             int
	DiscountIDR      int
	AppliedPaymentID *uuid.UUID
}

// ClientBillingInput = semua data satu client yang dibutuhkan aggregator,
// hasil batch-load (bukan lazy relation).
type ClientBillingInput struct {
	ClientID      uuid.UUID
	ClientName    string
	Installations []InstallationInput
	AddOns        []AddOnInput
	// Cicilan status pending milik client (semua due date; dipartisi di sini)
	PendingInstallments []InstallmentInput
}

/* =========================================================
   Hasil agregasi per client — immutable, tanpa state bersama
========================================================= */

type ClientCharges struct {
	PlanAmountIDR int
	Prorated      bool
	BilledDays    int // hari tertagih porsi prorata; DaysPerMonth kalau full
	TotalDays     int

	AddOnAmountIDR int

	// Cicilan due_date <= grace boundary → ditagih sekarang
	InstallmentAmountIDR int
	DueInstallmentIDs    []uuid.UUID

	// Cicilan selepas grace boundary → provisioned future debt
	// (tampil di breakdown, tidak ditagih periode ini)
	FutureInstallmentAmountIDR int
	FutureInstallmentCount     int
}

// SubtotalIDR = plan + add-on + cicilan due (belum dipotong outage).
func (c ClientCharges) SubtotalIDR() int {
	return c.PlanAmountIDR + c.AddOnAmountIDR + c.InstallmentAmountIDR
}

// AggregateClientCharges menjumlahkan empat sumber pendapatan satu client
// untuk satu periode. Pure function: tidak menyentuh DB.
func AggregateClientCharges(p Period, in ClientBillingInput) ClientCharges {
	out := ClientCharges{TotalDays: DaysPerMonth}

	// (a) paket layanan per installation — prorata atau penuh
	for _, inst := range in.Installations {
		w := ResolveWindow(p, inst)
		if !w.Billable {
			continue
		}
		out.PlanAmountIDR += w.ChargeIDR
		if w.FullPeriod {
			if !out.Prorated && out.BilledDays == 0 {
				out.BilledDays = DaysPerMonth
			}
			continue
		}
		if !out.Prorated {
			// ganti default full-month dengan hitungan porsi prorata
			out.BilledDays = 0
		}
		out.Prorated = true
		out.BilledDays += w.BilledDays
	}

	// (b) add-on aktif — tarif penuh, tidak pernah prorata
	for _, a := range in.AddOns {
		if !a.Active {
			continue
		}
		start := dateOnly(a.StartDate)
		if start.After(p.End) {
			continue
		}
		if a.EndDate != nil && dateOnly(*a.EndDate).Before(p.Start) {
			continue
		}
		out.AddOnAmountIDR += a.MonthlyFeeIDR
	}

	// (c) cicilan pending — due vs provisioned future
	for _, ins := range in.PendingInstallments {
		// penjualan masa depan tidak diprovisikan lebih awal
		if dateOnly(ins.SaleDate).After(p.End) {
			continue
		}
		if !dateOnly(ins.DueDate).After(p.GraceBoundary) {
			out.InstallmentAmountIDR += ins.AmountIDR
			out.DueInstallmentIDs = append(out.DueInstallmentIDs, ins.ID)
		} else {
			out.FutureInstallmentAmountIDR += ins.AmountIDR
			out.FutureInstallmentCount++
		}
	}

	return out
}

// SumOutageCredits menjumlahkan diskon + hari dari kredit outage terpilih.
func SumOutageCredits(credits []OutageCredit) (discountIDR, days int) {
	for _, cr := range credits {
		discountIDR += cr.DiscountIDR
		days += cr.Days
	}
	return discountIDR, days
}
