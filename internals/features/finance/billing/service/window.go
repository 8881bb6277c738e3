// file: internals/features/finance/billing/service/window.go
package service

import (
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   Input aggregates — hasil batch-load repository, plain struct
   tanpa relasi lazy supaya dependensi data terlihat eksplisit.
========================================================= */

type InstallationInput struct {
	ID            uuid.UUID
	InstalledAt   time.Time
	RetiredAt     *time.Time
	MonthlyFeeIDR int
	ServiceActive bool // installation_service_status == active
}

/* =========================================================
   Billable window per installation
========================================================= */

type Window struct {
	Billable   bool
	FullPeriod bool
	Start      time.Time
	End        time.Time
	BilledDays int
	ChargeIDR  int
}

// DailyRateIDR = ceil((fee/30)/500)*500 — tarif harian dibulatkan NAIK
// ke kelipatan Rp500. Identik dengan ceil(fee/15000)*500.
func DailyRateIDR(monthlyFeeIDR int) int {
	if monthlyFeeIDR <= 0 {
		return 0
	}
	return ((monthlyFeeIDR + DaysPerMonth*500 - 1) / (DaysPerMonth * 500)) * 500
}

// ResolveWindow memotong jendela hidup installation dengan periode.
//
// Aturan:
//  1. installation_date > akhir periode → tidak billable.
//  2. billingEnd = min(akhir periode, retired_at ?? akhir periode);
//     billingStart = max(awal periode, installation_date).
//  3. billingEnd < billingStart → tidak billable.
//  4. Jendela menutup seluruh periode → tarif bulanan penuh.
//  5. Selain itu prorata: billedDays inklusif, tarif harian dibulatkan Rp500.
//
// Installation non-active hanya ikut kalau punya retired_at pada/selepas
// awal periode (dicabut saat/selepas periode ini); yang sudah dicabut
// sebelum periode tidak menyumbang apa-apa.
func ResolveWindow(p Period, in InstallationInput) Window {
	if !in.ServiceActive {
		if in.RetiredAt == nil || in.RetiredAt.Before(p.Start) {
			return Window{}
		}
	}

	installed := dateOnly(in.InstalledAt)
	if installed.After(p.End) {
		return Window{}
	}

	billingEnd := p.End
	if in.RetiredAt != nil {
		if r := dateOnly(*in.RetiredAt); r.Before(billingEnd) {
			billingEnd = r
		}
	}
	billingStart := p.Start
	if installed.After(billingStart) {
		billingStart = installed
	}
	if billingEnd.Before(billingStart) {
		return Window{}
	}

	if billingStart.Equal(p.Start) && billingEnd.Equal(p.End) {
		return Window{
			Billable:   true,
			FullPeriod: true,
			Start:      billingStart,
			End:        billingEnd,
			BilledDays: DaysPerMonth,
			ChargeIDR:  in.MonthlyFeeIDR,
		}
	}

	billedDays := daysBetweenInclusive(billingStart, billingEnd)
	return Window{
		Billable:   true,
		Start:      billingStart,
		End:        billingEnd,
		BilledDays: billedDays,
		ChargeIDR:  DailyRateIDR(in.MonthlyFeeIDR) * billedDays,
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetweenInclusive(a, b time.Time) int {
	return int(dateOnly(b).Sub(dateOnly(a)).Hours()/24) + 1
}
