// file: internals/features/finance/billing/service/window_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPeriod(t *testing.T, month string, year int) Period {
	t.Helper()
	p, err := ResolvePeriod(month, year)
	require.NoError(t, err)
	return p
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDailyRateIDR(t *testing.T) {
	cases := []struct {
		fee  int
		want int
	}{
		{0, 0},
		{-100, 0},
		{15000, 500},   // pas kelipatan
		{30000, 1000},
		{45000, 1500},
		{100000, 3500}, // 100000/30 = 3333.3 → naik ke 3500
		{150000, 5000},
		{165000, 5500},
		{1000, 500}, // tarif kecil tetap dibulatkan naik ke Rp500
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DailyRateIDR(tc.fee), "fee=%d", tc.fee)
	}
}

func TestResolveWindowFullPeriod(t *testing.T) {
	p := mustPeriod(t, "oktober", 2025)
	w := ResolveWindow(p, InstallationInput{
		ID:            uuid.New(),
		InstalledAt:   date(2024, time.January, 10),
		MonthlyFeeIDR: 60000,
		ServiceActive: true,
	})

	require.True(t, w.Billable)
	assert.True(t, w.FullPeriod)
	assert.Equal(t, DaysPerMonth, w.BilledDays)
	// bulan penuh = tarif bulanan apa adanya, bukan 31×rate harian
	assert.Equal(t, 60000, w.ChargeIDR)
}

func TestResolveWindowMidMonthInstall(t *testing.T) {
	p := mustPeriod(t, "oktober", 2025)
	w := ResolveWindow(p, InstallationInput{
		InstalledAt:   date(2025, time.October, 16),
		MonthlyFeeIDR: 45000,
		ServiceActive: true,
	})

	require.True(t, w.Billable)
	assert.False(t, w.FullPeriod)
	// 16..31 Oktober inklusif
	assert.Equal(t, 16, w.BilledDays)
	assert.Equal(t, 16*1500, w.ChargeIDR)
}

func TestResolveWindowRetiredMidMonth(t *testing.T) {
	p := mustPeriod(t, "oktober", 2025)
	retired := date(2025, time.October, 10)
	w := ResolveWindow(p, InstallationInput{
		InstalledAt:   date(2025, time.March, 1),
		RetiredAt:     &retired,
		MonthlyFeeIDR: 45000,
		ServiceActive: false,
	})

	require.True(t, w.Billable)
	assert.Equal(t, 10, w.BilledDays)
	assert.Equal(t, 10*1500, w.ChargeIDR)
}

func TestResolveWindowInstalledAfterPeriod(t *testing.T) {
	p := mustPeriod(t, "oktober", 2025)
	w := ResolveWindow(p, InstallationInput{
		InstalledAt:   date(2025, time.November, 2),
		MonthlyFeeIDR: 45000,
		ServiceActive: true,
	})
	assert.False(t, w.Billable)
	assert.Zero(t, w.ChargeIDR)
}

func TestResolveWindowRetiredBeforePeriod(t *testing.T) {
	p := mustPeriod(t, "oktober", 2025)
	retired := date(2025, time.September, 20)
	w := ResolveWindow(p, InstallationInput{
		InstalledAt:   date(2025, time.January, 1),
		RetiredAt:     &retired,
		MonthlyFeeIDR: 45000,
		ServiceActive: false,
	})
	assert.False(t, w.Billable)
}

func TestResolveWindowInactiveWithoutRetiredAt(t *testing.T) {
	p := mustPeriod(t, "oktober", 2025)
	w := ResolveWindow(p, InstallationInput{
		InstalledAt:   date(2025, time.January, 1),
		MonthlyFeeIDR: 45000,
		ServiceActive: false,
	})
	// suspended tanpa tanggal cabut: tidak ditagih sama sekali
	assert.False(t, w.Billable)
}

func TestResolveWindowSingleDay(t *testing.T) {
	p := mustPeriod(t, "oktober", 2025)
	retired := date(2025, time.October, 1)
	w := ResolveWindow(p, InstallationInput{
		InstalledAt:   date(2025, time.October, 1),
		RetiredAt:     &retired,
		MonthlyFeeIDR: 45000,
		ServiceActive: false,
	})
	require.True(t, w.Billable)
	assert.Equal(t, 1, w.BilledDays)
	assert.Equal(t, 1500, w.ChargeIDR)
}
