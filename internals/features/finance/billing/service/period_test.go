// file: internals/features/finance/billing/service/period_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePeriod(t *testing.T) {
	p, err := ResolvePeriod("oktober", 2025)
	require.NoError(t, err)

	assert.Equal(t, 10, p.Month)
	assert.Equal(t, 2025, p.Year)
	assert.Equal(t, time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC), p.End)
	assert.Equal(t, time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC), p.GraceBoundary)
	assert.Equal(t, "Oktober 2025", p.Label())
}

func TestResolvePeriodEnglishAlias(t *testing.T) {
	p, err := ResolvePeriod("October", 2025)
	require.NoError(t, err)
	assert.Equal(t, 10, p.Month)

	// alias dan nama lokal menunjuk bulan yang sama
	pl, err := ResolvePeriod("OKTOBER", 2025)
	require.NoError(t, err)
	assert.Equal(t, p.Start, pl.Start)
}

func TestResolvePeriodFebruary(t *testing.T) {
	p, err := ResolvePeriod("februari", 2024)
	require.NoError(t, err)
	// tahun kabisat: akhir periode tetap hari kalender terakhir
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), p.End)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), p.GraceBoundary)
}

func TestResolvePeriodDecemberRollsYear(t *testing.T) {
	p, err := ResolvePeriod("desember", 2025)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), p.GraceBoundary)
}

func TestResolvePeriodRejectsUnknownMonth(t *testing.T) {
	_, err := ResolvePeriod("bukanbulan", 2025)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestResolvePeriodRejectsYearOutOfRange(t *testing.T) {
	_, err := ResolvePeriod("januari", 1999)
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = ResolvePeriod("januari", 2101)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

// Dipakai handler yang menerima tahun tanpa nama bulan (bulk mark paid).
func TestYearInRange(t *testing.T) {
	assert.True(t, YearInRange(2000))
	assert.True(t, YearInRange(2025))
	assert.True(t, YearInRange(2100))
	assert.False(t, YearInRange(1999))
	assert.False(t, YearInRange(2101))
}
