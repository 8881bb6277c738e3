// file: internals/features/finance/billing/service/period.go
package service

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DaysPerMonth = penyebut tetap untuk prorata. Aturan bisnis: semua bulan
// dihitung 30 hari, terlepas dari panjang kalender sebenarnya.
const DaysPerMonth = 30

// ErrInvalidPeriod dikembalikan sebelum transaksi apa pun dibuka.
var ErrInvalidPeriod = errors.New("invalid billing period")

// Period = satu pasangan bulan/tahun yang ditagih.
type Period struct {
	Month int // 1..12
	Year  int

	Start time.Time // tanggal 1
	End   time.Time // tanggal terakhir bulan (kalender)

	// GraceBoundary = tanggal 5 bulan berikutnya: jatuh tempo pembayaran
	// sekaligus cut-off cicilan yang ditarik ke periode ini.
	GraceBoundary time.Time
}

// Nama bulan yang dikenal: Indonesia (bahasa operasional) + alias Inggris.
var monthNames = map[string]time.Month{
	"januari": time.January, "february": time.February, "februari": time.February,
	"january": time.January, "maret": time.March, "march": time.March,
	"april": time.April, "mei": time.May, "may": time.May,
	"juni": time.June, "june": time.June, "juli": time.July, "july": time.July,
	"agustus": time.August, "august": time.August,
	"september": time.September, "oktober": time.October, "october": time.October,
	"november": time.November, "desember": time.December, "december": time.December,
}

// YearInRange batas tahun periode yang diterima sistem.
func YearInRange(year int) bool {
	return year >= 2000 && year <= 2100
}

// ResolvePeriod menurunkan periode dari nama bulan (case-insensitive) + tahun.
func ResolvePeriod(monthName string, year int) (Period, error) {
	key := strings.ToLower(strings.TrimSpace(monthName))
	month, ok := monthNames[key]
	if !ok {
		return Period{}, fmt.Errorf("%w: unknown month %q", ErrInvalidPeriod, monthName)
	}
	if !YearInRange(year) {
		return Period{}, fmt.Errorf("%w: year %d out of range", ErrInvalidPeriod, year)
	}

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1) // hari terakhir bulan kalender
	grace := start.AddDate(0, 1, 4) // tanggal 5 bulan berikutnya

	return Period{
		Month:         int(month),
		Year:          year,
		Start:         start,
		End:           end,
		GraceBoundary: grace,
	}, nil
}

// Label untuk catatan/log, mis. "Oktober 2025".
func (p Period) Label() string {
	labels := [...]string{"", "Januari", "Februari", "Maret", "April", "Mei", "Juni",
		"Juli", "Agustus", "September", "Oktober", "November", "Desember"}
	return fmt.Sprintf("%s %d", labels[p.Month], p.Year)
}
