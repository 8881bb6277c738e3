// file: internals/features/finance/billing/service/engine.go
package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   Ports — repository eksplisit per run (satu transaksi),
   bukan singleton global.
========================================================= */

type ClientRef struct {
	ID   uuid.UUID
	Name string
}

// PaymentRecord = proyeksi baris ledger yang dipakai engine.
type PaymentRecord struct {
	ID       uuid.UUID
	ClientID uuid.UUID
	Month    int
	Year     int

	AmountIDR int

	PlanAmountIDR              int
	AddOnAmountIDR             int
	InstallmentAmountIDR       int
	OutageDiscountIDR          int
	OutageDays                 int
	FutureInstallmentAmountIDR int
	FutureInstallmentCount     int
	Prorated                   bool
	BilledDays                 int
	TotalDays                  int

	Status  string // pending|paid|overdue|cancelled
	DueDate time.Time
	Note    string
}

// Repository = akses data engine, di-scope ke satu transaksi.
// Semua method load memakai batch-fetch eksplisit (hindari N+1).
type Repository interface {
	ListClients(ctx context.Context) ([]ClientRef, error)
	LoadInstallations(ctx context.Context, clientIDs []uuid.UUID) (map[uuid.UUID][]InstallationInput, error)
	LoadAddOns(ctx context.Context, clientIDs []uuid.UUID) (map[uuid.UUID][]AddOnInput, error)
	LoadPendingInstallments(ctx context.Context, clientIDs []uuid.UUID) (map[uuid.UUID][]InstallmentInput, error)

	// Outage resolver: status pending OR (applied AND menunjuk paymentID) —
	// syarat ganda yang bikin recompute idempoten.
	ListOutageCredits(ctx context.Context, clientID uuid.UUID, paymentID *uuid.UUID) ([]OutageCredit, error)

	FindMonthlyPayment(ctx context.Context, clientID uuid.UUID, month, year int) (*PaymentRecord, error)
	SavePayment(ctx context.Context, rec *PaymentRecord) error
	DeletePayment(ctx context.Context, id uuid.UUID) error
	MarkOutagesApplied(ctx context.Context, outageIDs []uuid.UUID, paymentID uuid.UUID) error

	// Rollback
	ListMonthlyPayments(ctx context.Context, month, year int) ([]PaymentRecord, error)
	RestoreOutagesForPayment(ctx context.Context, paymentID uuid.UUID) (int64, error)
}

// NoteSink = jejak audit CRM. Best-effort: error di-log, tidak diteruskan.
type NoteSink interface {
	WriteBillingNote(ctx context.Context, clientID uuid.UUID, body string) error
}

/* =========================================================
   Engine
========================================================= */

type Engine struct {
	repo  Repository
	notes NoteSink
	now   func() time.Time
}

func NewEngine(repo Repository, notes NoteSink, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{repo: repo, notes: notes, now: now}
}

type GenerateResult struct {
	GeneratedCount  int             `json:"generated_count"`
	UpdatedCount    int             `json:"updated_count"`
	DeletedCount    int             `json:"deleted_count"` // baris total<=0 yang dihapus
	SkippedPaid     int             `json:"skipped_paid"`
	SkippedNoCharge int             `json:"skipped_no_charge"`
	Payments        []PaymentRecord `json:"payments"`
}

type RollbackResult struct {
	DeletedPayments     int `json:"deleted_payments"`
	RestoredOutages     int `json:"restored_outages"`
	SkippedPaidPayments int `json:"skipped_paid_payments"`
}

// Generate menjalankan seluruh pipeline billing untuk satu periode.
// Idempoten: dijalankan dua kali tanpa mutasi di antaranya menghasilkan
// baris identik. Caller wajib membungkus dalam SATU transaksi DB.
func (e *Engine) Generate(ctx context.Context, p Period) (GenerateResult, error) {
	var res GenerateResult

	clients, err := e.repo.ListClients(ctx)
	if err != nil {
		return res, err
	}
	ids := make([]uuid.UUID, 0, len(clients))
	for _, cl := range clients {
		ids = append(ids, cl.ID)
	}

	installations, err := e.repo.LoadInstallations(ctx, ids)
	if err != nil {
		return res, err
	}
	addOns, err := e.repo.LoadAddOns(ctx, ids)
	if err != nil {
		return res, err
	}
	installments, err := e.repo.LoadPendingInstallments(ctx, ids)
	if err != nil {
		return res, err
	}

	// Iterasi sinkron & berurutan: resolusi outage bergantung pada payment id
	// yang mungkin baru dibuat di langkah sebelumnya untuk client yang sama.
	for _, cl := range clients {
		charges := AggregateClientCharges(p, ClientBillingInput{
			ClientID:            cl.ID,
			ClientName:          cl.Name,
			Installations:       installations[cl.ID],
			AddOns:              addOns[cl.ID],
			PendingInstallments: installments[cl.ID],
		})

		existing, err := e.repo.FindMonthlyPayment(ctx, cl.ID, p.Month, p.Year)
		if err != nil {
			return res, err
		}

		var existingID *uuid.UUID
		if existing != nil {
			existingID = &existing.ID
		}
		credits, err := e.repo.ListOutageCredits(ctx, cl.ID, existingID)
		if err != nil {
			return res, err
		}
		discountIDR, discountDays := SumOutageCredits(credits)

		total := charges.SubtotalIDR() - discountIDR
		if total <= 0 {
			// client tanpa tagihan: tidak boleh ada baris tersisa
			if existing != nil && existing.Status != "paid" {
				if err := e.repo.DeletePayment(ctx, existing.ID); err != nil {
					return res, err
				}
				res.DeletedCount++
			} else {
				res.SkippedNoCharge++
			}
			continue
		}

		// paid = sakral: jangan sentuh amount, status, breakdown, outage
		if existing != nil && existing.Status == "paid" {
			res.SkippedPaid++
			continue
		}

		rec := PaymentRecord{
			ClientID: cl.ID,
			Month:    p.Month,
			Year:     p.Year,
			Status:   "pending",
		}
		isUpdate := existing != nil
		if isUpdate {
			rec = *existing
		}

		rec.AmountIDR = total
		rec.PlanAmountIDR = charges.PlanAmountIDR
		rec.AddOnAmountIDR = charges.AddOnAmountIDR
		rec.InstallmentAmountIDR = charges.InstallmentAmountIDR
		rec.OutageDiscountIDR = discountIDR
		rec.OutageDays = discountDays
		rec.FutureInstallmentAmountIDR = charges.FutureInstallmentAmountIDR
		rec.FutureInstallmentCount = charges.FutureInstallmentCount
		rec.Prorated = charges.Prorated
		rec.BilledDays = charges.BilledDays
		rec.TotalDays = charges.TotalDays
		rec.DueDate = p.GraceBoundary
		if dateOnly(e.now()).After(p.GraceBoundary) {
			rec.Status = "overdue"
		} else {
			rec.Status = "pending"
		}
		rec.Note = buildGenerationNote(p, charges, discountIDR, discountDays)

		if err := e.repo.SavePayment(ctx, &rec); err != nil {
			return res, err
		}

		// Outage ditandai applied SETELAH payment tersimpan, masih dalam
		// transaksi yang sama: crash di tengah run = dua-duanya batal.
		if len(credits) > 0 {
			ids := make([]uuid.UUID, 0, len(credits))
			for _, cr := range credits {
				ids = append(ids, cr.ID)
			}
			if err := e.repo.MarkOutagesApplied(ctx, ids, rec.ID); err != nil {
				return res, err
			}
		}

		if isUpdate {
			res.UpdatedCount++
		} else {
			res.GeneratedCount++
		}
		res.Payments = append(res.Payments, rec)

		e.writeNote(ctx, cl.ID, fmt.Sprintf(
			"Tagihan %s dibuat: total Rp%d (%s)", p.Label(), total, rec.Note))
	}

	return res, nil
}

// Rollback membatalkan hasil generate untuk satu periode: hapus baris
// pending/overdue dan kembalikan outage yang menunjuk baris itu ke pending.
// Baris paid dibiarkan dan dilaporkan terpisah. Caller membungkus dalam
// satu transaksi; error apa pun membatalkan seluruh rollback.
func (e *Engine) Rollback(ctx context.Context, p Period) (RollbackResult, error) {
	var res RollbackResult

	rows, err := e.repo.ListMonthlyPayments(ctx, p.Month, p.Year)
	if err != nil {
		return res, err
	}
	for _, row := range rows {
		switch row.Status {
		case "paid":
			res.SkippedPaidPayments++
			continue
		case "cancelled":
			continue
		}

		restored, err := e.repo.RestoreOutagesForPayment(ctx, row.ID)
		if err != nil {
			return res, err
		}
		if err := e.repo.DeletePayment(ctx, row.ID); err != nil {
			return res, err
		}
		res.RestoredOutages += int(restored)
		res.DeletedPayments++

		e.writeNote(ctx, row.ClientID, fmt.Sprintf("Tagihan %s dibatalkan (rollback)", p.Label()))
	}

	return res, nil
}

// writeNote: best-effort, gagal cuma di-log (kontrak sink CRM).
func (e *Engine) writeNote(ctx context.Context, clientID uuid.UUID, body string) {
	if e.notes == nil {
		return
	}
	if err := e.notes.WriteBillingNote(ctx, clientID, body); err != nil {
		log.Printf("[BILLING] note skipped for client %s: %v", clientID, err)
	}
}

func buildGenerationNote(p Period, c ClientCharges, discountIDR, discountDays int) string {
	parts := []string{}
	if c.Prorated {
		parts = append(parts, fmt.Sprintf("prorata %d/%d hari", c.BilledDays, c.TotalDays))
	}
	if c.FutureInstallmentCount > 0 {
		parts = append(parts, fmt.Sprintf("%d cicilan berikutnya Rp%d belum ditagih",
			c.FutureInstallmentCount, c.FutureInstallmentAmountIDR))
	}
	if discountIDR > 0 {
		parts = append(parts, fmt.Sprintf("potongan gangguan Rp%d (%d hari)", discountIDR, discountDays))
	}
	if len(parts) == 0 {
		return "tagihan penuh " + p.Label()
	}
	return strings.Join(parts, "; ")
}
