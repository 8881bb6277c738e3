// file: internals/features/finance/billing/service/engine_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/* =========================================================
   Fake repository in-memory — kontrak sama dengan
   GormRepository, tanpa DB.
========================================================= */

type fakeOutage struct {
	OutageCredit
	Status string // pending|applied|cancelled
}

type fakeRepo struct {
	clients      []ClientRef
	installs     map[uuid.UUID][]InstallationInput
	addOns       map[uuid.UUID][]AddOnInput
	installments map[uuid.UUID][]InstallmentInput
	outages      map[uuid.UUID][]*fakeOutage // per client
	payments     map[uuid.UUID]*PaymentRecord
	// tombstone soft-delete, meniru gorm.DeletedAt: baris pindah ke sini,
	// dan TIDAK menahan key unik (index uniknya partial, live rows only)
	deleted map[uuid.UUID]*PaymentRecord
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		installs:     map[uuid.UUID][]InstallationInput{},
		addOns:       map[uuid.UUID][]AddOnInput{},
		installments: map[uuid.UUID][]InstallmentInput{},
		outages:      map[uuid.UUID][]*fakeOutage{},
		payments:     map[uuid.UUID]*PaymentRecord{},
		deleted:      map[uuid.UUID]*PaymentRecord{},
	}
}

func (r *fakeRepo) ListClients(ctx context.Context) ([]ClientRef, error) {
	return r.clients, nil
}

func (r *fakeRepo) LoadInstallations(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]InstallationInput, error) {
	return r.installs, nil
}

func (r *fakeRepo) LoadAddOns(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]AddOnInput, error) {
	return r.addOns, nil
}

func (r *fakeRepo) LoadPendingInstallments(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]InstallmentInput, error) {
	return r.installments, nil
}

func (r *fakeRepo) ListOutageCredits(ctx context.Context, clientID uuid.UUID, paymentID *uuid.UUID) ([]OutageCredit, error) {
	var out []OutageCredit
	for _, o := range r.outages[clientID] {
		if o.Status == "pending" {
			out = append(out, o.OutageCredit)
			continue
		}
		if o.Status == "applied" && paymentID != nil &&
			o.AppliedPaymentID != nil && *o.AppliedPaymentID == *paymentID {
			out = append(out, o.OutageCredit)
		}
	}
	return out, nil
}

func (r *fakeRepo) FindMonthlyPayment(ctx context.Context, clientID uuid.UUID, month, year int) (*PaymentRecord, error) {
	for _, p := range r.payments {
		if p.ClientID == clientID && p.Month == month && p.Year == year {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) SavePayment(ctx context.Context, rec *PaymentRecord) error {
	if rec.ID == uuid.Nil {
		// insert baru: tegakkan key unik (client, month, year) atas baris LIVE saja
		for _, p := range r.payments {
			if p.ClientID == rec.ClientID && p.Month == rec.Month && p.Year == rec.Year {
				return errors.New(`duplicate key value violates unique constraint "uniq_payment_client_period"`)
			}
		}
		rec.ID = uuid.New()
	}
	cp := *rec
	r.payments[rec.ID] = &cp
	return nil
}

func (r *fakeRepo) DeletePayment(ctx context.Context, id uuid.UUID) error {
	if p, ok := r.payments[id]; ok {
		r.deleted[id] = p
		delete(r.payments, id)
	}
	return nil
}

func (r *fakeRepo) MarkOutagesApplied(ctx context.Context, outageIDs []uuid.UUID, paymentID uuid.UUID) error {
	want := map[uuid.UUID]bool{}
	for _, id := range outageIDs {
		want[id] = true
	}
	for _, list := range r.outages {
		for _, o := range list {
			if want[o.ID] {
				o.Status = "applied"
				pid := paymentID
				o.AppliedPaymentID = &pid
			}
		}
	}
	return nil
}

func (r *fakeRepo) ListMonthlyPayments(ctx context.Context, month, year int) ([]PaymentRecord, error) {
	var out []PaymentRecord
	for _, p := range r.payments {
		if p.Month == month && p.Year == year {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeRepo) RestoreOutagesForPayment(ctx context.Context, paymentID uuid.UUID) (int64, error) {
	var n int64
	for _, list := range r.outages {
		for _, o := range list {
			if o.Status == "applied" && o.AppliedPaymentID != nil && *o.AppliedPaymentID == paymentID {
				o.Status = "pending"
				o.AppliedPaymentID = nil
				n++
			}
		}
	}
	return n, nil
}

/* =========================================================
   Helpers
========================================================= */

func fixedNow(y int, m time.Month, d int) func() time.Time {
	return func() time.Time { return date(y, m, d) }
}

func (r *fakeRepo) addClient(fee int, installedAt time.Time) uuid.UUID {
	id := uuid.New()
	r.clients = append(r.clients, ClientRef{ID: id, Name: "Client " + id.String()[:8]})
	r.installs[id] = []InstallationInput{{
		ID: uuid.New(), InstalledAt: installedAt, MonthlyFeeIDR: fee, ServiceActive: true,
	}}
	return id
}

func (r *fakeRepo) paymentsFor(clientID uuid.UUID) []*PaymentRecord {
	var out []*PaymentRecord
	for _, p := range r.payments {
		if p.ClientID == clientID {
			out = append(out, p)
		}
	}
	return out
}

/* =========================================================
   Generate
========================================================= */

func TestEngineGenerateCreatesPayments(t *testing.T) {
	repo := newFakeRepo()
	clientID := repo.addClient(150000, date(2024, time.January, 1))
	p := mustPeriod(t, "oktober", 2025)

	eng := NewEngine(repo, nil, fixedNow(2025, time.October, 28))
	res, err := eng.Generate(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, 1, res.GeneratedCount)
	assert.Zero(t, res.UpdatedCount)

	rows := repo.paymentsFor(clientID)
	require.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, 150000, row.AmountIDR)
	assert.Equal(t, "pending", row.Status)
	assert.Equal(t, p.GraceBoundary, row.DueDate)
	assert.Equal(t, 10, row.Month)
	assert.Equal(t, 2025, row.Year)
}

func TestEngineGenerateIsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	clientID := repo.addClient(150000, date(2024, time.January, 1))
	repo.outages[clientID] = []*fakeOutage{{
		OutageCredit: OutageCredit{ID: uuid.New(), Days: 3, DiscountIDR: 15000},
		Status:       "pending",
	}}
	p := mustPeriod(t, "oktober", 2025)
	eng := NewEngine(repo, nil, fixedNow(2025, time.October, 28))

	res1, err := eng.Generate(context.Background(), p)
	require.NoError(t, err)
	require.Equal(t, 1, res1.GeneratedCount)

	first := repo.paymentsFor(clientID)[0]
	assert.Equal(t, 135000, first.AmountIDR)
	assert.Equal(t, 15000, first.OutageDiscountIDR)
	assert.Equal(t, "applied", repo.outages[clientID][0].Status)

	// run kedua tanpa mutasi: baris sama, diskon tidak dobel
	res2, err := eng.Generate(context.Background(), p)
	require.NoError(t, err)
	assert.Zero(t, res2.GeneratedCount)
	assert.Equal(t, 1, res2.UpdatedCount)

	rows := repo.paymentsFor(clientID)
	require.Len(t, rows, 1)
	assert.Equal(t, first.ID, rows[0].ID)
	assert.Equal(t, 135000, rows[0].AmountIDR)
	assert.Equal(t, 15000, rows[0].OutageDiscountIDR)
}

func TestEngineGenerateSkipsPaidRow(t *testing.T) {
	repo := newFakeRepo()
	clientID := repo.addClient(150000, date(2024, time.January, 1))
	p := mustPeriod(t, "oktober", 2025)
	eng := NewEngine(repo, nil, fixedNow(2025, time.October, 28))

	_, err := eng.Generate(context.Background(), p)
	require.NoError(t, err)

	row := repo.paymentsFor(clientID)[0]
	row.Status = "paid"
	row.AmountIDR = 120000 // kasir kasih diskon manual

	// fee naik; recompute tidak boleh menyentuh baris paid
	repo.installs[clientID][0].MonthlyFeeIDR = 200000
	res, err := eng.Generate(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, 1, res.SkippedPaid)
	assert.Equal(t, 120000, repo.paymentsFor(clientID)[0].AmountIDR)
	assert.Equal(t, "paid", repo.paymentsFor(clientID)[0].Status)
}

func TestEngineGenerateDeletesZeroTotalRow(t *testing.T) {
	repo := newFakeRepo()
	clientID := repo.addClient(45000, date(2024, time.January, 1))
	p := mustPeriod(t, "oktober", 2025)
	eng := NewEngine(repo, nil, fixedNow(2025, time.October, 28))

	_, err := eng.Generate(context.Background(), p)
	require.NoError(t, err)
	require.Len(t, repo.paymentsFor(clientID), 1)

	// outage besar menelan seluruh tagihan
	repo.outages[clientID] = []*fakeOutage{{
		OutageCredit: OutageCredit{ID: uuid.New(), Days: 30, DiscountIDR: 45000},
		Status:       "pending",
	}}
	res, err := eng.Generate(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, 1, res.DeletedCount)
	assert.Empty(t, repo.paymentsFor(clientID))
}

func TestEngineGenerateSkipsClientWithoutCharges(t *testing.T) {
	repo := newFakeRepo()
	id := uuid.New()
	repo.clients = append(repo.clients, ClientRef{ID: id, Name: "no installs"})
	p := mustPeriod(t, "oktober", 2025)
	eng := NewEngine(repo, nil, fixedNow(2025, time.October, 28))

	res, err := eng.Generate(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, 1, res.SkippedNoCharge)
	assert.Empty(t, repo.payments)
}

func TestEngineGenerateMarksOverdueAfterGrace(t *testing.T) {
	repo := newFakeRepo()
	clientID := repo.addClient(150000, date(2024, time.January, 1))
	p := mustPeriod(t, "oktober", 2025)

	// generate telat: sudah lewat 5 November
	eng := NewEngine(repo, nil, fixedNow(2025, time.November, 10))
	_, err := eng.Generate(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, "overdue", repo.paymentsFor(clientID)[0].Status)
}

func TestEngineGenerateBillsDueInstallments(t *testing.T) {
	repo := newFakeRepo()
	clientID := repo.addClient(150000, date(2024, time.January, 1))
	saleDate := date(2025, time.September, 1)
	repo.installments[clientID] = []InstallmentInput{
		{ID: uuid.New(), SaleID: uuid.New(), SaleDate: saleDate,
			DueDate: date(2025, time.October, 5), AmountIDR: 100000},
		{ID: uuid.New(), SaleID: uuid.New(), SaleDate: saleDate,
			DueDate: date(2025, time.December, 5), AmountIDR: 100000},
	}
	p := mustPeriod(t, "oktober", 2025)
	eng := NewEngine(repo, nil, fixedNow(2025, time.October, 28))

	_, err := eng.Generate(context.Background(), p)
	require.NoError(t, err)

	row := repo.paymentsFor(clientID)[0]
	assert.Equal(t, 250000, row.AmountIDR)
	assert.Equal(t, 100000, row.InstallmentAmountIDR)
	assert.Equal(t, 100000, row.FutureInstallmentAmountIDR)
	assert.Equal(t, 1, row.FutureInstallmentCount)
}

/* =========================================================
   Rollback
========================================================= */

func TestEngineRollbackDeletesAndRestores(t *testing.T) {
	repo := newFakeRepo()
	clientID := repo.addClient(150000, date(2024, time.January, 1))
	repo.outages[clientID] = []*fakeOutage{{
		OutageCredit: OutageCredit{ID: uuid.New(), Days: 2, DiscountIDR: 10000},
		Status:       "pending",
	}}
	p := mustPeriod(t, "oktober", 2025)
	eng := NewEngine(repo, nil, fixedNow(2025, time.October, 28))

	_, err := eng.Generate(context.Background(), p)
	require.NoError(t, err)
	require.Equal(t, "applied", repo.outages[clientID][0].Status)

	res, err := eng.Rollback(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, 1, res.DeletedPayments)
	assert.Equal(t, 1, res.RestoredOutages)
	assert.Empty(t, repo.paymentsFor(clientID))
	assert.Equal(t, "pending", repo.outages[clientID][0].Status)
	assert.Nil(t, repo.outages[clientID][0].AppliedPaymentID)
}

func TestEngineRollbackSkipsPaid(t *testing.T) {
	repo := newFakeRepo()
	clientID := repo.addClient(150000, date(2024, time.January, 1))
	p := mustPeriod(t, "oktober", 2025)
	eng := NewEngine(repo, nil, fixedNow(2025, time.October, 28))

	_, err := eng.Generate(context.Background(), p)
	require.NoError(t, err)
	repo.paymentsFor(clientID)[0].Status = "paid"

	res, err := eng.Rollback(context.Background(), p)
	require.NoError(t, err)

	assert.Zero(t, res.DeletedPayments)
	assert.Equal(t, 1, res.SkippedPaidPayments)
	require.Len(t, repo.paymentsFor(clientID), 1)
}

// Rollback lalu generate ulang periode yang SAMA harus menghasilkan baris
// segar, bukan duplicate-key: tombstone soft-delete tidak boleh menahan
// key unik (client, month, year).
func TestEngineGenerateAfterRollbackCreatesFreshRow(t *testing.T) {
	repo := newFakeRepo()
	clientID := repo.addClient(150000, date(2024, time.January, 1))
	p := mustPeriod(t, "oktober", 2025)
	eng := NewEngine(repo, nil, fixedNow(2025, time.October, 28))

	_, err := eng.Generate(context.Background(), p)
	require.NoError(t, err)
	firstID := repo.paymentsFor(clientID)[0].ID

	_, err = eng.Rollback(context.Background(), p)
	require.NoError(t, err)
	require.Empty(t, repo.paymentsFor(clientID))
	require.Contains(t, repo.deleted, firstID)

	res, err := eng.Generate(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, 1, res.GeneratedCount)

	rows := repo.paymentsFor(clientID)
	require.Len(t, rows, 1)
	assert.NotEqual(t, firstID, rows[0].ID)
	assert.Equal(t, 150000, rows[0].AmountIDR)
	assert.Equal(t, "pending", rows[0].Status)
}

// Baris bertotal nol dihapus; setelah outage dibatalkan, recompute periode
// yang sama harus bisa membuat baris baru lagi.
func TestEngineGenerateAfterZeroTotalDeleteRecreatesRow(t *testing.T) {
	repo := newFakeRepo()
	clientID := repo.addClient(45000, date(2024, time.January, 1))
	p := mustPeriod(t, "oktober", 2025)
	eng := NewEngine(repo, nil, fixedNow(2025, time.October, 28))

	_, err := eng.Generate(context.Background(), p)
	require.NoError(t, err)
	require.Len(t, repo.paymentsFor(clientID), 1)

	// outage menelan seluruh tagihan → baris dihapus
	repo.outages[clientID] = []*fakeOutage{{
		OutageCredit: OutageCredit{ID: uuid.New(), Days: 30, DiscountIDR: 45000},
		Status:       "pending",
	}}
	res, err := eng.Generate(context.Background(), p)
	require.NoError(t, err)
	require.Equal(t, 1, res.DeletedCount)
	require.Empty(t, repo.paymentsFor(clientID))

	// outage-nya dibatalkan manual; tagihan penuh harus muncul lagi
	repo.outages[clientID][0].Status = "cancelled"
	res, err = eng.Generate(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, 1, res.GeneratedCount)

	rows := repo.paymentsFor(clientID)
	require.Len(t, rows, 1)
	assert.Equal(t, 45000, rows[0].AmountIDR)
}

/* =========================================================
   Period lock
========================================================= */

func TestPeriodLock(t *testing.T) {
	p := mustPeriod(t, "oktober", 2025)

	require.True(t, AcquirePeriodLock(p))
	assert.False(t, AcquirePeriodLock(p), "periode sama tidak boleh double-run")

	other := mustPeriod(t, "november", 2025)
	assert.True(t, AcquirePeriodLock(other), "periode lain tidak saling blokir")
	ReleasePeriodLock(other)

	ReleasePeriodLock(p)
	assert.True(t, AcquirePeriodLock(p))
	ReleasePeriodLock(p)
}
