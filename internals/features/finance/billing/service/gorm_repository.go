// file: internals/features/finance/billing/service/gorm_repository.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	asvcModel "netku_backend/internals/features/clients/additional_services/model"
	clientModel "netku_backend/internals/features/clients/clients/model"
	instModel "netku_backend/internals/features/clients/installations/model"
	paymentModel "netku_backend/internals/features/finance/payments/model"
	outageModel "netku_backend/internals/features/network/outages/model"
	productModel "netku_backend/internals/features/sales/products/model"
)

// GormRepository implementasi Repository di atas satu *gorm.DB
// (biasanya tx dari db.Transaction). Satu instance per run.
type GormRepository struct {
	tx *gorm.DB
}

func NewGormRepository(tx *gorm.DB) *GormRepository {
	return &GormRepository{tx: tx}
}

var _ Repository = (*GormRepository)(nil)

func (r *GormRepository) ListClients(ctx context.Context) ([]ClientRef, error) {
	var rows []clientModel.Client
	if err := r.tx.WithContext(ctx).
		Where("client_deleted_at IS NULL").
		Order("client_created_at ASC, client_id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]ClientRef, 0, len(rows))
	for _, row := range rows {
		out = append(out, ClientRef{ID: row.ClientID, Name: row.ClientName})
	}
	return out, nil
}

func (r *GormRepository) LoadInstallations(ctx context.Context, clientIDs []uuid.UUID) (map[uuid.UUID][]InstallationInput, error) {
	out := make(map[uuid.UUID][]InstallationInput, len(clientIDs))
	if len(clientIDs) == 0 {
		return out, nil
	}
	var rows []instModel.Installation
	if err := r.tx.WithContext(ctx).
		Where("installation_client_id IN ? AND installation_deleted_at IS NULL", clientIDs).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		if !row.InstallationIsActive && row.InstallationRetiredAt == nil {
			// jalur mati tanpa tanggal cabut: tidak pernah billable
			continue
		}
		out[row.InstallationClientID] = append(out[row.InstallationClientID], InstallationInput{
			ID:            row.InstallationID,
			InstalledAt:   row.InstallationDate,
			RetiredAt:     row.InstallationRetiredAt,
			MonthlyFeeIDR: row.InstallationMonthlyFeeIDR,
			ServiceActive: row.InstallationServiceStatus == instModel.ServiceStatusActive,
		})
	}
	return out, nil
}

func (r *GormRepository) LoadAddOns(ctx context.Context, clientIDs []uuid.UUID) (map[uuid.UUID][]AddOnInput, error) {
	out := make(map[uuid.UUID][]AddOnInput, len(clientIDs))
	if len(clientIDs) == 0 {
		return out, nil
	}
	var rows []asvcModel.AdditionalService
	if err := r.tx.WithContext(ctx).
		Where("additional_service_client_id IN ? AND additional_service_deleted_at IS NULL", clientIDs).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.AdditionalServiceClientID] = append(out[row.AdditionalServiceClientID], AddOnInput{
			ID:            row.AdditionalServiceID,
			Name:          row.AdditionalServiceName,
			MonthlyFeeIDR: row.AdditionalServiceMonthlyFeeIDR,
			Active:        row.AdditionalServiceStatus == asvcModel.AdditionalServiceStatusActive,
			StartDate:     row.AdditionalServiceStartDate,
			EndDate:       row.AdditionalServiceEndDate,
		})
	}
	return out, nil
}

func (r *GormRepository) LoadPendingInstallments(ctx context.Context, clientIDs []uuid.UUID) (map[uuid.UUID][]InstallmentInput, error) {
	out := make(map[uuid.UUID][]InstallmentInput, len(clientIDs))
	if len(clientIDs) == 0 {
		return out, nil
	}

	type row struct {
		ID        uuid.UUID `gorm:"column:product_installment_id"`
		ClientID  uuid.UUID `gorm:"column:product_installment_client_id"`
		SaleID    uuid.UUID `gorm:"column:product_installment_sale_id"`
		SaleDate  time.Time `gorm:"column:product_sale_date"`
		DueDate   time.Time `gorm:"column:product_installment_due_date"`
		AmountIDR int       `gorm:"column:product_installment_amount_idr"`
	}
	var rows []row
	if err := r.tx.WithContext(ctx).
		Table("product_installments").
		Select(`product_installment_id, product_installment_client_id,
			product_installment_sale_id, product_sale_date,
			product_installment_due_date, product_installment_amount_idr`).
		Joins("JOIN product_sales ON product_sale_id = product_installment_sale_id AND product_sale_deleted_at IS NULL").
		Where("product_installment_client_id IN ?", clientIDs).
		Where("product_installment_status = ?", productModel.ProductInstallmentStatusPending).
		Where("product_installment_deleted_at IS NULL").
		Order("product_installment_due_date ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, rw := range rows {
		out[rw.ClientID] = append(out[rw.ClientID], InstallmentInput{
			ID:        rw.ID,
			SaleID:    rw.SaleID,
			SaleDate:  rw.SaleDate,
			DueDate:   rw.DueDate,
			AmountIDR: rw.AmountIDR,
		})
	}
	return out, nil
}

func (r *GormRepository) ListOutageCredits(ctx context.Context, clientID uuid.UUID, paymentID *uuid.UUID) ([]OutageCredit, error) {
	q := r.tx.WithContext(ctx).
		Model(&outageModel.ServiceOutage{}).
		Where("service_outage_client_id = ? AND service_outage_deleted_at IS NULL", clientID)
	if paymentID != nil {
		q = q.Where(
			"service_outage_status = ? OR (service_outage_status = ? AND service_outage_applied_payment_id = ?)",
			outageModel.ServiceOutageStatusPending, outageModel.ServiceOutageStatusApplied, *paymentID,
		)
	} else {
		q = q.Where("service_outage_status = ?", outageModel.ServiceOutageStatusPending)
	}

	var rows []outageModel.ServiceOutage
	if err := q.Order("service_outage_created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]OutageCredit, 0, len(rows))
	for _, row := range rows {
		out = append(out, OutageCredit{
			ID:               row.ServiceOutageID,
			Days:             row.ServiceOutageDays,
			DiscountIDR:      row.ServiceOutageDiscountIDR,
			AppliedPaymentID: row.ServiceOutageAppliedPaymentID,
		})
	}
	return out, nil
}

func (r *GormRepository) FindMonthlyPayment(ctx context.Context, clientID uuid.UUID, month, year int) (*PaymentRecord, error) {
	var row paymentModel.Payment
	err := r.tx.WithContext(ctx).
		Where(`payment_client_id = ? AND payment_period_month = ? AND payment_period_year = ?
			AND payment_type = ? AND payment_deleted_at IS NULL`,
			clientID, month, year, paymentModel.PaymentTypeMonthly).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	rec := toPaymentRecord(row)
	return &rec, nil
}

func (r *GormRepository) SavePayment(ctx context.Context, rec *PaymentRecord) error {
	if rec.ID == uuid.Nil {
		row := fromPaymentRecord(*rec)
		if err := r.tx.WithContext(ctx).Create(&row).Error; err != nil {
			return err
		}
		rec.ID = row.PaymentID
		return nil
	}

	updates := map[string]any{
		"payment_amount_idr":                    rec.AmountIDR,
		"payment_plan_amount_idr":               rec.PlanAmountIDR,
		"payment_addon_amount_idr":              rec.AddOnAmountIDR,
		"payment_installment_amount_idr":        rec.InstallmentAmountIDR,
		"payment_outage_discount_idr":           rec.OutageDiscountIDR,
		"payment_outage_days":                   rec.OutageDays,
		"payment_future_installment_amount_idr": rec.FutureInstallmentAmountIDR,
		"payment_future_installment_count":      rec.FutureInstallmentCount,
		"payment_is_prorated":                   rec.Prorated,
		"payment_billed_days":                   rec.BilledDays,
		"payment_total_days":                    rec.TotalDays,
		"payment_status":                        rec.Status,
		"payment_due_date":                      rec.DueDate,
		"payment_note":                          rec.Note,
		"payment_updated_at":                    time.Now(),
	}
	return r.tx.WithContext(ctx).
		Model(&paymentModel.Payment{}).
		Where("payment_id = ?", rec.ID).
		Updates(updates).Error
}

func (r *GormRepository) DeletePayment(ctx context.Context, id uuid.UUID) error {
	return r.tx.WithContext(ctx).
		Where("payment_id = ?", id).
		Delete(&paymentModel.Payment{}).Error
}

func (r *GormRepository) MarkOutagesApplied(ctx context.Context, outageIDs []uuid.UUID, paymentID uuid.UUID) error {
	if len(outageIDs) == 0 {
		return nil
	}
	return r.tx.WithContext(ctx).
		Model(&outageModel.ServiceOutage{}).
		Where("service_outage_id IN ?", outageIDs).
		Updates(map[string]any{
			"service_outage_status":             outageModel.ServiceOutageStatusApplied,
			"service_outage_applied_payment_id": paymentID,
			"service_outage_updated_at":         time.Now(),
		}).Error
}

func (r *GormRepository) ListMonthlyPayments(ctx context.Context, month, year int) ([]PaymentRecord, error) {
	var rows []paymentModel.Payment
	if err := r.tx.WithContext(ctx).
		Where(`payment_period_month = ? AND payment_period_year = ? AND payment_type = ?
			AND payment_deleted_at IS NULL`,
			month, year, paymentModel.PaymentTypeMonthly).
		Order("payment_created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]PaymentRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, toPaymentRecord(row))
	}
	return out, nil
}

func (r *GormRepository) RestoreOutagesForPayment(ctx context.Context, paymentID uuid.UUID) (int64, error) {
	res := r.tx.WithContext(ctx).
		Model(&outageModel.ServiceOutage{}).
		Where("service_outage_applied_payment_id = ? AND service_outage_status = ?",
			paymentID, outageModel.ServiceOutageStatusApplied).
		Updates(map[string]any{
			"service_outage_status":             outageModel.ServiceOutageStatusPending,
			"service_outage_applied_payment_id": nil,
			"service_outage_updated_at":         time.Now(),
		})
	return res.RowsAffected, res.Error
}

/* ===================== Mapping ===================== */

func toPaymentRecord(m paymentModel.Payment) PaymentRecord {
	note := ""
	if m.PaymentNote != nil {
		note = *m.PaymentNote
	}
	return PaymentRecord{
		ID:                         m.PaymentID,
		ClientID:                   m.PaymentClientID,
		Month:                      int(m.PaymentPeriodMonth),
		Year:                       int(m.PaymentPeriodYear),
		AmountIDR:                  m.PaymentAmountIDR,
		PlanAmountIDR:              m.PaymentPlanAmountIDR,
		AddOnAmountIDR:             m.PaymentAddonAmountIDR,
		InstallmentAmountIDR:       m.PaymentInstallmentAmountIDR,
		OutageDiscountIDR:          m.PaymentOutageDiscountIDR,
		OutageDays:                 m.PaymentOutageDays,
		FutureInstallmentAmountIDR: m.PaymentFutureInstallmentAmountIDR,
		FutureInstallmentCount:     m.PaymentFutureInstallmentCount,
		Prorated:                   m.PaymentIsProrated,
		BilledDays:                 m.PaymentBilledDays,
		TotalDays:                  m.PaymentTotalDays,
		Status:                     m.PaymentStatus,
		DueDate:                    m.PaymentDueDate,
		Note:                       note,
	}
}

func fromPaymentRecord(rec PaymentRecord) paymentModel.Payment {
	note := rec.Note
	return paymentModel.Payment{
		PaymentID:                         rec.ID,
		PaymentClientID:                   rec.ClientID,
		PaymentType:                       paymentModel.PaymentTypeMonthly,
		PaymentPeriodMonth:                int16(rec.Month),
		PaymentPeriodYear:                 int16(rec.Year),
		PaymentAmountIDR:                  rec.AmountIDR,
		PaymentPlanAmountIDR:              rec.PlanAmountIDR,
		PaymentAddonAmountIDR:             rec.AddOnAmountIDR,
		PaymentInstallmentAmountIDR:       rec.InstallmentAmountIDR,
		PaymentOutageDiscountIDR:          rec.OutageDiscountIDR,
		PaymentOutageDays:                 rec.OutageDays,
		PaymentFutureInstallmentAmountIDR: rec.FutureInstallmentAmountIDR,
		PaymentFutureInstallmentCount:     rec.FutureInstallmentCount,
		PaymentIsProrated:                 rec.Prorated,
		PaymentBilledDays:                 rec.BilledDays,
		PaymentTotalDays:                  rec.TotalDays,
		PaymentStatus:                     rec.Status,
		PaymentDueDate:                    rec.DueDate,
		PaymentNote:                       &note,
	}
}
