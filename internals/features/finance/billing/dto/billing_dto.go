// file: internals/features/finance/billing/dto/billing_dto.go
package dto

import (
	service "netku_backend/internals/features/finance/billing/service"
)

// Request generate/recalculate/rollback — periode dipilih by nama bulan.
type BillingPeriodDTO struct {
	Month string `json:"month" validate:"required"`
	Year  int    `json:"year" validate:"required,min=2000,max=2100"`
}

type GenerateBillingResponse struct {
	Period          string                  `json:"period"`
	GeneratedCount  int                     `json:"generated_count"`
	UpdatedCount    int                     `json:"updated_count"`
	DeletedCount    int                     `json:"deleted_count"`
	SkippedPaid     int                     `json:"skipped_paid"`
	SkippedNoCharge int                     `json:"skipped_no_charge"`
	Payments        []service.PaymentRecord `json:"payments"`
}

type RollbackBillingResponse struct {
	Period              string `json:"period"`
	DeletedPayments     int    `json:"deleted_payments"`
	RestoredOutages     int    `json:"restored_outages"`
	SkippedPaidPayments int    `json:"skipped_paid_payments"`
}

func ToGenerateResponse(p service.Period, res service.GenerateResult) GenerateBillingResponse {
	return GenerateBillingResponse{
		Period:          p.Label(),
		GeneratedCount:  res.GeneratedCount,
		UpdatedCount:    res.UpdatedCount,
		DeletedCount:    res.DeletedCount,
		SkippedPaid:     res.SkippedPaid,
		SkippedNoCharge: res.SkippedNoCharge,
		Payments:        res.Payments,
	}
}

func ToRollbackResponse(p service.Period, res service.RollbackResult) RollbackBillingResponse {
	return RollbackBillingResponse{
		Period:              p.Label(),
		DeletedPayments:     res.DeletedPayments,
		RestoredOutages:     res.RestoredOutages,
		SkippedPaidPayments: res.SkippedPaidPayments,
	}
}
