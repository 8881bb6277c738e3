// file: internals/features/sales/products/controller/product_sale_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	clientModel "netku_backend/internals/features/clients/clients/model"
	dto "netku_backend/internals/features/sales/products/dto"
	model "netku_backend/internals/features/sales/products/model"
	helper "netku_backend/internals/helpers"
)

type ProductSaleHandler struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewProductSaleHandler(db *gorm.DB) *ProductSaleHandler {
	return &ProductSaleHandler{DB: db, Validator: validator.New()}
}

/* =========================
   Create (POST /product-sales)
   Sale + termin cicilan dibuat dalam satu transaksi.
========================= */

func (h *ProductSaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductSaleDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var (
		sale         model.ProductSale
		installments []model.ProductInstallment
	)
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&clientModel.Client{}).
			Where("client_id = ? AND client_deleted_at IS NULL", in.ProductSaleClientID).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt == 0 {
			return fiber.NewError(fiber.StatusNotFound, "client not found")
		}

		sale = in.ToProductSaleModel()
		if err := tx.Create(&sale).Error; err != nil {
			return err
		}

		installments = in.BuildInstallments(sale.ProductSaleID)
		return tx.Create(&installments).Error
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "product sale created",
		dto.ToProductSaleResponse(sale, installments))
}

/* =========================
   List (GET /product-sales)
========================= */

func (h *ProductSaleHandler) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 200)

	q := h.DB.WithContext(c.UserContext()).
		Model(&model.ProductSale{}).
		Where("product_sale_deleted_at IS NULL")

	if v := strings.TrimSpace(c.Query("client_id")); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("product_sale_client_id = ?", id)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.ProductSale
	if err := q.Order("product_sale_date DESC").Order("product_sale_id DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.ProductSaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.ToProductSaleResponse(s, nil))
	}
	return helper.JsonList(c, "List product sales", out,
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

/* =========================
   Detail (GET /product-sales/:id) — termin ikut dimuat
========================= */

func (h *ProductSaleHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var sale model.ProductSale
	if err := h.DB.WithContext(c.UserContext()).
		First(&sale, "product_sale_id = ? AND product_sale_deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "product sale not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var installments []model.ProductInstallment
	if err := h.DB.WithContext(c.UserContext()).
		Where("product_installment_sale_id = ? AND product_installment_deleted_at IS NULL", id).
		Order("product_installment_no ASC").
		Find(&installments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "product sale detail",
		dto.ToProductSaleResponse(sale, installments))
}

/* =========================
   Cancel (POST /product-sales/:id/cancel)
   Batalkan sale beserta semua termin yang masih pending.
   Termin paid tidak disentuh.
========================= */

func (h *ProductSaleHandler) Cancel(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var cancelled int64
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&model.ProductSale{}).
			Where("product_sale_id = ? AND product_sale_deleted_at IS NULL", id).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt == 0 {
			return fiber.NewError(fiber.StatusNotFound, "product sale not found")
		}

		res := tx.Model(&model.ProductInstallment{}).
			Where(`product_installment_sale_id = ? AND product_installment_status = ?
			       AND product_installment_deleted_at IS NULL`,
				id, model.ProductInstallmentStatusPending).
			Update("product_installment_status", model.ProductInstallmentStatusCancelled)
		if res.Error != nil {
			return res.Error
		}
		cancelled = res.RowsAffected
		return nil
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "product sale cancelled", fiber.Map{
		"product_sale_id":        id,
		"cancelled_installments": cancelled,
	})
}
