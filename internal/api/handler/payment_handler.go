package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/artmarket/internal/api"
	"github.com/RoyceAzure/lab/artmarket/internal/api/dto"
	"github.com/RoyceAzure/lab/artmarket/internal/apperr"
	"github.com/RoyceAzure/lab/artmarket/internal/domain/model"
	"github.com/RoyceAzure/lab/artmarket/internal/service"
)

type PaymentHandler struct {
	paymentService service.IPaymentService
}

func NewPaymentHandler(paymentService service.IPaymentService) *PaymentHandler {
	if paymentService == nil {
		panic("paymentService cannot be nil")
	}
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// CreatePayment 對訂單記錄付款, 金額必須等於訂單成交金額
// POST /api/v1/orders/{order_id}/payments
func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	orderID, err := parseUintParam(r, "order_id")
	if err != nil {
		writeServiceError(w, err)
		return
	}

	var paymentDTO dto.CreatePaymentDTO
	if err := json.NewDecoder(r.Body).Decode(&paymentDTO); err != nil {
		api.ErrorJSON(w, int(apperr.BadRequestCode), err, apperr.ErrStrMap[apperr.BadRequestCode])
		return
	}

	payment, err := h.paymentService.CreatePayment(r.Context(), orderID, paymentDTO.Amount, model.PaymentMethod(paymentDTO.Method))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, dto.ConvertPaymentModelToDTO(*payment), nil)
}

// GetOrderPayments 取得訂單的付款記錄
// GET /api/v1/orders/{order_id}/payments
func (h *PaymentHandler) GetOrderPayments(w http.ResponseWriter, r *http.Request) {
	orderID, err := parseUintParam(r, "order_id")
	if err != nil {
		writeServiceError(w, err)
		return
	}

	payments, err := h.paymentService.GetPaymentsByOrder(r.Context(), orderID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, dto.ConvertPaymentModelsToDTO(payments), nil)
}

// CompletePayment 完成付款, 同交易內將訂單轉為 paid
// POST /api/v1/payments/{payment_id}/complete
func (h *PaymentHandler) CompletePayment(w http.ResponseWriter, r *http.Request) {
	paymentID, err := parseUintParam(r, "payment_id")
	if err != nil {
		writeServiceError(w, err)
		return
	}

	payment, err := h.paymentService.CompletePayment(r.Context(), paymentID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, dto.ConvertPaymentModelToDTO(*payment), nil)
}

// FailPayment 付款失敗, 訂單維持 pending 可再付款
// POST /api/v1/payments/{payment_id}/fail
func (h *PaymentHandler) FailPayment(w http.ResponseWriter, r *http.Request) {
	paymentID, err := parseUintParam(r, "payment_id")
	if err != nil {
		writeServiceError(w, err)
		return
	}

	payment, err := h.paymentService.FailPayment(r.Context(), paymentID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, dto.ConvertPaymentModelToDTO(*payment), nil)
}
