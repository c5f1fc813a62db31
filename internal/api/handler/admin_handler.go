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

type AdminHandler struct {
	adminService service.IAdminService
}

func NewAdminHandler(adminService service.IAdminService) *AdminHandler {
	if adminService == nil {
		panic("adminService cannot be nil")
	}
	return &AdminHandler{
		adminService: adminService,
	}
}

// GetAllUsers 取得所有用戶
// GET /api/v1/admin/users
func (h *AdminHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminService.GetAllUsers(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	dtos := make([]dto.UserDTO, 0, len(users))
	for _, user := range users {
		dtos = append(dtos, dto.ConvertUserModelToDTO(user))
	}
	api.SuccessJSON(w, dtos, nil)
}

// GetAllOrders 取得所有訂單, 可用 status 過濾
// GET /api/v1/admin/orders?status=pending
func (h *AdminHandler) GetAllOrders(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	var (
		orders []model.Order
		err    error
	)
	if status != "" {
		orders, err = h.adminService.GetOrdersByStatus(r.Context(), model.OrderStatus(status))
	} else {
		orders, err = h.adminService.GetAllOrders(r.Context())
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, dto.ConvertOrderModelsToDTO(orders), nil)
}

// GetAllPayments 取得所有付款記錄
// GET /api/v1/admin/payments
func (h *AdminHandler) GetAllPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.adminService.GetAllPayments(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, dto.ConvertPaymentModelsToDTO(payments), nil)
}

// UpdateOrderStatus 更新訂單狀態, 僅接受狀態機允許的前進轉移
// PATCH /api/v1/admin/orders/{order_id}/status
func (h *AdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := parseUintParam(r, "order_id")
	if err != nil {
		writeServiceError(w, err)
		return
	}

	var statusDTO dto.UpdateOrderStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&statusDTO); err != nil {
		api.ErrorJSON(w, int(apperr.BadRequestCode), err, apperr.ErrStrMap[apperr.BadRequestCode])
		return
	}

	order, err := h.adminService.UpdateOrderStatus(r.Context(), orderID, model.OrderStatus(statusDTO.Status))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, dto.ConvertOrderModelToDTO(*order), nil)
}

// DeleteUser 下架任意用戶
// DELETE /api/v1/admin/users/{user_id}
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := parseUintParam(r, "user_id")
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if err := h.adminService.DeleteUser(r.Context(), userID); err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, nil, nil)
}

// DeleteArtwork 下架任意作品
// DELETE /api/v1/admin/artworks/{artwork_id}
func (h *AdminHandler) DeleteArtwork(w http.ResponseWriter, r *http.Request) {
	artworkID, err := parseUintParam(r, "artwork_id")
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if err := h.adminService.DeleteArtwork(r.Context(), artworkID); err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, nil, nil)
}
