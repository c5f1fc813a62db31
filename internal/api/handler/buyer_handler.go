package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/artmarket/internal/api"
	"github.com/RoyceAzure/lab/artmarket/internal/api/dto"
	"github.com/RoyceAzure/lab/artmarket/internal/apperr"
	"github.com/RoyceAzure/lab/artmarket/internal/constants"
	"github.com/RoyceAzure/lab/artmarket/internal/service"
)

type BuyerHandler struct {
	buyerService  service.IBuyerService
	artistService service.IArtistService
}

func NewBuyerHandler(buyerService service.IBuyerService, artistService service.IArtistService) *BuyerHandler {
	if buyerService == nil {
		panic("buyerService cannot be nil")
	}
	if artistService == nil {
		panic("artistService cannot be nil")
	}
	return &BuyerHandler{
		buyerService:  buyerService,
		artistService: artistService,
	}
}

// BrowseArtworks 瀏覽可販售作品, 不需登入
// GET /api/v1/artworks
func (h *BuyerHandler) BrowseArtworks(w http.ResponseWriter, r *http.Request) {
	artworks, err := h.buyerService.BrowseAvailableArtworks(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, dto.ConvertArtworkModelsToDTO(artworks), nil)
}

// GetArtwork 作品詳情, 不需登入
// GET /api/v1/artworks/{artwork_id}
func (h *BuyerHandler) GetArtwork(w http.ResponseWriter, r *http.Request) {
	artworkID, err := parseUintParam(r, "artwork_id")
	if err != nil {
		writeServiceError(w, err)
		return
	}

	artwork, err := h.artistService.GetArtwork(r.Context(), artworkID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, dto.ConvertArtworkModelToDTO(*artwork), nil)
}

// AddToCart 加入購物車, 數量省略時採預設值
// POST /api/v1/cart/items
func (h *BuyerHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	payload := mustGetPayload(w, r)
	if payload == nil {
		return
	}

	var addDTO dto.AddToCartDTO
	if err := json.NewDecoder(r.Body).Decode(&addDTO); err != nil {
		api.ErrorJSON(w, int(apperr.BadRequestCode), err, apperr.ErrStrMap[apperr.BadRequestCode])
		return
	}
	if addDTO.Quantity == 0 {
		addDTO.Quantity = constants.DefaultCartQuantity
	}

	cart, err := h.buyerService.AddToCart(r.Context(), payload.UserID, addDTO.ArtworkID, addDTO.Quantity)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, dto.ConvertCartModelToDTO(*cart), nil)
}

// GetCart 取得購物車
// GET /api/v1/cart
func (h *BuyerHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	payload := mustGetPayload(w, r)
	if payload == nil {
		return
	}

	cart, err := h.buyerService.GetCart(r.Context(), payload.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, dto.ConvertCartModelToDTO(*cart), nil)
}

// RemoveFromCart 移除購物車內指定作品, 行不存在視為已移除
// DELETE /api/v1/cart/items/{artwork_id}
func (h *BuyerHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	payload := mustGetPayload(w, r)
	if payload == nil {
		return
	}

	artworkID, err := parseUintParam(r, "artwork_id")
	if err != nil {
		writeServiceError(w, err)
		return
	}

	cart, err := h.buyerService.GetCart(r.Context(), payload.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	removed, err := h.buyerService.RemoveFromCart(r.Context(), cart.CartID, artworkID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, map[string]bool{"removed": removed}, nil)
}

// ClearCart 清空購物車
// DELETE /api/v1/cart
func (h *BuyerHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	payload := mustGetPayload(w, r)
	if payload == nil {
		return
	}

	cart, err := h.buyerService.GetCart(r.Context(), payload.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if err := h.buyerService.ClearCart(r.Context(), cart.CartID); err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, nil, nil)
}

// PlaceOrder 下單
// POST /api/v1/orders
func (h *BuyerHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	payload := mustGetPayload(w, r)
	if payload == nil {
		return
	}

	var orderDTO dto.PlaceOrderDTO
	if err := json.NewDecoder(r.Body).Decode(&orderDTO); err != nil {
		api.ErrorJSON(w, int(apperr.BadRequestCode), err, apperr.ErrStrMap[apperr.BadRequestCode])
		return
	}
	if orderDTO.Quantity == 0 {
		orderDTO.Quantity = constants.DefaultCartQuantity
	}

	order, err := h.buyerService.PlaceOrder(r.Context(), payload.UserID, orderDTO.ArtworkID, orderDTO.Quantity)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, dto.ConvertOrderModelToDTO(*order), nil)
}

// GetMyOrders 取得自己的訂單
// GET /api/v1/orders
func (h *BuyerHandler) GetMyOrders(w http.ResponseWriter, r *http.Request) {
	payload := mustGetPayload(w, r)
	if payload == nil {
		return
	}

	orders, err := h.buyerService.GetMyOrders(r.Context(), payload.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, dto.ConvertOrderModelsToDTO(orders), nil)
}
