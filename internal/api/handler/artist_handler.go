package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/artmarket/internal/api"
	"github.com/RoyceAzure/lab/artmarket/internal/api/dto"
	"github.com/RoyceAzure/lab/artmarket/internal/apperr"
	"github.com/RoyceAzure/lab/artmarket/internal/service"
)

type ArtistHandler struct {
	artistService service.IArtistService
}

func NewArtistHandler(artistService service.IArtistService) *ArtistHandler {
	if artistService == nil {
		panic("artistService cannot be nil")
	}
	return &ArtistHandler{
		artistService: artistService,
	}
}

// UploadArtwork 上架作品
// POST /api/v1/artist/artworks
func (h *ArtistHandler) UploadArtwork(w http.ResponseWriter, r *http.Request) {
	payload := mustGetPayload(w, r)
	if payload == nil {
		return
	}

	var uploadDTO dto.UploadArtworkDTO
	if err := json.NewDecoder(r.Body).Decode(&uploadDTO); err != nil {
		api.ErrorJSON(w, int(apperr.BadRequestCode), err, apperr.ErrStrMap[apperr.BadRequestCode])
		return
	}

	artwork, err := h.artistService.UploadArtwork(r.Context(), payload.UserID, service.UploadArtworkParams{
		Name:        uploadDTO.Name,
		Description: uploadDTO.Description,
		Price:       uploadDTO.Price,
		ImageURL:    uploadDTO.ImageURL,
		Category:    uploadDTO.Category,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, dto.ConvertArtworkModelToDTO(*artwork), nil)
}

// GetMyArtworks 取得自己的作品清單
// GET /api/v1/artist/artworks
func (h *ArtistHandler) GetMyArtworks(w http.ResponseWriter, r *http.Request) {
	payload := mustGetPayload(w, r)
	if payload == nil {
		return
	}

	artworks, err := h.artistService.GetMyArtworks(r.Context(), payload.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, dto.ConvertArtworkModelsToDTO(artworks), nil)
}

// UpdateArtwork 更新作品, 僅限擁有者
// PATCH /api/v1/artist/artworks/{artwork_id}
func (h *ArtistHandler) UpdateArtwork(w http.ResponseWriter, r *http.Request) {
	payload := mustGetPayload(w, r)
	if payload == nil {
		return
	}

	artworkID, err := parseUintParam(r, "artwork_id")
	if err != nil {
		writeServiceError(w, err)
		return
	}

	var updateDTO dto.UpdateArtworkDTO
	if err := json.NewDecoder(r.Body).Decode(&updateDTO); err != nil {
		api.ErrorJSON(w, int(apperr.BadRequestCode), err, apperr.ErrStrMap[apperr.BadRequestCode])
		return
	}

	artwork, err := h.artistService.UpdateArtwork(r.Context(), payload.UserID, artworkID, service.UpdateArtworkParams{
		Name:        updateDTO.Name,
		Description: updateDTO.Description,
		Price:       updateDTO.Price,
		ImageURL:    updateDTO.ImageURL,
		Category:    updateDTO.Category,
		IsAvailable: updateDTO.IsAvailable,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, dto.ConvertArtworkModelToDTO(*artwork), nil)
}

// DeleteArtwork 下架並刪除作品, 僅限擁有者
// DELETE /api/v1/artist/artworks/{artwork_id}
func (h *ArtistHandler) DeleteArtwork(w http.ResponseWriter, r *http.Request) {
	payload := mustGetPayload(w, r)
	if payload == nil {
		return
	}

	artworkID, err := parseUintParam(r, "artwork_id")
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if err := h.artistService.DeleteArtwork(r.Context(), payload.UserID, artworkID); err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, nil, nil)
}
