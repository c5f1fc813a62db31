package dto

import (
	"github.com/RoyceAzure/lab/artmarket/internal/domain/model"
	"github.com/shopspring/decimal"
)

type UploadArtworkDTO struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	Category    string          `json:"category"`
}

type UpdateArtworkDTO struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	ImageURL    *string          `json:"image_url"`
	Category    *string          `json:"category"`
	IsAvailable *bool            `json:"is_available"`
}

type ArtworkDTO struct {
	ArtworkID   uint            `json:"artwork_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	Category    string          `json:"category"`
	IsAvailable bool            `json:"is_available"`
	ArtistID    uint            `json:"artist_id"`
}

func ConvertArtworkModelToDTO(artwork model.Artwork) ArtworkDTO {
	return ArtworkDTO{
		ArtworkID:   artwork.ArtworkID,
		Name:        artwork.Name,
		Description: artwork.Description,
		Price:       artwork.Price,
		ImageURL:    artwork.ImageURL,
		Category:    artwork.Category,
		IsAvailable: artwork.IsAvailable,
		ArtistID:    artwork.ArtistID,
	}
}

func ConvertArtworkModelsToDTO(artworks []model.Artwork) []ArtworkDTO {
	dtos := make([]ArtworkDTO, 0, len(artworks))
	for _, artwork := range artworks {
		dtos = append(dtos, ConvertArtworkModelToDTO(artwork))
	}
	return dtos
}
