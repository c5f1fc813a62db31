package service

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/artmarket/internal/apperr"
	"github.com/RoyceAzure/lab/artmarket/internal/domain/model"
	"github.com/RoyceAzure/lab/artmarket/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/artmarket/internal/infra/repository/redis_repo"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrArtworkNotFound = apperr.New(apperr.NotFoundCode, "artwork not found")
	ErrInvalidPrice    = apperr.New(apperr.InvalidArgumentCode, "price must be positive")
	ErrNotArtworkOwner = apperr.New(apperr.UnauthorizedCode, "artwork belongs to another artist")
)

type UploadArtworkParams struct {
	Name        string
	Description string
	Price       decimal.Decimal
	ImageURL    string
	Category    string
}

type UpdateArtworkParams struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	ImageURL    *string
	Category    *string
	IsAvailable *bool
}

type IArtistService interface {
	UploadArtwork(ctx context.Context, artistID uint, arg UploadArtworkParams) (*model.Artwork, error)
	GetMyArtworks(ctx context.Context, artistID uint) ([]model.Artwork, error)
	GetArtwork(ctx context.Context, artworkID uint) (*model.Artwork, error)
	UpdateArtwork(ctx context.Context, artistID, artworkID uint, arg UpdateArtworkParams) (*model.Artwork, error)
	DeleteArtwork(ctx context.Context, artistID, artworkID uint) error
}

type ArtistService struct {
	artworkRepo  *db.ArtworkRepo
	artworkCache redis_repo.IArtworkCacheRepository
}

// artworkCache 可為 nil, 未配置 redis 時僅略過快取失效
func NewArtistService(artworkRepo *db.ArtworkRepo, artworkCache redis_repo.IArtworkCacheRepository) IArtistService {
	return &ArtistService{
		artworkRepo:  artworkRepo,
		artworkCache: artworkCache,
	}
}

// UploadArtwork 上架作品, 預設可販售
// 錯誤:
//   - apperr.InvalidArgumentCode 460: 名稱缺漏或價格非正數
//   - apperr.InternalErrorCode 500: 持久層錯誤
func (s *ArtistService) UploadArtwork(ctx context.Context, artistID uint, arg UploadArtworkParams) (*model.Artwork, error) {
	if arg.Name == "" {
		return nil, apperr.New(apperr.InvalidArgumentCode, "artwork name is required")
	}
	if !arg.Price.IsPositive() {
		return nil, ErrInvalidPrice
	}

	artwork := &model.Artwork{
		Name:        arg.Name,
		Description: arg.Description,
		Price:       arg.Price,
		ImageURL:    arg.ImageURL,
		Category:    arg.Category,
		IsAvailable: true,
		ArtistID:    artistID,
	}

	created, err := s.artworkRepo.CreateArtwork(ctx, artwork)
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to create artwork", err)
	}

	s.invalidateCache(ctx)
	return created, nil
}

func (s *ArtistService) GetMyArtworks(ctx context.Context, artistID uint) ([]model.Artwork, error) {
	artworks, err := s.artworkRepo.ListArtworksByArtist(ctx, artistID)
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to list artworks", err)
	}
	return artworks, nil
}

func (s *ArtistService) GetArtwork(ctx context.Context, artworkID uint) (*model.Artwork, error) {
	artwork, err := s.artworkRepo.GetArtworkByID(ctx, artworkID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtworkNotFound
		}
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to get artwork", err)
	}
	return artwork, nil
}

// UpdateArtwork 只有作品擁有者能更新
func (s *ArtistService) UpdateArtwork(ctx context.Context, artistID, artworkID uint, arg UpdateArtworkParams) (*model.Artwork, error) {
	artwork, err := s.GetArtwork(ctx, artworkID)
	if err != nil {
		return nil, err
	}
	if artwork.ArtistID != artistID {
		return nil, ErrNotArtworkOwner
	}

	if arg.Name != nil {
		artwork.Name = *arg.Name
	}
	if arg.Description != nil {
		artwork.Description = *arg.Description
	}
	if arg.Price != nil {
		if !arg.Price.IsPositive() {
			return nil, ErrInvalidPrice
		}
		artwork.Price = *arg.Price
	}
	if arg.ImageURL != nil {
		artwork.ImageURL = *arg.ImageURL
	}
	if arg.Category != nil {
		artwork.Category = *arg.Category
	}
	if arg.IsAvailable != nil {
		artwork.IsAvailable = *arg.IsAvailable
	}

	if err := s.artworkRepo.UpdateArtwork(ctx, artwork); err != nil {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to update artwork", err)
	}

	s.invalidateCache(ctx)
	return artwork, nil
}

func (s *ArtistService) DeleteArtwork(ctx context.Context, artistID, artworkID uint) error {
	artwork, err := s.GetArtwork(ctx, artworkID)
	if err != nil {
		return err
	}
	if artwork.ArtistID != artistID {
		return ErrNotArtworkOwner
	}

	if err := s.artworkRepo.DeleteArtwork(ctx, artworkID); err != nil {
		return apperr.Wrap(apperr.InternalErrorCode, "failed to delete artwork", err)
	}

	s.invalidateCache(ctx)
	return nil
}

// 快取失效失敗不影響主流程, 清單快取有 TTL 自然過期
func (s *ArtistService) invalidateCache(ctx context.Context) {
	if s.artworkCache == nil {
		return
	}
	_ = s.artworkCache.InvalidateAvailableArtworks(ctx)
}
