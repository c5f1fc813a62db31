package db

import (
	"context"

	"github.com/RoyceAzure/lab/artmarket/internal/domain/model"
)

type ArtworkRepo struct {
	dbDao *DbDao
}

func NewArtworkRepo(dbDao *DbDao) *ArtworkRepo {
	return &ArtworkRepo{dbDao: dbDao}
}

// CreateArtwork - 創建作品
func (r *ArtworkRepo) CreateArtwork(ctx context.Context, artwork *model.Artwork) (*model.Artwork, error) {
	if err := r.dbDao.WithContext(ctx).Create(artwork).Error; err != nil {
		return nil, err
	}
	return artwork, nil
}

// GetArtworkByID - 根據 ID 查詢作品
func (r *ArtworkRepo) GetArtworkByID(ctx context.Context, id uint) (*model.Artwork, error) {
	var artwork model.Artwork
	err := r.dbDao.WithContext(ctx).First(&artwork, id).Error
	if err != nil {
		return nil, err
	}
	return &artwork, nil
}

// ListArtworksByArtist - 根據藝術家 ID 查詢作品
func (r *ArtworkRepo) ListArtworksByArtist(ctx context.Context, artistID uint) ([]model.Artwork, error) {
	var artworks []model.Artwork
	err := r.dbDao.WithContext(ctx).Where("artist_id = ?", artistID).Find(&artworks).Error
	return artworks, err
}

// ListAvailableArtworks - 查詢所有可販售作品
func (r *ArtworkRepo) ListAvailableArtworks(ctx context.Context) ([]model.Artwork, error) {
	var artworks []model.Artwork
	err := r.dbDao.WithContext(ctx).Where("is_available = ?", true).Find(&artworks).Error
	return artworks, err
}

// ListArtworks - 查詢所有作品
func (r *ArtworkRepo) ListArtworks(ctx context.Context) ([]model.Artwork, error) {
	var artworks []model.Artwork
	err := r.dbDao.WithContext(ctx).Find(&artworks).Error
	return artworks, err
}

// UpdateArtwork - 更新作品
func (r *ArtworkRepo) UpdateArtwork(ctx context.Context, artwork *model.Artwork) error {
	return r.dbDao.WithContext(ctx).Save(artwork).Error
}

// DeleteArtwork - 軟刪除作品
func (r *ArtworkRepo) DeleteArtwork(ctx context.Context, id uint) error {
	return r.dbDao.WithContext(ctx).Delete(&model.Artwork{}, id).Error
}
