package redis_repo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/RoyceAzure/lab/artmarket/internal/domain/model"
	"github.com/redis/go-redis/v9"
)

type ArtworkCacheError error

var (
	ErrCacheMiss ArtworkCacheError = errors.New("artwork cache miss")
)

const availableArtworksKey = "artworks:available"

// IArtworkCacheRepository 可販售作品清單的快取
type IArtworkCacheRepository interface {
	// GetAvailableArtworks 取得快取的可販售作品清單, 未命中回傳 ErrCacheMiss
	GetAvailableArtworks(ctx context.Context) ([]model.Artwork, error)

	// SetAvailableArtworks 寫入可販售作品清單快取
	SetAvailableArtworks(ctx context.Context, artworks []model.Artwork, ttl time.Duration) error

	// InvalidateAvailableArtworks 作品異動後讓快取失效
	InvalidateAvailableArtworks(ctx context.Context) error
}

type ArtworkCacheRepo struct {
	cache *redis.Client
}

func NewArtworkCacheRepo(cache *redis.Client) *ArtworkCacheRepo {
	return &ArtworkCacheRepo{cache: cache}
}

func (r *ArtworkCacheRepo) GetAvailableArtworks(ctx context.Context) ([]model.Artwork, error) {
	raw, err := r.cache.Get(ctx, availableArtworksKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var artworks []model.Artwork
	if err := json.Unmarshal([]byte(raw), &artworks); err != nil {
		return nil, err
	}
	return artworks, nil
}

func (r *ArtworkCacheRepo) SetAvailableArtworks(ctx context.Context, artworks []model.Artwork, ttl time.Duration) error {
	raw, err := json.Marshal(artworks)
	if err != nil {
		return err
	}
	return r.cache.Set(ctx, availableArtworksKey, raw, ttl).Err()
}

func (r *ArtworkCacheRepo) InvalidateAvailableArtworks(ctx context.Context) error {
	return r.cache.Del(ctx, availableArtworksKey).Err()
}
