// Package rediscache decorates outbound ports with Redis read-through
// caching. Collection policy is read on every settlement, so cache hits
// keep the hot path off Postgres.
package rediscache

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"log"
	"time"

	"nftmarket/internal/adapters/outbound/persistence/postgresql/records"
	portsout "nftmarket/internal/application/ports/out"
	"nftmarket/internal/domain/entities"
	apperrors "nftmarket/internal/shared_kernel/errors"

	"github.com/redis/go-redis/v9"
)

const collectionKeyPrefix = "nftmarket:collection:"

type cachedCollection struct {
	Address         string                    `json:"address"`
	SupportedAssets []records.AssetInfoRecord `json:"supported_assets"`
	Royalties       []records.RoyaltyRecord   `json:"royalties"`
}

// CollectionCatalogCache is a read-through cache in front of another
// CollectionCatalog. Cache failures degrade to the inner catalog and are
// logged, never surfaced.
type CollectionCatalogCache struct {
	inner  portsout.CollectionCatalog
	client *redis.Client
	ttl    time.Duration
	logger *log.Logger
}

var _ portsout.CollectionCatalog = (*CollectionCatalogCache)(nil)

func NewCollectionCatalogCache(
	inner portsout.CollectionCatalog,
	client *redis.Client,
	ttl time.Duration,
	logger *log.Logger,
) *CollectionCatalogCache {
	return &CollectionCatalogCache{inner: inner, client: client, ttl: ttl, logger: logger}
}

func (c *CollectionCatalogCache) Create(ctx context.Context, info entities.CollectionInfo) *apperrors.AppError {
	if appErr := c.inner.Create(ctx, info); appErr != nil {
		return appErr
	}

	c.invalidate(ctx, info.Collection)
	return nil
}

func (c *CollectionCatalogCache) Get(ctx context.Context, collection string) (entities.CollectionInfo, bool, *apperrors.AppError) {
	key := collectionKeyPrefix + collection

	payload, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		info, decodeErr := decodeCachedCollection(payload)
		if decodeErr == nil {
			return info, true, nil
		}
		c.logf("collection cache decode failed collection=%s error=%v", collection, decodeErr)
	} else if !stderrors.Is(err, redis.Nil) {
		c.logf("collection cache read failed collection=%s error=%v", collection, err)
	}

	info, found, appErr := c.inner.Get(ctx, collection)
	if appErr != nil || !found {
		return info, found, appErr
	}

	if payload, encodeErr := encodeCachedCollection(info); encodeErr == nil {
		if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			c.logf("collection cache write failed collection=%s error=%v", collection, err)
		}
	}

	return info, true, nil
}

func (c *CollectionCatalogCache) Update(ctx context.Context, info entities.CollectionInfo) *apperrors.AppError {
	if appErr := c.inner.Update(ctx, info); appErr != nil {
		return appErr
	}

	c.invalidate(ctx, info.Collection)
	return nil
}

// List always goes to the inner catalog. Cursor pagination over a cached
// snapshot would serve stale pages.
func (c *CollectionCatalogCache) List(ctx context.Context, filter portsout.CollectionListFilter) ([]entities.CollectionInfo, *apperrors.AppError) {
	return c.inner.List(ctx, filter)
}

func (c *CollectionCatalogCache) invalidate(ctx context.Context, collection string) {
	if err := c.client.Del(ctx, collectionKeyPrefix+collection).Err(); err != nil {
		c.logf("collection cache invalidation failed collection=%s error=%v", collection, err)
	}
}

func (c *CollectionCatalogCache) logf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}

func encodeCachedCollection(info entities.CollectionInfo) ([]byte, error) {
	return json.Marshal(cachedCollection{
		Address:         info.Collection,
		SupportedAssets: records.EncodeAssetInfos(info.SupportedAssets),
		Royalties:       records.EncodeRoyalties(info.Royalties),
	})
}

func decodeCachedCollection(payload []byte) (entities.CollectionInfo, error) {
	var cached cachedCollection
	if err := json.Unmarshal(payload, &cached); err != nil {
		return entities.CollectionInfo{}, err
	}

	supportedAssets, appErr := records.DecodeAssetInfos(cached.SupportedAssets)
	if appErr != nil {
		return entities.CollectionInfo{}, stderrors.New(appErr.Message)
	}
	royalties, appErr := records.DecodeRoyalties(cached.Royalties)
	if appErr != nil {
		return entities.CollectionInfo{}, stderrors.New(appErr.Message)
	}

	return entities.CollectionInfo{
		Collection:      cached.Address,
		SupportedAssets: supportedAssets,
		Royalties:       royalties,
	}, nil
}
