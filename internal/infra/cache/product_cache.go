// Package cache は商品リポジトリにRedisのキャッシュを被せる。
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const defaultPrefix = "storefront:products:"

type listEntry struct {
	Items []model.Product `json:"items"`
	Total int64           `json:"total"`
}

// CachedProductRepository は読み取りをRedisにキャッシュし、書き込みで無効化する。
// Redisが落ちていても下のリポジトリにそのまま流す。
type CachedProductRepository struct {
	inner  repo.ProductRepository
	client *redis.Client
	prefix string
	ttl    time.Duration
	group  singleflight.Group
	logger *zap.Logger
}

func NewCachedProductRepository(inner repo.ProductRepository, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedProductRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedProductRepository{
		inner:  inner,
		client: client,
		prefix: defaultPrefix,
		ttl:    ttl,
		logger: logger,
	}
}

var _ repo.ProductRepository = (*CachedProductRepository)(nil)

func (r *CachedProductRepository) ListPublic(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	key := r.listKey(q)

	var cached listEntry
	if r.get(ctx, key, &cached) {
		return cached.Items, cached.Total, nil
	}

	//同じキーの同時ミスは1回の問い合わせにまとめる。
	//先頭の呼び出し元がキャンセルしても待っている側には影響させない。
	shared := context.WithoutCancel(ctx)
	v, err, _ := r.group.Do(key, func() (interface{}, error) {
		items, total, err := r.inner.ListPublic(shared, q)
		if err != nil {
			return nil, err
		}
		entry := listEntry{Items: items, Total: total}
		r.set(shared, key, entry)
		return entry, nil
	})
	if err != nil {
		return []model.Product{}, 0, err
	}
	entry := v.(listEntry)
	return entry.Items, entry.Total, nil
}

func (r *CachedProductRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	key := r.itemKey(id)

	var cached model.Product
	if r.get(ctx, key, &cached) {
		return cached, nil
	}

	shared := context.WithoutCancel(ctx)
	v, err, _ := r.group.Do(key, func() (interface{}, error) {
		p, err := r.inner.FindByID(shared, id)
		if err != nil {
			return nil, err
		}
		r.set(shared, key, p)
		return p, nil
	})
	if err != nil {
		return model.Product{}, err
	}
	return v.(model.Product), nil
}

func (r *CachedProductRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	created, err := r.inner.Create(ctx, p)
	if err != nil {
		return model.Product{}, err
	}
	r.invalidate(ctx, created.ID)
	return created, nil
}

func (r *CachedProductRepository) Update(ctx context.Context, p model.Product) error {
	if err := r.inner.Update(ctx, p); err != nil {
		return err
	}
	r.invalidate(ctx, p.ID)
	return nil
}

func (r *CachedProductRepository) SoftDelete(ctx context.Context, id int64) error {
	if err := r.inner.SoftDelete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

func (r *CachedProductRepository) listKey(q repo.ProductListQuery) string {
	minPrice, maxPrice := "-", "-"
	if q.MinPrice != nil {
		minPrice = strconv.FormatInt(*q.MinPrice, 10)
	}
	if q.MaxPrice != nil {
		maxPrice = strconv.FormatInt(*q.MaxPrice, 10)
	}
	return fmt.Sprintf("%slist:%d:%d:%s:%s:%s:%s:%s",
		r.prefix, q.Page, q.Limit, q.Sort, q.Category, minPrice, maxPrice, strconv.Quote(q.Q))
}

func (r *CachedProductRepository) itemKey(id int64) string {
	return r.prefix + "item:" + strconv.FormatInt(id, 10)
}

// get はヒットした時だけtrue。エラーはミス扱い。
func (r *CachedProductRepository) get(ctx context.Context, key string, dest interface{}) bool {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		r.logger.Warn("cache unmarshal failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (r *CachedProductRepository) set(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		r.logger.Warn("cache marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		r.logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// 書き込み後は該当商品と一覧キャッシュを全部消す
func (r *CachedProductRepository) invalidate(ctx context.Context, id int64) {
	if err := r.client.Del(ctx, r.itemKey(id)).Err(); err != nil {
		r.logger.Warn("cache delete failed", zap.Int64("product_id", id), zap.Error(err))
	}

	var cursor uint64
	for {
		keys, next, err := r.client.Scan(ctx, cursor, r.prefix+"list:*", 100).Result()
		if err != nil {
			r.logger.Warn("cache scan failed", zap.Error(err))
			return
		}
		if len(keys) > 0 {
			if err := r.client.Del(ctx, keys...).Err(); err != nil {
				r.logger.Warn("cache delete failed", zap.Error(err))
				return
			}
		}
		cursor = next
		if cursor == 0 {
			return
		}
	}
}
