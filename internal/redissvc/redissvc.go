// Package redissvc caches assembled order views in Redis. The cache is
// best-effort: a miss or a Redis error just falls through to the stores.
package redissvc

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/muhammaduss/Warehold/internal/orders"
	"github.com/redis/go-redis/v9"
)

const viewTTL = 5 * time.Minute

type RedisService struct {
	rdb *redis.Client
	ctx context.Context
}

func NewRedisService(rdb *redis.Client, ctx context.Context) *RedisService {
	return &RedisService{
		rdb: rdb,
		ctx: ctx,
	}
}

func (s *RedisService) Rdb() *redis.Client {
	return s.rdb
}

func (s *RedisService) Ctx() context.Context {
	return s.ctx
}

func viewKey(orderID int) string {
	return fmt.Sprintf("order:view:%d", orderID)
}

// GetOrderView returns a cached view and whether it was present.
func (s *RedisService) GetOrderView(orderID int) (orders.OrderView, bool) {
	raw, err := s.rdb.Get(s.ctx, viewKey(orderID)).Bytes()
	if err != nil {
		return orders.OrderView{}, false
	}

	var view orders.OrderView
	if err := json.Unmarshal(raw, &view); err != nil {
		return orders.OrderView{}, false
	}
	return view, true
}

func (s *RedisService) SetOrderView(view orders.OrderView) {
	raw, err := json.Marshal(view)
	if err != nil {
		return
	}
	_ = s.rdb.Set(s.ctx, viewKey(view.ID), raw, viewTTL).Err()
}

// InvalidateOrderView drops the cached view after a status update.
func (s *RedisService) InvalidateOrderView(orderID int) {
	_ = s.rdb.Del(s.ctx, viewKey(orderID)).Err()
}
