package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ikkim/udonggeum-storefront/internal/app/model"
	"github.com/ikkim/udonggeum-storefront/pkg/logger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartStore is a key/value store of serialized carts. It knows nothing about
// the payload format; writes are last-write-wins.
type CartStore interface {
	Read(ctx context.Context, key string) (payload []byte, found bool, err error)
	Write(ctx context.Context, key string, payload []byte) error
	Delete(ctx context.Context, key string) error
}

type gormCartStore struct {
	db *gorm.DB
}

// NewGormCartStore stores slots in the cart_slots table.
func NewGormCartStore(db *gorm.DB) CartStore {
	return &gormCartStore{db: db}
}

func (r *gormCartStore) Read(ctx context.Context, key string) ([]byte, bool, error) {
	var slot model.CartSlot
	err := r.db.WithContext(ctx).Where("slot_key = ?", key).First(&slot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		logger.Error("Failed to read cart slot from database", err, logger.Fields{
			"slot": key,
		})
		return nil, false, err
	}
	return []byte(slot.Payload), true, nil
}

func (r *gormCartStore) Write(ctx context.Context, key string, payload []byte) error {
	slot := model.CartSlot{Key: key, Payload: string(payload), UpdatedAt: time.Now()}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&slot).Error
	if err != nil {
		logger.Error("Failed to write cart slot to database", err, logger.Fields{
			"slot":  key,
			"bytes": len(payload),
		})
		return err
	}

	logger.Debug("Cart slot written to database", logger.Fields{
		"slot":  key,
		"bytes": len(payload),
	})
	return nil
}

func (r *gormCartStore) Delete(ctx context.Context, key string) error {
	if err := r.db.WithContext(ctx).Where("slot_key = ?", key).Delete(&model.CartSlot{}).Error; err != nil {
		logger.Error("Failed to delete cart slot from database", err, logger.Fields{
			"slot": key,
		})
		return err
	}
	return nil
}

type redisCartStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisCartStore keeps each slot as a plain string key. A zero ttl keeps
// slots forever.
func NewRedisCartStore(client redis.Cmdable, ttl time.Duration) CartStore {
	return &redisCartStore{client: client, ttl: ttl}
}

func (r *redisCartStore) Read(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		logger.Error("Failed to read cart slot from Redis", err, logger.Fields{
			"slot": key,
		})
		return nil, false, err
	}
	return val, true, nil
}

func (r *redisCartStore) Write(ctx context.Context, key string, payload []byte) error {
	if err := r.client.Set(ctx, key, payload, r.ttl).Err(); err != nil {
		logger.Error("Failed to write cart slot to Redis", err, logger.Fields{
			"slot": key,
		})
		return err
	}
	return nil
}

func (r *redisCartStore) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		logger.Error("Failed to delete cart slot from Redis", err, logger.Fields{
			"slot": key,
		})
		return err
	}
	return nil
}
