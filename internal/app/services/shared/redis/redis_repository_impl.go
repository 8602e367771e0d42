package redis

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"finddoctor-service/internal/app/contracts"
	"finddoctor-service/internal/app/models"
	"finddoctor-service/internal/pkg/constvars"
	"finddoctor-service/internal/pkg/exceptions"
)

type redisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) contracts.RedisRepository {
	return &redisRepository{client: client}
}

func (r *redisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = r.client.Set(ctx, key, jsonValue, exp).Err()
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

func (r *redisRepository) Get(ctx context.Context, key string) (string, error) {
	data, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	} else if err != nil {
		return "", exceptions.ErrRedisGetNoData(err, key)
	}
	return data, nil
}

func (r *redisRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}

func (r *redisRepository) CreateSession(ctx context.Context, session *models.Session, ttl time.Duration) error {
	return r.Set(ctx, constvars.SessionKeyPrefix+session.ID, session, ttl)
}

func (r *redisRepository) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	data, err := r.Get(ctx, constvars.SessionKeyPrefix+sessionID)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, exceptions.ErrInvalidSession(nil)
	}

	session := new(models.Session)
	if err := json.Unmarshal([]byte(data), session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (r *redisRepository) DeleteSession(ctx context.Context, sessionID string) error {
	return r.Delete(ctx, constvars.SessionKeyPrefix+sessionID)
}

func (r *redisRepository) SaveBooking(ctx context.Context, booking *models.BookingSession, ttl time.Duration) error {
	return r.Set(ctx, constvars.BookingKeyPrefix+booking.ID, booking, ttl)
}

func (r *redisRepository) GetBooking(ctx context.Context, bookingID string) (*models.BookingSession, error) {
	data, err := r.Get(ctx, constvars.BookingKeyPrefix+bookingID)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, exceptions.ErrBookingNotFound(nil)
	}

	booking := new(models.BookingSession)
	if err := json.Unmarshal([]byte(data), booking); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return booking, nil
}

func (r *redisRepository) DeleteBooking(ctx context.Context, bookingID string) error {
	return r.Delete(ctx, constvars.BookingKeyPrefix+bookingID)
}
