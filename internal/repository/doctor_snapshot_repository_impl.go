package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainRepo "doctor-directory/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

const RedisSnapshotKey = "doctors:snapshot"

type doctorSnapshotRepository struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewDoctorSnapshotRepository(redisClient *redis.Client, ttl time.Duration) domainRepo.DoctorSnapshotRepository {
	return &doctorSnapshotRepository{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func (r *doctorSnapshotRepository) Load(ctx context.Context) ([]byte, error) {
	payload, err := r.redisClient.Get(ctx, RedisSnapshotKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load doctor snapshot: %w", err)
	}
	return payload, nil
}

func (r *doctorSnapshotRepository) Save(ctx context.Context, payload []byte) error {
	if err := r.redisClient.Set(ctx, RedisSnapshotKey, payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("save doctor snapshot: %w", err)
	}
	return nil
}
