package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lash-app/backend/internal/domain"

	"github.com/redis/go-redis/v9"
)

const pendingRegistrationKeyPrefix = "pending_registration:"

type pendingRegistrationRepository struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func newPendingRegistrationRepository(client redis.UniversalClient, ttl time.Duration) *pendingRegistrationRepository {
	return &pendingRegistrationRepository{
		client: client,
		ttl:    ttl,
	}
}

func pendingRegistrationKey(email string) string {
	return pendingRegistrationKeyPrefix + email
}

func (r *pendingRegistrationRepository) Save(ctx context.Context, registration *domain.PendingRegistration) error {
	payload, err := json.Marshal(registration)
	if err != nil {
		return fmt.Errorf("pending registration marshal failed: %w", err)
	}

	if err := r.client.Set(ctx, pendingRegistrationKey(registration.Email), payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set pending registration: %w", err)
	}

	return nil
}

func (r *pendingRegistrationRepository) GetByEmail(ctx context.Context, email string) (*domain.PendingRegistration, error) {
	payload, err := r.client.Get(ctx, pendingRegistrationKey(email)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("redis get pending registration: %w", err)
	}

	var registration domain.PendingRegistration
	if err := json.Unmarshal(payload, &registration); err != nil {
		return nil, fmt.Errorf("pending registration unmarshal failed: %w", err)
	}

	return &registration, nil
}

func (r *pendingRegistrationRepository) Delete(ctx context.Context, email string) error {
	if err := r.client.Del(ctx, pendingRegistrationKey(email)).Err(); err != nil {
		return fmt.Errorf("redis del pending registration: %w", err)
	}

	return nil
}
