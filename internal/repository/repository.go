package repository

import (
	"context"
	"time"

	"github.com/lash-app/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

type Repositories struct {
	Users                Users
	PendingRegistrations PendingRegistrations
	Clients              Clients
	Anamneses            Anamneses
}

func NewRepositories(db *sqlx.DB, cache redis.UniversalClient, pendingTTL time.Duration) *Repositories {
	return &Repositories{
		Users:                newUserRepository(db),
		PendingRegistrations: newPendingRegistrationRepository(cache, pendingTTL),
		Clients:              newClientRepository(db),
		Anamneses:            newAnamneseRepository(db),
	}
}

type Users interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// PendingRegistrations holds unconfirmed signups keyed by email. Saving overwrites any
// previous entry for the same email and entries disappear after their TTL.
type PendingRegistrations interface {
	Save(ctx context.Context, registration *domain.PendingRegistration) error
	GetByEmail(ctx context.Context, email string) (*domain.PendingRegistration, error)
	Delete(ctx context.Context, email string) error
}

type Clients interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	GetAll(ctx context.Context, limit, offset int) ([]domain.Client, error)
	Count(ctx context.Context) (int64, error)
	SearchByName(ctx context.Context, name string) ([]domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Anamneses interface {
	Create(ctx context.Context, anamnese *domain.Anamnese) error
	GetFirstByClientID(ctx context.Context, clientID uuid.UUID) (*domain.Anamnese, error)
	GetAll(ctx context.Context, limit, offset int) ([]domain.Anamnese, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, anamnese *domain.Anamnese) error
	Delete(ctx context.Context, id uuid.UUID) error
}
