package service

import (
	"context"
	"time"

	"github.com/lash-app/backend/internal/config"
	"github.com/lash-app/backend/internal/domain"
	queueClient "github.com/lash-app/backend/internal/queue/client"
	"github.com/lash-app/backend/internal/repository"
	"github.com/lash-app/backend/pkg/auth"
	"github.com/lash-app/backend/pkg/hash"
	"github.com/lash-app/backend/pkg/otp"

	"github.com/google/uuid"
)

type Services struct {
	Users     Users
	Clients   Clients
	Anamneses Anamneses
	Emails    Emails
}

type Deps struct {
	Config       *config.Config
	Hasher       hash.PasswordHasher
	TokenManager auth.TokenManager
	OtpGenerator otp.Generator
	Repos        *repository.Repositories
	Queue        queueClient.Enqueuer
}

func NewServices(deps Deps) *Services {
	emails := newEmailService(deps.Queue)

	return &Services{
		Users: newUserService(deps.Repos.Users,
			deps.Repos.PendingRegistrations,
			deps.Hasher,
			deps.TokenManager,
			deps.OtpGenerator,
			emails,
		),
		Clients:   newClientService(deps.Repos.Clients),
		Anamneses: newAnamneseService(deps.Repos.Anamneses),
		Emails:    emails,
	}
}

type Users interface {
	Register(ctx context.Context, input RegisterInput) error
	VerifyCode(ctx context.Context, email string, code string) (uuid.UUID, error)
	Login(ctx context.Context, email string, password string) (*LoginResult, error)
}

type Emails interface {
	SendUserVerificationEmail(ctx context.Context, input VerificationEmailInput) error
}

type Clients interface {
	Create(ctx context.Context, input ClientInput) (*domain.Client, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	List(ctx context.Context, page, limit int) (*domain.Page[domain.Client], error)
	Search(ctx context.Context, name string) ([]domain.Client, error)
	Update(ctx context.Context, id uuid.UUID, input ClientInput) (*domain.Client, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Anamneses interface {
	Create(ctx context.Context, input AnamneseInput) (*domain.Anamnese, error)
	GetByClientID(ctx context.Context, clientID uuid.UUID) (*domain.Anamnese, error)
	List(ctx context.Context, page, limit int) (*domain.Page[domain.Anamnese], error)
	Update(ctx context.Context, clientID uuid.UUID, input AnamneseInput) (*domain.Anamnese, error)
	Delete(ctx context.Context, clientID uuid.UUID) error
}

// NormalizePage replaces non-positive page or limit with the defaults and caps both.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = domain.DefaultPage
	}
	if limit < 1 {
		limit = domain.DefaultLimit
	}
	if limit > domain.MaxLimit {
		limit = domain.MaxLimit
	}
	if page > domain.MaxPage {
		page = domain.MaxPage
	}
	return page, limit
}

// now is replaced in tests.
var now = func() time.Time {
	return time.Now().UTC()
}
