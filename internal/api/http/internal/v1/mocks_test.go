package v1

import (
	"context"
	"time"

	"github.com/lash-app/backend/internal/domain"
	"github.com/lash-app/backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type usersServiceMock struct {
	mock.Mock
}

func (m *usersServiceMock) Register(ctx context.Context, input service.RegisterInput) error {
	return m.Called(ctx, input).Error(0)
}

func (m *usersServiceMock) VerifyCode(ctx context.Context, email string, code string) (uuid.UUID, error) {
	args := m.Called(ctx, email, code)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *usersServiceMock) Login(ctx context.Context, email string, password string) (*service.LoginResult, error) {
	args := m.Called(ctx, email, password)
	res, _ := args.Get(0).(*service.LoginResult)
	return res, args.Error(1)
}

type clientsServiceMock struct {
	mock.Mock
}

func (m *clientsServiceMock) Create(ctx context.Context, input service.ClientInput) (*domain.Client, error) {
	args := m.Called(ctx, input)
	client, _ := args.Get(0).(*domain.Client)
	return client, args.Error(1)
}

func (m *clientsServiceMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	args := m.Called(ctx, id)
	client, _ := args.Get(0).(*domain.Client)
	return client, args.Error(1)
}

func (m *clientsServiceMock) List(ctx context.Context, page, limit int) (*domain.Page[domain.Client], error) {
	args := m.Called(ctx, page, limit)
	p, _ := args.Get(0).(*domain.Page[domain.Client])
	return p, args.Error(1)
}

func (m *clientsServiceMock) Search(ctx context.Context, name string) ([]domain.Client, error) {
	args := m.Called(ctx, name)
	clients, _ := args.Get(0).([]domain.Client)
	return clients, args.Error(1)
}

func (m *clientsServiceMock) Update(ctx context.Context, id uuid.UUID, input service.ClientInput) (*domain.Client, error) {
	args := m.Called(ctx, id, input)
	client, _ := args.Get(0).(*domain.Client)
	return client, args.Error(1)
}

func (m *clientsServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type anamnesesServiceMock struct {
	mock.Mock
}

func (m *anamnesesServiceMock) Create(ctx context.Context, input service.AnamneseInput) (*domain.Anamnese, error) {
	args := m.Called(ctx, input)
	a, _ := args.Get(0).(*domain.Anamnese)
	return a, args.Error(1)
}

func (m *anamnesesServiceMock) GetByClientID(ctx context.Context, clientID uuid.UUID) (*domain.Anamnese, error) {
	args := m.Called(ctx, clientID)
	a, _ := args.Get(0).(*domain.Anamnese)
	return a, args.Error(1)
}

func (m *anamnesesServiceMock) List(ctx context.Context, page, limit int) (*domain.Page[domain.Anamnese], error) {
	args := m.Called(ctx, page, limit)
	p, _ := args.Get(0).(*domain.Page[domain.Anamnese])
	return p, args.Error(1)
}

func (m *anamnesesServiceMock) Update(ctx context.Context, clientID uuid.UUID, input service.AnamneseInput) (*domain.Anamnese, error) {
	args := m.Called(ctx, clientID, input)
	a, _ := args.Get(0).(*domain.Anamnese)
	return a, args.Error(1)
}

func (m *anamnesesServiceMock) Delete(ctx context.Context, clientID uuid.UUID) error {
	return m.Called(ctx, clientID).Error(0)
}

type tokenManagerMock struct {
	mock.Mock
}

func (m *tokenManagerMock) NewJWT(userID uuid.UUID) (string, time.Duration, error) {
	args := m.Called(userID)
	return args.String(0), args.Get(1).(time.Duration), args.Error(2)
}

func (m *tokenManagerMock) Parse(accessToken string) (string, error) {
	args := m.Called(accessToken)
	return args.String(0), args.Error(1)
}
